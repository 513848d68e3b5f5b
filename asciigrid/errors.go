// SPDX-License-Identifier: MIT

package asciigrid

import "errors"

var (
	// ErrMalformedHeader indicates a missing, duplicate or unparsable header entry.
	ErrMalformedHeader = errors.New("asciigrid: malformed header")

	// ErrShortData indicates fewer values than ncols×nrows.
	ErrShortData = errors.New("asciigrid: not enough values")

	// ErrBadValue indicates a data token that is not a finite number.
	ErrBadValue = errors.New("asciigrid: bad value")

	// ErrInvalidMaxSide is returned by ReadDownsampled for maxSide < 1.
	ErrInvalidMaxSide = errors.New("asciigrid: max side must be at least 1")
)
