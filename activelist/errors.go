// SPDX-License-Identifier: MIT

package activelist

import "errors"

var (
	// ErrDuplicateKey indicates that an entry with the same (distance, id)
	// is already present.
	ErrDuplicateKey = errors.New("activelist: duplicate key")

	// ErrKeyNotFound indicates that Delete was called for an absent key.
	ErrKeyNotFound = errors.New("activelist: key not found")
)
