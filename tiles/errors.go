// SPDX-License-Identifier: MIT

package tiles

import "errors"

// ErrInvalidEpsilon is returned by Decompose for a negative or NaN tolerance.
var ErrInvalidEpsilon = errors.New("tiles: epsilon must be non-negative")
