// SPDX-License-Identifier: MIT

package viewcount

import "errors"

// ErrInvalidBlockSize is returned when a block or neighborhood size is < 1.
var ErrInvalidBlockSize = errors.New("viewcount: block size must be at least 1")
