// SPDX-License-Identifier: MIT

package sweep

import "errors"

// ErrInvalidViewpoint is returned when the viewpoint cell or square is out of
// range or holds no data.
var ErrInvalidViewpoint = errors.New("sweep: invalid viewpoint")
