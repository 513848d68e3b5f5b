// SPDX-License-Identifier: MIT

// Package terrain generates small deterministic elevation grids for tests,
// benchmarks and the CLI's demo input.
//
// Every generator that uses randomness takes an explicit seed; the same seed
// produces the same grid on every platform. seed==0 selects a fixed default
// seed. No generator logs or panics on valid input.
package terrain
