// SPDX-License-Identifier: MIT

// Package clifford - validity checks.
//
// An Element is valid when it preserves the commutation relations of the 2n
// elementary generators: com(C(P), C(Q)) == com(P, Q) for every pair.
// Phases never affect commutation, so this is the phase-free (symplectic)
// condition; bsf.Matrix.IsSymplectic decides the same property on the matrix.
//
// Complexity: the images of the generators are the stored images, so the
// check is 4n² commutation values of O(n) each, O(n³) overall.

package clifford

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/qecc/pauli"
)

// Violation is a generator pair whose commutation C fails to preserve.
type Violation struct {
	P, Q   pauli.Pauli // elementary generators
	CP, CQ pauli.Pauli // their images under C
}

// String implements fmt.Stringer.
func (v Violation) String() string {
	return fmt.Sprintf("%s, %s |-> %s, %s", v.P, v.Q, v.CP, v.CQ)
}

// FindViolation returns the first generator pair (X generators before Z,
// row-major) whose commutation value changes under c. ok is false when c
// preserves every pair or has no images.
func (c *Element) FindViolation() (v Violation, ok bool) {
	n, err := c.QubitCount()
	if err != nil {
		return Violation{}, false
	}
	xs, zs := pauli.ElemGens(n)
	gens := append(xs, zs...)
	imgs := c.images()

	var (
		i, j       int
		before, at int
	)
	for i = range gens {
		for j = range gens {
			if before, err = pauli.Com(gens[i], gens[j]); err != nil {
				return Violation{}, false
			}
			if at, err = pauli.Com(imgs[i], imgs[j]); err != nil {
				return Violation{}, false
			}
			if before != at {
				return Violation{P: gens[i], Q: gens[j], CP: imgs[i], CQ: imgs[j]}, true
			}
		}
	}

	return Violation{}, false
}

// IsValid reports whether c is a Clifford operation, i.e. preserves the
// commutation of every pair of elementary generators. A failure is a normal
// result, not an error; the offending pair is logged at debug level.
// A nil or empty Element is not valid.
func (c *Element) IsValid(opts ...Option) bool {
	o := gatherOptions(opts...)
	if _, err := c.QubitCount(); err != nil {
		o.logger.Debug("clifford has no images", zap.Error(err))

		return false
	}
	v, bad := c.FindViolation()
	if bad {
		o.logger.Debug("commutation not preserved",
			zap.Stringer("p", v.P),
			zap.Stringer("q", v.Q),
			zap.Stringer("cp", v.CP),
			zap.Stringer("cq", v.CQ),
		)

		return false
	}

	return true
}

// ValidateAll runs IsValid on every element concurrently, at most
// WithWorkers(k) at a time, and returns the results in input order.
// Implementation:
//   - Stage 1: one errgroup task per element, bounded by SetLimit.
//   - Stage 2: each task checks the group context before working; a nil
//     element aborts the batch with ErrNilElement.
//   - Stage 3: Wait; every goroutine has returned before ValidateAll does.
//
// Errors: ErrNilElement, ctx.Err() on cancellation.
func ValidateAll(ctx context.Context, elems []*Element, opts ...Option) ([]bool, error) {
	o := gatherOptions(opts...)
	out := make([]bool, len(elems))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.effectiveWorkers())
	for i, e := range elems {
		i, e := i, e
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if e == nil {
				return fmt.Errorf("%s: element %d: %w", opValidate, i, ErrNilElement)
			}
			// Each task writes only its own slot.
			out[i] = e.IsValid(opts...)
			if !out[i] {
				o.logger.Debug("invalid clifford", zap.Int("index", i))
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
