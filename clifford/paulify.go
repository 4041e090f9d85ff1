// SPDX-License-Identifier: MIT

package clifford

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/qecc/pauli"
)

// Paulify recognises an Element that is conjugation by a Pauli operator P,
// i.e. one fixing every elementary generator up to sign, and returns P.
// Implementation:
//   - Stage 1: every image must have the operator string of its generator and
//     a real phase (0 or 2); all n positions are checked.
//   - Stage 2: a −1 on the X image of qubit i means P anticommutes with X_i,
//     contributing Z at i; a −1 on the Z image contributes X at i.
//   - Stage 3: multiply the two accumulators and drop the phase.
//
// On mismatch the diagnostic is logged at info level and ok is false; the
// caller keeps c. The returned operator always has phase 0: the sign of P is
// not recoverable from its conjugation action.
// Complexity: O(n²).
func Paulify(c *Element, opts ...Option) (p pauli.Pauli, ok bool) {
	o := gatherOptions(opts...)
	n, err := c.QubitCount()
	if err != nil {
		o.logger.Info("clifford is not a Pauli", zap.Error(err))

		return pauli.Pauli{}, false
	}

	xs, zs := pauli.ElemGens(n)
	for i := 0; i < n; i++ {
		if !fixesUpToSign(xs[i], c.xout[i]) || !fixesUpToSign(zs[i], c.zout[i]) {
			o.logger.Info("clifford is not a Pauli",
				zap.Int("qubit", i),
				zap.Stringer("x_image", c.xout[i]),
				zap.Stringer("z_image", c.zout[i]),
			)

			return pauli.Pauli{}, false
		}
	}

	var (
		fromX = pauli.Identity(n) // Z wherever an X image flipped sign
		fromZ = pauli.Identity(n) // X wherever a Z image flipped sign
	)
	for i := 0; i < n; i++ {
		if c.xout[i].Phase() == 2 {
			if fromX, err = fromX.Replace(i, pauli.LabelZ); err != nil {
				return pauli.Pauli{}, false
			}
		}
		if c.zout[i].Phase() == 2 {
			if fromZ, err = fromZ.Replace(i, pauli.LabelX); err != nil {
				return pauli.Pauli{}, false
			}
		}
	}
	prod, err := fromZ.Mul(fromX)
	if err != nil {
		return pauli.Pauli{}, false
	}
	if p, err = pauli.New(prod.Op(), 0); err != nil {
		return pauli.Pauli{}, false
	}

	return p, true
}

// fixesUpToSign reports whether img is ±gen.
func fixesUpToSign(gen, img pauli.Pauli) bool {
	return img.Op() == gen.Op() && img.Phase()%2 == 0
}
