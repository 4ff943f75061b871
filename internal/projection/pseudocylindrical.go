package projection

import (
	"fmt"
	"math"

	"github.com/pspoerri/geoproj/internal/coord"
)

// Wagner VI constants.
const (
	wag6CX = 0.94745
	wag6CY = 0.94745
	wag6CA = 0.0
	wag6CB = 0.30396355092701331433
)

// WagnerVIParams are the bound constants of the wag6 projection.
func WagnerVIParams() Params {
	return Params{"cx": wag6CX, "cy": wag6CY, "ca": wag6CA, "cb": wag6CB}
}

// KavraiskyVIIParams are the bound constants of the kav7 projection:
// x = √3/2·λ·sqrt(1 - 3φ²/π²), y = φ.
func KavraiskyVIIParams() Params {
	return Params{"cx": math.Sqrt(3) / 2, "cy": 1, "ca": 0, "cb": 3 / (math.Pi * math.Pi)}
}

// pseudoCylindrical covers the projections of the form
//
//	x = CX·λ·(CA + sqrt(1 - CB·φ²))
//	y = CY·φ
//
// Wagner VI is the reference member.
type pseudoCylindrical struct {
	cx, cy, ca, cb float64
}

// NewPseudoCylindrical builds a kernel with explicit constants.
func NewPseudoCylindrical(cx, cy, ca, cb float64) (Kernel, error) {
	return newPseudoCylindrical(Params{"cx": cx, "cy": cy, "ca": ca, "cb": cb})
}

func newPseudoCylindrical(p Params) (Kernel, error) {
	var k pseudoCylindrical
	var err error
	if k.cx, err = p.require("cx"); err != nil {
		return nil, err
	}
	if k.cy, err = p.require("cy"); err != nil {
		return nil, err
	}
	if k.ca, err = p.require("ca"); err != nil {
		return nil, err
	}
	if k.cb, err = p.require("cb"); err != nil {
		return nil, err
	}
	if k.cx == 0 || k.cy == 0 {
		return nil, fmt.Errorf("%w: cx and cy must be non-zero", ErrInvalidParams)
	}
	return &k, nil
}

func (k *pseudoCylindrical) Forward(b coord.Batch, start, n int) {
	for i := start; i < start+n; i++ {
		lam := b[i*coord.Stride+coord.Lambda]
		phi := b[i*coord.Stride+coord.Phi]
		r := coord.Asqrt(1 - k.cb*phi*phi)
		if math.IsNaN(r) {
			setNaN(b, i)
			continue
		}
		b[i*coord.Stride+coord.Y] = k.cy * phi
		b[i*coord.Stride+coord.X] = k.cx * lam * (k.ca + r)
	}
}

func (k *pseudoCylindrical) Inverse(b coord.Batch, start, n int) {
	for i := start; i < start+n; i++ {
		x := b[i*coord.Stride+coord.X]
		phi := b[i*coord.Stride+coord.Y] / k.cy
		r := coord.Asqrt(1 - k.cb*phi*phi)
		// At the pole line with CA = 0 every x collapses to 0 and λ is undefined.
		if math.IsNaN(r) || k.ca+r == 0 {
			setNaN(b, i)
			continue
		}
		b[i*coord.Stride+coord.Phi] = phi
		b[i*coord.Stride+coord.Lambda] = x / (k.cx * (k.ca + r))
	}
}
