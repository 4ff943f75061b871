package projection

import (
	"fmt"

	"github.com/pspoerri/geoproj/internal/coord"
)

type boundKernel struct {
	def    Definition
	kernel Kernel
}

// Dispatcher resolves projection ids to kernels built once from a Registry.
// It is read-only after NewDispatcher and safe for concurrent use.
type Dispatcher struct {
	kernels map[string]boundKernel
	byEPSG  map[int]string
	ids     []string
}

// NewDispatcher builds every kernel in reg with its bound parameters.
func NewDispatcher(reg *Registry) (*Dispatcher, error) {
	d := &Dispatcher{
		kernels: make(map[string]boundKernel, len(reg.defs)),
		byEPSG:  make(map[int]string),
		ids:     reg.IDs(),
	}
	for _, id := range d.ids {
		def := reg.defs[id]
		k, err := build(def)
		if err != nil {
			return nil, err
		}
		d.kernels[id] = boundKernel{def: def, kernel: k}
		if def.EPSG != NoEPSG {
			if prev, ok := d.byEPSG[def.EPSG]; ok {
				return nil, fmt.Errorf("%w: EPSG:%d claimed by %q and %q", ErrDuplicateProjection, def.EPSG, prev, id)
			}
			d.byEPSG[def.EPSG] = id
		}
	}
	return d, nil
}

// Kernel returns the kernel registered under id.
func (d *Dispatcher) Kernel(id string) (Kernel, error) {
	bk, err := d.resolve(id)
	if err != nil {
		return nil, err
	}
	return bk.kernel, nil
}

// Definition returns the definition the kernel for id was built from.
func (d *Dispatcher) Definition(id string) (Definition, error) {
	bk, err := d.resolve(id)
	if err != nil {
		return Definition{}, err
	}
	return bk.def, nil
}

// ForEPSG returns the id of the projection registered for an EPSG code.
func (d *Dispatcher) ForEPSG(code int) (string, error) {
	id, ok := d.byEPSG[code]
	if !ok {
		return "", fmt.Errorf("%w: EPSG:%d", ErrUnknownProjection, code)
	}
	return id, nil
}

// IDs returns all registered ids, sorted.
func (d *Dispatcher) IDs() []string {
	return append([]string(nil), d.ids...)
}

// Forward projects points [start, start+n) of b in place.
func (d *Dispatcher) Forward(id string, b coord.Batch, start, n int) error {
	bk, err := d.resolve(id)
	if err != nil {
		return err
	}
	if err := b.CheckRange(start, n); err != nil {
		return err
	}
	bk.kernel.Forward(b, start, n)
	return nil
}

// Inverse unprojects points [start, start+n) of b in place.
func (d *Dispatcher) Inverse(id string, b coord.Batch, start, n int) error {
	bk, err := d.resolve(id)
	if err != nil {
		return err
	}
	if err := b.CheckRange(start, n); err != nil {
		return err
	}
	bk.kernel.Inverse(b, start, n)
	return nil
}

func (d *Dispatcher) resolve(id string) (boundKernel, error) {
	bk, ok := d.kernels[canonicalID(id)]
	if !ok {
		return boundKernel{}, fmt.Errorf("%w: %q", ErrUnknownProjection, id)
	}
	return bk, nil
}
