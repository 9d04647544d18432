package systems

import (
	"fmt"
	"sort"

	"github.com/san-kum/phaseplot/internal/ode"
)

type Registry struct {
	systems map[string]func() ode.System
}

func NewRegistry() *Registry {
	r := &Registry{
		systems: make(map[string]func() ode.System),
	}

	r.systems["quadratic"] = func() ode.System { return NewQuadratic() }
	r.systems["vanderpol"] = func() ode.System { return NewVanDerPol() }
	r.systems["pendulum"] = func() ode.System { return NewPendulum() }
	r.systems["duffing"] = func() ode.System { return NewDuffing() }

	return r
}

func (r *Registry) Get(name string) (ode.System, error) {
	fn, ok := r.systems[name]
	if !ok {
		return nil, fmt.Errorf("unknown system: %s", name)
	}
	return fn(), nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.systems))
	for name := range r.systems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
