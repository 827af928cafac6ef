package fwparse

import "reflect"

// Registry is a string-to-type allow-list. Every entity name a layout or
// manifest references must be pre-registered; this prevents a layout file
// from instantiating an arbitrary type.
type Registry struct {
	types map[string]reflect.Type
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]reflect.Type)}
}

// Register adds name -> the type of the zero value of sample. Sample is
// used only for its type; Register(..., MyEntity{}) and
// Register(..., &MyEntity{}) are equivalent and both register MyEntity.
func (r *Registry) Register(name string, sample any) {
	t := reflect.TypeOf(sample)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	r.types[name] = t
}

// Lookup resolves an entity name to its registered type, or returns a
// ConfigError if name was never registered.
func (r *Registry) Lookup(name string) (reflect.Type, error) {
	t, ok := r.types[name]
	if !ok {
		return nil, newConfigError("entity %q is not registered", name)
	}
	return t, nil
}

// New constructs a zero-valued *T for the registered entity name, where T
// is the type Register recorded.
func (r *Registry) New(name string) (any, error) {
	t, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	return reflect.New(t).Interface(), nil
}
