// Package dsltype holds the pluggable value types the configuration
// DSL constructs at evaluation time.
package dsltype

import (
	"context"
	"fmt"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
)

// Type is one constructible DSL value type.
type Type interface {
	Name() string
	Construct(ctx context.Context, args ...any) (any, error)
}

// Registry resolves type names to their constructors.
type Registry struct {
	types map[string]Type
}

// NewRegistry returns a registry with the built-in types registered.
func NewRegistry() *Registry {
	registry := &Registry{types: map[string]Type{}}
	registry.Register(NewTimestampType(time.Now))
	return registry
}

func (r *Registry) Register(t Type) {
	r.types[t.Name()] = t
}

func (r *Registry) Lookup(name string) (Type, bool) {
	t, ok := r.types[name]
	return t, ok
}

// Construct builds a value of the named type from the given arguments.
func (r *Registry) Construct(ctx context.Context, name string, args ...any) (any, error) {
	t, ok := r.Lookup(name)
	if !ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("unknown type: %s", name))
	}
	value, err := t.Construct(ctx, args...)
	if err != nil {
		return nil, err
	}
	log.Ctx(ctx).Debug().Str("type", name).Msg("dsl value constructed")
	return value, nil
}
