package graphql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

// FieldFunc returns the value of a field for the given parent object.
//
// Root fields are called with a nil parent.
type FieldFunc func(ctx context.Context, parent any, args map[string]any) (any, error)

// Field adapts a function that expects a parent of type *T into a FieldFunc.
func Field[T any](fn func(ctx context.Context, parent *T, args map[string]any) (any, error)) FieldFunc {
	return func(ctx context.Context, parent any, args map[string]any) (any, error) {
		obj, ok := parent.(*T)
		if !ok || obj == nil {
			return nil, fmt.Errorf("unexpected parent value %T", parent)
		}
		return fn(ctx, obj, args)
	}
}

// Resolvers maps each (type name, field name) pair to the FieldFunc that resolves it.
type Resolvers struct {
	fields map[string]map[string]FieldFunc
}

// NewResolvers returns an empty set of resolvers.
func NewResolvers() *Resolvers {
	return &Resolvers{
		fields: make(map[string]map[string]FieldFunc),
	}
}

// Register sets the resolver for the given field replacing any existing one.
func (r *Resolvers) Register(typeName, fieldName string, fn FieldFunc) *Resolvers {
	fields, ok := r.fields[typeName]
	if !ok {
		fields = make(map[string]FieldFunc)
		r.fields[typeName] = fields
	}
	fields[fieldName] = fn
	return r
}

// Lookup returns the resolver for the given field or nil if none is registered.
func (r *Resolvers) Lookup(typeName, fieldName string) FieldFunc {
	return r.fields[typeName][fieldName]
}

// Check verifies that every field declared on a schema object type has a
// resolver and that every resolver belongs to a declared field.
func (r *Resolvers) Check(schema *ast.Schema) error {
	var errs []error
	for _, def := range schema.Types {
		if def.BuiltIn || def.Kind != ast.Object {
			continue
		}
		for _, field := range def.Fields {
			if strings.HasPrefix(field.Name, "__") {
				continue
			}
			if r.Lookup(def.Name, field.Name) == nil {
				errs = append(errs, fmt.Errorf("missing resolver for %s.%s", def.Name, field.Name))
			}
		}
	}
	for typeName, fields := range r.fields {
		def := schema.Types[typeName]
		for fieldName := range fields {
			if def == nil || def.Kind != ast.Object || def.Fields.ForName(fieldName) == nil {
				errs = append(errs, fmt.Errorf("resolver %s.%s does not match a schema field", typeName, fieldName))
			}
		}
	}
	return errors.Join(errs...)
}
