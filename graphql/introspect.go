package graphql

import (
	"context"
	"slices"

	"github.com/99designs/gqlgen/graphql/introspection"
	"github.com/vektah/gqlparser/v2/ast"
)

// introspectionResolvers resolves the fields of the builtin introspection types.
var introspectionResolvers = NewResolvers().
	Register("__Schema", "description", Field(func(ctx context.Context, obj *introspection.Schema, args map[string]any) (any, error) {
		return obj.Description(), nil
	})).
	Register("__Schema", "types", Field(func(ctx context.Context, obj *introspection.Schema, args map[string]any) (any, error) {
		return pointers(obj.Types()), nil
	})).
	Register("__Schema", "queryType", Field(func(ctx context.Context, obj *introspection.Schema, args map[string]any) (any, error) {
		return obj.QueryType(), nil
	})).
	Register("__Schema", "mutationType", Field(func(ctx context.Context, obj *introspection.Schema, args map[string]any) (any, error) {
		return obj.MutationType(), nil
	})).
	Register("__Schema", "subscriptionType", Field(func(ctx context.Context, obj *introspection.Schema, args map[string]any) (any, error) {
		return obj.SubscriptionType(), nil
	})).
	Register("__Schema", "directives", Field(func(ctx context.Context, obj *introspection.Schema, args map[string]any) (any, error) {
		return pointers(obj.Directives()), nil
	})).
	Register("__Type", "kind", Field(func(ctx context.Context, obj *introspection.Type, args map[string]any) (any, error) {
		return obj.Kind(), nil
	})).
	Register("__Type", "name", Field(func(ctx context.Context, obj *introspection.Type, args map[string]any) (any, error) {
		return obj.Name(), nil
	})).
	Register("__Type", "description", Field(func(ctx context.Context, obj *introspection.Type, args map[string]any) (any, error) {
		return obj.Description(), nil
	})).
	Register("__Type", "specifiedByURL", Field(func(ctx context.Context, obj *introspection.Type, args map[string]any) (any, error) {
		return obj.SpecifiedByURL(), nil
	})).
	Register("__Type", "fields", Field(func(ctx context.Context, obj *introspection.Type, args map[string]any) (any, error) {
		includeDeprecated, _ := args["includeDeprecated"].(bool)
		return typeList(obj, func() []introspection.Field { return obj.Fields(includeDeprecated) }, "OBJECT", "INTERFACE"), nil
	})).
	Register("__Type", "interfaces", Field(func(ctx context.Context, obj *introspection.Type, args map[string]any) (any, error) {
		return typeList(obj, obj.Interfaces, "OBJECT", "INTERFACE"), nil
	})).
	Register("__Type", "possibleTypes", Field(func(ctx context.Context, obj *introspection.Type, args map[string]any) (any, error) {
		return typeList(obj, obj.PossibleTypes, "INTERFACE", "UNION"), nil
	})).
	Register("__Type", "enumValues", Field(func(ctx context.Context, obj *introspection.Type, args map[string]any) (any, error) {
		includeDeprecated, _ := args["includeDeprecated"].(bool)
		return typeList(obj, func() []introspection.EnumValue { return obj.EnumValues(includeDeprecated) }, "ENUM"), nil
	})).
	Register("__Type", "inputFields", Field(func(ctx context.Context, obj *introspection.Type, args map[string]any) (any, error) {
		return typeList(obj, obj.InputFields, "INPUT_OBJECT"), nil
	})).
	Register("__Type", "ofType", Field(func(ctx context.Context, obj *introspection.Type, args map[string]any) (any, error) {
		return obj.OfType(), nil
	})).
	Register("__Field", "name", Field(func(ctx context.Context, obj *introspection.Field, args map[string]any) (any, error) {
		return obj.Name, nil
	})).
	Register("__Field", "description", Field(func(ctx context.Context, obj *introspection.Field, args map[string]any) (any, error) {
		return obj.Description(), nil
	})).
	Register("__Field", "args", Field(func(ctx context.Context, obj *introspection.Field, args map[string]any) (any, error) {
		return pointers(obj.Args), nil
	})).
	Register("__Field", "type", Field(func(ctx context.Context, obj *introspection.Field, args map[string]any) (any, error) {
		return obj.Type, nil
	})).
	Register("__Field", "isDeprecated", Field(func(ctx context.Context, obj *introspection.Field, args map[string]any) (any, error) {
		return obj.IsDeprecated(), nil
	})).
	Register("__Field", "deprecationReason", Field(func(ctx context.Context, obj *introspection.Field, args map[string]any) (any, error) {
		return obj.DeprecationReason(), nil
	})).
	Register("__InputValue", "name", Field(func(ctx context.Context, obj *introspection.InputValue, args map[string]any) (any, error) {
		return obj.Name, nil
	})).
	Register("__InputValue", "description", Field(func(ctx context.Context, obj *introspection.InputValue, args map[string]any) (any, error) {
		return obj.Description(), nil
	})).
	Register("__InputValue", "type", Field(func(ctx context.Context, obj *introspection.InputValue, args map[string]any) (any, error) {
		return obj.Type, nil
	})).
	Register("__InputValue", "defaultValue", Field(func(ctx context.Context, obj *introspection.InputValue, args map[string]any) (any, error) {
		return obj.DefaultValue, nil
	})).
	Register("__EnumValue", "name", Field(func(ctx context.Context, obj *introspection.EnumValue, args map[string]any) (any, error) {
		return obj.Name, nil
	})).
	Register("__EnumValue", "description", Field(func(ctx context.Context, obj *introspection.EnumValue, args map[string]any) (any, error) {
		return obj.Description(), nil
	})).
	Register("__EnumValue", "isDeprecated", Field(func(ctx context.Context, obj *introspection.EnumValue, args map[string]any) (any, error) {
		return obj.IsDeprecated(), nil
	})).
	Register("__EnumValue", "deprecationReason", Field(func(ctx context.Context, obj *introspection.EnumValue, args map[string]any) (any, error) {
		return obj.DeprecationReason(), nil
	})).
	Register("__Directive", "name", Field(func(ctx context.Context, obj *introspection.Directive, args map[string]any) (any, error) {
		return obj.Name, nil
	})).
	Register("__Directive", "description", Field(func(ctx context.Context, obj *introspection.Directive, args map[string]any) (any, error) {
		return obj.Description(), nil
	})).
	Register("__Directive", "locations", Field(func(ctx context.Context, obj *introspection.Directive, args map[string]any) (any, error) {
		if obj.Locations == nil {
			return []string{}, nil
		}
		return obj.Locations, nil
	})).
	Register("__Directive", "args", Field(func(ctx context.Context, obj *introspection.Directive, args map[string]any) (any, error) {
		return pointers(obj.Args), nil
	})).
	Register("__Directive", "isRepeatable", Field(func(ctx context.Context, obj *introspection.Directive, args map[string]any) (any, error) {
		return obj.IsRepeatable, nil
	}))

func introspectSchema(schema *ast.Schema) *introspection.Schema {
	return introspection.WrapSchema(schema)
}

// introspectType returns nil when the schema has no type with the given name.
func introspectType(schema *ast.Schema, name string) *introspection.Type {
	def, ok := schema.Types[name]
	if !ok {
		return nil
	}
	return introspection.WrapTypeFromDef(schema, def)
}

// pointers returns a pointer to every element of items so that the
// introspection methods with pointer receivers can be called on them.
//
// The result is never nil because the introspection lists it feeds are non-null.
func pointers[T any](items []T) []*T {
	out := make([]*T, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out
}

// typeList returns the items of a __Type list field, or nil when the field
// does not apply to the kind of obj.
func typeList[T any](obj *introspection.Type, items func() []T, kinds ...string) []*T {
	if !slices.Contains(kinds, obj.Kind()) {
		return nil
	}
	return pointers(items())
}
