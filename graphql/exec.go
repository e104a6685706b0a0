package graphql

import (
	"context"
	"fmt"
	"math"
	"reflect"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/ast"
)

const typenameFieldName = "__typename"

func (e *Request) executeQuery(ctx context.Context, set ast.SelectionSet) (map[string]any, error) {
	fields := e.collectFields(set, queryTypeName)
	result := make(map[string]any, len(fields))
	for _, field := range fields {
		path := ast.Path{ast.PathName(field.Alias)}
		switch field.Name {
		case typenameFieldName:
			result[field.Alias] = queryTypeName
		case "__schema":
			res, err := e.completeValue(ctx, field.Definition.Type, introspectSchema(e.schema), field, path)
			if err != nil {
				return nil, err
			}
			result[field.Alias] = res
		case "__type":
			args := field.ArgumentMap(e.params.Variables)
			name, _ := args["name"].(string)
			res, err := e.completeValue(ctx, field.Definition.Type, introspectType(e.schema, name), field, path)
			if err != nil {
				return nil, err
			}
			result[field.Alias] = res
		default:
			res, err := e.resolveField(ctx, queryTypeName, nil, field, path)
			if err != nil {
				return nil, err
			}
			result[field.Alias] = res
		}
	}
	return result, nil
}

// executeMutation runs each root field in order so that later fields observe earlier writes.
func (e *Request) executeMutation(ctx context.Context, set ast.SelectionSet) (map[string]any, error) {
	fields := e.collectFields(set, mutationTypeName)
	result := make(map[string]any, len(fields))
	for _, field := range fields {
		path := ast.Path{ast.PathName(field.Alias)}
		switch field.Name {
		case typenameFieldName:
			result[field.Alias] = mutationTypeName
		default:
			res, err := e.resolveField(ctx, mutationTypeName, nil, field, path)
			if err != nil {
				return nil, err
			}
			result[field.Alias] = res
		}
	}
	return result, nil
}

func (e *Request) resolveField(ctx context.Context, typeName string, parent any, field graphql.CollectedField, path ast.Path) (any, error) {
	fn := e.resolvers.Lookup(typeName, field.Name)
	if fn == nil {
		fn = introspectionResolvers.Lookup(typeName, field.Name)
	}
	if fn == nil {
		return nil, fieldError(field, path, fmt.Errorf("no resolver for field %s.%s", typeName, field.Name))
	}
	val, err := fn(ctx, parent, field.ArgumentMap(e.params.Variables))
	if err != nil {
		return nil, fieldError(field, path, err)
	}
	return e.completeValue(ctx, field.Definition.Type, val, field, path)
}

func (e *Request) completeValue(ctx context.Context, typ *ast.Type, val any, field graphql.CollectedField, path ast.Path) (any, error) {
	if isNull(val) {
		if typ.NonNull {
			return nil, fieldError(field, path, fmt.Errorf("must not be null"))
		}
		return nil, nil
	}
	if typ.Elem != nil {
		return e.completeList(ctx, typ.Elem, val, field, path)
	}
	def, ok := e.schema.Types[typ.NamedType]
	if !ok {
		return nil, fieldError(field, path, fmt.Errorf("unknown type %s", typ.NamedType))
	}
	switch def.Kind {
	case ast.Object:
		return e.completeObject(ctx, def.Name, val, field.SelectionSet, path)
	case ast.Scalar, ast.Enum:
		res, err := completeLeaf(def, val)
		if err != nil {
			return nil, fieldError(field, path, err)
		}
		return res, nil
	default:
		return nil, fieldError(field, path, fmt.Errorf("unsupported output type %s", def.Name))
	}
}

func (e *Request) completeList(ctx context.Context, typ *ast.Type, val any, field graphql.CollectedField, path ast.Path) ([]any, error) {
	list := reflect.ValueOf(val)
	if list.Kind() != reflect.Slice {
		return nil, fieldError(field, path, fmt.Errorf("expected a list but got %T", val))
	}
	result := make([]any, list.Len())
	for i := 0; i < list.Len(); i++ {
		res, err := e.completeValue(ctx, typ, list.Index(i).Interface(), field, appendPath(path, ast.PathIndex(i)))
		if err != nil {
			return nil, err
		}
		result[i] = res
	}
	return result, nil
}

func (e *Request) completeObject(ctx context.Context, typeName string, parent any, set ast.SelectionSet, path ast.Path) (map[string]any, error) {
	fields := e.collectFields(set, typeName)
	result := make(map[string]any, len(fields))
	for _, field := range fields {
		if field.Name == typenameFieldName {
			result[field.Alias] = typeName
			continue
		}
		res, err := e.resolveField(ctx, typeName, parent, field, appendPath(path, ast.PathName(field.Alias)))
		if err != nil {
			return nil, err
		}
		result[field.Alias] = res
	}
	return result, nil
}

// completeLeaf converts a resolved value into the JSON value of a scalar or enum type.
func completeLeaf(def *ast.Definition, val any) (any, error) {
	val = reflect.Indirect(reflect.ValueOf(val)).Interface()
	if def.Kind == ast.Enum {
		return graphql.UnmarshalString(val)
	}
	switch def.Name {
	case "ID":
		return graphql.UnmarshalID(val)
	case "String":
		return graphql.UnmarshalString(val)
	case "Boolean":
		return graphql.UnmarshalBoolean(val)
	case "Float":
		return graphql.UnmarshalFloat(val)
	case "Int":
		return UnmarshalInt(val)
	default:
		return val, nil
	}
}

// UnmarshalInt converts a value into an int.
//
// Whole floats are accepted in addition to the types gqlgen supports
// because JSON decoded variables are always float64.
func UnmarshalInt(val any) (int, error) {
	f, ok := val.(float64)
	if !ok {
		return graphql.UnmarshalInt(val)
	}
	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf("%v is not an int", f)
	}
	return int(f), nil
}

func isNull(val any) bool {
	if val == nil {
		return true
	}
	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}

func appendPath(path ast.Path, elem ast.PathElement) ast.Path {
	out := make(ast.Path, len(path), len(path)+1)
	copy(out, path)
	return append(out, elem)
}
