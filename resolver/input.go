package resolver

import (
	"fmt"

	"github.com/nasdf/blogql/core"
	"github.com/nasdf/blogql/graphql"

	gqlgen "github.com/99designs/gqlgen/graphql"
)

var errDataRequired = &core.ValidationError{Message: "data is required"}

// invalidInput reports a malformed input field as a client error.
func invalidInput(field string, err error) error {
	return &core.ValidationError{Message: fmt.Sprintf("invalid %s: %v", field, err)}
}

func optionalString(args map[string]any, name string) (string, error) {
	val, ok := args[name]
	if !ok || val == nil {
		return "", nil
	}
	return gqlgen.UnmarshalString(val)
}

func inputObject(val any) (map[string]any, error) {
	if val == nil {
		return nil, errDataRequired
	}
	data, ok := val.(map[string]any)
	if !ok {
		return nil, &core.ValidationError{Message: fmt.Sprintf("%T is not an input object", val)}
	}
	return data, nil
}

func decodeCreateUserInput(val any) (core.CreateUserInput, error) {
	var input core.CreateUserInput
	data, err := inputObject(val)
	if err != nil {
		return input, err
	}
	if input.Name, err = gqlgen.UnmarshalString(data["name"]); err != nil {
		return input, invalidInput("name", err)
	}
	if input.Email, err = gqlgen.UnmarshalString(data["email"]); err != nil {
		return input, invalidInput("email", err)
	}
	if age, ok := data["age"]; ok && age != nil {
		n, err := graphql.UnmarshalInt(age)
		if err != nil {
			return input, invalidInput("age", err)
		}
		input.Age = core.IntPtr(n)
	}
	return input, nil
}

func decodeCreatePostInput(val any) (core.CreatePostInput, error) {
	var input core.CreatePostInput
	data, err := inputObject(val)
	if err != nil {
		return input, err
	}
	if input.Title, err = gqlgen.UnmarshalString(data["title"]); err != nil {
		return input, invalidInput("title", err)
	}
	if input.Body, err = gqlgen.UnmarshalString(data["body"]); err != nil {
		return input, invalidInput("body", err)
	}
	if input.Published, err = gqlgen.UnmarshalBoolean(data["published"]); err != nil {
		return input, invalidInput("published", err)
	}
	if input.Author, err = gqlgen.UnmarshalID(data["author"]); err != nil {
		return input, invalidInput("author", err)
	}
	return input, nil
}

func decodeCreateCommentInput(val any) (core.CreateCommentInput, error) {
	var input core.CreateCommentInput
	data, err := inputObject(val)
	if err != nil {
		return input, err
	}
	if input.Text, err = gqlgen.UnmarshalString(data["text"]); err != nil {
		return input, invalidInput("text", err)
	}
	if input.Author, err = gqlgen.UnmarshalID(data["author"]); err != nil {
		return input, invalidInput("author", err)
	}
	if input.Post, err = gqlgen.UnmarshalID(data["post"]); err != nil {
		return input, invalidInput("post", err)
	}
	return input, nil
}
