package schema

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedPropertyDeclaration @property or @property-read value does not follow the grammar
	ErrMalformedPropertyDeclaration = errors.New("malformed property declaration")
	// ErrDuplicateNullMarker type union names NULL twice
	ErrDuplicateNullMarker = errors.New("only one NULL is allowed")
	// ErrMultipleTypes type union names more than one non-NULL type, see StrictUnion
	ErrMultipleTypes = errors.New("multiple non-NULL types detected")
	// ErrNotEntity class does not derive from the base entity
	ErrNotEntity = errors.New("class does not derive from the base entity")
)

// DeclarationError reports a property declaration that could not be parsed
type DeclarationError struct {
	Class string
	Tag   string
	Value string
	// Type the captured type expression, set when the type union is rejected
	Type   string
	Reason string
	Err    error
}

func (e *DeclarationError) Error() string {
	var msg string
	switch {
	case e.Type != "":
		msg = fmt.Sprintf("%v, %q given", e.Err, e.Type)
	case e.Reason != "":
		msg = fmt.Sprintf("%v: %s in \"@%s %s\"", e.Err, e.Reason, e.Tag, e.Value)
	default:
		msg = fmt.Sprintf("%v: \"@property[-read] <type> $<property> [-> <column>][ <description>]\" expected, \"@%s %s\" given", e.Err, e.Tag, e.Value)
	}

	if e.Class != "" {
		return e.Class + ": " + msg
	}
	return msg
}

func (e *DeclarationError) Unwrap() error {
	return e.Err
}
