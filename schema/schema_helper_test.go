package schema_test

import (
	"fmt"
	"testing"

	"github.com/yetorm/virtprops/schema"
	"github.com/yetorm/virtprops/utils/tests"
)

func propertyNames(s *schema.Schema) []string {
	names := make([]string, 0, len(s.Properties))
	for _, property := range s.Properties {
		names = append(names, property.Name())
	}
	return names
}

func checkSchemaProperty(t *testing.T, s *schema.Schema, expected schema.Property) {
	t.Run("CheckProperty/"+expected.Name(), func(t *testing.T) {
		parsed := s.LookUpProperty(expected.Name())
		if parsed == nil {
			t.Errorf("schema %v failed to look up property with name %v", s, expected.Name())
			return
		}

		if fmt.Sprintf("%T", parsed) != fmt.Sprintf("%T", expected) {
			t.Errorf("schema %v property %v should be %T, got %T", s, expected.Name(), expected, parsed)
		}

		tests.AssertEqual(t, parsed.Type(), expected.Type())
		tests.AssertEqual(t, parsed.Nullable(), expected.Nullable())
		tests.AssertEqual(t, parsed.Readonly(), expected.Readonly())
		tests.AssertEqual(t, parsed.Description(), expected.Description())
		tests.AssertEqual(t, parsed.Entity(), expected.Entity())

		column, _ := schema.ColumnOf(parsed)
		expectedColumn, _ := schema.ColumnOf(expected)
		tests.AssertEqual(t, column, expectedColumn)

		if method, ok := expected.(*schema.MethodProperty); ok {
			if parsedMethod, ok := parsed.(*schema.MethodProperty); ok && parsedMethod.Method() != method.Method() {
				t.Errorf("schema %v property %v should be backed by %v, got %v", s, expected.Name(), method.Method(), parsedMethod.Method())
			}
		}

		for _, property := range s.Properties {
			if property.Name() == expected.Name() && property != parsed {
				t.Errorf("schema %v lists property %v twice", s, expected.Name())
			}
		}
	})
}
