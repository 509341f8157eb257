package tests

import (
	"fmt"
	"go/ast"
	"reflect"
	"testing"

	"github.com/yetorm/virtprops/utils"
)

// AssertObjEqual compares the named exported fields of r and e
func AssertObjEqual(t *testing.T, r, e interface{}, names ...string) {
	for _, name := range names {
		got := reflect.Indirect(reflect.ValueOf(r)).FieldByName(name).Interface()
		expect := reflect.Indirect(reflect.ValueOf(e)).FieldByName(name).Interface()
		t.Run(name, func(t *testing.T) {
			AssertEqual(t, got, expect)
		})
	}
}

// AssertEqual reports got and expect differences, reporting the caller position
func AssertEqual(t *testing.T, got, expect interface{}) {
	if reflect.DeepEqual(got, expect) {
		return
	}

	isEqual := func() {
		if fmt.Sprint(got) != fmt.Sprint(expect) {
			t.Errorf("%v: expect: %#v, got %#v", utils.FileWithLineNum(), expect, got)
		}
	}

	if fmt.Sprint(got) == fmt.Sprint(expect) && reflect.TypeOf(got) == reflect.TypeOf(expect) {
		return
	}

	if reflect.Indirect(reflect.ValueOf(got)).IsValid() != reflect.Indirect(reflect.ValueOf(expect)).IsValid() {
		t.Errorf("%v: expect: %+v, got %+v", utils.FileWithLineNum(), expect, got)
		return
	}

	if got != nil {
		got = reflect.Indirect(reflect.ValueOf(got)).Interface()
	}

	if expect != nil {
		expect = reflect.Indirect(reflect.ValueOf(expect)).Interface()
	}

	if reflect.ValueOf(got).Kind() == reflect.Slice && reflect.ValueOf(expect).Kind() == reflect.Slice {
		if reflect.ValueOf(got).Len() == reflect.ValueOf(expect).Len() {
			for i := 0; i < reflect.ValueOf(got).Len(); i++ {
				name := fmt.Sprintf(reflect.ValueOf(got).Type().Name()+" #%v", i)
				t.Run(name, func(t *testing.T) {
					AssertEqual(t, reflect.ValueOf(got).Index(i).Interface(), reflect.ValueOf(expect).Index(i).Interface())
				})
			}
		} else {
			name := reflect.ValueOf(got).Type().Elem().Name()
			t.Errorf("%v expects length: %v, got %v (expects: %+v, got %+v)", name, reflect.ValueOf(expect).Len(), reflect.ValueOf(got).Len(), expect, got)
		}
		return
	}

	if reflect.ValueOf(got).Kind() == reflect.Struct && reflect.ValueOf(got).NumField() == reflect.ValueOf(expect).NumField() {
		exported := false
		for i := 0; i < reflect.ValueOf(got).NumField(); i++ {
			if fieldStruct := reflect.ValueOf(got).Type().Field(i); ast.IsExported(fieldStruct.Name) {
				exported = true
				field := reflect.ValueOf(got).Field(i)
				t.Run(fieldStruct.Name, func(t *testing.T) {
					AssertEqual(t, field.Interface(), reflect.ValueOf(expect).Field(i).Interface())
				})
			}
		}

		if exported {
			return
		}
	}

	if reflect.ValueOf(got).IsValid() && reflect.ValueOf(expect).IsValid() &&
		reflect.ValueOf(got).Type().ConvertibleTo(reflect.ValueOf(expect).Type()) {
		got = reflect.ValueOf(got).Convert(reflect.ValueOf(expect).Type()).Interface()
	}
	isEqual()
}
