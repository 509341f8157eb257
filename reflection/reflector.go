package reflection

import "strings"

// Reflector exposes the class surface the property resolver needs
type Reflector interface {
	// Methods returns the public methods of class, inherited ones included, in enumeration order
	Methods(class string) []Method
	// HasMethod reports whether class has a public method with the given name
	HasMethod(class, name string) bool
	// Annotations returns the tags declared on the class doc comment itself
	Annotations(class string) []Tag
	// Parent returns the direct parent of class
	Parent(class string) (string, bool)
}

// Scope exposes the name resolution context of a class
type Scope interface {
	Namespace(class string) string
	// Imports maps lower-cased aliases to fully-qualified names
	Imports(class string) map[string]string
}

// Tag all values of one annotation tag, in declaration order
type Tag struct {
	Name   string
	Values []string
}

// Method public method descriptor
type Method struct {
	Name           string
	DeclaringClass string
	DocComment     string
	Annotations    []Tag
}

// LookUpTag returns the tag with the given name
func LookUpTag(tags []Tag, name string) (Tag, bool) {
	for _, tag := range tags {
		if tag.Name == name {
			return tag, true
		}
	}
	return Tag{}, false
}

// HasAnnotation reports whether the method doc comment carries the tag
func (m Method) HasAnnotation(name string) bool {
	_, ok := LookUpTag(m.Annotations, name)
	return ok
}

// Annotation returns the first value of a tag
func (m Method) Annotation(name string) (string, bool) {
	if tag, ok := LookUpTag(m.Annotations, name); ok && len(tag.Values) > 0 {
		return tag.Values[0], true
	}
	return "", false
}

// IsInternal reports whether the method is marked @internal
func (m Method) IsInternal() bool {
	return m.HasAnnotation("internal")
}

// ReturnType returns the type named by @return, or "" when it is missing
func (m Method) ReturnType() string {
	value, ok := m.Annotation("return")
	if !ok {
		return ""
	}
	if fields := strings.Fields(value); len(fields) > 0 {
		return fields[0]
	}
	return ""
}

// Namespace returns the namespace part of a fully-qualified class name
func Namespace(class string) string {
	class = strings.TrimPrefix(class, `\`)
	if idx := strings.LastIndex(class, `\`); idx >= 0 {
		return class[:idx]
	}
	return ""
}

// ShortName returns class without its namespace
func ShortName(class string) string {
	if idx := strings.LastIndex(class, `\`); idx >= 0 {
		return class[idx+1:]
	}
	return class
}
