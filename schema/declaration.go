package schema

import (
	"regexp"
	"strings"
)

const (
	// PropertyTag declares a writable property
	PropertyTag = "property"
	// PropertyReadTag declares a read-only property
	PropertyReadTag = "property-read"
)

const (
	identStart = `a-zA-Z_\x{7f}-\x{10ffff}`
	identChars = `a-zA-Z0-9_\x{7f}-\x{10ffff}`
	typeMember = `\\?[` + identStart + `][` + identChars + `]*(?:\\[` + identStart + `][` + identChars + `]*)*`
)

// <type> $<property> [-> <column>][ <description>]
var declarationRegexp = regexp.MustCompile(`^[ \t]*` +
	`(?P<type>\\?[` + identStart + `][\[\]|` + identChars + `]*(?:\\[` + identStart + `][` + identChars + `]*)*(?:\|` + typeMember + `)?)` +
	`[ \t]+(?P<property>[\$` + identStart + `][` + identChars + `]*)` +
	`(?:[ \t]+->[ \t]+(?P<column>[a-zA-Z0-9_-]+))?` +
	`[ \t]*(?P<description>.*)\z`)

var (
	typeGroup        = declarationRegexp.SubexpIndex("type")
	propertyGroup    = declarationRegexp.SubexpIndex("property")
	columnGroup      = declarationRegexp.SubexpIndex("column")
	descriptionGroup = declarationRegexp.SubexpIndex("description")
)

// Declaration the parts of one @property or @property-read value
type Declaration struct {
	Type string
	// Name as written, including the leading $
	Name        string
	Column      string
	Description string
}

// ParseDeclaration parses the value of a @property or @property-read tag
func ParseDeclaration(tag, value string) (Declaration, error) {
	matches := declarationRegexp.FindStringSubmatch(value)
	if matches == nil {
		return Declaration{}, &DeclarationError{Tag: tag, Value: value, Err: ErrMalformedPropertyDeclaration}
	}

	declaration := Declaration{
		Type:        matches[typeGroup],
		Name:        matches[propertyGroup],
		Column:      matches[columnGroup],
		Description: matches[descriptionGroup],
	}

	if !strings.HasPrefix(declaration.Name, "$") {
		return Declaration{}, &DeclarationError{Tag: tag, Value: value, Reason: `missing "$" in property name`, Err: ErrMalformedPropertyDeclaration}
	}
	return declaration, nil
}

// PropertyName the declared name without its sigil
func (d Declaration) PropertyName() string {
	return strings.TrimPrefix(d.Name, "$")
}
