package schema

// DataType a native type kind or a fully-qualified class name
type DataType string

const (
	Int    DataType = "int"
	Float  DataType = "float"
	String DataType = "string"
	Bool   DataType = "bool"
	Array  DataType = "array"
)

// IsNative reports whether the type is one of the native kinds
func (t DataType) IsNative() bool {
	switch t {
	case Int, Float, String, Bool, Array:
		return true
	}
	return false
}

// Property resolved entity property, either a *MethodProperty or an *AnnotationProperty
type Property interface {
	Name() string
	// Type is empty when an accessor declares no @return
	Type() DataType
	Nullable() bool
	Readonly() bool
	// Description is empty when absent
	Description() string
	// Entity the class providing the resolution context of the property
	Entity() string
}

type property struct {
	entity      string
	name        string
	dataType    DataType
	nullable    bool
	readonly    bool
	description string
}

func (p *property) Name() string        { return p.name }
func (p *property) Type() DataType      { return p.dataType }
func (p *property) Nullable() bool      { return p.nullable }
func (p *property) Readonly() bool      { return p.readonly }
func (p *property) Description() string { return p.description }
func (p *property) Entity() string      { return p.entity }

// MethodProperty property backed by a get<Name> accessor
type MethodProperty struct {
	property
	method string
}

// NewMethodProperty creates a method backed property
func NewMethodProperty(entity, method, name string, readonly bool, dataType DataType, nullable bool, description string) *MethodProperty {
	return &MethodProperty{
		property: property{
			entity:      entity,
			name:        name,
			dataType:    dataType,
			nullable:    nullable,
			readonly:    readonly,
			description: description,
		},
		method: method,
	}
}

// Method the accessor method name
func (p *MethodProperty) Method() string {
	return p.method
}

// AnnotationProperty property declared by @property or @property-read
type AnnotationProperty struct {
	property
	column string
}

// NewAnnotationProperty creates an annotation backed property, column defaults to name
func NewAnnotationProperty(entity, name string, readonly bool, dataType DataType, column string, nullable bool, description string) *AnnotationProperty {
	if column == "" {
		column = name
	}

	return &AnnotationProperty{
		property: property{
			entity:      entity,
			name:        name,
			dataType:    dataType,
			nullable:    nullable,
			readonly:    readonly,
			description: description,
		},
		column: column,
	}
}

// Column the storage column backing the property
func (p *AnnotationProperty) Column() string {
	return p.column
}

// ColumnOf returns the column of an annotation backed property
func ColumnOf(p Property) (string, bool) {
	if ap, ok := p.(*AnnotationProperty); ok {
		return ap.Column(), true
	}
	return "", false
}
