package schema

import (
	"strings"
	"sync"

	"github.com/yetorm/virtprops/reflection"
)

// DefaultBaseEntity the class every entity derives from
const DefaultBaseEntity = `YetORM\Entity`

// Schema the merged properties of one entity class
type Schema struct {
	Name             string
	Table            string
	Properties       []Property
	PropertiesByName map[string]Property
}

func (schema Schema) String() string {
	return schema.Name
}

// LookUpProperty returns the property with the given name or nil
func (schema Schema) LookUpProperty(name string) Property {
	if property, ok := schema.PropertiesByName[name]; ok {
		return property
	}
	return nil
}

// Property returns the property with the given name or def
func (schema Schema) Property(name string, def Property) Property {
	if property, ok := schema.PropertiesByName[name]; ok {
		return property
	}
	return def
}

// HasProperty reports whether the schema has the property
func (schema Schema) HasProperty(name string) bool {
	_, ok := schema.PropertiesByName[name]
	return ok
}

// Parser resolves entity schemas from class reflection
type Parser struct {
	Reflector reflection.Reflector
	// Qualifier defaults to a NamespaceQualifier when Reflector implements reflection.Scope
	Qualifier   Qualifier
	Namer       Namer
	BaseEntity  string
	UnionPolicy UnionPolicy
	// Annotations shared per-class annotation cache, the parser keeps its own when nil
	Annotations AnnotationCache

	annotations SyncStore[*ClassProperties]
}

// Parse returns the schema of class, cached in cacheStore.
//
// Accessor methods take precedence over annotations. Among annotations the class
// tree is visited from the root down and the first declaration of a name wins, so a
// parent's declaration shadows the same name redeclared by a subclass.
func (p *Parser) Parse(class string, cacheStore *sync.Map) (*Schema, error) {
	class = strings.TrimPrefix(class, `\`)

	if v, ok := cacheStore.Load(class); ok {
		return v.(*Schema), nil
	}

	tree, err := ClassTree(p.Reflector, class, p.baseEntity())
	if err != nil {
		return nil, err
	}

	props := newPropertySet()
	p.methodProperties(class, props)

	for _, current := range tree {
		current := current
		own, err := p.annotationCache().GetOrCompute(current, func() (*ClassProperties, error) {
			return p.annotationProperties(current)
		})
		if err != nil {
			return nil, err
		}

		for _, property := range own.Properties {
			props.add(property.Name(), property)
		}
	}

	namer := p.Namer
	if namer == nil {
		namer = NamingStrategy{}
	}

	schema := &Schema{
		Name:             class,
		Table:            namer.TableName(class),
		Properties:       props.list(),
		PropertiesByName: props.byName,
	}

	v, _ := cacheStore.LoadOrStore(class, schema)
	return v.(*Schema), nil
}

func (p *Parser) baseEntity() string {
	if p.BaseEntity == "" {
		return DefaultBaseEntity
	}
	return p.BaseEntity
}

func (p *Parser) annotationCache() AnnotationCache {
	if p.Annotations != nil {
		return p.Annotations
	}
	return &p.annotations
}

func (p *Parser) normalizer() TypeNormalizer {
	qualifier := p.Qualifier
	if qualifier == nil {
		if scope, ok := p.Reflector.(reflection.Scope); ok {
			qualifier = NamespaceQualifier{Scope: scope}
		}
	}
	return TypeNormalizer{Qualifier: qualifier, UnionPolicy: p.UnionPolicy}
}

// propertySet keeps properties unique by name, in order of first insertion
type propertySet struct {
	order  []string
	byName map[string]Property
}

func newPropertySet() *propertySet {
	return &propertySet{byName: map[string]Property{}}
}

// set inserts or replaces
func (s *propertySet) set(name string, property Property) {
	if _, ok := s.byName[name]; !ok {
		s.order = append(s.order, name)
	}
	s.byName[name] = property
}

// add inserts only when name is absent
func (s *propertySet) add(name string, property Property) bool {
	if _, ok := s.byName[name]; ok {
		return false
	}
	s.order = append(s.order, name)
	s.byName[name] = property
	return true
}

func (s *propertySet) list() []Property {
	properties := make([]Property, 0, len(s.order))
	for _, name := range s.order {
		properties = append(properties, s.byName[name])
	}
	return properties
}
