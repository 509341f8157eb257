package reflection

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrDuplicateClass a class is declared twice in a catalog
	ErrDuplicateClass = errors.New("duplicate class")
	// ErrInheritanceCycle a class is its own ancestor
	ErrInheritanceCycle = errors.New("inheritance cycle")
	// ErrInvalidClass a class declaration lacks a name
	ErrInvalidClass = errors.New("invalid class declaration")
)

// ClassSpec declares one class of a catalog
type ClassSpec struct {
	Name    string            `yaml:"name"`
	Parent  string            `yaml:"parent,omitempty"`
	Doc     string            `yaml:"doc,omitempty"`
	Uses    map[string]string `yaml:"uses,omitempty"`
	Methods []MethodSpec      `yaml:"methods,omitempty"`
}

// MethodSpec declares one method of a class, public unless Visibility says otherwise
type MethodSpec struct {
	Name       string `yaml:"name"`
	Doc        string `yaml:"doc,omitempty"`
	Visibility string `yaml:"visibility,omitempty"`
}

type catalogClass struct {
	name    string
	parent  string
	tags    []Tag
	methods []Method
	imports map[string]string
}

// Catalog in-memory class definitions, implements Reflector and Scope
type Catalog struct {
	classes map[string]*catalogClass
	order   []string
}

// LoadCatalog reads a YAML catalog file
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	catalog, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return catalog, nil
}

// ParseCatalog decodes a YAML catalog document:
//
//	classes:
//	  - name: App\Model\Book
//	    parent: YetORM\Entity
//	    doc: |
//	      /** @property-read int $id */
//	    methods:
//	      - name: getAuthor
//	        doc: /** @return Author */
func ParseCatalog(data []byte) (*Catalog, error) {
	var document struct {
		Classes []ClassSpec `yaml:"classes"`
	}

	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	return NewCatalog(document.Classes...)
}

// NewCatalog builds a catalog from class declarations
func NewCatalog(specs ...ClassSpec) (*Catalog, error) {
	catalog := &Catalog{classes: make(map[string]*catalogClass, len(specs))}

	for _, spec := range specs {
		name := normalizeClass(spec.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: missing class name", ErrInvalidClass)
		}
		if _, ok := catalog.classes[name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateClass, name)
		}

		class := &catalogClass{
			name:    name,
			parent:  normalizeClass(spec.Parent),
			tags:    ParseAnnotations(spec.Doc),
			imports: make(map[string]string, len(spec.Uses)),
		}

		for alias, target := range spec.Uses {
			if alias == "" {
				alias = ShortName(normalizeClass(target))
			}
			class.imports[strings.ToLower(alias)] = normalizeClass(target)
		}

		for _, method := range spec.Methods {
			if method.Name == "" {
				return nil, fmt.Errorf("%w: unnamed method in %s", ErrInvalidClass, name)
			}
			if method.Visibility != "" && !strings.EqualFold(method.Visibility, "public") {
				continue
			}
			class.methods = append(class.methods, Method{
				Name:           method.Name,
				DeclaringClass: name,
				DocComment:     method.Doc,
				Annotations:    ParseAnnotations(method.Doc),
			})
		}

		catalog.classes[name] = class
		catalog.order = append(catalog.order, name)
	}

	for _, name := range catalog.order {
		current, steps := name, 0
		for {
			class, ok := catalog.classes[current]
			if !ok || class.parent == "" {
				break
			}
			if current = class.parent; current == name || steps > len(catalog.order) {
				return nil, fmt.Errorf("%w: %s", ErrInheritanceCycle, name)
			}
			steps++
		}
	}

	return catalog, nil
}

func normalizeClass(name string) string {
	return strings.TrimPrefix(strings.TrimSpace(name), `\`)
}

// Classes returns the declared class names in declaration order
func (c *Catalog) Classes() []string {
	return append([]string(nil), c.order...)
}

// Methods implements Reflector; own methods come first, overridden ancestor methods are skipped
func (c *Catalog) Methods(class string) []Method {
	var (
		methods []Method
		seen    = map[string]bool{}
	)

	for current, ok := c.classes[normalizeClass(class)]; ok; current, ok = c.classes[current.parent] {
		for _, method := range current.methods {
			if key := strings.ToLower(method.Name); !seen[key] {
				seen[key] = true
				methods = append(methods, method)
			}
		}
	}
	return methods
}

// HasMethod implements Reflector, method names are case-insensitive
func (c *Catalog) HasMethod(class, name string) bool {
	for _, method := range c.Methods(class) {
		if strings.EqualFold(method.Name, name) {
			return true
		}
	}
	return false
}

// Annotations implements Reflector
func (c *Catalog) Annotations(class string) []Tag {
	if current, ok := c.classes[normalizeClass(class)]; ok {
		return current.tags
	}
	return nil
}

// Parent implements Reflector, parents absent from the catalog are still reported
func (c *Catalog) Parent(class string) (string, bool) {
	if current, ok := c.classes[normalizeClass(class)]; ok && current.parent != "" {
		return current.parent, true
	}
	return "", false
}

// Namespace implements Scope
func (c *Catalog) Namespace(class string) string {
	return Namespace(normalizeClass(class))
}

// Imports implements Scope
func (c *Catalog) Imports(class string) map[string]string {
	if current, ok := c.classes[normalizeClass(class)]; ok {
		return current.imports
	}
	return nil
}
