package schema

import (
	"strings"
	"sync"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/jinzhu/inflection"

	"github.com/yetorm/virtprops/reflection"
)

// Namer namer interface
type Namer interface {
	TableName(class string) string
}

// NamingStrategy table naming strategy
type NamingStrategy struct {
	TablePrefix   string
	SingularTable bool
}

// TableName convert class name to table name
func (ns NamingStrategy) TableName(class string) string {
	if ns.SingularTable {
		return ns.TablePrefix + toDBName(reflection.ShortName(class))
	}
	return ns.TablePrefix + inflection.Plural(toDBName(reflection.ShortName(class)))
}

// Qualifier resolves a short or relative class name to a fully-qualified one
type Qualifier interface {
	Qualify(name, context string) string
}

// QualifierFunc adapts a function to Qualifier
type QualifierFunc func(name, context string) string

// Qualify implements Qualifier
func (f QualifierFunc) Qualify(name, context string) string {
	return f(name, context)
}

// className `\`-separated class name
type className struct {
	Absolute bool     `parser:"@Separator?"`
	Segments []string `parser:"@Ident ( Separator @Ident )*"`
}

var classNameParser = participle.MustBuild[className](
	participle.Lexer(lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Separator", Pattern: `\\`},
		{Name: "Ident", Pattern: `[a-zA-Z_\x{7f}-\x{10ffff}][\[\]a-zA-Z0-9_\x{7f}-\x{10ffff}]*`},
	})),
)

// NamespaceQualifier expands class names against the namespace and imports of the context class
type NamespaceQualifier struct {
	Scope reflection.Scope
}

// Qualify implements Qualifier.
//
// Absolute names lose their leading separator, self and static name the context
// class, an imported alias replaces the first segment, anything else is relative
// to the context namespace. Names outside the class-name grammar cannot be
// qualified; they are returned without their leading separator and never get the
// namespace prefix.
func (q NamespaceQualifier) Qualify(name, context string) string {
	switch strings.ToLower(name) {
	case "":
		return name
	case "self", "static":
		return strings.TrimPrefix(context, `\`)
	}

	parsed, err := classNameParser.ParseString("", name)
	if err != nil {
		return strings.TrimPrefix(name, `\`)
	}
	if parsed.Absolute {
		return strings.Join(parsed.Segments, `\`)
	}

	if q.Scope == nil {
		return name
	}

	if target, ok := q.Scope.Imports(context)[strings.ToLower(parsed.Segments[0])]; ok {
		return strings.Join(append([]string{target}, parsed.Segments[1:]...), `\`)
	}

	if namespace := q.Scope.Namespace(context); namespace != "" {
		return namespace + `\` + name
	}
	return name
}

var smap sync.Map

func toDBName(name string) string {
	if name == "" {
		return ""
	} else if v, ok := smap.Load(name); ok {
		return v.(string)
	}

	var (
		value                          = name
		buf                            strings.Builder
		lastCase, nextCase, nextNumber bool // upper case == true
		curCase                        = value[0] <= 'Z' && value[0] >= 'A'
	)

	for i, v := range value[:len(value)-1] {
		nextCase = value[i+1] <= 'Z' && value[i+1] >= 'A'
		nextNumber = value[i+1] >= '0' && value[i+1] <= '9'

		if curCase {
			if lastCase && (nextCase || nextNumber) {
				buf.WriteRune(v + 32)
			} else {
				if i > 0 && value[i-1] != '_' && value[i+1] != '_' {
					buf.WriteByte('_')
				}
				buf.WriteRune(v + 32)
			}
		} else {
			buf.WriteRune(v)
		}

		lastCase = curCase
		curCase = nextCase
	}

	if curCase {
		if !lastCase && len(value) > 1 {
			buf.WriteByte('_')
		}
		buf.WriteByte(value[len(value)-1] + 32)
	} else {
		buf.WriteByte(value[len(value)-1])
	}

	smap.Store(name, buf.String())
	return buf.String()
}
