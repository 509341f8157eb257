package schema

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yetorm/virtprops/reflection"
)

var (
	commentLeader = regexp.MustCompile(`(?m)^\s*\* ?`)
	commentTag    = regexp.MustCompile(`(?m)^\s*@.*`)
)

// AccessorSuffix returns <Suffix> for a public get<Suffix> method that is neither
// declared by the base entity nor marked @internal
func AccessorSuffix(method reflection.Method, base string) (string, bool) {
	if strings.TrimPrefix(method.DeclaringClass, `\`) == strings.TrimPrefix(base, `\`) ||
		len(method.Name) <= 3 || !strings.HasPrefix(method.Name, "get") || method.IsInternal() {
		return "", false
	}
	return method.Name[3:], true
}

// DocDescription extracts the free text of a doc comment, annotation lines removed
func DocDescription(comment string) string {
	text := strings.Trim(comment, "/* \r\n\t")
	text = commentLeader.ReplaceAllString(text, "")
	text = commentTag.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

func (p *Parser) methodProperties(class string, props *propertySet) {
	for _, method := range p.Reflector.Methods(class) {
		suffix, ok := AccessorSuffix(method, p.baseEntity())
		if !ok {
			continue
		}

		var (
			name     = lowerFirst(suffix)
			readonly = !p.Reflector.HasMethod(class, "set"+upperFirst(name))
			context  = method.DeclaringClass
		)

		if context == "" {
			context = class
		}

		dataType, nullable := p.normalizer().NormalizeReturn(method.ReturnType(), context)
		props.set(name, NewMethodProperty(
			context,
			method.Name,
			name,
			readonly,
			dataType,
			nullable,
			DocDescription(method.DocComment),
		))
	}
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
