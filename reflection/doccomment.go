package reflection

import (
	"regexp"
	"strings"
)

var annotationLine = regexp.MustCompile(`^[ \t]*\*?[ \t]*@([_a-zA-Z\x{7f}-\x{10ffff}][_a-zA-Z0-9\x{7f}-\x{10ffff}\-\\]*)(?:[ \t]+(.*))?$`)

// ParseAnnotations reads the annotation tags of a doc comment.
//
// Every line starting with @name declares one value of tag name; the rest of the
// line, trimmed, is the value. Tags are grouped by name in order of first appearance
// and keep their values in declaration order.
func ParseAnnotations(doc string) []Tag {
	doc = strings.TrimSpace(doc)
	doc = strings.TrimPrefix(doc, "/**")
	doc = strings.TrimSuffix(doc, "*/")

	var (
		tags  []Tag
		index = map[string]int{}
	)

	for _, line := range strings.Split(doc, "\n") {
		matches := annotationLine.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if matches == nil {
			continue
		}

		name, value := matches[1], strings.TrimSpace(matches[2])
		if idx, ok := index[name]; ok {
			tags[idx].Values = append(tags[idx].Values, value)
		} else {
			index[name] = len(tags)
			tags = append(tags, Tag{Name: name, Values: []string{value}})
		}
	}

	return tags
}
