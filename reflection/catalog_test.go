package reflection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog(t *testing.T) {
	catalog, err := LoadCatalog("testdata/library.yaml")
	require.NoError(t, err)

	assert.Equal(t, []string{`YetORM\Entity`, `App\Model\Book`, `App\Model\Author`}, catalog.Classes())

	parent, ok := catalog.Parent(`App\Model\Author`)
	assert.True(t, ok)
	assert.Equal(t, `YetORM\Entity`, parent)

	_, ok = catalog.Parent(`YetORM\Entity`)
	assert.False(t, ok)

	assert.Equal(t, `App\Model`, catalog.Namespace(`\App\Model\Book`))
	assert.Equal(t, map[string]string{
		"author":     `App\Model\Author`,
		"collection": `YetORM\EntityCollection`,
	}, catalog.Imports(`App\Model\Book`))
}

func TestLoadCatalogMissingFile(t *testing.T) {
	_, err := LoadCatalog("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestCatalogMethods(t *testing.T) {
	catalog, err := LoadCatalog("testdata/library.yaml")
	require.NoError(t, err)

	var names, declaring []string
	for _, method := range catalog.Methods(`App\Model\Book`) {
		names = append(names, method.Name)
		declaring = append(declaring, method.DeclaringClass)
	}

	assert.Equal(t, []string{"getAuthor", "setAuthor", "getTags", "getRow", "toArray"}, names)
	assert.Equal(t, []string{`App\Model\Book`, `App\Model\Book`, `App\Model\Book`, `YetORM\Entity`, `YetORM\Entity`}, declaring)

	assert.True(t, catalog.HasMethod(`App\Model\Book`, "SETAUTHOR"))
	assert.True(t, catalog.HasMethod(`App\Model\Book`, "toArray"))
	assert.False(t, catalog.HasMethod(`App\Model\Book`, "loadCache"), "private methods are not part of the public surface")
	assert.False(t, catalog.HasMethod(`App\Model\Author`, "setAuthor"))
	assert.Nil(t, catalog.Methods(`App\Model\Unknown`))
}

func TestCatalogOverriddenMethods(t *testing.T) {
	catalog, err := NewCatalog(
		ClassSpec{Name: "Base", Methods: []MethodSpec{{Name: "getName", Doc: "/** @return int */"}}},
		ClassSpec{Name: "Child", Parent: "Base", Methods: []MethodSpec{{Name: "GetName", Doc: "/** @return string */"}}},
	)
	require.NoError(t, err)

	methods := catalog.Methods("Child")
	require.Len(t, methods, 1)
	assert.Equal(t, "Child", methods[0].DeclaringClass)
	assert.Equal(t, "string", methods[0].ReturnType())
}

func TestCatalogAnnotations(t *testing.T) {
	catalog, err := LoadCatalog("testdata/library.yaml")
	require.NoError(t, err)

	tags := catalog.Annotations(`App\Model\Book`)
	require.Len(t, tags, 2)
	assert.Equal(t, Tag{Name: "property-read", Values: []string{"int $id"}}, tags[0])
	assert.Equal(t, Tag{Name: "property", Values: []string{"string $book_title", "string $written", "bool $available"}}, tags[1])

	method := catalog.Methods(`App\Model\Book`)[0]
	assert.Equal(t, "Author", method.ReturnType())
	assert.False(t, method.IsInternal())
}

func TestNewCatalogErrors(t *testing.T) {
	tests := []struct {
		name  string
		specs []ClassSpec
		err   error
	}{
		{"missing name", []ClassSpec{{Parent: "A"}}, ErrInvalidClass},
		{"unnamed method", []ClassSpec{{Name: "A", Methods: []MethodSpec{{Doc: "/** */"}}}}, ErrInvalidClass},
		{"duplicate", []ClassSpec{{Name: "A"}, {Name: `\A`}}, ErrDuplicateClass},
		{"self parent", []ClassSpec{{Name: "A", Parent: "A"}}, ErrInheritanceCycle},
		{"cycle", []ClassSpec{{Name: "A", Parent: "B"}, {Name: "B", Parent: "C"}, {Name: "C", Parent: "A"}}, ErrInheritanceCycle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.specs...)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestParseCatalogInvalidYAML(t *testing.T) {
	_, err := ParseCatalog([]byte("classes: [name: {"))
	assert.Error(t, err)
}
