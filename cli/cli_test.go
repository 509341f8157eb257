package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yetorm/virtprops"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--color=false"))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand()

	assert.Equal(t, "virtprops", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, expected := range []string{"version", "describe", "check"} {
		assert.True(t, names[expected], "expected command %s to be registered", expected)
	}

	for _, flag := range []string{"config", "catalog", "base-entity", "strict-unions", "singular-table", "table-prefix", "color", "log-level", "log-driver"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "expected --%s flag to be registered", flag)
	}
}

func TestDescribe(t *testing.T) {
	out, _, err := execute(t, "describe", "--catalog", "testdata/catalog.yaml", `\App\Model\Book`, `App\Model\Author`)
	require.NoError(t, err)

	assert.Contains(t, out, `App\Model\Book (table books)`)
	assert.Contains(t, out, `App\Model\Author (table authors)`)
	assert.Contains(t, out, "book_title")
	assert.Contains(t, out, "nullable")
	assert.Contains(t, out, "readonly")
	assert.Contains(t, out, `App\Model\Book::getAuthor()`)
	assert.Contains(t, out, "Author of the book.")
	assert.NotContains(t, out, "getRow")
}

func TestDescribeErrors(t *testing.T) {
	_, _, err := execute(t, "describe", "--catalog", "testdata/catalog.yaml", `YetORM\Entity`)
	assert.ErrorIs(t, err, virtprops.ErrNotEntity)

	_, _, err = execute(t, "describe", "--catalog", "testdata/missing.yaml", `App\Model\Book`)
	assert.Error(t, err)

	_, _, err = execute(t, "describe", "--catalog", "testdata/catalog.yaml")
	assert.Error(t, err, "at least one class is required")

	_, _, err = execute(t, "describe", "--catalog", "testdata/catalog.yaml", "--log-driver", "syslog", `App\Model\Book`)
	assert.ErrorContains(t, err, "unknown log driver")
}

func TestCheck(t *testing.T) {
	out, _, err := execute(t, "check", "--catalog", "testdata/catalog.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, `ok   App\Model\Author (1 properties)`)
	assert.Contains(t, out, `ok   App\Model\Book (4 properties)`)
	assert.NotContains(t, out, `YetORM\Entity`)

	out, stderr, err := execute(t, "check", "--catalog", "testdata/broken.yaml", "--log-level", "error")
	assert.ErrorIs(t, err, ErrCheckFailed)
	assert.ErrorContains(t, err, "1 of 2 entity classes")
	assert.Contains(t, out, `FAIL App\Model\Invoice`)
	assert.Contains(t, out, "only one NULL is allowed")
	assert.Contains(t, stderr, `App\Model\Invoice`)
}

func TestCheckStrictUnionsFromEnv(t *testing.T) {
	t.Setenv("VIRTPROPS_STRICT_UNIONS", "true")
	t.Setenv("VIRTPROPS_LOG_LEVEL", "silent")

	out, stderr, err := execute(t, "check", "--catalog", "testdata/catalog.yaml")
	assert.ErrorIs(t, err, ErrCheckFailed)
	assert.Contains(t, out, "multiple non-NULL types detected")
	assert.Empty(t, stderr)
}

func TestVersion(t *testing.T) {
	Version = "1.0.0-test"
	defer func() { Version = "dev" }()

	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "1.0.0-test")
	assert.Contains(t, out, "Go version")
}

func TestUnknownCommand(t *testing.T) {
	_, _, err := execute(t, "generate")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrCheckFailed))
}

func findCommand(root *cobra.Command, name string) *cobra.Command {
	for _, cmd := range root.Commands() {
		if cmd.Name() == name {
			return cmd
		}
	}
	return nil
}

func TestDescribeUsesConfigFile(t *testing.T) {
	root := NewRootCommand()
	describe := findCommand(root, "describe")
	require.NotNil(t, describe)

	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs([]string{"describe", "--config", "testdata/virtprops.yaml", `App\Model\Book`})
	require.NoError(t, root.Execute())

	assert.Contains(t, stdout.String(), `App\Model\Book (table app_book)`)
	assert.Contains(t, stderr.String(), "resolved")
}
