package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedYAML = `
books:
  - isbn: "978-1"
    title: LOTR
    author: Tolkien
    category: Fantasy
  - isbn: "978-2"
    title: HP
    author: Rowling
    category: Fantasy
patrons:
  - id: U001
    name: Rogelio
loans:
  - isbn: "978-2"
    patron: U001
`

func executeLibrary(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)

	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return stdout.String(), stderr.String(), err
}

func givenSeedFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "library.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600), "error in arranging test data")

	return path
}

func Test_Demo_RunsTheWholeScenario(t *testing.T) {
	// act
	stdout, stderr, err := executeLibrary(t, "demo")

	// assert
	require.NoError(t, err)
	assert.Contains(t, stdout, "lend 978-84-01-01303-3 to U001: ok")
	assert.Contains(t, stdout, "Books lent to Rogelio Alvarado:\n  The Lord of the Rings by J.R.R. Tolkien")
	assert.Contains(t, stdout, "Search by author 'J.K. Rowling':\n  Harry Potter and the Philosopher's Stone")
	assert.Contains(t, stdout, "deregister U002: ok")
	assert.NotContains(t, stdout, "Lending history")
	assert.Empty(t, stderr)
}

func Test_Demo_WithHistory(t *testing.T) {
	// act
	stdout, _, err := executeLibrary(t, "demo", "--history")

	// assert
	require.NoError(t, err)
	assert.Contains(t, stdout, "Lending history (1 open, 1 finished):")
	assert.Contains(t, stdout, "978-84-01-01304-0 -> U002")
}

func Test_Demo_WithDebugJSONLogs(t *testing.T) {
	// act
	_, stderr, err := executeLibrary(t, "demo", "--debug", "--json-logs")

	// assert
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"catalog operation completed"`)
	assert.Contains(t, stderr, `"operation":"borrow"`)
}

func Test_Demo_WithTelemetry(t *testing.T) {
	// act
	_, stderr, err := executeLibrary(t, "demo", "--telemetry")

	// assert
	require.NoError(t, err)
	assert.Contains(t, stderr, "catalog.borrow")
	assert.Contains(t, stderr, "catalog_operation_calls_total")
}

func Test_Inspect(t *testing.T) {
	// setup
	seedPath := givenSeedFile(t, seedYAML)

	// act
	stdout, _, err := executeLibrary(t, "inspect",
		"--seed", seedPath,
		"--search-field", "Author",
		"--search-value", "tolk",
		"--patron", "U001",
	)

	// assert
	require.NoError(t, err)
	assert.Contains(t, stdout, "Books:\n  LOTR by Tolkien [Fantasy] (ISBN 978-1, available)\n  HP by Rowling [Fantasy] (ISBN 978-2, on loan)")
	assert.Contains(t, stdout, "Patrons:\n  Rogelio (ID U001, 1 books held)")
	assert.Contains(t, stdout, "Search by author 'tolk':\n  LOTR by Tolkien")
	assert.Contains(t, stdout, "Books lent to U001:\n  HP by Rowling")
}

func Test_Inspect_UnknownPatron(t *testing.T) {
	// setup
	seedPath := givenSeedFile(t, seedYAML)

	// act
	stdout, _, err := executeLibrary(t, "inspect", "--seed", seedPath, "--patron", "U404")

	// assert
	require.NoError(t, err)
	assert.Contains(t, stdout, "Patron U404 is not registered.")
}

func Test_Inspect_UnknownSearchField_FindsNothing(t *testing.T) {
	// setup
	seedPath := givenSeedFile(t, seedYAML)

	// act
	stdout, _, err := executeLibrary(t, "inspect", "--seed", seedPath, "--search-field", "isbn", "--search-value", "978-1")

	// assert
	require.NoError(t, err)
	assert.Contains(t, stdout, "Search by isbn '978-1':\n  (none)")
}

func Test_Inspect_Fails(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{name: "missing seed flag", args: []string{"inspect"}},
		{name: "missing seed file", args: []string{"inspect", "--seed", filepath.Join(t.TempDir(), "nope.yaml")}},
		{name: "search field without value", args: []string{"inspect", "--seed", givenSeedFile(t, seedYAML), "--search-field", "title"}},
		{name: "rejected seed entry", args: []string{"inspect", "--seed", givenSeedFile(t, seedYAML+"  - isbn: \"978-2\"\n    patron: U001\n")}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			_, stderr, err := executeLibrary(t, tc.args...)

			// assert
			assert.Error(t, err)
			assert.Contains(t, stderr, "Error:")
		})
	}
}
