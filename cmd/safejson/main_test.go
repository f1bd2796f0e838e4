package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mcncl/safejson"
	"github.com/mcncl/safejson/internal/config"
	"github.com/mcncl/safejson/internal/errors"
)

const sampleDoc = `{
  "user": {"name": "Ada", "age": "36", "tags": ["math", "engines"]},
  "items": [{"id": 1, "price": 9.5}, {"id": 2, "price": "12"}],
  "matrix": [[1, 2], [3, 4]]
}`

// resetCLI restores the global CLI state when the test finishes
func resetCLI(t *testing.T) {
	t.Helper()
	originalCLI := CLI
	t.Cleanup(func() { CLI = originalCLI })
	CLI.Type = "string"
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testContext() *Context {
	return &Context{
		Debug:  false,
		Config: config.NewConfig(),
		Logger: zap.NewNop(),
	}
}

// runToString runs the CLI against input and returns what was written
func runToString(t *testing.T, ctx *Context, input string) string {
	t.Helper()
	CLI.Input = writeInput(t, input)
	CLI.Output = filepath.Join(t.TempDir(), "out.txt")

	require.NoError(t, run(ctx))

	content, err := os.ReadFile(CLI.Output)
	require.NoError(t, err)
	return string(content)
}

func TestRun_Navigation(t *testing.T) {
	tests := []struct {
		name     string
		steps    []string
		expected string
	}{
		{"root", nil, `{"user":{"name":"Ada","age":"36","tags":["math","engines"]},"items":[{"id":1,"price":9.5},{"id":2,"price":"12"}],"matrix":[[1,2],[3,4]]}`},
		{"nested object", []string{"user"}, `{"name":"Ada","age":"36","tags":["math","engines"]}`},
		{"object then array", []string{"user", "tags"}, `["math","engines"]`},
		{"array then object", []string{"items", "1"}, `{"id":2,"price":"12"}`},
		{"array then array", []string{"matrix", "0"}, `[1,2]`},
		{"missing key", []string{"nope"}, `[]`},
		{"index out of range", []string{"items", "7"}, `{}`},
		{"numeric key in object", []string{"0"}, `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetCLI(t)
			CLI.Steps = tt.steps

			out := runToString(t, testContext(), sampleDoc)
			assert.Equal(t, tt.expected+"\n", out)
		})
	}
}

func TestRun_Field(t *testing.T) {
	def := "-1"
	tests := []struct {
		name     string
		steps    []string
		field    string
		typ      string
		def      *string
		expected string
	}{
		{"string", []string{"user"}, "name", "string", nil, `"Ada"`},
		{"numeric string as int", []string{"user"}, "age", "int", nil, `36`},
		{"float to int truncates", []string{"items", "0"}, "price", "int", nil, `9`},
		{"string to float", []string{"items", "1"}, "price", "float", nil, `12`},
		{"missing with default", []string{"user"}, "height", "int", &def, `-1`},
		{"mismatch with default", []string{"user"}, "name", "int64", &def, `-1`},
		{"index in array", []string{"user", "tags"}, "1", "string", nil, `"engines"`},
		{"first in array", []string{"user", "tags"}, "first", "string", nil, `"math"`},
		{"last in array", []string{"matrix"}, "last", "array", nil, `[3,4]`},
		{"object by index", []string{"items"}, "0", "object", nil, `{"id":1,"price":9.5}`},
		{"missing object is empty", []string{"user"}, "address", "object", nil, `{}`},
		{"bool from missing", nil, "enabled", "bool", nil, `false`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetCLI(t)
			CLI.Steps = tt.steps
			CLI.Field = tt.field
			CLI.Type = tt.typ
			CLI.Default = tt.def

			out := runToString(t, testContext(), sampleDoc)
			assert.Equal(t, tt.expected+"\n", out)
		})
	}
}

func TestRun_ConfigDefaults(t *testing.T) {
	resetCLI(t)
	CLI.Steps = []string{"user"}
	CLI.Field = "nickname"

	ctx := testContext()
	ctx.Config.Defaults.String = "n/a"

	out := runToString(t, ctx, sampleDoc)
	assert.Equal(t, "\"n/a\"\n", out)
}

func TestRun_YAMLOutput(t *testing.T) {
	resetCLI(t)
	CLI.Steps = []string{"user"}

	ctx := testContext()
	ctx.Config.Output.Format = config.FormatYAML
	ctx.Config.Output.KeyCase = config.KeyCaseCamel

	out := runToString(t, ctx, sampleDoc)
	expected := `Name: Ada
Age: "36"
Tags:
  - math
  - engines
`
	assert.Equal(t, expected, out)
}

func TestRun_IndentedJSON(t *testing.T) {
	resetCLI(t)
	CLI.Steps = []string{"items", "0"}

	ctx := testContext()
	ctx.Config.Output.Indent = true

	out := runToString(t, ctx, sampleDoc)
	assert.Equal(t, "{\n  \"id\": 1,\n  \"price\": 9.5\n}\n", out)
}

func TestRun_MalformedInputYieldsEmptyDocument(t *testing.T) {
	resetCLI(t)
	CLI.Steps = []string{"a"}

	out := runToString(t, testContext(), `{"a": [1, 2`)
	assert.Equal(t, "[]\n", out)
}

func TestRun_KeyStepOnArray(t *testing.T) {
	resetCLI(t)
	CLI.Input = writeInput(t, sampleDoc)
	CLI.Output = filepath.Join(t.TempDir(), "out.txt")
	CLI.Steps = []string{"items", "id"}

	err := run(testContext())
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrWrongStep)
	assert.Contains(t, errors.UserFriendlyError(err), "Navigation error")
	assert.NoFileExists(t, CLI.Output)
}

func TestRun_NilLogger(t *testing.T) {
	resetCLI(t)

	ctx := testContext()
	ctx.Logger = nil

	out := runToString(t, ctx, `[1, 2]`)
	assert.Equal(t, "[1,2]\n", out)
}

func TestReadField_Errors(t *testing.T) {
	objNav := safejson.NewNavigator(`{"a": 1}`)
	arrNav := safejson.NewNavigator(`[1]`)
	defaults := config.NewConfig().Defaults

	_, err := readField(objNav, "a", "uuid", nil, defaults)
	assert.ErrorIs(t, err, errors.ErrUnknownType)

	bad := "ten"
	_, err = readField(objNav, "a", "int", &bad, defaults)
	assert.ErrorIs(t, err, errors.ErrInvalidDefault)

	big := "3000000000"
	_, err = readField(objNav, "a", "int", &big, defaults)
	assert.ErrorIs(t, err, errors.ErrInvalidDefault)

	notObject := "[1]"
	_, err = readField(objNav, "a", "object", &notObject, defaults)
	assert.ErrorIs(t, err, errors.ErrInvalidDefault)

	_, err = readField(arrNav, "a", "int", nil, defaults)
	assert.ErrorIs(t, err, errors.ErrWrongStep)
}

func TestReadField_ContainerDefaults(t *testing.T) {
	nav := safejson.NewNavigator(`{"a": 1}`)
	defaults := config.NewConfig().Defaults

	objDef := `{"fallback": true}`
	v, err := readField(nav, "a", "object", &objDef, defaults)
	require.NoError(t, err)
	assert.Equal(t, `{"fallback":true}`, v.String())

	arrDef := `[0]`
	v, err = readField(nav, "missing", "array", &arrDef, defaults)
	require.NoError(t, err)
	assert.Equal(t, `[0]`, v.String())
}

func TestReadField_EmptyArrayLocators(t *testing.T) {
	nav := safejson.NewNavigator(`[]`)
	defaults := config.NewConfig().Defaults

	v, err := readField(nav, "first", "object", nil, defaults)
	require.NoError(t, err)
	assert.Equal(t, `{}`, v.String())

	def := "7"
	v, err = readField(nav, "last", "int", &def, defaults)
	require.NoError(t, err)
	assert.Equal(t, `7`, v.String())
}

func TestReadInput_FromStdin(t *testing.T) {
	resetCLI(t)
	originalStdin := os.Stdin
	defer func() { os.Stdin = originalStdin }()

	CLI.Input = ""

	r, w, err := os.Pipe()
	require.NoError(t, err)

	go func() {
		defer func() { _ = w.Close() }()
		_, _ = w.WriteString(`[{"item": "apple"}]`)
	}()

	os.Stdin = r
	defer func() { _ = r.Close() }()

	data, err := readInput()
	require.NoError(t, err)
	assert.Equal(t, `[{"item": "apple"}]`, string(data))
}

func TestReadInput_EmptyFile(t *testing.T) {
	resetCLI(t)
	CLI.Input = writeInput(t, "  \n")

	_, err := readInput()
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrEmptyInput)
	assert.Contains(t, err.Error(), "empty")
}

func TestReadInput_NonExistentFile(t *testing.T) {
	resetCLI(t)
	CLI.Input = "/non/existent/file.json"

	_, err := readInput()
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrFileNotFound)
}

func TestReadInput_Directory(t *testing.T) {
	resetCLI(t)
	CLI.Input = t.TempDir()

	_, err := readInput()
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidFilePath)
	assert.Contains(t, errors.UserFriendlyError(err), "is a directory")
}

func TestRun_DebugContext(t *testing.T) {
	resetCLI(t)
	CLI.Steps = []string{"user"}
	CLI.Field = "name"

	core, logs := observer.New(zap.DebugLevel)
	ctx := testContext()
	ctx.Debug = true
	ctx.Logger = zap.New(core)

	out := runToString(t, ctx, sampleDoc)
	assert.Equal(t, "\"Ada\"\n", out)

	entries := logs.FilterMessage("effective config").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "json", entries[0].ContextMap()["format"])
	assert.Equal(t, 1, logs.FilterMessage("step").Len())
}

func TestRun_MalformedInputWarns(t *testing.T) {
	resetCLI(t)

	core, logs := observer.New(zap.InfoLevel)
	ctx := testContext()
	ctx.Logger = zap.New(core)

	out := runToString(t, ctx, `{"a": `)
	assert.Equal(t, "{}\n", out)
	assert.Equal(t, 1, logs.FilterLevelExact(zap.WarnLevel).Len())
}

func TestReadInteractiveInput(t *testing.T) {
	var prompt strings.Builder
	data, err := readInteractiveInput(strings.NewReader("{\"a\":\n  [1, 2]}"), &prompt)
	require.NoError(t, err)

	assert.Equal(t, "{\"a\":\n  [1, 2]}", string(data))
	assert.Contains(t, prompt.String(), "Ctrl+D")
}

func TestWriteOutput_ToFile(t *testing.T) {
	resetCLI(t)
	CLI.Output = filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, writeOutput(`{"a":1}`))

	content, err := os.ReadFile(CLI.Output)
	require.NoError(t, err)
	assert.Equal(t, "{\"a\":1}\n", string(content))
}

func TestWriteOutput_ToStdout(t *testing.T) {
	resetCLI(t)
	CLI.Output = ""

	assert.NoError(t, writeOutput(`"value"`))
}

func TestWriteOutput_FileError(t *testing.T) {
	resetCLI(t)
	CLI.Output = "/non/existent/dir/output.json"

	err := writeOutput("x")
	require.Error(t, err)
	assert.Contains(t, errors.UserFriendlyError(err), "Output error")
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger(false)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.InfoLevel))
	assert.False(t, logger.Core().Enabled(zap.DebugLevel))

	logger, err = newLogger(true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))
}
