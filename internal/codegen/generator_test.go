package codegen_test

import (
	"bytes"
	"go/format"
	"go/parser"
	"go/token"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podhmo/exprcalc/internal/codegen"
	"github.com/podhmo/exprcalc/internal/interpreter"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// normalizeForContains removes line comments and compacts whitespace so
// snippets can be compared regardless of formatting.
func normalizeForContains(snippet string) string {
	var noCommentsLines []string
	for _, line := range strings.Split(snippet, "\n") {
		if idx := strings.Index(line, "//"); idx != -1 {
			noCommentsLines = append(noCommentsLines, line[:idx])
		} else {
			noCommentsLines = append(noCommentsLines, line)
		}
	}
	processed := strings.Join(noCommentsLines, " ")
	processed = whitespaceRegex.ReplaceAllString(processed, " ")
	return strings.TrimSpace(processed)
}

func normalizeCode(t *testing.T, code string) string {
	t.Helper()
	formatted, err := format.Source([]byte(code))
	if err != nil {
		t.Fatalf("Failed to format generated code: %v\nOriginal code:\n%s", err, code)
	}
	return normalizeForContains(string(formatted))
}

func mustParse(t *testing.T, input string) interpreter.Expr {
	t.Helper()
	expr, err := interpreter.Parse(input)
	require.NoError(t, err)
	return expr
}

func TestGenerateFunc(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"7", "func Calc(vars map[rune]int) int { return 7 }"},
		{"10-2-x", "func Calc(vars map[rune]int) int { return 10 - 2 - vars['x'] }"},
		{"y+z-x", "func Calc(vars map[rune]int) int { return vars['y'] + vars['z'] - vars['x'] }"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := codegen.GenerateFunc(mustParse(t, tt.input), "Calc")
			require.NoError(t, err)
			assert.Equal(t, tt.want, normalizeCode(t, got))
			assert.Contains(t, got, "// Calc computes "+tt.input+".")
		})
	}
}

func TestGenerateFunc_ParenthesizesRightOperand(t *testing.T) {
	// x - (y - 1), which has no textual form in the expression grammar.
	expr := interpreter.Subtract{
		Left:  interpreter.Variable{Name: 'x'},
		Right: interpreter.Subtract{Left: interpreter.Variable{Name: 'y'}, Right: interpreter.Literal{Value: 1}},
	}
	got, err := codegen.GenerateFunc(expr, "Calc")
	require.NoError(t, err)
	assert.Contains(t, normalizeCode(t, got), "return vars['x'] - (vars['y'] - 1)")
}

func TestGenerateFunc_InvalidName(t *testing.T) {
	_, err := codegen.GenerateFunc(mustParse(t, "1"), "not-a-name")
	assert.Error(t, err)
}

func TestGenerateFile(t *testing.T) {
	fn, err := codegen.GenerateFunc(mustParse(t, "1+x"), "Calc")
	require.NoError(t, err)

	src, err := codegen.GenerateFile("calc", fn)
	require.NoError(t, err)

	fset := token.NewFileSet()
	fileAst, err := parser.ParseFile(fset, "calc.go", src, parser.ParseComments)
	require.NoError(t, err)
	assert.Equal(t, "calc", fileAst.Name.Name)
	assert.Contains(t, src, "DO NOT EDIT")

	_, err = codegen.GenerateFile("main-pkg", fn)
	assert.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	t.Setenv("DEBUG", "1")
	var logBuf bytes.Buffer
	handler := slog.NewTextHandler(&logBuf, &slog.HandlerOptions{Level: slog.LevelDebug})
	originalLogger := slog.Default()
	slog.SetDefault(slog.New(handler))
	defer slog.SetDefault(originalLogger)

	fn, err := codegen.GenerateFunc(mustParse(t, "10-2-x"), "Calc")
	require.NoError(t, err)
	src, err := codegen.GenerateFile("main", fn)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "calc_gen.go")
	require.NoError(t, codegen.WriteFile(path, src))

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(written), "return 10 - 2 - vars['x']")
	assert.Equal(t, normalizeCode(t, src), normalizeCode(t, string(written)))

	logOutput := logBuf.String()
	assert.Contains(t, logOutput, "WriteFile: start")
	assert.Contains(t, logOutput, "Processing (goimports) the generated code")
	assert.Contains(t, logOutput, "WriteFile: end")
}

func TestWriteFile_InvalidSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.go")
	err := codegen.WriteFile(path, "package main\nfunc {")
	assert.Error(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
