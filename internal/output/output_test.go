package output_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/winutilz/internal/output"
)

type result struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

type texter struct{}

func (texter) Text() string { return "custom text\n" }

func print(t *testing.T, format output.Format, v any) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, output.NewPrinter(&buf, format).Print(v))

	return buf.String()
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := map[string]output.Format{
		"":      output.FormatText,
		"text":  output.FormatText,
		" JSON": output.FormatJSON,
		"yaml":  output.FormatYAML,
		"yml":   output.FormatYAML,
	}

	for in, want := range tests {
		got, err := output.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := output.ParseFormat("xml")
	assert.ErrorIs(t, err, output.ErrInvalidFormat)
}

func TestPrint_JSON(t *testing.T) {
	t.Parallel()

	assert.JSONEq(t, `{"name":"arrow","count":2}`, print(t, output.FormatJSON, result{"arrow", 2}))
}

func TestPrint_YAML(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "name: arrow\ncount: 2\n", print(t, output.FormatYAML, result{"arrow", 2}))
	assert.YAMLEq(t, "- a\n- b\n", print(t, output.FormatYAML, []string{"a", "b"}))
}

func TestPrint_Text(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello\n", print(t, output.FormatText, "hello"))
	assert.Equal(t, "a\nb\n", print(t, output.FormatText, []string{"a", "b"}))
	assert.Equal(t, "custom text\n", print(t, output.FormatText, texter{}))
	assert.Equal(t, "", print(t, output.FormatText, nil))
	assert.Equal(t, "", print(t, output.FormatText, ""))
	assert.Equal(t, "name: arrow\ncount: 2\n", print(t, output.FormatText, result{"arrow", 2}), "structs fall back to YAML")
}

func TestNewPrinter_DefaultsToText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := output.NewPrinter(&buf, "")
	assert.Equal(t, output.FormatText, p.Format())

	require.NoError(t, p.Print("x"))
	assert.Equal(t, "x\n", buf.String())

	err := output.NewPrinter(&buf, "csv").Print("x")
	assert.ErrorIs(t, err, output.ErrInvalidFormat)
}
