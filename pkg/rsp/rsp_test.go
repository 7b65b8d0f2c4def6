package rsp

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"codebundle/pkg/bundle"
)

func TestBuildCollectsAnswers(t *testing.T) {
	cwd := t.TempDir()
	input := strings.Join([]string{
		"",             // response path -> default
		"out/all.txt",  // bundle output
		"elixir",       // rejected
		"python, c#",   // accepted
		"y",            // note
		"N",            // sort
		"yes",          // remove empty lines
		"Grace Hopper", // author
	}, "\n") + "\n"

	var out bytes.Buffer
	p := NewPrompter(strings.NewReader(input), &out, zaptest.NewLogger(t))
	answers, err := p.Build(bundle.NewCatalog(bundle.DefaultLanguages()), cwd)
	require.NoError(t, err)

	assert.Equal(t, Answers{
		Path:             filepath.Join(cwd, DefaultFileName),
		Output:           filepath.Join(cwd, "out", "all.txt"),
		Languages:        "PYTHON,C#",
		Note:             true,
		SortByExtension:  false,
		RemoveEmptyLines: true,
		Author:           "Grace Hopper",
	}, answers)
	assert.Contains(t, out.String(), "Invalid language input")
	assert.Contains(t, out.String(), "ELIXIR")
}

func TestBuildAllWithoutTrailingNewline(t *testing.T) {
	cwd := t.TempDir()
	input := "custom.rsp\n\nGo,ALL\nn\ny\nn\nAda"

	p := NewPrompter(strings.NewReader(input), io.Discard, zaptest.NewLogger(t))
	answers, err := p.Build(bundle.NewCatalog(bundle.DefaultLanguages()), cwd)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(cwd, "custom.rsp"), answers.Path)
	assert.Equal(t, filepath.Join(cwd, DefaultOutput), answers.Output)
	assert.Equal(t, "all", answers.Languages)
	assert.True(t, answers.SortByExtension)
	assert.Equal(t, "Ada", answers.Author)
}

func TestBuildDirectoryPath(t *testing.T) {
	cwd := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(cwd, "existing"), 0o755))

	for input, want := range map[string]string{
		"existing":  filepath.Join(cwd, "existing", DefaultFileName),
		"newdir/":   filepath.Join(cwd, "newdir", DefaultFileName),
		"plain.txt": filepath.Join(cwd, "plain.txt"),
	} {
		assert.Equal(t, want, responsePath(input, cwd), input)
	}
}

func TestBuildInputEnds(t *testing.T) {
	p := NewPrompter(strings.NewReader("\n\nnot-a-language\n"), io.Discard, zaptest.NewLogger(t))
	_, err := p.Build(bundle.NewCatalog(bundle.DefaultLanguages()), t.TempDir())
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestCommand(t *testing.T) {
	a := Answers{
		Output:           "/tmp/my bundle.txt",
		Languages:        "PYTHON,C#",
		Note:             true,
		SortByExtension:  true,
		RemoveEmptyLines: true,
		Author:           "Grace Hopper",
	}
	assert.Equal(t,
		`bundle --output "/tmp/my bundle.txt" --language PYTHON,C# --note --sort --remove-empty-lines --author "Grace Hopper"`,
		a.Command())

	minimal := Answers{Output: "b.txt", Languages: "all"}
	assert.Equal(t, "bundle --output b.txt --language all", minimal.Command())
}

func TestWriteThenExpand(t *testing.T) {
	dir := t.TempDir()
	a := Answers{
		Path:      filepath.Join(dir, "nested", "response.txt"),
		Output:    `C:\work\out "final".txt`,
		Languages: "GO",
		Author:    "O'Neil",
	}
	require.NoError(t, Write(a))

	args, err := ExpandArgs([]string{"--debug", "@" + a.Path})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"--debug", "bundle",
		"--output", `C:\work\out "final".txt`,
		"--language", "GO",
		"--author", "O'Neil",
	}, args)
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"plain", "bundle -l go", []string{"bundle", "-l", "go"}},
		{"double quotes", `-o "a b.txt"`, []string{"-o", "a b.txt"}},
		{"single quotes", `-a 'x "y"'`, []string{"-a", `x "y"`}},
		{"escapes", `"a\"b\\c\d"`, []string{`a"b\c\d`}},
		{"empty quoted", `-a ""`, []string{"-a", ""}},
		{"multi line and comments", "# saved\nbundle\r\n  -n\t-s\n", []string{"bundle", "-n", "-s"}},
		{"backslash before newline in quotes", "\"a\\\nb\"", []string{"a\\\nb"}},
		{"adjacent quotes", `pre"fix"post`, []string{"prefixpost"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Split(`-o "open`)
	assert.ErrorIs(t, err, ErrUnterminatedQuote)
}

func TestExpandArgs(t *testing.T) {
	args, err := ExpandArgs([]string{"bundle", "@", "-l", "go"})
	require.NoError(t, err)
	assert.Equal(t, []string{"bundle", "@", "-l", "go"}, args)

	_, err = ExpandArgs([]string{"@" + filepath.Join(t.TempDir(), "missing.rsp")})
	require.ErrorIs(t, err, os.ErrNotExist)
}
