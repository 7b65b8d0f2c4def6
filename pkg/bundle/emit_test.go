package bundle

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestStripEmptyLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"only blanks", "\n \n\t\n", ""},
		{"keeps indentation", "a\n\n  b\n", "a\n  b"},
		{"crlf blank lines", "a\r\n\r\nb\r\n", "a\r\nb\r"},
		{"no blanks", "a\nb", "a\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once := StripEmptyLines(tt.in)
			assert.Equal(t, tt.want, once)
			assert.Equal(t, once, StripEmptyLines(once))
		})
	}
}

func TestEmitWritesSectionsInOrder(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"one.txt": "first",
		"two.txt": "second\n",
	})
	files := []Candidate{
		{Path: filepath.Join(root, "two.txt")},
		{Path: filepath.Join(root, "one.txt")},
	}

	var buf bytes.Buffer
	err := Emit(context.Background(), &buf, files, EmitOptions{AddSourceComment: true}, zaptest.NewLogger(t))
	require.NoError(t, err)

	want := "// " + files[0].Path + "\nsecond\n\n" +
		"// " + files[1].Path + "\nfirst\n"
	assert.Equal(t, want, buf.String())
}

func TestEmitMissingFile(t *testing.T) {
	files := []Candidate{{Path: filepath.Join(t.TempDir(), "gone.txt")}}

	var buf bytes.Buffer
	err := Emit(context.Background(), &buf, files, EmitOptions{}, zaptest.NewLogger(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading file")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestEmitSurfacesWriteErrors(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.txt": "a"})

	err := Emit(context.Background(), failingWriter{}, []Candidate{{Path: filepath.Join(root, "a.txt")}}, EmitOptions{}, zaptest.NewLogger(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestWriteBundleEmptyList(t *testing.T) {
	out := filepath.Join(t.TempDir(), "bundle.txt")
	require.NoError(t, WriteBundle(context.Background(), out, nil, EmitOptions{Author: "  "}, zaptest.NewLogger(t)))
	assert.Equal(t, "", readOutput(t, out))
}
