package bundle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExclusionRules(t *testing.T) {
	rules := NewExclusionRules(DefaultExclusions()...)

	tests := []struct {
		path string
		want bool
	}{
		{"/a.py", false},
		{"/sub/bin/c.py", true},
		{"/BIN/c.py", true},
		{"/src/Node_Modules/react/index.js", true},
		{"/.git/config", true},
		{"/binary/tool.go", false},
		{"/src/bin", false},
		{"/robin/x.go", false},
		{"/project/.vscode/settings.json", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.Excludes(tt.path))
		})
	}
}

func TestExclusionRulesNormalizesFragments(t *testing.T) {
	rules := NewExclusionRules(`\Vendor\`, "/vendor/", "", "  ")

	assert.Equal(t, []string{"/vendor/"}, rules.Fragments())
	assert.True(t, rules.Excludes(`\src\vendor\lib.go`))

	fragment, ok := rules.Match("/a/VENDOR/b.go")
	assert.True(t, ok)
	assert.Equal(t, "/vendor/", fragment)
}

func TestExclusionRulesEmpty(t *testing.T) {
	rules := NewExclusionRules()
	assert.False(t, rules.Excludes("/bin/x"))
	assert.Empty(t, rules.Fragments())
}
