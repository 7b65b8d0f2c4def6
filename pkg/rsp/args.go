// File: pkg/rsp/args.go
package rsp

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrUnterminatedQuote is returned by Split for an unclosed quote.
var ErrUnterminatedQuote = errors.New("unterminated quote")

// ExpandArgs replaces each "@file" argument with the tokens read from that file.
// A lone "@" is kept as is. Files are not expanded recursively.
func ExpandArgs(args []string) ([]string, error) {
	var out []string
	for _, arg := range args {
		if len(arg) < 2 || arg[0] != '@' {
			out = append(out, arg)
			continue
		}
		data, err := os.ReadFile(arg[1:])
		if err != nil {
			return nil, fmt.Errorf("failed to read response file: %w", err)
		}
		tokens, err := Split(string(data))
		if err != nil {
			return nil, fmt.Errorf("failed to parse response file %s: %w", arg[1:], err)
		}
		out = append(out, tokens...)
	}
	return out, nil
}

// Split tokenises response file text. Tokens are separated by whitespace;
// single quotes are literal, double quotes honour \" and \\ escapes, and
// lines starting with '#' are comments.
func Split(text string) ([]string, error) {
	var (
		tokens  []string
		current strings.Builder
		inToken bool
		quote   rune
		escape  bool
	)

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for i, line := range lines {
		if quote == 0 && strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		if i > 0 && quote != 0 {
			if escape {
				current.WriteRune('\\')
				escape = false
			}
			current.WriteRune('\n')
		}
		for _, r := range line {
			switch {
			case escape:
				if r != '"' && r != '\\' {
					current.WriteRune('\\')
				}
				current.WriteRune(r)
				escape = false
			case quote == '"' && r == '\\':
				escape = true
			case quote != 0 && r == quote:
				quote = 0
			case quote != 0:
				current.WriteRune(r)
			case r == '"' || r == '\'':
				quote = r
				inToken = true
			case r == ' ' || r == '\t':
				if inToken {
					tokens = append(tokens, current.String())
					current.Reset()
					inToken = false
				}
			default:
				current.WriteRune(r)
				inToken = true
			}
		}
		if quote == 0 && inToken {
			tokens = append(tokens, current.String())
			current.Reset()
			inToken = false
		}
	}

	if quote != 0 {
		return nil, ErrUnterminatedQuote
	}
	return tokens, nil
}
