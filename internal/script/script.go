package script

import (
	"fmt"
	"strings"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Line is one command from a script file.
type Line struct {
	Number int
	Text   string
}

var lexer *lexmachine.Lexer

func init() {
	lexer = lexmachine.NewLexer()
	lexer.Add([]byte(`\n`), skip)
	lexer.Add([]byte(`[^\n]+`), lineAction)
	if err := lexer.Compile(); err != nil {
		panic(err)
	}
}

// Parse splits a script into command lines. Comment lines (starting with
// # or // after optional blanks) and blank lines are dropped; every other
// line is kept verbatim apart from a trailing carriage return.
func Parse(data []byte) ([]Line, error) {
	scanner, err := lexer.Scanner(data)
	if err != nil {
		return nil, err
	}
	var lines []Line
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if err != nil {
			return nil, fmt.Errorf("script: %w", err)
		}
		if tok == nil {
			continue
		}
		lines = append(lines, tok.(Line))
	}
	return lines, nil
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func lineAction(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	text := strings.TrimSuffix(string(m.Bytes), "\r")
	if isComment(text) {
		return nil, nil
	}
	return Line{Number: m.StartLine, Text: text}, nil
}

func isComment(text string) bool {
	trimmed := strings.TrimSpace(text)
	return trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "//")
}
