package center

import (
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Command is one classified input line: Place, Activate or Simple.
type Command interface {
	command()
}

// Place creates a robot: PLACE x,y,DIRECTION.
type Place struct {
	X, Y      string
	Direction string
}

func (p Place) Args() [3]string {
	return [3]string{p.X, p.Y, p.Direction}
}

// Activate switches the active robot: ROBOT n. IDs too large for an int
// are kept as 0, which never names a robot.
type Activate struct {
	ID int
}

// Simple is any other line, forwarded verbatim to the active robot.
type Simple struct {
	Text string
}

func (Place) command()    {}
func (Activate) command() {}
func (Simple) command()   {}

// Whitespace is significant: exactly one separator after the keyword and
// nothing before or after the command.
var commandLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Keyword", Pattern: `\b(?:PLACE|ROBOT)\b`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `\w+`},
	{Name: "Comma", Pattern: `,`},
	// Any single whitespace character is a separator, so a tab after PLACE
	// still makes a placement.
	{Name: "Space", Pattern: `[ \t\n\v\f\r]`},
})

type commandSyntax struct {
	Place    *placeSyntax    `parser:"  @@"`
	Activate *activateSyntax `parser:"| @@"`
}

type placeSyntax struct {
	X   string `parser:"'PLACE' Space @Int ','"`
	Y   string `parser:"@Int ','"`
	Dir string `parser:"@(Keyword | Ident | Int)+"`
}

type activateSyntax struct {
	ID string `parser:"'ROBOT' Space @Int"`
}

var parser = participle.MustBuild[commandSyntax](participle.Lexer(commandLexer))

// Parse classifies a raw input line. It never fails: anything that is not a
// well formed PLACE or ROBOT line is a Simple command.
func Parse(line string) Command {
	syntax, err := parser.ParseString("", line)
	if err != nil {
		return Simple{Text: line}
	}
	switch {
	case syntax.Place != nil:
		return Place{X: syntax.Place.X, Y: syntax.Place.Y, Direction: syntax.Place.Dir}
	case syntax.Activate != nil:
		id, err := strconv.Atoi(syntax.Activate.ID)
		if err != nil {
			id = 0
		}
		return Activate{ID: id}
	}
	return Simple{Text: line}
}
