package main

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"robotgrid/internal/center"
	"robotgrid/internal/script"
)

// shell feeds lines to the center and prints whatever it returns.
type shell struct {
	center   *center.Center
	out      io.Writer
	show     bool
	renderer *lipgloss.Renderer
}

func (s *shell) exec(line string) error {
	if res := s.center.ProcessCommand(line); res != "" {
		if _, err := fmt.Fprintln(s.out, res); err != nil {
			return err
		}
	}
	if s.show {
		if _, err := fmt.Fprintln(s.out, s.center.Board(s.renderer)); err != nil {
			return err
		}
	}
	return nil
}

func (s *shell) repl(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.exec(scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (s *shell) runScript(ctx context.Context, lines []script.Line) error {
	for _, l := range lines {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.exec(l.Text); err != nil {
			return fmt.Errorf("line %d: %w", l.Number, err)
		}
	}
	return nil
}
