package robot

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"robotgrid/internal/grid"
)

func mustCreate(t *testing.T, x, y, dir string) *Robot {
	t.Helper()
	r, err := Create(1, [3]string{x, y, dir}, grid.Default(), nil)
	if err != nil {
		t.Fatalf("Create(%s,%s,%s): %v", x, y, dir, err)
	}
	return r
}

func TestCreateEveryCell(t *testing.T) {
	b := grid.Default()
	for x := b.Min; x <= b.Max; x++ {
		for y := b.Min; y <= b.Max; y++ {
			for _, dir := range []string{"NORTH", "EAST", "SOUTH", "WEST"} {
				r := mustCreate(t, fmt.Sprint(x), fmt.Sprint(y), dir)
				want := fmt.Sprintf("%d,%d,%s", x, y, dir)
				if got := r.ProcessCommand(CmdReport); got != want {
					t.Fatalf("REPORT=%q want %q", got, want)
				}
			}
		}
	}
}

func TestCreateErrors(t *testing.T) {
	tests := []struct {
		name string
		args [3]string
		want error
	}{
		{"x too large", [3]string{"90", "0", "NORTH"}, ErrIllegalPosition},
		{"y too large", [3]string{"0", "5", "NORTH"}, ErrIllegalPosition},
		{"negative", [3]string{"-1", "0", "NORTH"}, ErrIllegalPosition},
		{"overflow", [3]string{"99999999999999999999999", "0", "EAST"}, ErrIllegalPosition},
		{"bad direction", [3]string{"0", "2", "WIDDER"}, ErrInvalidDirection},
		{"lowercase direction", [3]string{"0", "2", "north"}, ErrInvalidDirection},
		{"direction checked first", [3]string{"90", "90", "UP"}, ErrInvalidDirection},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Create(1, tt.args, grid.Default(), nil)
			if r != nil {
				t.Fatalf("expected nil robot, got %v", r)
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("err=%v want %v", err, tt.want)
			}
		})
	}
}

func TestCreateKeepsID(t *testing.T) {
	r, err := Create(7, [3]string{"1", "2", "SOUTH"}, grid.Default(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if r.ID() != 7 {
		t.Fatalf("ID()=%d want 7", r.ID())
	}
	if x, y := r.Position(); x != 1 || y != 2 {
		t.Fatalf("Position()=(%d,%d)", x, y)
	}
}

func TestTurns(t *testing.T) {
	r := mustCreate(t, "0", "0", "NORTH")
	r.ProcessCommand(CmdLeft)
	if r.Facing() != West {
		t.Fatalf("NORTH+LEFT=%v want WEST", r.Facing())
	}
	r.ProcessCommand(CmdRight)
	if r.Facing() != North {
		t.Fatalf("WEST+RIGHT=%v want NORTH", r.Facing())
	}
	for _, cmd := range []string{CmdLeft, CmdRight} {
		for start := North; start <= West; start++ {
			r.facing = start
			for i := 0; i < 4; i++ {
				r.ProcessCommand(cmd)
			}
			if r.Facing() != start {
				t.Fatalf("4x%s from %v ended at %v", cmd, start, r.Facing())
			}
		}
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		dir  string
		want string
	}{
		{"NORTH", "2,3,NORTH"},
		{"EAST", "3,2,EAST"},
		{"SOUTH", "2,1,SOUTH"},
		{"WEST", "1,2,WEST"},
	}
	for _, tt := range tests {
		r := mustCreate(t, "2", "2", tt.dir)
		r.ProcessCommand(CmdMove)
		if got := r.String(); got != tt.want {
			t.Errorf("MOVE %s: got %q want %q", tt.dir, got, tt.want)
		}
	}
}

func TestMoveStaysOnTable(t *testing.T) {
	tests := []struct {
		x, y, dir string
	}{
		{"4", "4", "EAST"},
		{"4", "4", "NORTH"},
		{"0", "0", "SOUTH"},
		{"0", "0", "WEST"},
	}
	for _, tt := range tests {
		r := mustCreate(t, tt.x, tt.y, tt.dir)
		before := r.String()
		r.ProcessCommand(CmdMove)
		r.ProcessCommand(CmdMove)
		if got := r.String(); got != before {
			t.Errorf("robot left the table: %q -> %q", before, got)
		}
	}
}

func TestUnknownCommandsAreInert(t *testing.T) {
	r := mustCreate(t, "2", "2", "WEST")
	for _, cmd := range []string{"DANCE", "ROTATE", "", "move", "REPORT ", "PLACE 1,1,NORTH"} {
		if out := r.ProcessCommand(cmd); out != "" {
			t.Fatalf("%q produced output %q", cmd, out)
		}
	}
	if got := r.String(); got != "2,2,WEST" {
		t.Fatalf("state changed: %q", got)
	}
}

func TestFacingString(t *testing.T) {
	if got := Facing(7).String(); got != "INVALID DIRECTION: 7" {
		t.Fatalf("Facing(7)=%q", got)
	}
	if got := Facing(-1).String(); got != "INVALID DIRECTION: -1" {
		t.Fatalf("Facing(-1)=%q", got)
	}
	for f := North; f <= West; f++ {
		parsed, err := ParseFacing(f.String())
		if err != nil || parsed != f {
			t.Fatalf("ParseFacing(%q)=%v,%v", f.String(), parsed, err)
		}
	}
}

func TestLogsGoToGivenLogger(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r, err := Create(4, [3]string{"4", "4", "EAST"}, grid.Default(), log)
	if err != nil {
		t.Fatal(err)
	}
	r.ProcessCommand(CmdMove)
	r.ProcessCommand("DANCE")
	got := buf.String()
	for _, want := range []string{`msg="created robot" id=4`, `msg="cannot move that way" robot=4`, `msg="ignored command" robot=4 command=DANCE`} {
		if !strings.Contains(got, want) {
			t.Errorf("log output missing %q:\n%s", want, got)
		}
	}
}

func TestState(t *testing.T) {
	r := mustCreate(t, "3", "1", "SOUTH")
	s := r.State()
	r.ProcessCommand(CmdMove)
	if s != (State{ID: 1, X: 3, Y: 1, Facing: South}) {
		t.Fatalf("State()=%+v", s)
	}
	if got := r.State().String(); got != "3,0,SOUTH" {
		t.Fatalf("State().String()=%q", got)
	}
}
