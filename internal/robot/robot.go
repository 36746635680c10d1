package robot

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"robotgrid/internal/grid"
)

var (
	ErrInvalidDirection = errors.New("invalid direction")
	ErrIllegalPosition  = errors.New("illegal position")
)

// Commands understood by a single robot. Anything else is ignored.
const (
	CmdLeft   = "LEFT"
	CmdRight  = "RIGHT"
	CmdMove   = "MOVE"
	CmdReport = "REPORT"
)

// Robot represents one robot on the table

type Robot struct {
	id     int
	x, y   int
	facing Facing
	bounds grid.Bounds
	log    *slog.Logger
}

// State is a copy of a robot's id, position and facing.
type State struct {
	ID     int
	X, Y   int
	Facing Facing
}

func (s State) String() string {
	return fmt.Sprintf("%d,%d,%s", s.X, s.Y, s.Facing)
}

// Create builds a robot from the three PLACE arguments: x, y and direction
// name. The direction is checked before the position. A nil logger means
// slog.Default().
func Create(id int, args [3]string, bounds grid.Bounds, log *slog.Logger) (*Robot, error) {
	facing, err := ParseFacing(args[2])
	if err != nil {
		return nil, err
	}
	x, errX := strconv.Atoi(args[0])
	y, errY := strconv.Atoi(args[1])
	if errX != nil || errY != nil || !bounds.Contains(x, y) {
		return nil, fmt.Errorf("%w: (%s,%s) outside %s", ErrIllegalPosition, args[0], args[1], bounds)
	}
	if log == nil {
		log = slog.Default()
	}
	log.Debug("created robot", "id", id, "x", x, "y", y, "facing", facing)
	return &Robot{id: id, x: x, y: y, facing: facing, bounds: bounds, log: log}, nil
}

func (r *Robot) ID() int {
	return r.id
}

func (r *Robot) Position() (int, int) {
	return r.x, r.y
}

func (r *Robot) Facing() Facing {
	return r.facing
}

func (r *Robot) State() State {
	return State{ID: r.id, X: r.x, Y: r.y, Facing: r.facing}
}

// ProcessCommand applies one command and returns the report for REPORT,
// otherwise "".
func (r *Robot) ProcessCommand(command string) string {
	switch command {
	case CmdLeft:
		r.facing = r.facing.Left()
	case CmdRight:
		r.facing = r.facing.Right()
	case CmdMove:
		r.move()
	case CmdReport:
		return r.String()
	default:
		r.log.Debug("ignored command", "robot", r.id, "command", command)
	}
	return ""
}

func (r *Robot) move() {
	dx, dy := r.facing.Delta()
	nx, ny := r.x+dx, r.y+dy
	if !r.bounds.Contains(nx, ny) {
		r.log.Debug("cannot move that way", "robot", r.id, "x", r.x, "y", r.y, "facing", r.facing)
		return
	}
	r.x, r.y = nx, ny
}

func (r *Robot) String() string {
	return r.State().String()
}
