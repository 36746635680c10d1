package center

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"robotgrid/internal/grid"
	"robotgrid/internal/robot"
)

var ErrUnknownRobot = errors.New("unknown robot")

// Result of one input line. Err holds the reason a PLACE or ROBOT line had
// no effect; Output is what the caller should show, if anything.
type Result struct {
	Output string
	Err    error
}

// Center owns every placed robot and routes commands to the active one.
// Each input line is applied atomically.
type Center struct {
	mu     sync.Mutex
	bounds grid.Bounds
	log    *slog.Logger
	robots *registry
	active int // 0 when unset; ids start at 1
}

type Option func(*Center)

func WithBounds(b grid.Bounds) Option {
	return func(c *Center) { c.bounds = b }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Center) {
		if l != nil {
			c.log = l
		}
	}
}

func New(opts ...Option) *Center {
	c := &Center{
		bounds: grid.Default(),
		log:    slog.Default(),
		robots: newRegistry(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ProcessCommand applies one line and returns the text to display, or "".
// Rejected placements and activations are logged and otherwise ignored.
func (c *Center) ProcessCommand(input string) string {
	res := c.Exec(input)
	if res.Err != nil {
		c.log.Debug("command had no effect", "input", input, "err", res.Err)
	}
	return res.Output
}

func (c *Center) Exec(input string) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch cmd := Parse(input).(type) {
	case Place:
		return c.place(cmd)
	case Activate:
		return c.activate(cmd)
	case Simple:
		return c.simple(cmd)
	}
	return Result{}
}

func (c *Center) place(cmd Place) Result {
	c.log.Debug("placing robot", "x", cmd.X, "y", cmd.Y, "direction", cmd.Direction)
	r, err := robot.Create(c.robots.peekID(), cmd.Args(), c.bounds, c.log)
	if err != nil {
		return Result{Err: fmt.Errorf("place: %w", err)}
	}
	c.robots.add(r)
	c.active = r.ID()
	return Result{}
}

func (c *Center) activate(cmd Activate) Result {
	c.log.Debug("activating robot", "id", cmd.ID)
	if _, ok := c.robots.get(cmd.ID); !ok {
		return Result{Err: fmt.Errorf("activate %d: %w", cmd.ID, ErrUnknownRobot)}
	}
	c.active = cmd.ID
	return Result{}
}

func (c *Center) simple(cmd Simple) Result {
	r, ok := c.activeRobot()
	if cmd.Text == robot.CmdReport {
		out := c.summaryReport()
		if ok {
			out += "\n" + r.ProcessCommand(cmd.Text)
		}
		return Result{Output: out}
	}
	if ok {
		r.ProcessCommand(cmd.Text)
	}
	return Result{}
}

func (c *Center) activeRobot() (*robot.Robot, bool) {
	if c.active == 0 {
		return nil, false
	}
	return c.robots.get(c.active)
}

func (c *Center) summaryReport() string {
	n := c.robots.len()
	noun := "robots are"
	if n == 1 {
		noun = "robot is"
	}
	id := "therefore not set"
	if r, ok := c.activeRobot(); ok {
		id = strconv.Itoa(r.ID())
	}
	return fmt.Sprintf("%d %s active.\nThe active robot's ID is %s.", n, noun, id)
}

// DestroyRobots removes every robot and restarts id numbering at 1.
func (c *Center) DestroyRobots() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = 0
	c.robots.clear()
}

func (c *Center) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.robots.len()
}

// Active returns a copy of the active robot's state.
func (c *Center) Active() (robot.State, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.activeRobot()
	if !ok {
		return robot.State{}, false
	}
	return r.State(), true
}

// Robots returns copies of every robot's state ordered by id.
func (c *Center) Robots() []robot.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	sorted := c.robots.sorted()
	out := make([]robot.State, 0, len(sorted))
	for _, r := range sorted {
		out = append(out, r.State())
	}
	return out
}

func (c *Center) Bounds() grid.Bounds {
	return c.bounds
}

// Board renders the table with every robot on it.
func (c *Center) Board(r *lipgloss.Renderer) string {
	c.mu.Lock()
	marks := make([]grid.Mark, 0, c.robots.len())
	for _, rb := range c.robots.sorted() {
		s := rb.State()
		marks = append(marks, grid.Mark{
			ID:     s.ID,
			X:      s.X,
			Y:      s.Y,
			Glyph:  s.Facing.Glyph(),
			Active: s.ID == c.active,
		})
	}
	c.mu.Unlock()
	return c.bounds.Render(r, marks)
}
