package center

import (
	"sort"

	"robotgrid/internal/robot"
)

// registry holds placed robots by id

type registry struct {
	robots map[int]*robot.Robot
	nextID int
}

func newRegistry() *registry {
	return &registry{robots: make(map[int]*robot.Robot), nextID: 1}
}

func (g *registry) get(id int) (*robot.Robot, bool) {
	r, ok := g.robots[id]
	return r, ok
}

// peekID returns the id the next placed robot will get. The counter only
// advances in add, so failed placements do not consume ids.
func (g *registry) peekID() int {
	return g.nextID
}

func (g *registry) add(r *robot.Robot) {
	g.robots[r.ID()] = r
	if r.ID() >= g.nextID {
		g.nextID = r.ID() + 1
	}
}

func (g *registry) len() int {
	return len(g.robots)
}

func (g *registry) sorted() []*robot.Robot {
	out := make([]*robot.Robot, 0, len(g.robots))
	for _, r := range g.robots {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

func (g *registry) clear() {
	g.robots = make(map[int]*robot.Robot)
	g.nextID = 1
}
