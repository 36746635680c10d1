package grid

import "fmt"

// Default bounds of the square table. (0,0) is the south-west corner.
const (
	DefaultMin = 0
	DefaultMax = 4
)

// Bounds is an inclusive coordinate range shared by both axes

type Bounds struct {
	Min int
	Max int
}

func Default() Bounds {
	return Bounds{Min: DefaultMin, Max: DefaultMax}
}

func New(min, max int) (Bounds, error) {
	if min > max {
		return Bounds{}, fmt.Errorf("grid: min %d is greater than max %d", min, max)
	}
	return Bounds{Min: min, Max: max}, nil
}

// Contains reports whether (x,y) lies on the table. Robots may share cells.
func (b Bounds) Contains(x, y int) bool {
	return x >= b.Min && x <= b.Max && y >= b.Min && y <= b.Max
}

func (b Bounds) Size() int {
	return b.Max - b.Min + 1
}

func (b Bounds) String() string {
	return fmt.Sprintf("[%d..%d]", b.Min, b.Max)
}
