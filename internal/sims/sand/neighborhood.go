package sand

// Neighborhood is a 3x3 snapshot of kinds indexed [row][col], with [1][1]
// holding the evaluated cell itself.
type Neighborhood [3][3]Kind

// At returns the kind at offset (dx, dy) from the centre, each in [-1, 1].
func (n *Neighborhood) At(dx, dy int) Kind {
	return n[dy+1][dx+1]
}

// empty reports whether the neighbour at (dx, dy) is Background.
func (n *Neighborhood) empty(dx, dy int) bool {
	return n.At(dx, dy) == Background
}

// neighborOffsets lists the eight neighbours in row-major order, skipping the
// centre.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// sample builds the neighborhood of (x, y). Positions outside the grid read as
// Background.
func (w *World) sample(x, y int) Neighborhood {
	var n Neighborhood
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= w.h {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			nx := x + dx
			if nx < 0 || nx >= w.w {
				continue
			}
			n[dy+1][dx+1] = w.cells[ny*w.w+nx].Kind
		}
	}
	return n
}
