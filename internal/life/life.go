// Package life is a toroidal Game of Life engine for the demo CLI:
// the widget edits a seed board, this package evolves it and records
// the population at each generation for plotting.
package life

// Board is a fixed-size toroidal cell field. Neighbors wrap at every
// edge, matching the widget's cursor movement.
type Board struct {
	width  int
	height int
	alive  [][]bool
}

func New(width, height int) *Board {
	alive := make([][]bool, height)
	for y := range alive {
		alive[y] = make([]bool, width)
	}
	return &Board{width: width, height: height, alive: alive}
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

func (b *Board) Alive(x, y int) bool { return b.alive[y][x] }

func (b *Board) SetAlive(x, y int, v bool) { b.alive[y][x] = v }

// Population counts live cells.
func (b *Board) Population() int {
	n := 0
	for _, row := range b.alive {
		for _, a := range row {
			if a {
				n++
			}
		}
	}
	return n
}

func (b *Board) neighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + b.width) % b.width
			ny := (y + dy + b.height) % b.height
			if b.alive[ny][nx] {
				n++
			}
		}
	}
	return n
}

// Step returns the next generation. The receiver is unchanged.
func (b *Board) Step() *Board {
	next := New(b.width, b.height)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			n := b.neighbors(x, y)
			next.alive[y][x] = n == 3 || (b.alive[y][x] && n == 2)
		}
	}
	return next
}

// Run evolves seed for the given number of generations and returns the
// population history, including the seed itself, plus the final board.
func Run(seed *Board, generations int) ([]float64, *Board) {
	history := make([]float64, 0, generations+1)
	board := seed
	history = append(history, float64(board.Population()))
	for i := 0; i < generations; i++ {
		board = board.Step()
		history = append(history, float64(board.Population()))
	}
	return history, board
}
