package maze

import "strings"

// String renders the grid as ASCII art for logs and debugging. Each
// cell draws its east and south walls; the border is always drawn.
func (g *WallGrid) String() string {
	var b strings.Builder

	b.WriteString("+" + strings.Repeat("---+", g.Width) + "\n")

	for y := 0; y < g.Height; y++ {
		cellRow := "|"
		for x := 0; x < g.Width; x++ {
			if g.EastWall(Cell{X: x, Y: y}) {
				cellRow += "   |"
			} else {
				cellRow += "    "
			}
		}
		b.WriteString(cellRow + "\n")

		wallRow := "+"
		for x := 0; x < g.Width; x++ {
			if g.SouthWall(Cell{X: x, Y: y}) {
				wallRow += "---+"
			} else {
				wallRow += "   +"
			}
		}
		b.WriteString(wallRow + "\n")
	}

	return b.String()
}
