package internal

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
)

// ASCII picture of the grid: one line per Theta2 sample, highest first, one
// column per Theta1 sample. Occupied cells are '#', free cells '.'.
func (g *Grid) Render(colors bool) string {
	au := aurora.NewAurora(colors)
	var sb strings.Builder
	for j := g.Samples - 1; j >= 0; j-- {
		for i := 0; i < g.Samples; i++ {
			if g.Occupied[i][j] {
				sb.WriteString(au.Red("#").String())
			} else {
				sb.WriteString(au.Green(".").String())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (g *Grid) String() string {
	return fmt.Sprintf("Grid %dx%d θ1 %v θ2 %v (%d occupied)", g.Samples, g.Samples, g.Theta1, g.Theta2, g.OccupiedCount())
}

func (r Range) String() string {
	return fmt.Sprintf("[%.4g, %.4g]", r.Min, r.Max)
}

func (t Triangle) String() string {
	return fmt.Sprintf("Triangle<%v %v %v>", t.A, t.B, t.C)
}
