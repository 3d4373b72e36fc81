package ranges

import "github.com/renato-design/poker-player-the-better-donkey-killers/poker"

// Cell is one square of the 13x13 starting-hand grid.
type Cell struct {
	Combo   Combo
	InRange bool
}

// Grid lays the 169 starting-hand classes out in the conventional matrix:
// aces in the first row and column, pairs on the diagonal, suited hands above
// it and offsuit hands below.
func Grid(r *Range) [13][13]Cell {
	var grid [13][13]Cell
	for i := range 13 {
		for j := range 13 {
			ri := poker.Ace - poker.Rank(i)
			rj := poker.Ace - poker.Rank(j)
			var c Combo
			switch {
			case i == j:
				c = Combo{Ranks: ri.String() + rj.String()}
			case i < j:
				c = Combo{Ranks: ri.String() + rj.String(), Suited: true}
			default:
				c = Combo{Ranks: rj.String() + ri.String()}
			}
			grid[i][j] = Cell{Combo: c, InRange: r.ContainsCombo(c)}
		}
	}
	return grid
}

// Coverage returns the fraction of all 1326 two-card hands the range covers.
func Coverage(r *Range) float64 {
	return float64(r.Size()) / 1326.0
}
