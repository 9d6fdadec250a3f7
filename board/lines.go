package board

// Pos addresses one cell in the grid.
type Pos struct {
	Row int
	Col int
}

// Lines enumerates the scoring line shapes for a rows x cols grid: every
// row, every column and, for square grids, both diagonals.
func Lines(rows, cols int) [][]Pos {
	var lines [][]Pos

	for c := 0; c < cols; c++ {
		line := make([]Pos, rows)
		for r := 0; r < rows; r++ {
			line[r] = Pos{Row: r, Col: c}
		}
		lines = append(lines, line)
	}

	for r := 0; r < rows; r++ {
		line := make([]Pos, cols)
		for c := 0; c < cols; c++ {
			line[c] = Pos{Row: r, Col: c}
		}
		lines = append(lines, line)
	}

	if rows == cols {
		diag := make([]Pos, rows)
		anti := make([]Pos, rows)
		for i := 0; i < rows; i++ {
			diag[i] = Pos{Row: i, Col: i}
			anti[i] = Pos{Row: i, Col: rows - 1 - i}
		}
		lines = append(lines, diag, anti)
	}

	return lines
}

// TeamScore is one team's aggregate over the whole grid: line points for
// lines the team owns end to end, plus total solve and owner counts.
type TeamScore struct {
	Lines  int `json:"lines"`
	Solves int `json:"solves"`
	Owners int `json:"owners"`
}

// Scores tallies every team's line points, solves and owners. A line counts
// for a team when the team is a sole or joint owner of every cell on it.
func (g Grid) Scores() []TeamScore {
	scores := make([]TeamScore, g.teamCount)
	if len(g.Cells) == 0 {
		return scores
	}

	for _, line := range Lines(len(g.Cells), len(g.Languages)) {
		for team := 0; team < g.teamCount; team++ {
			ownsLine := true
			for _, pos := range line {
				if !contains(g.Cells[pos.Row][pos.Col].Owners, team) {
					ownsLine = false
					break
				}
			}
			if ownsLine {
				scores[team].Lines++
			}
		}
	}

	for _, row := range g.Cells {
		for _, cell := range row {
			for _, team := range cell.Solvers {
				scores[team].Solves++
			}
			for _, team := range cell.Owners {
				scores[team].Owners++
			}
		}
	}

	return scores
}

func contains(teams []int, team int) bool {
	for _, t := range teams {
		if t == team {
			return true
		}
	}
	return false
}
