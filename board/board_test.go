package board_test

import (
	"testing"
	"time"

	"github.com/codegolf-live/backend/board"
	"github.com/codegolf-live/backend/eventcfg"
	"github.com/codegolf-live/backend/scoring"
	"github.com/codegolf-live/backend/subm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

var base = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

// shortRubyConfig is a one-cell board: the Short regulation over Ruby,
// alcea on Red and tRue on Blue.
func shortRubyConfig() *eventcfg.Config {
	return &eventcfg.Config{
		Name: "test",
		Rulesets: []scoring.Ruleset{
			{Kind: scoring.Short, Name: "Short", Par: intPtr(500)},
		},
		Languages: []eventcfg.Language{{Name: "Ruby", ID: "RUBY"}},
		Teams: []eventcfg.Team{
			{Name: "Red", Players: []string{"alcea"}},
			{Name: "Blue", Players: []string{"tRue"}},
		},
	}
}

func rubySubm(id int, user string, code string, offset time.Duration) subm.Submission {
	return subm.Submission{
		ID:       id,
		User:     user,
		Date:     base.Add(offset),
		Language: "RUBY",
		Result:   "AC",
		Code:     strPtr(code),
	}
}

func TestAggregateBestScoreAndSolvers(t *testing.T) {
	cfg := shortRubyConfig()
	subms := []subm.Submission{
		rubySubm(1, "alcea", "puts 1+2", 0),      // 8 chars
		rubySubm(2, "tRue", "p 1+2", time.Minute), // 5 chars
	}

	grid := board.Aggregate(subms, cfg, board.Window{})
	require.Len(t, grid.Cells, 1)
	require.Len(t, grid.Cells[0], 1)
	cell := grid.Cells[0][0]

	require.NotNil(t, cell.Score)
	assert.Equal(t, 5, *cell.Score)
	assert.Equal(t, []int{1}, cell.Owners)
	assert.Equal(t, []int{0, 1}, cell.Solvers)
	require.NotNil(t, cell.SubmissionID)
	assert.Equal(t, 2, *cell.SubmissionID)
}

func TestAggregateTiedOwners(t *testing.T) {
	cfg := shortRubyConfig()
	subms := []subm.Submission{
		rubySubm(1, "alcea", "p 1+2", 0),
		rubySubm(2, "tRue", "p 2+1", time.Minute),
	}

	grid := board.Aggregate(subms, cfg, board.Window{})
	cell := grid.Cells[0][0]

	require.NotNil(t, cell.Score)
	assert.Equal(t, 5, *cell.Score)
	// both teams tied at the minimum are co-owners
	assert.Equal(t, []int{0, 1}, cell.Owners)
	// winner is the earliest submission at the best score
	require.NotNil(t, cell.SubmissionID)
	assert.Equal(t, 1, *cell.SubmissionID)
}

func TestAggregateFilters(t *testing.T) {
	cfg := shortRubyConfig()

	t.Run("rejected verdicts are excluded", func(t *testing.T) {
		s := rubySubm(1, "alcea", "p 1", 0)
		s.Result = "WA"
		grid := board.Aggregate([]subm.Submission{s}, cfg, board.Window{})
		assert.Nil(t, grid.Cells[0][0].Score)
		assert.Empty(t, grid.Cells[0][0].Owners)
	})

	t.Run("non-roster authors are excluded", func(t *testing.T) {
		grid := board.Aggregate(
			[]subm.Submission{rubySubm(1, "stranger", "p 1", 0)},
			cfg, board.Window{})
		assert.Nil(t, grid.Cells[0][0].Score)
	})

	t.Run("other languages are excluded", func(t *testing.T) {
		s := rubySubm(1, "alcea", "p 1", 0)
		s.Language = "C11"
		grid := board.Aggregate([]subm.Submission{s}, cfg, board.Window{})
		assert.Nil(t, grid.Cells[0][0].Score)
	})

	t.Run("over-par submissions do not qualify", func(t *testing.T) {
		cfg := shortRubyConfig()
		cfg.Rulesets[0].Par = intPtr(4)
		grid := board.Aggregate(
			[]subm.Submission{rubySubm(1, "alcea", "p 1+2", 0)},
			cfg, board.Window{})
		assert.Nil(t, grid.Cells[0][0].Score)
		assert.Empty(t, grid.Cells[0][0].Solvers)
	})

	t.Run("unfetched code does not qualify", func(t *testing.T) {
		s := rubySubm(1, "alcea", "", 0)
		s.Code = nil
		grid := board.Aggregate([]subm.Submission{s}, cfg, board.Window{})
		assert.Nil(t, grid.Cells[0][0].Score)
	})
}

func TestAggregateDateWindow(t *testing.T) {
	cfg := shortRubyConfig()
	subms := []subm.Submission{
		rubySubm(1, "alcea", "p 1", 0),
		rubySubm(2, "tRue", "p", time.Hour),
	}

	t.Run("inclusive bounds", func(t *testing.T) {
		from := base
		to := base.Add(time.Hour)
		grid := board.Aggregate(subms, cfg, board.Window{From: &from, To: &to})
		assert.Equal(t, []int{0, 1}, grid.Cells[0][0].Solvers)
	})

	t.Run("upper bound cuts later submissions", func(t *testing.T) {
		to := base.Add(time.Minute)
		grid := board.Aggregate(subms, cfg, board.Window{To: &to})
		assert.Equal(t, []int{0}, grid.Cells[0][0].Solvers)
	})

	t.Run("lower bound cuts earlier submissions", func(t *testing.T) {
		from := base.Add(time.Minute)
		grid := board.Aggregate(subms, cfg, board.Window{From: &from})
		assert.Equal(t, []int{1}, grid.Cells[0][0].Solvers)
	})

	t.Run("missing bounds are unbounded", func(t *testing.T) {
		grid := board.Aggregate(subms, cfg, board.Window{})
		assert.Equal(t, []int{0, 1}, grid.Cells[0][0].Solvers)
	})
}

func TestAggregateFullBingoGrid(t *testing.T) {
	cfg := eventcfg.DefaultBingoEvent()

	// alcea solves Sed in every regulation; the symbol-free, short, flat
	// source stays under every par
	var subms []subm.Submission
	s := rubySubm(1, "alcea", "s/a/b/", 0)
	s.Language = "SED"
	subms = append(subms, s)

	grid := board.Aggregate(subms, cfg, board.Window{})
	require.Len(t, grid.Cells, 5)

	// column 0 is Sed; alcea owns it for all five regulations
	for row := range grid.Cells {
		assert.Equal(t, []int{0}, grid.Cells[row][0].Owners, "row %d", row)
	}

	scores := grid.Scores()
	require.Len(t, scores, 2)
	// one full column line
	assert.Equal(t, 1, scores[0].Lines)
	assert.Equal(t, 5, scores[0].Solves)
	assert.Equal(t, 5, scores[0].Owners)
	assert.Equal(t, 0, scores[1].Lines)
}

func TestLinesShapes(t *testing.T) {
	t.Run("square grid has rows, columns and diagonals", func(t *testing.T) {
		lines := board.Lines(5, 5)
		assert.Len(t, lines, 12)
	})

	t.Run("rectangular grid has no diagonals", func(t *testing.T) {
		lines := board.Lines(1, 13)
		assert.Len(t, lines, 14)
	})
}

func TestScoresJointOwnership(t *testing.T) {
	cfg := shortRubyConfig()
	subms := []subm.Submission{
		rubySubm(1, "alcea", "p 1+2", 0),
		rubySubm(2, "tRue", "p 2+1", time.Minute),
	}

	grid := board.Aggregate(subms, cfg, board.Window{})
	scores := grid.Scores()
	require.Len(t, scores, 2)

	// a 1x1 grid has a row, a column and two degenerate diagonals, all
	// through the single jointly-owned cell
	assert.Equal(t, 4, scores[0].Lines)
	assert.Equal(t, 4, scores[1].Lines)
	assert.Equal(t, 1, scores[0].Owners)
	assert.Equal(t, 1, scores[1].Owners)
}
