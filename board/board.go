package board

import (
	"sort"
	"time"

	"github.com/codegolf-live/backend/eventcfg"
	"github.com/codegolf-live/backend/scoring"
	"github.com/codegolf-live/backend/subm"
)

// Cell is one (ruleset, language) leaderboard cell. Owners are the team
// indices tied at the best (lowest) score; solvers are teams with any
// qualifying submission at all.
type Cell struct {
	Owners       []int
	Solvers      []int
	Score        *int
	SubmissionID *int
}

// Window restricts aggregation to submissions dated within [From, To],
// inclusive. A nil bound is unbounded.
type Window struct {
	From *time.Time
	To   *time.Time
}

func (w Window) contains(t time.Time) bool {
	if w.From != nil && t.Before(*w.From) {
		return false
	}
	if w.To != nil && t.After(*w.To) {
		return false
	}
	return true
}

// Grid is the full board projection: one row per ruleset, one column per
// language. Recomputed from scratch on every aggregation pass; never
// authoritative state.
type Grid struct {
	Rulesets  []scoring.Ruleset
	Languages []eventcfg.Language
	Cells     [][]Cell
	teamCount int
}

// Aggregate folds the submission set into a board grid. It is a pure
// function of its inputs: no territory state is read, so the projection is
// fully re-derivable from submission history at any time.
func Aggregate(subms []subm.Submission, cfg *eventcfg.Config, window Window) Grid {
	ordered := make([]subm.Submission, len(subms))
	copy(ordered, subms)
	subm.SortByDate(ordered)

	byLanguage := make(map[string][]subm.Submission)
	for _, s := range ordered {
		byLanguage[s.Language] = append(byLanguage[s.Language], s)
	}

	grid := Grid{
		Rulesets:  cfg.Rulesets,
		Languages: cfg.Languages,
		teamCount: len(cfg.Teams),
	}

	for _, rs := range cfg.Rulesets {
		row := make([]Cell, 0, len(cfg.Languages))
		for _, lang := range cfg.Languages {
			row = append(row, aggregateCell(byLanguage[lang.ID], cfg, rs, window))
		}
		grid.Cells = append(grid.Cells, row)
	}

	return grid
}

func aggregateCell(subms []subm.Submission, cfg *eventcfg.Config, rs scoring.Ruleset, window Window) Cell {
	type qualifier struct {
		subm  subm.Submission
		team  int
		score int
	}

	var qualifiers []qualifier
	for _, s := range subms {
		if !s.IsAccepted() {
			continue
		}
		team := cfg.TeamIndexOf(s.User)
		if team < 0 {
			continue
		}
		if !window.contains(s.Date) {
			continue
		}
		score := scoring.Score(s.Code, rs)
		if score == nil {
			continue
		}
		qualifiers = append(qualifiers, qualifier{subm: s, team: team, score: *score})
	}

	if len(qualifiers) == 0 {
		return Cell{Owners: []int{}, Solvers: []int{}}
	}

	best := qualifiers[0].score
	for _, q := range qualifiers {
		if q.score < best {
			best = q.score
		}
	}

	owners := map[int]struct{}{}
	solvers := map[int]struct{}{}
	var winner *int
	for _, q := range qualifiers {
		solvers[q.team] = struct{}{}
		if q.score == best {
			owners[q.team] = struct{}{}
			if winner == nil {
				// qualifiers are in date order, so the first hit is the
				// earliest submission at the best score
				id := q.subm.ID
				winner = &id
			}
		}
	}

	return Cell{
		Owners:       sortedKeys(owners),
		Solvers:      sortedKeys(solvers),
		Score:        &best,
		SubmissionID: winner,
	}
}

func sortedKeys(set map[int]struct{}) []int {
	keys := make([]int, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
