package territory

import (
	"context"
	"fmt"

	"github.com/codegolf-live/backend/eventcfg"
	"github.com/codegolf-live/backend/logger"
	"github.com/codegolf-live/backend/scoring"
	"github.com/codegolf-live/backend/subm"
	"github.com/google/uuid"
)

// captureRetries bounds re-reads when a conditional capture loses a race.
// A lost race beyond that is settled by the next sweep.
const captureRetries = 3

// sweepBatchSize bounds how many submissions a full recompute replays
// between cancellation checks.
const sweepBatchSize = 100

// Resolver decides territory captures. It holds no cell state of its own;
// all mutation goes through the CellRepo's compare-and-update.
type Resolver struct {
	graph   *Graph
	cells   CellRepo
	subms   subm.Repo
	cfg     *eventcfg.Config
	ruleset scoring.Ruleset
}

func NewResolver(cfg *eventcfg.Config, cells CellRepo, subms subm.Repo) (*Resolver, error) {
	if len(cfg.Rulesets) == 0 {
		return nil, fmt.Errorf("event %q has no ruleset", cfg.Name)
	}
	if len(cfg.Territory) == 0 {
		return nil, fmt.Errorf("event %q has no territory graph", cfg.Name)
	}
	return &Resolver{
		graph:   NewGraph(cfg.Territory),
		cells:   cells,
		subms:   subms,
		cfg:     cfg,
		ruleset: cfg.Rulesets[0],
	}, nil
}

// Seed stores the event-start cell states.
func (r *Resolver) Seed(ctx context.Context) error {
	return r.cells.Seed(ctx, InitialCells(r.cfg.Territory))
}

// ApplySubmission resolves one submission against the territory board.
// Returns whether a cell changed owner. Submissions with a non-accepted
// verdict, an unknown language or author, or no qualifying score are
// skipped with a diagnostic, never an error.
func (r *Resolver) ApplySubmission(ctx context.Context, s subm.Submission) (bool, error) {
	log := logger.FromContext(ctx)

	if !s.IsAccepted() {
		return false, nil
	}

	gcell, ok := r.graph.CellByID(s.Language)
	if !ok {
		log.Warn("submission language has no territory cell",
			"submission_id", s.ID, "language", s.Language)
		return false, nil
	}

	team, ok := r.cfg.TeamOf(s.User)
	if !ok {
		log.Warn("submission author is on no roster",
			"submission_id", s.ID, "user", s.User)
		return false, nil
	}

	score := scoring.Score(s.Code, r.ruleset)
	if score == nil {
		// no code fetched yet, or over par
		return false, nil
	}

	return r.ApplyCandidate(ctx, gcell.Language, team, *score, s.ID)
}

// ApplyCandidate applies one scored capture attempt to a cell. The cell is
// captured only when it is adjacent to a cell the team already owns and the
// candidate score is strictly lower than the incumbent (an unclaimed cell
// loses to any score). Home cells are never re-evaluated.
func (r *Resolver) ApplyCandidate(ctx context.Context, language string, team string, score int, submissionID int) (bool, error) {
	log := logger.FromContext(ctx)

	cell, err := r.cells.Get(ctx, language)
	if err != nil {
		return false, err
	}
	if cell == nil {
		log.Warn("territory cell missing from store", "language", language)
		return false, nil
	}
	if cell.Home {
		return false, nil
	}

	adjacent, err := r.adjacentToOwner(ctx, language, team)
	if err != nil {
		return false, err
	}
	if !adjacent {
		log.Info("capture rejected, no adjacent owned cell",
			"language", language, "team", team, "submission_id", submissionID)
		return false, nil
	}

	for attempt := 0; attempt < captureRetries; attempt++ {
		if cell.Claimed() && *cell.Score <= score {
			return false, nil
		}

		captured := Cell{
			Language:     cell.Language,
			LanguageID:   cell.LanguageID,
			Owner:        &team,
			Score:        &score,
			SubmissionID: &submissionID,
		}
		err = r.cells.Capture(ctx, captured, cell.Score)
		if err == ErrConflict {
			cell, err = r.cells.Get(ctx, language)
			if err != nil {
				return false, err
			}
			if cell == nil {
				return false, nil
			}
			continue
		}
		if err != nil {
			return false, err
		}

		log.Info("territory cell captured",
			"language", language, "team", team,
			"score", score, "submission_id", submissionID)
		return true, nil
	}

	// lost the race repeatedly; the next sweep settles it
	return false, nil
}

func (r *Resolver) adjacentToOwner(ctx context.Context, language string, team string) (bool, error) {
	for _, neighbor := range r.graph.Neighbors(language) {
		cell, err := r.cells.Get(ctx, neighbor)
		if err != nil {
			return false, err
		}
		if cell != nil && cell.OwnedBy(team) {
			return true, nil
		}
	}
	return false, nil
}

// SweepStats summarizes one full recompute.
type SweepStats struct {
	Processed int
	Captured  int
}

// RecomputeAll replays the full submission history in ascending date order.
// A single pass lets earlier scores establish territory later submissions
// must beat, and spreads each front at most one hop past cells already owned
// within the pass. The sweep is processed in bounded batches so cancellation
// mid-sweep leaves every cell in a valid state.
func (r *Resolver) RecomputeAll(ctx context.Context) (SweepStats, error) {
	ctx = logger.WithSweepID(ctx, uuid.New().String())
	log := logger.FromContext(ctx)
	stats := SweepStats{}

	subms, err := r.subms.List(ctx)
	if err != nil {
		return stats, err
	}

	for start := 0; start < len(subms); start += sweepBatchSize {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		end := min(start+sweepBatchSize, len(subms))
		for _, s := range subms[start:end] {
			captured, err := r.ApplySubmission(ctx, s)
			if err != nil {
				return stats, err
			}
			stats.Processed++
			if captured {
				stats.Captured++
			}
		}
		log.Info("territory sweep progress",
			"processed", stats.Processed, "captured", stats.Captured)
	}

	return stats, nil
}
