package scraper

import (
	"context"
	"fmt"

	"github.com/codegolf-live/backend/logger"
	"github.com/codegolf-live/backend/subm"
)

// JudgeClient is the ingestion port: the capability to list recent
// submissions and fetch raw source text from the judge.
type JudgeClient interface {
	ListSubmissions(ctx context.Context, problemID string) ([]subm.Submission, error)
	FetchSource(ctx context.Context, submissionID int) (string, error)
}

// Applier receives each submission once its source is available.
// Satisfied by the territory resolver.
type Applier interface {
	ApplySubmission(ctx context.Context, s subm.Submission) (bool, error)
}

// Archive stores fetched source permanently, for dashboard permalinks.
type Archive interface {
	Upload(ctx context.Context, content []byte, key string, mediaType string) (string, error)
}

// Srvc polls the judge, persists submissions, fetches source text and feeds
// scoreable submissions to the resolver. The polling cadence belongs to the
// scheduler; this service does one step per call and never retries.
type Srvc struct {
	judge     JudgeClient
	repo      subm.Repo
	queue     Queue
	applier   Applier
	archive   Archive // optional
	problemID string
}

func NewSrvc(judge JudgeClient, repo subm.Repo, queue Queue, applier Applier, problemID string) *Srvc {
	return &Srvc{
		judge:     judge,
		repo:      repo,
		queue:     queue,
		applier:   applier,
		problemID: problemID,
	}
}

// WithArchive enables archiving fetched source to durable storage.
func (s *Srvc) WithArchive(archive Archive) *Srvc {
	s.archive = archive
	return s
}

// ScrapeSubmissions polls the judge's submission list, merges every entry
// into the store, and enqueues a created event for each id seen for the
// first time.
func (s *Srvc) ScrapeSubmissions(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	listed, err := s.judge.ListSubmissions(ctx, s.problemID)
	if err != nil {
		return 0, fmt.Errorf("scrape failed: %w", err)
	}
	log.Info("received submissions from judge", "count", len(listed))

	var created []int
	for _, listed := range listed {
		existing, err := s.repo.Get(ctx, listed.ID)
		if err != nil {
			return 0, err
		}
		if existing == nil {
			created = append(created, listed.ID)
		}
	}

	if err := s.repo.BatchUpsert(ctx, listed); err != nil {
		return 0, err
	}

	for _, id := range created {
		if err := s.queue.Publish(ctx, id); err != nil {
			return len(created), err
		}
	}

	return len(created), nil
}

// HandleSubmissionCreated fetches the raw source of a newly stored
// submission, attaches it to the document, archives it when an archive is
// configured, and hands the completed submission to the resolver.
func (s *Srvc) HandleSubmissionCreated(ctx context.Context, submissionID int) error {
	log := logger.FromContext(ctx)

	stored, err := s.repo.Get(ctx, submissionID)
	if err != nil {
		return err
	}
	if stored == nil {
		log.Warn("created event for unknown submission", "submission_id", submissionID)
		return nil
	}
	if stored.Code != nil {
		// already fetched, the event is a duplicate
		return nil
	}

	code, err := s.judge.FetchSource(ctx, submissionID)
	if err != nil {
		return fmt.Errorf("source fetch failed: %w", err)
	}

	if err := s.repo.AttachCode(ctx, submissionID, code); err != nil {
		return err
	}

	if s.archive != nil {
		key := fmt.Sprintf("sources/%d.txt", submissionID)
		if _, err := s.archive.Upload(ctx, []byte(code), key, "text/plain"); err != nil {
			// the document already holds the code, archiving is best effort
			log.Warn("failed to archive source", "submission_id", submissionID, "error", err)
		}
	}

	stored.Code = &code
	if s.applier != nil {
		if _, err := s.applier.ApplySubmission(ctx, *stored); err != nil {
			return err
		}
	}
	return nil
}

// FetchSources sweeps stored submissions whose source is still missing.
// Covers events lost between scrape and consume; idempotent.
func (s *Srvc) FetchSources(ctx context.Context) (int, error) {
	stored, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}

	fetched := 0
	for _, stored := range stored {
		if stored.Code != nil {
			continue
		}
		if err := s.HandleSubmissionCreated(ctx, stored.ID); err != nil {
			return fetched, err
		}
		fetched++
	}
	return fetched, nil
}
