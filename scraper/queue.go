package scraper

import (
	"context"

	"github.com/codegolf-live/backend/logger"
)

// Queue carries submission-created events from the scrape step to the
// source-fetch step. In a single process this is a channel; deployments
// that split the two steps use the SQS-backed implementation.
type Queue interface {
	Publish(ctx context.Context, submissionID int) error

	// Consume blocks, delivering each event to handle until ctx is done.
	// Handler errors are logged and the event dropped; the periodic
	// FetchSources sweep picks strays up.
	Consume(ctx context.Context, handle func(ctx context.Context, submissionID int) error) error
}

// ChanQueue is the in-process Queue.
type ChanQueue struct {
	events chan int
}

func NewChanQueue(buffer int) *ChanQueue {
	return &ChanQueue{events: make(chan int, buffer)}
}

// Publish implements Queue. A full buffer drops the event; the periodic
// sweep recovers it.
func (q *ChanQueue) Publish(ctx context.Context, submissionID int) error {
	select {
	case q.events <- submissionID:
	default:
	}
	return nil
}

// Consume implements Queue
func (q *ChanQueue) Consume(ctx context.Context, handle func(ctx context.Context, submissionID int) error) error {
	log := logger.FromContext(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case id := <-q.events:
			if err := handle(ctx, id); err != nil {
				log.Warn("failed to handle submission created event",
					"submission_id", id, "error", err)
			}
		}
	}
}
