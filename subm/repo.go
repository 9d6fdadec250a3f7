package subm

import "context"

// Repo is the document store port for submissions. Upserts merge into the
// existing document: fields the scraper does not own (fetched code) are never
// clobbered by a later scrape of the same submission.
type Repo interface {
	// BatchUpsert merges the given submissions into the store.
	BatchUpsert(ctx context.Context, subms []Submission) error

	// List returns all stored submissions in ascending date order.
	List(ctx context.Context) ([]Submission, error)

	// Get returns the submission with the given id, or nil if absent.
	Get(ctx context.Context, id int) (*Submission, error)

	// AttachCode stores the fetched source text on an existing submission.
	AttachCode(ctx context.Context, id int, code string) error
}
