package subm

import (
	"context"
	"fmt"
	"sync"
)

// InMemRepo keeps submissions in memory. Used by tests and local runs
// without a DynamoDB table.
type InMemRepo struct {
	mu    sync.RWMutex
	subms map[int]Submission
}

func NewInMemRepo() *InMemRepo {
	return &InMemRepo{subms: make(map[int]Submission)}
}

// BatchUpsert implements Repo
func (r *InMemRepo) BatchUpsert(ctx context.Context, subms []Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range subms {
		if existing, ok := r.subms[s.ID]; ok && s.Code == nil {
			s.Code = existing.Code // merge semantics
		}
		r.subms[s.ID] = s
	}
	return nil
}

// List implements Repo
func (r *InMemRepo) List(ctx context.Context) ([]Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	subms := make([]Submission, 0, len(r.subms))
	for _, s := range r.subms {
		subms = append(subms, s)
	}
	SortByDate(subms)
	return subms, nil
}

// Get implements Repo
func (r *InMemRepo) Get(ctx context.Context, id int) (*Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.subms[id]; ok {
		return &s, nil
	}
	return nil, nil
}

// AttachCode implements Repo
func (r *InMemRepo) AttachCode(ctx context.Context, id int, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.subms[id]
	if !ok {
		return fmt.Errorf("submission %d not found", id)
	}
	s.Code = &code
	r.subms[id] = s
	return nil
}
