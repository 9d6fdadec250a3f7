package territory

import (
	"context"
	"errors"
	"sync"
)

// ErrConflict is returned by Capture when the cell changed between the
// caller's read and the write. The caller re-reads and re-evaluates.
var ErrConflict = errors.New("territory cell changed concurrently")

// CellRepo is the document store port for territory cell state. Cell state
// is only ever written through Capture's compare-and-update, never by a
// blind overwrite.
type CellRepo interface {
	// GetAll returns every cell's current state.
	GetAll(ctx context.Context) ([]Cell, error)

	// Get returns one cell by language key, or nil if absent.
	Get(ctx context.Context, language string) (*Cell, error)

	// Capture writes the cell's owner, score and winning submission in one
	// atomic update, conditional on the stored score still being prevScore
	// (nil meaning unclaimed). Returns ErrConflict otherwise.
	Capture(ctx context.Context, cell Cell, prevScore *int) error

	// Seed stores event-start cell states, leaving existing cells untouched.
	Seed(ctx context.Context, cells []Cell) error
}

// InMemCellRepo keeps territory state in memory for tests and local runs.
type InMemCellRepo struct {
	mu    sync.Mutex
	cells map[string]Cell
}

func NewInMemCellRepo() *InMemCellRepo {
	return &InMemCellRepo{cells: make(map[string]Cell)}
}

// GetAll implements CellRepo
func (r *InMemCellRepo) GetAll(ctx context.Context) ([]Cell, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cells := make([]Cell, 0, len(r.cells))
	for _, c := range r.cells {
		cells = append(cells, c)
	}
	return cells, nil
}

// Get implements CellRepo
func (r *InMemCellRepo) Get(ctx context.Context, language string) (*Cell, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.cells[language]; ok {
		return &c, nil
	}
	return nil, nil
}

// Capture implements CellRepo
func (r *InMemCellRepo) Capture(ctx context.Context, cell Cell, prevScore *int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.cells[cell.Language]
	if !ok {
		return ErrConflict
	}
	if !scoresEqual(current.Score, prevScore) {
		return ErrConflict
	}
	r.cells[cell.Language] = cell
	return nil
}

// Seed implements CellRepo
func (r *InMemCellRepo) Seed(ctx context.Context, cells []Cell) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range cells {
		if _, ok := r.cells[c.Language]; !ok {
			r.cells[c.Language] = c
		}
	}
	return nil
}

func scoresEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
