package territory

import (
	"github.com/codegolf-live/backend/eventcfg"
)

// Cell is the mutable ownership state of one capture graph node.
// Invariant: Owner and Score are set and cleared together, except for home
// cells which are owned from event setup and carry no score.
type Cell struct {
	Language     string
	LanguageID   string
	Home         bool
	Owner        *string
	Score        *int
	SubmissionID *int
}

// Claimed reports whether the cell has a defensible owner. A non-home cell
// with an owner but no score is external corruption and treated as unclaimed.
func (c Cell) Claimed() bool {
	if c.Owner == nil {
		return false
	}
	if c.Home {
		return true
	}
	return c.Score != nil
}

// OwnedBy reports whether the cell currently belongs to the given team.
func (c Cell) OwnedBy(team string) bool {
	return c.Claimed() && *c.Owner == team
}

// InitialCells derives the event-start cell states from the static config:
// every cell unclaimed except the home cells, which are pre-owned by their
// team with no score or submission.
func InitialCells(cfg []eventcfg.TerritoryCell) []Cell {
	cells := make([]Cell, len(cfg))
	for i, c := range cfg {
		cells[i] = Cell{
			Language:   c.Language,
			LanguageID: c.LanguageID,
			Home:       c.HomeOf != "",
		}
		if c.HomeOf != "" {
			owner := c.HomeOf
			cells[i].Owner = &owner
		}
	}
	return cells
}
