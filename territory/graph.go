package territory

import (
	"github.com/codegolf-live/backend/eventcfg"
)

// Graph is the static capture graph of an event: language cells plus the two
// team home cells, with their adjacency lists. Read-only once built.
type Graph struct {
	order []string
	byKey map[string]eventcfg.TerritoryCell
	byID  map[string]eventcfg.TerritoryCell
}

func NewGraph(cells []eventcfg.TerritoryCell) *Graph {
	g := &Graph{
		byKey: make(map[string]eventcfg.TerritoryCell, len(cells)),
		byID:  make(map[string]eventcfg.TerritoryCell, len(cells)),
	}
	for _, cell := range cells {
		g.order = append(g.order, cell.Language)
		g.byKey[cell.Language] = cell
		g.byID[cell.LanguageID] = cell
	}
	return g
}

// Cell looks a cell up by its language key.
func (g *Graph) Cell(language string) (eventcfg.TerritoryCell, bool) {
	cell, ok := g.byKey[language]
	return cell, ok
}

// CellByID looks a cell up by the judge's language id.
func (g *Graph) CellByID(languageID string) (eventcfg.TerritoryCell, bool) {
	cell, ok := g.byID[languageID]
	return cell, ok
}

// Neighbors returns the adjacency list of a cell, nil for unknown keys.
// The list is not guaranteed symmetric; capture eligibility always follows
// the candidate cell's own list.
func (g *Graph) Neighbors(language string) []string {
	cell, ok := g.byKey[language]
	if !ok {
		return nil
	}
	return cell.Adjacent
}

// Keys returns all cell keys in configuration order.
func (g *Graph) Keys() []string {
	return g.order
}
