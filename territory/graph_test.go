package territory_test

import (
	"context"
	"testing"

	"github.com/codegolf-live/backend/eventcfg"
	"github.com/codegolf-live/backend/territory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphLookups(t *testing.T) {
	cfg := eventcfg.DefaultTerritoryEvent()
	g := territory.NewGraph(cfg.Territory)

	t.Run("by language key", func(t *testing.T) {
		cell, ok := g.Cell("Rust")
		require.True(t, ok)
		assert.Equal(t, "RUST", cell.LanguageID)
	})

	t.Run("by judge language id", func(t *testing.T) {
		cell, ok := g.CellByID("FISH")
		require.True(t, ok)
		assert.Equal(t, "><>", cell.Language)
	})

	t.Run("unknown keys miss", func(t *testing.T) {
		_, ok := g.Cell("COBOL")
		assert.False(t, ok)
		assert.Nil(t, g.Neighbors("COBOL"))
	})

	t.Run("neighbors follow the cell's own list", func(t *testing.T) {
		assert.Equal(t, []string{"Starry", "プロデル", "Red"}, g.Neighbors("Rust"))
	})

	t.Run("keys keep configuration order", func(t *testing.T) {
		keys := g.Keys()
		require.Len(t, keys, 15)
		assert.Equal(t, "Red", keys[0])
		assert.Equal(t, "Blue", keys[1])
	})
}

func TestInitialCells(t *testing.T) {
	cfg := eventcfg.DefaultTerritoryEvent()
	cells := territory.InitialCells(cfg.Territory)

	homes := 0
	for _, cell := range cells {
		if cell.Home {
			homes++
			require.NotNil(t, cell.Owner)
			assert.Nil(t, cell.Score)
			assert.Nil(t, cell.SubmissionID)
		} else {
			assert.Nil(t, cell.Owner)
			assert.Nil(t, cell.Score)
		}
	}
	assert.Equal(t, 2, homes)
}

func TestCellClaimed(t *testing.T) {
	owner := "Red"
	score := 10

	t.Run("owner and score", func(t *testing.T) {
		cell := territory.Cell{Owner: &owner, Score: &score}
		assert.True(t, cell.Claimed())
		assert.True(t, cell.OwnedBy("Red"))
		assert.False(t, cell.OwnedBy("Blue"))
	})

	t.Run("home without score", func(t *testing.T) {
		cell := territory.Cell{Home: true, Owner: &owner}
		assert.True(t, cell.Claimed())
	})

	t.Run("owner without score is treated as unclaimed", func(t *testing.T) {
		cell := territory.Cell{Owner: &owner}
		assert.False(t, cell.Claimed())
		assert.False(t, cell.OwnedBy("Red"))
	})
}

func TestCaptureConflictDetection(t *testing.T) {
	repo := territory.NewInMemCellRepo()
	ctx := context.Background()

	require.NoError(t, repo.Seed(ctx, []territory.Cell{{Language: "Rust", LanguageID: "RUST"}}))

	owner := "Red"
	score := 10
	cell := territory.Cell{Language: "Rust", LanguageID: "RUST", Owner: &owner, Score: &score}

	t.Run("capture of unclaimed cell", func(t *testing.T) {
		require.NoError(t, repo.Capture(ctx, cell, nil))
	})

	t.Run("stale expectation conflicts", func(t *testing.T) {
		err := repo.Capture(ctx, cell, nil)
		assert.ErrorIs(t, err, territory.ErrConflict)
	})

	t.Run("matching expectation succeeds", func(t *testing.T) {
		better := 8
		updated := cell
		updated.Score = &better
		require.NoError(t, repo.Capture(ctx, updated, &score))
	})
}
