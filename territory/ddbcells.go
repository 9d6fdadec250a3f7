package territory

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/guregu/dynamo/v2"
)

// CellRow is the DynamoDB document shape for one territory cell.
type CellRow struct {
	Language     string  `dynamo:"language,hash"` // cell key, primary key
	LanguageID   string  `dynamo:"language_id"`
	Home         bool    `dynamo:"home"`
	Owner        *string `dynamo:"owner,omitempty"`
	Score        *int    `dynamo:"score,omitempty"`
	SubmissionID *int    `dynamo:"submission_id,omitempty"`
}

// DdbCellRepo stores territory cell state in a DynamoDB table.
type DdbCellRepo struct {
	cellTable dynamo.Table
}

func NewDdbCellRepo(ddbClient *dynamodb.Client, tableName string) *DdbCellRepo {
	db := dynamo.NewFromIface(ddbClient)
	return &DdbCellRepo{cellTable: db.Table(tableName)}
}

func (repo *DdbCellRepo) GetAll(ctx context.Context) ([]Cell, error) {
	var rows []CellRow
	err := repo.cellTable.Scan().All(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan territory cells: %w", err)
	}
	cells := make([]Cell, len(rows))
	for i, row := range rows {
		cells[i] = row.toCell()
	}
	return cells, nil
}

func (repo *DdbCellRepo) Get(ctx context.Context, language string) (*Cell, error) {
	var row CellRow
	err := repo.cellTable.Get("language", language).One(ctx, &row)
	if err == dynamo.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get territory cell %q: %w", language, err)
	}
	cell := row.toCell()
	return &cell, nil
}

// Capture writes owner, score and submission in a single conditional update
// so a concurrent better capture is never overwritten by a stale one.
func (repo *DdbCellRepo) Capture(ctx context.Context, cell Cell, prevScore *int) error {
	update := repo.cellTable.Update("language", cell.Language).
		Set("owner", cell.Owner).
		Set("score", cell.Score).
		Set("submission_id", cell.SubmissionID)
	if prevScore == nil {
		update = update.If("attribute_not_exists('score')")
	} else {
		update = update.If("'score' = ?", *prevScore)
	}

	err := update.Run(ctx)
	if dynamo.IsCondCheckFailed(err) {
		return ErrConflict
	}
	if err != nil {
		return fmt.Errorf("failed to capture territory cell %q: %w", cell.Language, err)
	}
	return nil
}

// Seed stores event-start cell states without resetting cells that already
// exist mid-event.
func (repo *DdbCellRepo) Seed(ctx context.Context, cells []Cell) error {
	for _, cell := range cells {
		err := repo.cellTable.Put(fromCell(cell)).
			If("attribute_not_exists('language')").
			Run(ctx)
		if dynamo.IsCondCheckFailed(err) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to seed territory cell %q: %w", cell.Language, err)
		}
	}
	return nil
}

func (row CellRow) toCell() Cell {
	return Cell{
		Language:     row.Language,
		LanguageID:   row.LanguageID,
		Home:         row.Home,
		Owner:        row.Owner,
		Score:        row.Score,
		SubmissionID: row.SubmissionID,
	}
}

func fromCell(cell Cell) CellRow {
	return CellRow{
		Language:     cell.Language,
		LanguageID:   cell.LanguageID,
		Home:         cell.Home,
		Owner:        cell.Owner,
		Score:        cell.Score,
		SubmissionID: cell.SubmissionID,
	}
}
