package subm

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/guregu/dynamo/v2"
)

// SubmissionRow is the DynamoDB document shape for one submission.
type SubmissionRow struct {
	ID       int      `dynamo:"id,hash"` // judge submission id, primary key
	User     string   `dynamo:"user"`
	UnixTime int64    `dynamo:"unix_timestamp"`
	Language string   `dynamo:"language"`
	Time     float64  `dynamo:"time"`
	Memory   float64  `dynamo:"memory"`
	Points   *float64 `dynamo:"points,omitempty"`
	Result   string   `dynamo:"result"`
	Code     *string  `dynamo:"code,omitempty"`
}

// DdbSubmRepo stores submissions in a DynamoDB table.
type DdbSubmRepo struct {
	submTable dynamo.Table
}

func NewDdbSubmRepo(ddbClient *dynamodb.Client, tableName string) *DdbSubmRepo {
	db := dynamo.NewFromIface(ddbClient)
	return &DdbSubmRepo{submTable: db.Table(tableName)}
}

// BatchUpsert merges each submission into its document. The update names only
// the scrape-owned attributes, so an already-fetched code field survives
// repeated scrapes of the same submission.
func (repo *DdbSubmRepo) BatchUpsert(ctx context.Context, subms []Submission) error {
	for _, s := range subms {
		update := repo.submTable.Update("id", s.ID).
			Set("user", s.User).
			Set("unix_timestamp", s.Date.Unix()).
			Set("language", s.Language).
			Set("time", s.Time).
			Set("memory", s.Memory).
			Set("result", s.Result)
		if s.Points != nil {
			update = update.Set("points", *s.Points)
		}
		if err := update.Run(ctx); err != nil {
			return fmt.Errorf("failed to upsert submission %d: %w", s.ID, err)
		}
	}
	return nil
}

func (repo *DdbSubmRepo) List(ctx context.Context) ([]Submission, error) {
	var rows []SubmissionRow
	err := repo.submTable.Scan().All(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan submissions: %w", err)
	}

	subms := make([]Submission, len(rows))
	for i, row := range rows {
		subms[i] = row.toSubmission()
	}
	SortByDate(subms)
	return subms, nil
}

func (repo *DdbSubmRepo) Get(ctx context.Context, id int) (*Submission, error) {
	var row SubmissionRow
	err := repo.submTable.Get("id", id).One(ctx, &row)
	if err == dynamo.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get submission %d: %w", id, err)
	}
	s := row.toSubmission()
	return &s, nil
}

func (repo *DdbSubmRepo) AttachCode(ctx context.Context, id int, code string) error {
	err := repo.submTable.Update("id", id).
		Set("code", code).
		Run(ctx)
	if err != nil {
		return fmt.Errorf("failed to attach code to submission %d: %w", id, err)
	}
	return nil
}

func (row SubmissionRow) toSubmission() Submission {
	return Submission{
		ID:       row.ID,
		User:     row.User,
		Date:     time.Unix(row.UnixTime, 0).UTC(),
		Language: row.Language,
		Time:     row.Time,
		Memory:   row.Memory,
		Points:   row.Points,
		Result:   row.Result,
		Code:     row.Code,
	}
}
