package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/codegolf-live/backend/eventcfg"
	backendhttp "github.com/codegolf-live/backend/http"
	"github.com/codegolf-live/backend/scraper"
	"github.com/codegolf-live/backend/subm"
	"github.com/codegolf-live/backend/territory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubJudge struct {
	subms   []subm.Submission
	sources map[int]string
}

func (j *stubJudge) ListSubmissions(ctx context.Context, problemID string) ([]subm.Submission, error) {
	return j.subms, nil
}

func (j *stubJudge) FetchSource(ctx context.Context, submissionID int) (string, error) {
	code, ok := j.sources[submissionID]
	if !ok {
		return "", fmt.Errorf("no source for submission %d", submissionID)
	}
	return code, nil
}

func strPtr(s string) *string { return &s }

func setupServer(t *testing.T) (*httptest.Server, subm.Repo) {
	t.Helper()

	cfg := eventcfg.DefaultTerritoryEvent()
	cfg.Languages = []eventcfg.Language{
		{Name: "Rust", ID: "RUST"},
		{Name: "Ruby", ID: "RUBY"},
	}

	submRepo := subm.NewInMemRepo()
	cellRepo := territory.NewInMemCellRepo()

	resolver, err := territory.NewResolver(cfg, cellRepo, submRepo)
	require.NoError(t, err)
	require.NoError(t, resolver.Seed(context.Background()))

	judge := &stubJudge{sources: map[int]string{}}
	queue := scraper.NewChanQueue(10)
	scraperSrvc := scraper.NewSrvc(judge, submRepo, queue, resolver, "golf1")

	server := backendhttp.NewHttpServer(cfg, scraperSrvc, submRepo, resolver, cellRepo)
	testServer := httptest.NewServer(server.Router())
	t.Cleanup(testServer.Close)
	return testServer, submRepo
}

type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

func getJson(t *testing.T, url string, into any) {
	t.Helper()
	res, err := http.Get(url)
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var env envelope
	require.NoError(t, json.NewDecoder(res.Body).Decode(&env))
	require.Equal(t, "success", env.Status)
	require.NoError(t, json.Unmarshal(env.Data, into))
}

func seedSubmissions(t *testing.T, repo subm.Repo) {
	t.Helper()
	base := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.BatchUpsert(context.Background(), []subm.Submission{
		{
			ID: 1, User: "alcea", Date: base, Language: "RUST",
			Result: "AC", Code: strPtr("fn main(){}"),
		},
		{
			ID: 2, User: "tRue", Date: base.Add(time.Minute), Language: "RUBY",
			Result: "AC", Code: strPtr("p 1"),
		},
	}))
}

func TestGetBoard(t *testing.T) {
	server, repo := setupServer(t)
	seedSubmissions(t, repo)

	var board struct {
		Rulesets  []string `json:"rulesets"`
		Languages []string `json:"languages"`
		Cells     [][]struct {
			Owners []int `json:"owners"`
			Score  *int  `json:"score"`
		} `json:"cells"`
		Teams []string `json:"teams"`
	}
	getJson(t, server.URL+"/board", &board)

	require.Equal(t, []string{"ByteCount"}, board.Rulesets)
	require.Equal(t, []string{"Rust", "Ruby"}, board.Languages)
	require.Len(t, board.Cells, 1)
	require.Len(t, board.Cells[0], 2)

	rust := board.Cells[0][0]
	require.NotNil(t, rust.Score)
	assert.Equal(t, len("fn main(){}"), *rust.Score)
	assert.Equal(t, []int{0}, rust.Owners)
}

func TestGetBoardRejectsBadWindow(t *testing.T) {
	server, _ := setupServer(t)

	res, err := http.Get(server.URL + "/board?from=yesterday")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestRecomputeAndGetTerritory(t *testing.T) {
	server, repo := setupServer(t)
	seedSubmissions(t, repo)

	res, err := http.Post(server.URL+"/recompute", "application/json", nil)
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var cells []struct {
		Language string  `json:"language"`
		Home     bool    `json:"home"`
		Owner    *string `json:"owner"`
		Score    *int    `json:"score"`
	}
	getJson(t, server.URL+"/territory", &cells)
	require.Len(t, cells, 15)

	byLanguage := map[string]*string{}
	for _, cell := range cells {
		byLanguage[cell.Language] = cell.Owner
	}
	require.NotNil(t, byLanguage["Rust"])
	assert.Equal(t, "Red", *byLanguage["Rust"])
	require.NotNil(t, byLanguage["Ruby"])
	assert.Equal(t, "Blue", *byLanguage["Ruby"])
}

func TestListAndGetSubmissions(t *testing.T) {
	server, repo := setupServer(t)
	seedSubmissions(t, repo)

	var listed []struct {
		ID      int  `json:"id"`
		HasCode bool `json:"hasCode"`
	}
	getJson(t, server.URL+"/submissions", &listed)
	require.Len(t, listed, 2)
	assert.Equal(t, 1, listed[0].ID)
	assert.True(t, listed[0].HasCode)

	var full struct {
		ID   int     `json:"id"`
		Code *string `json:"code"`
	}
	getJson(t, server.URL+"/submissions/1", &full)
	assert.Equal(t, 1, full.ID)
	require.NotNil(t, full.Code)
	assert.Equal(t, "fn main(){}", *full.Code)

	res, err := http.Get(server.URL + "/submissions/999")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
