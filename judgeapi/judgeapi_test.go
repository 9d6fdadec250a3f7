package judgeapi_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/codegolf-live/backend/judgeapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJudgeServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v2/submissions", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer token123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.Query().Get("problem") != "golf1" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprint(w, `{
			"data": {
				"objects": [
					{
						"id": 42,
						"user": "alcea",
						"date": "2026-08-28T12:00:00+09:00",
						"language": "RUBY",
						"time": 0.03,
						"memory": 1024,
						"points": 100,
						"result": "AC"
					},
					{
						"id": 43,
						"user": "tRue",
						"date": "2026-08-28T12:01:00+09:00",
						"language": "C11",
						"time": 0.01,
						"memory": 512,
						"points": null,
						"result": "WA"
					}
				]
			}
		}`)
	})
	mux.HandleFunc("/src/42/raw", func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Cookie"), "sessionid=sess456") {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		fmt.Fprint(w, "p 1+2")
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestListSubmissions(t *testing.T) {
	server := newJudgeServer(t)
	host := strings.TrimPrefix(server.URL, "http://")
	client := judgeapi.NewClient(host, "token123", "sess456")

	subms, err := client.ListSubmissions(context.Background(), "golf1")
	require.NoError(t, err)
	require.Len(t, subms, 2)

	assert.Equal(t, 42, subms[0].ID)
	assert.Equal(t, "alcea", subms[0].User)
	assert.Equal(t, "RUBY", subms[0].Language)
	assert.Equal(t, "AC", subms[0].Result)
	require.NotNil(t, subms[0].Points)
	assert.Equal(t, 100.0, *subms[0].Points)
	assert.Nil(t, subms[0].Code)

	assert.Equal(t, "WA", subms[1].Result)
	assert.Nil(t, subms[1].Points)
}

func TestListSubmissionsAuthRejected(t *testing.T) {
	server := newJudgeServer(t)
	host := strings.TrimPrefix(server.URL, "http://")
	client := judgeapi.NewClient(host, "wrong", "sess456")

	_, err := client.ListSubmissions(context.Background(), "golf1")
	assert.Error(t, err)
}

func TestFetchSource(t *testing.T) {
	server := newJudgeServer(t)
	host := strings.TrimPrefix(server.URL, "http://")
	client := judgeapi.NewClient(host, "token123", "sess456")

	code, err := client.FetchSource(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "p 1+2", code)
}

func TestFetchSourceMissingSubmission(t *testing.T) {
	server := newJudgeServer(t)
	host := strings.TrimPrefix(server.URL, "http://")
	client := judgeapi.NewClient(host, "token123", "sess456")

	_, err := client.FetchSource(context.Background(), 404)
	assert.Error(t, err)
}
