package http

import (
	"net/http"
	"sort"

	"github.com/go-chi/httplog/v2"
)

type TerritoryCell struct {
	Language     string  `json:"language"`
	LanguageID   string  `json:"languageId"`
	Home         bool    `json:"home"`
	Owner        *string `json:"owner"`
	Score        *int    `json:"score"`
	SubmissionID *int    `json:"submissionId"`
}

// getTerritory returns the current ownership state of every territory cell.
func (httpserver *HttpServer) getTerritory(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	cells, err := httpserver.cellRepo.GetAll(r.Context())
	if err != nil {
		handleJsonSrvcError(logger, w, err)
		return
	}

	response := make([]TerritoryCell, len(cells))
	for i, cell := range cells {
		response[i] = TerritoryCell{
			Language:     cell.Language,
			LanguageID:   cell.LanguageID,
			Home:         cell.Home,
			Owner:        cell.Owner,
			Score:        cell.Score,
			SubmissionID: cell.SubmissionID,
		}
	}
	sort.Slice(response, func(i, j int) bool {
		return response[i].Language < response[j].Language
	})

	writeJsonSuccessResponse(w, response)
}

// recomputeTerritory replays the full submission history through the
// territory resolver.
func (httpserver *HttpServer) recomputeTerritory(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	stats, err := httpserver.resolver.RecomputeAll(r.Context())
	if err != nil {
		handleJsonSrvcError(logger, w, err)
		return
	}

	type recomputeResponse struct {
		Processed int `json:"processed"`
		Captured  int `json:"captured"`
	}
	writeJsonSuccessResponse(w, recomputeResponse{
		Processed: stats.Processed,
		Captured:  stats.Captured,
	})
}
