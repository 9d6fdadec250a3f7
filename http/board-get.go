package http

import (
	"net/http"
	"time"

	"github.com/codegolf-live/backend/board"
	"github.com/codegolf-live/backend/httpjson"
	"github.com/go-chi/httplog/v2"
)

type BoardCell struct {
	Owners       []int `json:"owners"`
	Solvers      []int `json:"solvers"`
	Score        *int  `json:"score"`
	SubmissionID *int  `json:"submissionId"`
}

type BoardResponse struct {
	Rulesets  []string          `json:"rulesets"`
	Pars      []*int            `json:"pars"`
	Languages []string          `json:"languages"`
	Cells     [][]BoardCell     `json:"cells"`
	Teams     []string          `json:"teams"`
	Scores    []board.TeamScore `json:"scores"`
}

// getBoard recomputes the full board projection from stored submissions.
// Optional from/to query params (RFC 3339) bound the date window.
func (httpserver *HttpServer) getBoard(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	window, err := parseWindow(r)
	if err != nil {
		httpjson.WriteErrorJson(w, err.Error(), http.StatusBadRequest, "bad_date_window")
		return
	}

	subms, err := httpserver.submRepo.List(r.Context())
	if err != nil {
		handleJsonSrvcError(logger, w, err)
		return
	}

	grid := board.Aggregate(subms, httpserver.cfg, window)

	writeJsonSuccessResponse(w, mapBoardResponse(httpserver, grid))
}

func mapBoardResponse(httpserver *HttpServer, grid board.Grid) BoardResponse {
	response := BoardResponse{
		Cells:  make([][]BoardCell, len(grid.Cells)),
		Scores: grid.Scores(),
	}
	for _, rs := range grid.Rulesets {
		response.Rulesets = append(response.Rulesets, rs.Name)
		response.Pars = append(response.Pars, rs.Par)
	}
	for _, lang := range grid.Languages {
		response.Languages = append(response.Languages, lang.Name)
	}
	for _, team := range httpserver.cfg.Teams {
		response.Teams = append(response.Teams, team.Name)
	}
	for i, row := range grid.Cells {
		response.Cells[i] = make([]BoardCell, len(row))
		for j, cell := range row {
			response.Cells[i][j] = BoardCell(cell)
		}
	}
	return response
}

func parseWindow(r *http.Request) (board.Window, error) {
	window := board.Window{}
	if from := r.URL.Query().Get("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return window, err
		}
		window.From = &t
	}
	if to := r.URL.Query().Get("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return window, err
		}
		window.To = &t
	}
	return window, nil
}
