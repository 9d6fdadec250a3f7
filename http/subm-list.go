package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/codegolf-live/backend/srvcerror"
	"github.com/codegolf-live/backend/subm"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
)

type BriefSubmission struct {
	ID       int      `json:"id"`
	User     string   `json:"user"`
	Date     string   `json:"date"`
	Language string   `json:"language"`
	Result   string   `json:"result"`
	Points   *float64 `json:"points"`
	HasCode  bool     `json:"hasCode"`
}

type FullSubmission struct {
	BriefSubmission
	Time   float64 `json:"time"`
	Memory float64 `json:"memory"`
	Code   *string `json:"code"`
}

func (httpserver *HttpServer) listSubmissions(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	subms, err := httpserver.submRepo.List(r.Context())
	if err != nil {
		handleJsonSrvcError(logger, w, err)
		return
	}

	response := make([]BriefSubmission, len(subms))
	for i, s := range subms {
		response[i] = mapBriefSubm(s)
	}

	writeJsonSuccessResponse(w, response)
}

func (httpserver *HttpServer) getSubmission(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	id, err := strconv.Atoi(chi.URLParam(r, "submissionID"))
	if err != nil {
		handleJsonSrvcError(logger, w, srvcerror.ErrSubmissionNotFound())
		return
	}

	stored, err := httpserver.submRepo.Get(r.Context(), id)
	if err != nil {
		handleJsonSrvcError(logger, w, err)
		return
	}
	if stored == nil {
		handleJsonSrvcError(logger, w, srvcerror.ErrSubmissionNotFound())
		return
	}

	response := FullSubmission{
		BriefSubmission: mapBriefSubm(*stored),
		Time:            stored.Time,
		Memory:          stored.Memory,
		Code:            stored.Code,
	}
	writeJsonSuccessResponse(w, response)
}

func mapBriefSubm(s subm.Submission) BriefSubmission {
	return BriefSubmission{
		ID:       s.ID,
		User:     s.User,
		Date:     s.Date.Format(time.RFC3339),
		Language: s.Language,
		Result:   s.Result,
		Points:   s.Points,
		HasCode:  s.Code != nil,
	}
}
