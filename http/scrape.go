package http

import (
	"net/http"

	"github.com/codegolf-live/backend/srvcerror"
	"github.com/go-chi/httplog/v2"
)

// scrapeSubmissions is the trigger endpoint the scheduler calls to poll the
// judge's submission list.
func (httpserver *HttpServer) scrapeSubmissions(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	created, err := httpserver.scraperSrvc.ScrapeSubmissions(r.Context())
	if err != nil {
		handleJsonSrvcError(logger, w,
			srvcerror.ErrIngestionFailed().SetDebug(err))
		return
	}

	type scrapeResponse struct {
		Created int `json:"created"`
	}
	writeJsonSuccessResponse(w, scrapeResponse{Created: created})
}

// fetchSources sweeps stored submissions whose source text is missing.
func (httpserver *HttpServer) fetchSources(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	fetched, err := httpserver.scraperSrvc.FetchSources(r.Context())
	if err != nil {
		handleJsonSrvcError(logger, w,
			srvcerror.ErrIngestionFailed().SetDebug(err))
		return
	}

	type fetchResponse struct {
		Fetched int `json:"fetched"`
	}
	writeJsonSuccessResponse(w, fetchResponse{Fetched: fetched})
}
