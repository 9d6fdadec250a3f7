package http

import (
	"log/slog"
	"net/http"

	"github.com/codegolf-live/backend/eventcfg"
	"github.com/codegolf-live/backend/scraper"
	"github.com/codegolf-live/backend/subm"
	"github.com/codegolf-live/backend/territory"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
)

type HttpServer struct {
	cfg         *eventcfg.Config
	scraperSrvc *scraper.Srvc
	submRepo    subm.Repo
	resolver    *territory.Resolver // nil for bingo-only events
	cellRepo    territory.CellRepo  // nil for bingo-only events
	router      *chi.Mux
}

func NewHttpServer(
	cfg *eventcfg.Config,
	scraperSrvc *scraper.Srvc,
	submRepo subm.Repo,
	resolver *territory.Resolver,
	cellRepo territory.CellRepo,
) *HttpServer {
	router := chi.NewRouter()

	logger := httplog.NewLogger("codegolf-live", httplog.Options{
		LogLevel:         slog.LevelDebug,
		Concise:          true,
		RequestHeaders:   true,
		MessageFieldName: "message",
	})

	router.Use(httplog.RequestLogger(logger))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           3000,
	}))

	server := &HttpServer{
		cfg:         cfg,
		scraperSrvc: scraperSrvc,
		submRepo:    submRepo,
		resolver:    resolver,
		cellRepo:    cellRepo,
		router:      router,
	}

	server.routes()

	return server
}

func (httpserver *HttpServer) Start(address string) error {
	return http.ListenAndServe(address, httpserver.router)
}

func (httpserver *HttpServer) Router() http.Handler {
	return httpserver.router
}

func (httpserver *HttpServer) routes() {
	r := httpserver.router
	r.Post("/scrape", httpserver.scrapeSubmissions)
	r.Post("/fetch-sources", httpserver.fetchSources)
	r.Get("/board", httpserver.getBoard)
	r.Get("/submissions", httpserver.listSubmissions)
	r.Get("/submissions/{submissionID}", httpserver.getSubmission)
	if httpserver.resolver != nil {
		r.Post("/recompute", httpserver.recomputeTerritory)
		r.Get("/territory", httpserver.getTerritory)
	}
}
