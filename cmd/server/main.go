package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/codegolf-live/backend/eventcfg"
	"github.com/codegolf-live/backend/http"
	"github.com/codegolf-live/backend/judgeapi"
	"github.com/codegolf-live/backend/logger"
	"github.com/codegolf-live/backend/s3bucket"
	"github.com/codegolf-live/backend/scraper"
	"github.com/codegolf-live/backend/subm"
	"github.com/codegolf-live/backend/territory"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file loaded", "error", err)
	}

	apiHost := mustGetenv("API_HOST")
	apiToken := mustGetenv("API_TOKEN")
	sessionID := mustGetenv("SESSION_ID")
	problemID := mustGetenv("PROBLEM_ID")

	ctx := context.Background()

	cfg := loadEventConfig()

	var submRepo subm.Repo
	var cellRepo territory.CellRepo
	if submTable := os.Getenv("DDB_SUBM_TABLE_NAME"); submTable != "" {
		awsCfg, err := config.LoadDefaultConfig(ctx,
			config.WithRegion(getenvDefault("AWS_REGION", "eu-central-1")))
		if err != nil {
			slog.Error("unable to load AWS SDK config", "error", err)
			os.Exit(1)
		}
		ddbClient := dynamodb.NewFromConfig(awsCfg)
		submRepo = subm.NewDdbSubmRepo(ddbClient, submTable)
		if cellTable := os.Getenv("DDB_CELL_TABLE_NAME"); cellTable != "" {
			cellRepo = territory.NewDdbCellRepo(ddbClient, cellTable)
		}
	} else {
		slog.Warn("DDB_SUBM_TABLE_NAME not set, using in-memory store")
		submRepo = subm.NewInMemRepo()
	}
	if cellRepo == nil && len(cfg.Territory) > 0 {
		cellRepo = territory.NewInMemCellRepo()
	}

	var resolver *territory.Resolver
	if len(cfg.Territory) > 0 {
		var err error
		resolver, err = territory.NewResolver(cfg, cellRepo, submRepo)
		if err != nil {
			slog.Error("failed to construct territory resolver", "error", err)
			os.Exit(1)
		}
		if err := resolver.Seed(ctx); err != nil {
			slog.Error("failed to seed territory cells", "error", err)
			os.Exit(1)
		}
	}

	judge := judgeapi.NewClient(apiHost, apiToken, sessionID)

	var queue scraper.Queue
	if queueUrl := os.Getenv("SQS_CREATED_QUEUE_URL"); queueUrl != "" {
		awsCfg, err := config.LoadDefaultConfig(ctx,
			config.WithRegion(getenvDefault("AWS_REGION", "eu-central-1")))
		if err != nil {
			slog.Error("unable to load AWS SDK config", "error", err)
			os.Exit(1)
		}
		queue = scraper.NewSqsQueue(sqs.NewFromConfig(awsCfg), queueUrl)
	} else {
		queue = scraper.NewChanQueue(1000)
	}

	var applier scraper.Applier
	if resolver != nil {
		applier = resolver
	}
	scraperSrvc := scraper.NewSrvc(judge, submRepo, queue, applier, problemID)

	if bucket := os.Getenv("S3_SOURCE_BUCKET"); bucket != "" {
		archive, err := s3bucket.NewS3Bucket(ctx,
			getenvDefault("AWS_REGION", "eu-central-1"), bucket)
		if err != nil {
			slog.Error("failed to construct source archive", "error", err)
			os.Exit(1)
		}
		scraperSrvc = scraperSrvc.WithArchive(archive)
	}

	go func() {
		err := queue.Consume(ctx, scraperSrvc.HandleSubmissionCreated)
		if err != nil && err != context.Canceled {
			slog.Error("created event consumer stopped", "error", err)
		}
	}()

	startScheduler(ctx, scraperSrvc, resolver)

	httpServer := http.NewHttpServer(cfg, scraperSrvc, submRepo, resolver, cellRepo)

	address := getenvDefault("ADDRESS", ":8080")
	log.Printf("Starting server on %s", address)
	err := httpServer.Start(address)
	log.Printf("Server stopped with error: %v", err)
}

// startScheduler drives the ingestion and recompute cadence: scrape every
// minute, sweep unfetched sources right after, replay territory every five
// minutes to settle anything the event-driven path missed.
func startScheduler(ctx context.Context, scraperSrvc *scraper.Srvc, resolver *territory.Resolver) {
	c := cron.New()

	c.AddFunc("* * * * *", func() {
		log := slog.Default().With("job", "scrape")
		jobCtx := logger.WithLogger(ctx, log)
		if _, err := scraperSrvc.ScrapeSubmissions(jobCtx); err != nil {
			log.Warn("scrape failed, retrying next tick", "error", err)
			return
		}
		if _, err := scraperSrvc.FetchSources(jobCtx); err != nil {
			log.Warn("source fetch failed, retrying next tick", "error", err)
		}
	})

	if resolver != nil {
		c.AddFunc("*/5 * * * *", func() {
			log := slog.Default().With("job", "recompute")
			jobCtx := logger.WithLogger(ctx, log)
			if _, err := resolver.RecomputeAll(jobCtx); err != nil {
				log.Warn("territory recompute failed, retrying next tick", "error", err)
			}
		})
	}

	c.Start()
}

func loadEventConfig() *eventcfg.Config {
	if path := os.Getenv("EVENT_CONFIG"); path != "" {
		cfg, err := eventcfg.Load(path)
		if err != nil {
			slog.Error("failed to load event config", "path", path, "error", err)
			os.Exit(1)
		}
		return cfg
	}
	if os.Getenv("EVENT_VARIANT") == "territory" {
		return eventcfg.DefaultTerritoryEvent()
	}
	return eventcfg.DefaultBingoEvent()
}

func mustGetenv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		slog.Error(key + " is not set")
		os.Exit(1)
	}
	return value
}

func getenvDefault(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
