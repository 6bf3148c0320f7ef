package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"gamify-app/internal/leaderboard"
	"gamify-app/internal/rank"
	"gamify-app/internal/store"
	"gamify-app/internal/web"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
)

func main() {
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") == "" {
		_ = godotenv.Load(".env", ".env.local")
	}

	var appStore store.Store
	if dsn := strings.TrimSpace(os.Getenv("POSTGRES_DSN")); dsn != "" {
		pgStore, err := store.NewPostgresStore(dsn, store.PostgresOptions{
			MigrationsDir: os.Getenv("POSTGRES_MIGRATIONS_DIR"),
		})
		if err != nil {
			log.Fatalf("postgres store: %v", err)
		}
		appStore = pgStore
	} else if dbPath := strings.TrimSpace(os.Getenv("DB_PATH")); dbPath != "" {
		sqliteStore, err := store.NewSQLiteStore(dbPath, store.SQLiteOptions{
			MigrationsDir: os.Getenv("DB_MIGRATIONS_DIR"),
		})
		if err != nil {
			log.Fatalf("sqlite store: %v", err)
		}
		appStore = sqliteStore
	} else {
		appStore = store.NewMemoryStore()
	}

	ranks, err := rank.NewTable(rank.DefaultThresholds())
	if err != nil {
		log.Fatalf("rank table: %v", err)
	}

	agg, err := leaderboard.NewAggregator(appStore, leaderboard.Options{})
	if err != nil {
		log.Fatalf("aggregator: %v", err)
	}
	cache := leaderboard.NewCache()

	interval := 30 * time.Second
	if raw := strings.TrimSpace(os.Getenv("REFRESH_INTERVAL")); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("refresh interval: %v", err)
		}
		interval = parsed
	}
	refresher := leaderboard.NewRefresher(agg, cache)
	go refresher.Start(context.Background(), interval)

	server := web.NewServer(appStore, agg, cache, ranks)

	r := chi.NewRouter()
	r.Use(web.WithIdentity)
	r.Mount("/", server.Routes())

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		adapter := httpadapter.New(r)
		lambda.Start(adapter.ProxyWithContext)
	} else {
		addr := ":8081"
		if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
			addr = ":" + port
		}
		log.Printf("listening on %s", addr)
		if err := http.ListenAndServe(addr, r); err != nil {
			log.Fatalf("server: %v", err)
		}
	}
}
