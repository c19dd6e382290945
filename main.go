package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pitchside/api"
	"pitchside/config"
	"pitchside/contentapi"
	"pitchside/loader"
	"pitchside/preferences"
	"pitchside/query"
)

func main() {
	useRedis := flag.Bool("redis", false, "Store preferences in Redis instead of memory")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store preferences.Store = preferences.NewMemoryStore()
	if *useRedis {
		rs, err := preferences.NewRedisStore(ctx, cfg.Redis)
		if err != nil {
			log.Fatalf("redis error: %v", err)
		}
		defer rs.Close()
		store = rs
		log.Printf("Using Redis preference store at %s (key %s)", cfg.Redis.Addr, cfg.Redis.Key)
	}

	l := loader.New(query.NewBuilder(cfg.API), store, contentapi.NewClient())
	r := api.NewRouter(api.Dependencies{Loader: l, Preferences: store})

	addr := ":" + cfg.Port
	srv := &http.Server{Addr: addr, Handler: r}

	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  GET  /api/health")
	log.Println("  GET  /api/articles")
	log.Println("  GET  /api/preferences")
	log.Println("  PUT  /api/preferences")

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down API server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
