package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"blackjack-ev-engine/internal/httpapi"
	"blackjack-ev-engine/internal/store"
)

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func asBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}

var stopFlag atomic.Bool

func watchSignals(cancel context.CancelFunc) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
	stopFlag.Store(true)
	cancel()
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	_ = godotenv.Load()

	var migrate bool
	for _, a := range os.Args[1:] {
		if a == "--migrate" {
			migrate = true
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go watchSignals(cancel)

	dsn := getenv("DATABASE_URL", "")
	port := getenv("PORT", "8080")

	var db *store.DB
	if dsn != "" {
		d, err := store.Open(dsn)
		if err != nil {
			log.Fatal(err)
		}
		defer d.Close(context.Background())
		db = d

		if migrate || asBool(os.Getenv("AUTO_MIGRATE")) {
			if err := store.Migrate(context.Background(), db); err != nil {
				log.Fatal(err)
			}
			log.Println("migrated")
			if migrate {
				return
			}
		}
	} else if migrate {
		log.Fatal("--migrate requires DATABASE_URL")
	} else {
		log.Println("DATABASE_URL not set: rule-profile persistence and query auditing disabled")
	}

	r := httpapi.Router(db)
	srv := &http.Server{Addr: ":" + port, Handler: r, ReadTimeout: 15 * time.Second, WriteTimeout: 15 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()
		_ = srv.Shutdown(shutdownCtx)
	}()
	log.Printf("listening on http://localhost:%s (Ctrl+C to stop)", port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
