/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the rent-collection ledger server. Handles
  configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load env config (.env honored), then command-line flags
  2. Open SQLite store and seed the ledger on first run
  3. Build the gateway with the static identity provider
  4. Configure the HTTP router
  5. Start the server with graceful shutdown

COMMAND-LINE FLAGS (override env):
  -port         HTTP server port (env PORT, default 8080)
  -db           SQLite database path (env DB_PATH, default rent.db);
                use ":memory:" for an in-memory database
  -credentials  YAML credential file (env CREDENTIALS_FILE); empty
                falls back to the built-in demo users

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM: stop accepting connections, wait for active
  requests (30s timeout), close the database, exit.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/warp/rent-ledger/api"
	"github.com/warp/rent-ledger/auth"
	"github.com/warp/rent-ledger/config"
	"github.com/warp/rent-ledger/gateway"
	"github.com/warp/rent-ledger/store/sqlite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	port := flag.Int("port", cfg.Port, "HTTP server port")
	dbPath := flag.String("db", cfg.DBPath, "SQLite database path")
	credsPath := flag.String("credentials", cfg.CredentialsPath, "YAML credentials file")
	flag.Parse()

	creds, err := config.LoadCredentials(*credsPath)
	if err != nil {
		log.Fatalf("Failed to load credentials: %v", err)
	}

	store, err := sqlite.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer store.Close()

	svc := gateway.New(store, auth.NewStaticProvider(creds))
	if err := svc.Init(context.Background()); err != nil {
		log.Fatalf("Failed to seed ledger: %v", err)
	}

	router := api.NewRouter(api.NewHandler(svc))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on http://localhost:%d", *port)
		log.Printf("API available at http://localhost:%d/api", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
