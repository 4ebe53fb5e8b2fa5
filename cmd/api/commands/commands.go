package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskstore/api/internal/infrastructure/config"
	"github.com/taskstore/api/internal/infrastructure/database"
	"github.com/taskstore/api/internal/infrastructure/logger"
	"github.com/taskstore/api/internal/infrastructure/server"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the Task Store API server",
		Long:  "Start the Task Store API server with all configured routes and middleware",
		Run: func(cmd *cobra.Command, args []string) {
			runServer()
		},
	}
}

// NewDBCommand creates the database command with subcommands
func NewDBCommand() *cobra.Command {
	dbCmd := &cobra.Command{
		Use:   "db",
		Short: "Database commands",
		Long:  "Manage the local task database",
	}

	dbCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Initialize the database schema and exit",
		Run: func(cmd *cobra.Command, args []string) {
			runSchemaInit()
		},
	})

	return dbCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print Task Store version",
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Load()
			if err != nil {
				log.Fatalf("Failed to load configuration: %v", err)
			}
			fmt.Printf("%s v%s\n", cfg.App.Name, cfg.App.Version)
		},
	}
}

func runServer() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	db, err := database.New(cfg.Database)
	if err != nil {
		appLogger.Fatal("Failed to open database", "error", err)
	}
	defer db.Close()

	if err := db.EnsureSchema(context.Background()); err != nil {
		appLogger.Fatal("Failed to initialize schema", "error", err)
	}

	srv, err := server.New(cfg, db, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize server", "error", err)
	}

	appLogger.Info("Starting Task Store API server",
		"address", cfg.Server.GetAddr(),
		"database", cfg.Database.Path,
		"environment", cfg.App.Environment,
	)

	go func() {
		if err := srv.Start(cfg.Server.GetAddr()); err != nil {
			appLogger.Info("Server stopped", "error", err)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", "error", err)
	}
}

func runSchemaInit() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	db, err := database.New(cfg.Database)
	if err != nil {
		appLogger.Fatal("Failed to open database", "error", err)
	}
	defer db.Close()

	if err := db.EnsureSchema(context.Background()); err != nil {
		appLogger.Fatal("Failed to initialize schema", "error", err)
	}

	appLogger.Info("Database schema initialized", "path", cfg.Database.Path)
}
