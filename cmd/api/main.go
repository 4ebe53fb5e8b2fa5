package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/taskstore/api/cmd/api/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "taskstore",
		Short: "Task Store API Server",
		Long:  `Task Store is an HTTP/JSON CRUD service for task records, backed by a local sqlite file.`,
	}

	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewDBCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
