package main

import (
	"context"

	"github.com/querylens/querylens/internal/ui"
	"github.com/spf13/cobra"
)

// databasesCmd represents the databases command
var databasesCmd = &cobra.Command{
	Use:   "databases",
	Short: "Inspect databases on the target instance",
}

// listDatabasesCmd represents the list command
var listDatabasesCmd = &cobra.Command{
	Use:   "list",
	Short: "List all databases",
	Long:  `Display the names of all databases on the connected MongoDB instance.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := connectInstance()
		if err != nil {
			return err
		}
		defer conn.Close()

		ctx, cancel := context.WithTimeout(context.Background(), opTimeout())
		defer cancel()

		names, err := conn.ListDatabases(ctx)
		if err != nil {
			return err
		}

		ui.Headerf("Databases:")
		for _, name := range names {
			ui.Printf("  %s", name)
		}
		return nil
	},
}
