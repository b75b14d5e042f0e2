package main

import (
	"context"

	"github.com/querylens/querylens/internal/ui"
	"github.com/spf13/cobra"
)

// collectionsCmd represents the collections command
var collectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "Inspect collections in the target database",
}

// listCollectionsCmd represents the list command
var listCollectionsCmd = &cobra.Command{
	Use:   "list",
	Short: "List all collections",
	Long:  `Display the names of all collections in the target database, in the server's listing order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := connectDatabase()
		if err != nil {
			return err
		}
		defer conn.Close()

		ctx, cancel := context.WithTimeout(context.Background(), opTimeout())
		defer cancel()

		names, err := conn.Source().ListCollectionNames(ctx)
		if err != nil {
			return err
		}

		ui.Headerf("Collections in %s:", conn.Config().DatabaseName)
		for _, name := range names {
			ui.Printf("  %s", name)
		}
		return nil
	},
}
