package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/querylens/querylens/internal/schema"
	"github.com/spf13/cobra"
)

var compactOutput bool

// schemasCmd represents the schemas command
var schemasCmd = &cobra.Command{
	Use:   "schemas",
	Short: "Inspect synthesized query schemas",
	Long: "Commands for listing the per-collection schema registrations and resolving the synthesized " +
		"JSON Schema for a collection's query documents.",
}

// listSchemasCmd represents the list command
var listSchemasCmd = &cobra.Command{
	Use:   "list",
	Short: "List schema registrations",
	Long:  `Display one schema URI and file match pattern per collection in the target database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := connectDatabase()
		if err != nil {
			return err
		}
		defer conn.Close()

		ctx, cancel := context.WithTimeout(context.Background(), opTimeout())
		defer cancel()

		registrations, err := schema.New().RegisterCollections(ctx, conn.Source())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "URI\tFILE MATCH")
		for _, reg := range registrations {
			fmt.Fprintf(w, "%s\t%s\n", reg.URI, strings.Join(reg.FileMatch, ", "))
		}
		return w.Flush()
	},
}

// showSchemaCmd represents the show command
var showSchemaCmd = &cobra.Command{
	Use:   "show [collection-name]",
	Short: "Resolve and print a collection's query schema",
	Long: `Sample documents from the named collection and print the synthesized JSON Schema for its ` +
		`query documents.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := connectDatabase()
		if err != nil {
			return err
		}
		defer conn.Close()

		ctx, cancel := context.WithTimeout(context.Background(), opTimeout())
		defer cancel()

		out, err := schema.New().ResolveCollectionSchema(ctx, conn.Source(), args[0])
		if err != nil {
			return err
		}

		if compactOutput {
			fmt.Println(out)
			return nil
		}

		var buf bytes.Buffer
		if err := json.Indent(&buf, []byte(out), "", "  "); err != nil {
			return fmt.Errorf("invalid schema output: %w", err)
		}
		fmt.Println(buf.String())
		return nil
	},
}

func init() {
	showSchemaCmd.Flags().BoolVar(&compactOutput, "compact", false, "Print the schema without indentation")
}
