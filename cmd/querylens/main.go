package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/querylens/querylens/internal/config"
	"github.com/querylens/querylens/internal/ui"
	"github.com/spf13/cobra"
)

var (
	configFile string
	noColor    bool

	flagProfile  string
	flagHost     string
	flagPort     int
	flagUsername string
	flagDatabase string
	flagTLS      bool

	version = "0.1.0"
	// Build information, injected at link time
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// printVersionInfo displays detailed version information
func printVersionInfo() {
	fmt.Printf("querylens v%s\n", version)
	fmt.Printf("Built: %s, from commit: %s\n", BuildTime, GitCommit)
	fmt.Printf("Go version: %s\n", runtime.Version())
	fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "querylens",
	Short: "MongoDB query-schema inspector",
	Long: "Connects to a MongoDB deployment, samples documents from its collections, and synthesizes " +
		"JSON Schemas describing each collection's query surface.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Lookup("version") != nil && cmd.Flags().Lookup("version").Changed {
			printVersionInfo()
			return nil
		}
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.Errorf("%v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", config.DefaultPath(), "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "Connection profile from the config file")
	rootCmd.PersistentFlags().StringVar(&flagHost, "host", "", "MongoDB host (overrides the profile)")
	rootCmd.PersistentFlags().IntVar(&flagPort, "port", 0, "MongoDB port (overrides the profile)")
	rootCmd.PersistentFlags().StringVar(&flagUsername, "username", "", "MongoDB username (overrides the profile)")
	rootCmd.PersistentFlags().StringVar(&flagDatabase, "database", "", "Database name (overrides the profile)")
	rootCmd.PersistentFlags().BoolVar(&flagTLS, "tls", false, "Connect with TLS")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable color output")

	rootCmd.Flags().Bool("version", false, "Show version information and exit")

	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	cobra.OnInitialize(func() {
		if noColor || os.Getenv("NO_COLOR") != "" {
			ui.DisableColor()
		}
		if err := config.Init(configFile); err != nil {
			ui.Errorf("initializing config: %v", err)
			os.Exit(1)
		}
	})

	setupCommands()
}

func setupCommands() {
	rootCmd.AddCommand(databasesCmd)
	databasesCmd.AddCommand(listDatabasesCmd)

	rootCmd.AddCommand(collectionsCmd)
	collectionsCmd.AddCommand(listCollectionsCmd)

	rootCmd.AddCommand(schemasCmd)
	schemasCmd.AddCommand(listSchemasCmd)
	schemasCmd.AddCommand(showSchemaCmd)
}

func main() {
	Execute()
}
