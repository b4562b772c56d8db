package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"flowdoc/internal/adapters/console"
	"flowdoc/internal/adapters/sqlite"
	"flowdoc/internal/adapters/webflow"
	"flowdoc/internal/config"
	"flowdoc/internal/ports"
)

var (
	configPath   string
	collectionID string
	verbose      bool

	cfg     *config.Config
	service ports.CollectionService
	logger  *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "flowdoc-cli",
	Short: "Read and edit documentation items in a Webflow CMS collection",
	Long: `flowdoc-cli reads and writes documentation items stored in a Webflow
CMS collection.

Nested values inside an item's field data are addressed with dot paths,
e.g. content.sections.0.text. Credentials come from the config file
(~/.config/flowdoc/config.toml) or the environment:
WEBFLOW_API_TOKEN, WEBFLOW_SITE_ID and WEBFLOW_COLLECTION_ID.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

		// Skip initialization for commands that need no credentials
		switch cmd.Name() {
		case "help", "completion", "version":
			return nil
		}

		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if collectionID != "" {
			loaded.CollectionID = collectionID
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = loaded

		service = webflow.NewClient(cfg.APIToken,
			webflow.WithBaseURL(cfg.BaseURL),
			webflow.WithTimeout(cfg.Timeout.Duration),
			webflow.WithLogger(logger),
		)
		logger.Debug("configured", "collection", cfg.CollectionID, "base_url", cfg.BaseURL)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		console.NewPrinter(os.Stderr).Error(err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	rootCmd.PersistentFlags().StringVarP(&collectionID, "collection", "c", "", "collection ID (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log requests to stderr")
}

// GetService returns the initialized collection service
func GetService() ports.CollectionService {
	return service
}

// openIndex opens the local summary index; callers close it
func openIndex() (*sqlite.Index, error) {
	index := sqlite.NewIndex()
	if err := index.Open(cfg.IndexPath); err != nil {
		return nil, fmt.Errorf("failed to open index %s: %w", cfg.IndexPath, err)
	}
	return index, nil
}

func printer(cmd *cobra.Command) *console.Printer {
	return console.NewPrinter(cmd.OutOrStdout())
}

func outputDir(flag string) string {
	if flag != "" {
		return flag
	}
	return cfg.OutputDir
}
