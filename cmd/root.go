package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/kylep/otf/auth"
	"github.com/kylep/otf/config"
	"github.com/kylep/otf/filter"
	"github.com/kylep/otf/models"
	"github.com/kylep/otf/otf"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *otf.Client

	// Command flags
	filterExpr string
	preset     string
	columns    string
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// SetVersion sets the version information from build flags
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "otf",
	Short: "A CLI for your fitness studio account",
	Long: `otf is a CLI for the studio booking service: it shows your bookings,
upcoming classes, studios, workout summaries and heart rate data as tables.`,
	PersistentPreRunE: initializeApp,
	PersistentPostRun: teardownApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(memberCmd)
	rootCmd.AddCommand(bookingsCmd)
	rootCmd.AddCommand(classesCmd)
	rootCmd.AddCommand(studiosCmd)
	rootCmd.AddCommand(workoutsCmd)
	rootCmd.AddCommand(maxHRCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the configuration and the API session
func initializeApp(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	cache, err := auth.NewFileCache(cfg.Auth.CacheDir)
	if err != nil {
		return fmt.Errorf("failed to open token cache: %w", err)
	}

	client, err = otf.NewClient(cmd.Context(), cfg.Auth.Username, cfg.Auth.Password, cache, logger,
		otf.WithTimeout(cfg.API.Timeout))
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

// teardownApp releases the API session
func teardownApp(cmd *cobra.Command, args []string) {
	if client != nil {
		client.Close()
	}
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// getFilter resolves the --filter / --preset flags into a compiled
// filter, or nil when neither is set.
func getFilter() (*filter.Filter, error) {
	expr := filterExpr
	if expr == "" && preset != "" {
		p, ok := cfg.Filters[preset]
		if !ok {
			return nil, fmt.Errorf("unknown filter preset: %s", preset)
		}
		expr = p
	}
	if expr == "" {
		return nil, nil
	}
	return filter.Compile(expr)
}

// applyFilter narrows a list to records matching the compiled filter.
func applyFilter(list *models.List, f *filter.Filter) (*models.List, error) {
	if f == nil {
		return list, nil
	}
	var kept []*models.Record
	for _, rec := range list.Records {
		ok, err := f.Match(rec.Display())
		if err != nil {
			return nil, err
		}
		if ok {
			kept = append(kept, rec)
		}
	}
	return models.NewList(list.Name, kept), nil
}

// columnsOrDefault splits a --columns flag, falling back to the entity's
// default projection.
func columnsOrDefault(defaults []string) []string {
	if columns == "" {
		return defaults
	}
	parts := strings.Split(columns, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// versionCmd prints build information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("otf %s (built %s)\n", version, buildTime)
	},
}
