package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/abelbrown/tutoriais/internal/brain"
	"github.com/abelbrown/tutoriais/internal/catalog"
	"github.com/abelbrown/tutoriais/internal/config"
	"github.com/abelbrown/tutoriais/internal/logging"
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// options are the global flags shared by every subcommand.
type options struct {
	cfgFile     string
	catalogPath string
	debug       bool
}

// env is what every subcommand needs once flags and config are resolved.
type env struct {
	cfg     *config.Config
	catalog *catalog.Catalog
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "tutoriais",
		Short:         "Browse a tutorial catalog with an AI assistant",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load()
			if err != nil {
				return err
			}
			return runBrowse(cmd.Context(), e, "")
		},
	}

	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "",
		"config file (default is ./config.yaml or ~/.tutoriais/config.yaml)")
	root.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "",
		"catalog YAML file (default is the embedded catalog)")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	root.AddCommand(
		newBrowseCommand(opts),
		newListCommand(opts),
		newShowCommand(opts),
		newAskCommand(opts),
		newServeCommand(opts),
		newVersionCommand(),
	)
	return root
}

// load resolves configuration and the catalog. Flags win over config.
func (o *options) load() (*env, error) {
	cfg, _, err := config.Load(o.cfgFile)
	if err != nil {
		return nil, err
	}
	if o.catalogPath != "" {
		cfg.Catalog.Path = o.catalogPath
	}
	if o.debug {
		cfg.Log.Level = "debug"
	}

	c, err := loadCatalog(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, catalog: c}, nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	c, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return c, nil
}

// newAssistant builds the Gemini-backed assistant. A missing credential is
// not an error: the assistant answers with fallback text instead.
func newAssistant(cfg *config.Config) *brain.Assistant {
	a := cfg.Assistant
	provider := brain.NewGeminiProvider(a.APIKey, a.Model, a.BaseURL)
	assistant := brain.NewAssistant(provider,
		brain.WithTimeout(a.Timeout),
		brain.WithSummaryChars(a.SummaryChars),
		brain.WithMaxTokens(a.MaxTokens),
		brain.WithRateLimit(a.RatePerSecond, a.RateBurst),
	)
	if !assistant.Available() {
		logging.Warn("no API key configured, assistant will use fallback answers")
	}
	return assistant
}

// logToStderr is the logging setup for non-interactive commands.
func logToStderr(cfg *config.Config) {
	logging.InitWriter(os.Stderr, cfg.Log.Level)
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			v := version
			if info, ok := debug.ReadBuildInfo(); ok && v == "dev" && info.Main.Version != "" {
				v = info.Main.Version
			}
			fmt.Fprintf(cmd.OutOrStdout(), "tutoriais version %s\n", v)
		},
	}
}
