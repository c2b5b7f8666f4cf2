package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"

	"github.com/cloudchase/ollama-tool/api"
	"github.com/cloudchase/ollama-tool/config"
	"github.com/cloudchase/ollama-tool/engine"
	"github.com/cloudchase/ollama-tool/logging"
	"github.com/cloudchase/ollama-tool/registry"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configFile string
	debug      bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "ollama-tool",
	Short: "Manage and query local Ollama models",
	Long: `A command-line tool for managing Ollama models.

Model lifecycle commands shell out to the ollama binary; generate talks to
the local Ollama HTTP API (override with OLLAMA_API_BASE).`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command. An interrupt cancels the running
// subprocess or HTTP request.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(installedCmd)
	rootCmd.AddCommand(pullCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(generateCmd)
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	if skipsConfig(cmd) {
		return nil
	}

	c, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = c

	level := logging.ParseLevel(cfg.LogLevel)
	if debug {
		level = logrus.DebugLevel
	}
	logging.InitLogger(level)
	return nil
}

// skipsConfig reports whether cmd is one of cobra's built-in help or
// completion commands, which must work even with a broken config.
func skipsConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return true
		}
	}
	return false
}

func newEngine(cmd *cobra.Command) *engine.Engine {
	return engine.New(cfg.OllamaBin,
		engine.WithStdio(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()),
		engine.WithLogger(logging.GetLogger()),
	)
}

func newClient() *api.Client {
	return api.NewClient(cfg.APIBase,
		api.WithTimeout(cfg.Timeout),
		api.WithLogger(logging.GetLogger()),
	)
}

func newCatalog() *registry.Catalog {
	c := registry.NewCatalog(cfg.CatalogURL)
	c.Client = &http.Client{Timeout: cfg.Timeout}
	c.Log = logging.GetLogger()
	return c
}
