package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yzke/dlog/internal/config"
	"github.com/yzke/dlog/internal/store"
)

// version is set via ldflags at build time
var version = "dev"

var dbPath string

// logger writes diagnostics to stderr; command output goes to stdout.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

func main() {
	cfg, err := config.LoadDefault()
	if err != nil {
		logger.Fatal("load config", "err", err)
	}

	rootCmd := newRootCmd(cfg)
	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dlog",
		Short: "Directory-scoped developer log",
		Long: `dlog records timestamped notes tied to the directory you are
working in, stored in a local SQLite database. Retrieve them later by
directory (optionally recursive), tag, date, or keyword.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", cfg.DBPath, "database path")

	rootCmd.AddCommand(
		initCmd(),
		logCmd(cfg),
		getCmd(cfg),
		fixCmd(cfg),
		delCmd(),
	)

	return rootCmd
}

func openStore() (*store.Store, error) {
	return store.Open(dbPath)
}
