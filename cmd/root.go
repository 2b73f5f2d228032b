package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/devankur/portfolio/internal/config"
	"github.com/devankur/portfolio/internal/logging"
)

var (
	cfgFile   string
	appConfig *config.Config
	logger    = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio site",
	Long: `portfolio serves a single-page developer portfolio: hero, about, skills,
projects and contact sections with smooth in-page navigation and
scroll-triggered animations. Running it without a subcommand is the same as
running "portfolio serve".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return initialize(cmd)
	},
	PersistentPostRun: func(*cobra.Command, []string) {
		_ = logger.Sync()
	},
	RunE: runServe,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./portfolio.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("dev", false, "development mode: readable logs and gin debug output")
	addServeFlags(rootCmd)
}

func initialize(cmd *cobra.Command) error {
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	l, err := logging.New(cfg.LogLevel, cfg.Dev)
	if err != nil {
		return err
	}
	appConfig, logger = cfg, l
	return nil
}
