package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"adminctl/internal/backend"
	"adminctl/internal/config"
	"adminctl/internal/domain"
	"adminctl/internal/eventbus"
	"adminctl/internal/ui"
)

var (
	configPath string
	baseURL    string
	logFile    string
	verbose    bool
	force      bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "adminctl [applications|opportunities]",
	Short: "Terminal admin console for applications and opportunities",
	Long: `adminctl lists the rows of an admin resource and lets you search,
filter, select, delete, toggle status and run bulk actions against the
backend's admin endpoints.

Configuration is read from ~/.config/adminctl/config.toml and ADMINCTL_*
environment variables; flags override both.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		zcfg.OutputPaths = []string{logFile}
		zcfg.ErrorOutputPaths = []string{logFile}
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runConsole,
}

var initConfigCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Write a default configuration file",
	Args:  cobra.NoArgs,
	RunE:  initConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ~/.config/adminctl/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "adminctl.log", "file the structured log is written to")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	rootCmd.Flags().StringVar(&baseURL, "base-url", "", "backend base URL, overrides the config file")
	initConfigCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	rootCmd.AddCommand(initConfigCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func resolveConfigPath(svc config.ConfigService) string {
	if configPath != "" {
		return configPath
	}
	return svc.DefaultPath()
}

func runConsole(cmd *cobra.Command, args []string) error {
	svc := config.NewConfigService()
	path := resolveConfigPath(svc)

	cfg, err := svc.LoadFromPath(path)
	if err != nil {
		return err
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if len(args) == 1 {
		res, ok := domain.ResourceByName(args[0])
		if !ok {
			return fmt.Errorf("unknown resource %q: want applications or opportunities", args[0])
		}
		cfg.Resource = res.Name
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.Info("starting",
		zap.String("config", path),
		zap.String("base_url", cfg.BaseURL),
		zap.String("resource", cfg.Resource))

	client, err := backend.NewClient(cfg, backend.WithLogger(logger))
	if err != nil {
		return err
	}

	bus := eventbus.New(logger)
	defer bus.Close()
	unsubscribe := eventbus.SubscribeAudit(bus, logger)
	defer unsubscribe()

	model := ui.NewModel(cfg, client, bus, logger.Named("ui"))
	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	svc := config.NewConfigService()
	path := resolveConfigPath(svc)

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := svc.SaveToPath(config.DefaultConfig(), path); err != nil {
		return err
	}
	logger.Info("wrote default config", zap.String("path", path))
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
