package main

import (
	"log/slog"
	"os"

	"storefront/cmd"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "storefront",
	Short:         "Wholesale storefront backend",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.AddCommand(serveCmd, migrateUploadsCmd)

	// Running the binary without a subcommand starts the server.
	rootCmd.RunE = serveCmd.RunE

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("storefront: %v", err)
	}
}

type bootstrap struct {
	cfg    cmd.Config
	logger *slog.Logger
	level  slog.Level
}

func newBootstrap() (bootstrap, error) {
	cfg, err := cmd.LoadConfig()
	if err != nil {
		return bootstrap{}, err
	}

	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	return bootstrap{cfg: cfg, logger: logger, level: level}, nil
}

// echoLogLevel maps the slog level onto echo's gommon logger.
func echoLogLevel(level slog.Level) log.Lvl {
	switch {
	case level <= slog.LevelDebug:
		return log.DEBUG
	case level <= slog.LevelInfo:
		return log.INFO
	case level <= slog.LevelWarn:
		return log.WARN
	default:
		return log.ERROR
	}
}
