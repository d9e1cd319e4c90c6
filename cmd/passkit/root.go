package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/passkit/pkg/config"
	"github.com/dmitrymomot/passkit/pkg/logger"
)

// cliConfig holds environment-driven defaults; command-line flags win
// over them when set explicitly.
type cliConfig struct {
	Length       int    `env:"PASSKIT_LENGTH" envDefault:"12"`
	Count        int    `env:"PASSKIT_COUNT" envDefault:"1"`
	ProfilesFile string `env:"PASSKIT_PROFILES_FILE"`
	LogFormat    string `env:"PASSKIT_LOG_FORMAT" envDefault:"text"`
}

var (
	cfg cliConfig
	log *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "passkit",
	Short: "Generate secure random passwords",
	Long: `passkit generates cryptographically secure random passwords that
satisfy explicit composition rules: a target length plus any mix of
uppercase letters, lowercase letters, digits, and special characters.
Every selected character class is guaranteed to appear at least once,
and candidates containing predictable fragments (repeated runs,
sequential runs, keyboard rows) are rejected and regenerated.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := config.Load(&cfg); err != nil {
			return err
		}
		format := logger.Format(cfg.LogFormat)
		switch format {
		case logger.FormatJSON, logger.FormatText:
		default:
			return fmt.Errorf("invalid PASSKIT_LOG_FORMAT %q: must be %q or %q",
				cfg.LogFormat, logger.FormatJSON, logger.FormatText)
		}
		log = logger.New(
			logger.WithFormat(format),
			logger.WithOutput(cmd.ErrOrStderr()),
		)
		return nil
	},
}
