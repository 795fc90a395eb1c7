// supertrunfo/cmd/supertrunfo/main.go
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"supertrunfo/internal/config"
	"supertrunfo/internal/game/match"
	"supertrunfo/internal/input"
	"supertrunfo/internal/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, input.ErrEndOfInput) {
			fmt.Fprintln(os.Stderr, "Erro:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var flags config.Config

	cmd := &cobra.Command{
		Use:   "supertrunfo",
		Short: "Super Trunfo - Paises: registra duas cartas e compara atributo por atributo",
		Long: `Super Trunfo - Paises.

Reads two cards (state A-H, code like A01, city, population, area, PIB and
tourist spots), computes population density, PIB per capita and super power,
then compares card 1 against card 2 on every attribute.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = flags.LogLevel
			}
			if cmd.Flags().Changed("format") {
				cfg.Format = flags.Format
			}
			if cmd.Flags().Changed("locale") {
				cfg.Locale = flags.Locale
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := newLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return run(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, logger)
		},
	}

	cmd.Flags().StringVar(&flags.LogLevel, "log-level", "warn", "log level (debug, info, warn, error); logs go to stderr")
	cmd.Flags().StringVar(&flags.Format, "format", "text", "report format (text, json, yaml)")
	cmd.Flags().StringVar(&flags.Locale, "locale", "", "BCP 47 locale for numbers in the text report, e.g. pt-BR")
	return cmd
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// run registers card 1 and card 2, then prints the report. Prompts move to
// errOut when stdout carries a JSON or YAML document.
func run(in io.Reader, out, errOut io.Writer, cfg *config.Config, logger *zap.Logger) error {
	renderer, err := report.New(cfg.Format, cfg.Locale)
	if err != nil {
		return err
	}

	prompts := out
	if !report.Interactive(cfg.Format) {
		prompts = errOut
	}
	collector := input.NewCollector(in, prompts, logger)

	card1, err := collector.CollectCard(1)
	if err != nil {
		return endOfInput(prompts, logger, err)
	}
	fmt.Fprintln(prompts)
	card2, err := collector.CollectCard(2)
	if err != nil {
		return endOfInput(prompts, logger, err)
	}

	m, err := match.New(card1, card2)
	if err != nil {
		return err
	}
	wins1, wins2 := m.Wins()
	logger.Info("match resolved",
		zap.String("match_id", m.ID),
		zap.String("card1", card1.Code()),
		zap.String("card2", card2.Code()),
		zap.Int("card1_wins", wins1),
		zap.Int("card2_wins", wins2),
	)

	return renderer.Render(out, m)
}

func endOfInput(w io.Writer, logger *zap.Logger, err error) error {
	if errors.Is(err, input.ErrEndOfInput) {
		fmt.Fprint(w, "\nEntrada encerrada (EOF). Finalizando.\n")
		logger.Error("input closed before both cards were registered")
	}
	return err
}
