package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/kinetic/internal/config"
	"github.com/katalvlaran/kinetic/internal/logging"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	verbose    bool
	format     string
	configPath string

	cfg       *config.Config
	logger    *zap.Logger
	newLogger func(verbose bool) (*zap.Logger, error)
}

func newApp() *app {
	return &app{newLogger: logging.New}
}

// execute runs root and flushes the logger whether or not the command failed.
func (a *app) execute(ctx context.Context, root *cobra.Command) error {
	defer a.syncLogger()

	return root.ExecuteContext(ctx)
}

func (a *app) syncLogger() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "kinetic",
		Short: "Kinetic alphabet motion classification and letter generation",
		Long: `kinetic classifies hand movements between grid locations, converts
drawn hand paths into motion records and enumerates the pictographs of the
dual-shift (Type-1) letters A..V.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("format") {
				cfg.Format = a.format
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			a.cfg = cfg

			a.logger, err = a.newLogger(a.verbose)
			if err != nil {
				return err
			}
			a.logger.Debug("config loaded",
				zap.String("path", a.configPath),
				zap.String("mode", string(cfg.GridMode)),
				zap.String("prop", string(cfg.PropType)),
			)

			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().StringVarP(&a.format, "format", "f", config.FormatYAML, "Output format: yaml or json")
	root.PersistentFlags().StringVar(&a.configPath, "config", "kinetic.yaml", "Config file")

	root.AddCommand(
		newClassifyCmd(a),
		newConvertCmd(a),
		newGenerateCmd(a),
		newLettersCmd(a),
		newTablesCmd(a),
	)

	return root
}

// render writes v in the configured format.
func (a *app) render(w io.Writer, v any) error {
	switch a.cfg.Format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		return enc.Close()
	}
}
