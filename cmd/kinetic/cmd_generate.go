package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/kinetic/grid"
	"github.com/katalvlaran/kinetic/letters"
)

// generatorFlags are shared by the commands that build a registry.
type generatorFlags struct {
	tables string
	box    bool
}

func (f *generatorFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.tables, "tables", "", "YAML letter tables replacing the built-in ones")
	cmd.Flags().BoolVar(&f.box, "box", false, "Generate on the box grid")
}

// registry builds a Type-1 registry from config and flags.
func (a *app) registry(f generatorFlags) (*letters.Registry, error) {
	opts := []letters.Option{
		letters.WithLogger(a.logger),
		letters.WithPropType(a.cfg.PropType),
		letters.WithConcurrency(a.cfg.Concurrency),
	}
	mode := a.cfg.GridMode
	if f.box {
		mode = grid.Box
	}
	opts = append(opts, letters.WithGridMode(mode))

	path := a.cfg.Tables
	if f.tables != "" {
		path = f.tables
	}
	if path != "" {
		t, err := letters.LoadTablesFile(path)
		if err != nil {
			return nil, err
		}
		a.logger.Debug("letter tables loaded", zap.String("path", path))
		opts = append(opts, letters.WithTables(t))
	}

	return letters.NewType1Registry(opts...)
}

func newGenerateCmd(a *app) *cobra.Command {
	var (
		flags generatorFlags
		all   bool
	)
	cmd := &cobra.Command{
		Use:   "generate [letters...]",
		Short: "Generate the pictographs of Type-1 letters",
		Example: `  kinetic generate A C
  kinetic generate --all --box --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.registry(flags)
			if err != nil {
				return err
			}

			var ls []letters.Letter
			if !all {
				for _, arg := range args {
					l, err := letters.ParseLetter(arg)
					if err != nil {
						return err
					}
					ls = append(ls, l)
				}
			}
			if len(ls) == 0 {
				ls = r.SupportedLetters()
			}

			results, genErr := r.GenerateAll(cmd.Context(), ls...)
			out := make([]letters.Pictograph, 0)
			for _, l := range ls {
				out = append(out, results[l]...)
			}
			a.logger.Info("pictographs generated",
				zap.Int("letters", len(ls)),
				zap.Int("pictographs", len(out)),
			)
			if err := a.render(cmd.OutOrStdout(), out); err != nil {
				return err
			}

			return genErr
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&all, "all", false, "Generate every supported letter")

	return cmd
}

type letterInfo struct {
	Letter         letters.Letter         `json:"letter" yaml:"letter"`
	PositionSystem letters.PositionSystem `json:"positionSystem" yaml:"positionSystem"`
	Start          grid.Position          `json:"start" yaml:"start"`
	Patterns       int                    `json:"patterns" yaml:"patterns"`
}

func newLettersCmd(a *app) *cobra.Command {
	var flags generatorFlags
	cmd := &cobra.Command{
		Use:   "letters",
		Short: "List supported letters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.registry(flags)
			if err != nil {
				return err
			}
			tables := r.Tables()
			out := make([]letterInfo, 0)
			for _, l := range r.SupportedLetters() {
				sys, _ := tables.SystemOf(l)
				lc := tables[sys][l]
				out = append(out, letterInfo{Letter: l, PositionSystem: sys, Start: lc.Start, Patterns: lc.Combinations()})
			}

			return a.render(cmd.OutOrStdout(), out)
		},
	}
	flags.register(cmd)

	return cmd
}

func newTablesCmd(a *app) *cobra.Command {
	var flags generatorFlags
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Print the letter tables as YAML",
		Long:  "Print the letter tables in the format accepted by --tables.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.registry(flags)
			if err != nil {
				return err
			}

			return letters.MarshalTables(cmd.OutOrStdout(), r.Tables())
		},
	}
	flags.register(cmd)

	return cmd
}
