package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/kinetic/grid"
	"github.com/katalvlaran/kinetic/handpath"
	"github.com/katalvlaran/kinetic/motion"
)

type classification struct {
	Start          grid.Location            `json:"start" yaml:"start"`
	End            grid.Location            `json:"end" yaml:"end"`
	GridMode       grid.Mode                `json:"gridMode" yaml:"gridMode"`
	HandMotionType motion.HandMotionType    `json:"handMotionType" yaml:"handMotionType"`
	Direction      motion.RotationDirection `json:"direction,omitempty" yaml:"direction,omitempty"`
	MotionTypes    []motion.MotionType      `json:"motionTypes" yaml:"motionTypes"`
}

func newClassifyCmd(a *app) *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "classify <start> <end>",
		Short: "Classify a hand movement between two locations",
		Example: `  kinetic classify n e
  kinetic classify ne sw --mode box`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := grid.ParseLocation(args[0])
			if err != nil {
				return err
			}
			end, err := grid.ParseLocation(args[1])
			if err != nil {
				return err
			}
			m, err := resolveMode(mode, start)
			if err != nil {
				return err
			}

			out := classification{
				Start:          start,
				End:            end,
				GridMode:       m,
				HandMotionType: handpath.Classify(start, end),
				MotionTypes:    handpath.AvailableMotionTypes(start, end),
			}
			// Without --mode, an end outside the start's mode has no direction.
			if mode != "" || m.Contains(end) {
				dir, ok, err := handpath.HandPathDirection(start, end, m)
				if err != nil {
					return err
				}
				if ok {
					out.Direction = dir
				}
			}

			return a.render(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", "", "Grid mode (default: the start location's mode)")

	return cmd
}

// resolveMode parses flag, falling back to the mode containing l.
func resolveMode(flag string, l grid.Location) (grid.Mode, error) {
	if flag == "" {
		return grid.ModeOf(l)
	}

	return grid.ParseMode(flag)
}
