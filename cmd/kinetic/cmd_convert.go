package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/kinetic/grid"
	"github.com/katalvlaran/kinetic/handpath"
	"github.com/katalvlaran/kinetic/motion"
)

func newConvertCmd(a *app) *cobra.Command {
	var (
		color, mode, rotation, prop string
		points                      bool
		deadZone                    float64
	)
	cmd := &cobra.Command{
		Use:   "convert <loc|x,y> <loc|x,y>...",
		Short: "Convert a drawn hand path into motion records",
		Example: `  kinetic convert n e s --rotation cw
  kinetic convert --points 0,-100 100,0 0,100 --color red`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := motion.ParseColor(color)
			if err != nil {
				return err
			}
			rot, err := motion.ParseRotation(rotation)
			if err != nil {
				return err
			}
			p := a.cfg.PropType
			if prop != "" {
				if p, err = motion.ParsePropType(prop); err != nil {
					return err
				}
			}
			m := a.cfg.GridMode
			if mode != "" {
				if m, err = grid.ParseMode(mode); err != nil {
					return err
				}
			}

			rec, err := handpath.NewRecorder(c, m)
			if err != nil {
				return err
			}
			rec.SetSnapOptions(grid.SnapOptions{DeadZone: deadZone})
			for _, arg := range args {
				if points {
					pt, err := parsePoint(arg)
					if err != nil {
						return err
					}
					if _, err := rec.AddPoint(pt); err != nil {
						return err
					}
					continue
				}
				l, err := grid.ParseLocation(arg)
				if err != nil {
					return err
				}
				if err := rec.Add(l); err != nil {
					return err
				}
			}

			path := rec.Path()
			a.logger.Debug("hand path recorded",
				zap.String("color", string(c)),
				zap.String("mode", string(m)),
				zap.Int("segments", len(path.Segments)),
			)
			motions, err := handpath.ConvertHandPathToMotions(path, rot, p)
			if err != nil {
				return err
			}

			return a.render(cmd.OutOrStdout(), motions)
		},
	}
	cmd.Flags().StringVar(&color, "color", string(motion.Blue), "Hand color: blue or red")
	cmd.Flags().StringVarP(&mode, "mode", "m", "", "Grid mode (default from config)")
	cmd.Flags().StringVarP(&rotation, "rotation", "r", string(motion.Clockwise), "Prop rotation: cw, ccw or none")
	cmd.Flags().StringVar(&prop, "prop", "", "Prop type (default from config)")
	cmd.Flags().BoolVar(&points, "points", false, "Arguments are x,y pointer samples snapped to the grid")
	cmd.Flags().Float64Var(&deadZone, "dead-zone", grid.DefaultSnapOptions().DeadZone, "Ignore samples closer than this to the centre")

	return cmd
}

// parsePoint parses "x,y" in screen coordinates.
func parsePoint(s string) (grid.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return grid.Point{}, fmt.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return grid.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return grid.Point{}, fmt.Errorf("point %q: %w", s, err)
	}

	return grid.Point{X: x, Y: y}, nil
}
