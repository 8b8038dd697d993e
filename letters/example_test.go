package letters_test

import (
	"fmt"

	"github.com/katalvlaran/kinetic/letters"
)

// ExampleRegistry_Generate lists the patterns of letter A on the diamond grid.
func ExampleRegistry_Generate() {
	r, err := letters.NewType1Registry()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	ps, err := r.Generate("A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range ps {
		fmt.Printf("%s -> %s %s/%s %s/%s %s %s\n",
			p.StartPosition, p.EndPosition,
			p.Blue.MotionType, p.Red.MotionType,
			p.Blue.RotationDirection, p.Red.RotationDirection,
			p.Timing, p.Direction)
	}
	// Output:
	// alpha1 -> alpha3 pro/pro cw/cw split same
	// alpha1 -> alpha7 pro/pro ccw/ccw split same
}
