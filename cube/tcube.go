package cube

import "fmt"

const (
	// FrameNull marks an untimed, invalid TCube. A TCube with this
	// frame is considered absent (see TCube.Valid).
	FrameNull = -1

	// FrameInf denotes "holds globally" -- the F[∞] bucket.
	FrameInf = 1<<31 - 1
)

// TCube is a (Cube, frame) pair: a cube together with the frame
// index it is timed at, or one of the FrameNull/FrameInf sentinels.
type TCube struct {
	Cube  Cube
	Frame int
}

// NullTCube is the distinguished untimed/absent TCube.
var NullTCube = TCube{Cube: Null, Frame: FrameNull}

// Valid reports whether t is a real, timed proof obligation.
func (t TCube) Valid() bool { return t.Frame != FrameNull }

// At returns a TCube pinning c at frame k.
func At(c Cube, k int) TCube { return TCube{Cube: c, Frame: k} }

func (t TCube) String() string {
	if !t.Valid() {
		return "<null@->"
	}
	frame := fmt.Sprintf("%d", t.Frame)
	if t.Frame == FrameInf {
		frame = "inf"
	}
	return fmt.Sprintf("%s@%s", t.Cube, frame)
}
