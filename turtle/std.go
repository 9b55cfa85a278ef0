package turtle

import (
	"io"
	"os"
	"sync"
)

// stdout looks up os.Stdout on every write so reassigning it takes effect.
type stdout struct{}

func (stdout) Write(p []byte) (int, error) {
	return os.Stdout.Write(p)
}

var (
	stdMu sync.Mutex
	std   = New(stdout{})
)

// SetOutput replaces the standard emitter with one writing to w. A nil w
// restores standard output.
func SetOutput(w io.Writer) {
	if w == nil {
		w = stdout{}
	}
	stdMu.Lock()
	defer stdMu.Unlock()
	std = New(w)
}

// Default returns the emitter used by the package-level functions.
func Default() *Emitter {
	stdMu.Lock()
	defer stdMu.Unlock()
	return std
}

// PenUp emits "pu" on the standard emitter.
func PenUp() { Default().PenUp() }

// PenDown emits "pd" on the standard emitter.
func PenDown() { Default().PenDown() }

// Forward emits "fd <distance>" on the standard emitter.
func Forward(distance float64) { Default().Forward(distance) }

// Backward emits "fd <-distance>" on the standard emitter.
func Backward(distance float64) { Default().Backward(distance) }

// Right emits "rt <angle>" on the standard emitter.
func Right(angle float64) { Default().Right(angle) }

// Left emits "rt <-angle>" on the standard emitter.
func Left(angle float64) { Default().Left(angle) }

// Short names for the package-level functions, bound to the same functions.
var (
	Pu   = PenUp
	Up   = PenUp
	Pd   = PenDown
	Down = PenDown
	Fd   = Forward
	Bk   = Backward
	Back = Backward
	Rt   = Right
	Lt   = Left
)
