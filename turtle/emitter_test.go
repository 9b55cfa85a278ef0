package turtle

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func emitted(f func(e *Emitter)) string {
	var buf bytes.Buffer
	f(New(&buf))
	return buf.String()
}

func TestEmitterOutput(t *testing.T) {
	tests := []struct {
		name     string
		call     func(e *Emitter)
		expected string
	}{
		{"PenUp", func(e *Emitter) { e.PenUp() }, "pu\n"},
		{"PenDown", func(e *Emitter) { e.PenDown() }, "pd\n"},
		{"Forward", func(e *Emitter) { e.Forward(100) }, "fd 100\n"},
		{"ForwardNegative", func(e *Emitter) { e.Forward(-50) }, "fd -50\n"},
		{"ForwardFraction", func(e *Emitter) { e.Forward(12.5) }, "fd 12.5\n"},
		{"Backward", func(e *Emitter) { e.Backward(30) }, "fd -30\n"},
		{"Right", func(e *Emitter) { e.Right(90) }, "rt 90\n"},
		{"Left", func(e *Emitter) { e.Left(90) }, "rt -90\n"},
		{"LeftNegative", func(e *Emitter) { e.Left(-45) }, "rt 45\n"},
		{"BackwardZero", func(e *Emitter) { e.Backward(0) }, "fd 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := emitted(tt.call); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestBackwardMatchesNegatedForward(t *testing.T) {
	for _, d := range []float64{0, 1, -1, 100, -50, 0.25, 1e6, -3.75} {
		back := emitted(func(e *Emitter) { e.Backward(d) })
		fwd := emitted(func(e *Emitter) { e.Forward(-d) })
		if back != fwd {
			t.Errorf("Backward(%v) = %q, Forward(%v) = %q", d, back, -d, fwd)
		}
	}
}

func TestLeftMatchesNegatedRight(t *testing.T) {
	for _, a := range []float64{0, 90, -90, 45.5, 360, -720} {
		left := emitted(func(e *Emitter) { e.Left(a) })
		right := emitted(func(e *Emitter) { e.Right(-a) })
		if left != right {
			t.Errorf("Left(%v) = %q, Right(%v) = %q", a, left, -a, right)
		}
	}
}

func TestEmitterAliases(t *testing.T) {
	groups := []struct {
		name     string
		calls    []func(e *Emitter)
		expected string
	}{
		{"pen up", []func(e *Emitter){(*Emitter).PenUp, (*Emitter).Pu, (*Emitter).Up}, "pu\n"},
		{"pen down", []func(e *Emitter){(*Emitter).PenDown, (*Emitter).Pd, (*Emitter).Down}, "pd\n"},
		{"forward", []func(e *Emitter){
			func(e *Emitter) { e.Forward(7) },
			func(e *Emitter) { e.Fd(7) },
		}, "fd 7\n"},
		{"backward", []func(e *Emitter){
			func(e *Emitter) { e.Backward(7) },
			func(e *Emitter) { e.Bk(7) },
			func(e *Emitter) { e.Back(7) },
		}, "fd -7\n"},
		{"right", []func(e *Emitter){
			func(e *Emitter) { e.Right(15) },
			func(e *Emitter) { e.Rt(15) },
		}, "rt 15\n"},
		{"left", []func(e *Emitter){
			func(e *Emitter) { e.Left(15) },
			func(e *Emitter) { e.Lt(15) },
		}, "rt -15\n"},
	}

	for _, g := range groups {
		t.Run(g.name, func(t *testing.T) {
			for i, call := range g.calls {
				if got := emitted(call); got != g.expected {
					t.Errorf("call %d: Expected %q, got %q", i, g.expected, got)
				}
			}
		})
	}
}

func TestFormatArg(t *testing.T) {
	tests := []struct {
		in       float64
		expected string
	}{
		{100, "100"},
		{-50, "-50"},
		{0.5, "0.5"},
		{math.Copysign(0, -1), "0"},
		{1e21, "1000000000000000000000"},
		{math.Inf(1), "+Inf"},
		{math.NaN(), "NaN"},
	}

	for _, tt := range tests {
		if got := FormatArg(tt.in); got != tt.expected {
			t.Errorf("FormatArg(%v): Expected %q, got %q", tt.in, tt.expected, got)
		}
	}
}

type failingWriter struct {
	calls int
}

var errSinkClosed = errors.New("sink closed")

func (w *failingWriter) Write(p []byte) (int, error) {
	w.calls++
	return 0, errSinkClosed
}

func TestEmitterKeepsFirstWriteError(t *testing.T) {
	w := &failingWriter{}
	e := New(w)

	if e.Err() != nil {
		t.Fatalf("Expected no error before writing, got %v", e.Err())
	}

	e.PenUp()
	e.Forward(10)

	if !errors.Is(e.Err(), errSinkClosed) {
		t.Errorf("Expected sink error, got %v", e.Err())
	}
	if w.calls != 2 {
		t.Errorf("Expected one write per call (2), got %d", w.calls)
	}
}

type recorder struct {
	cmds []Command
}

func (r *recorder) Observe(c Command) {
	r.cmds = append(r.cmds, c)
}

func TestEmitterObserver(t *testing.T) {
	var buf bytes.Buffer
	rec := &recorder{}
	e := New(&buf, WithObserver(rec))

	e.PenDown()
	e.Back(20)
	e.Lt(90)

	expected := []Command{
		{Op: OpPenDown},
		{Op: OpForward, Arg: -20, HasArg: true},
		{Op: OpRight, Arg: -90, HasArg: true},
	}
	if len(rec.cmds) != len(expected) {
		t.Fatalf("Expected %d observed commands, got %d", len(expected), len(rec.cmds))
	}
	for i := range expected {
		if rec.cmds[i] != expected[i] {
			t.Errorf("command %d: Expected %+v, got %+v", i, expected[i], rec.cmds[i])
		}
	}
}

func TestEmitterObserverSkipsFailedWrites(t *testing.T) {
	rec := &recorder{}
	e := New(&failingWriter{}, WithObserver(rec))

	e.PenDown()
	e.Forward(1)

	if len(rec.cmds) != 0 {
		t.Errorf("Expected no observed commands after failed writes, got %+v", rec.cmds)
	}
}

func TestPackageLevelFunctions(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })

	PenUp()
	Pu()
	Up()
	PenDown()
	Pd()
	Down()
	Forward(100)
	Fd(100)
	Backward(100)
	Bk(100)
	Back(100)
	Right(90)
	Rt(90)
	Left(90)
	Lt(90)

	expected := "pu\npu\npu\npd\npd\npd\nfd 100\nfd 100\nfd -100\nfd -100\nfd -100\nrt 90\nrt 90\nrt -90\nrt -90\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}
