package turtle

import "io"

// Observer is notified of every command after it has been written
// successfully.
type Observer interface {
	Observe(c Command)
}

// Option configures an Emitter.
type Option func(*Emitter)

// WithObserver registers o to see every emitted command.
func WithObserver(o Observer) Option {
	return func(e *Emitter) {
		e.observer = o
	}
}

// Emitter writes instruction lines to a sink. It is not safe for concurrent
// use unless the sink is.
type Emitter struct {
	w        io.Writer
	observer Observer
	err      error
}

// New returns an Emitter writing to w.
func New(w io.Writer, opts ...Option) *Emitter {
	e := &Emitter{w: w}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Err returns the first error returned by the sink, if any.
func (e *Emitter) Err() error {
	return e.err
}

// Emit writes c as a single line. The observer only sees commands whose
// write succeeded.
func (e *Emitter) Emit(c Command) {
	if _, err := io.WriteString(e.w, c.String()+"\n"); err != nil {
		if e.err == nil {
			e.err = err
		}
		return
	}
	if e.observer != nil {
		e.observer.Observe(c)
	}
}

// PenUp emits "pu".
func (e *Emitter) PenUp() {
	e.Emit(Command{Op: OpPenUp})
}

// PenDown emits "pd".
func (e *Emitter) PenDown() {
	e.Emit(Command{Op: OpPenDown})
}

// Forward emits "fd <distance>".
func (e *Emitter) Forward(distance float64) {
	e.Emit(Command{Op: OpForward, Arg: distance, HasArg: true})
}

// Backward is Forward with the distance negated.
func (e *Emitter) Backward(distance float64) {
	e.Forward(-distance)
}

// Right emits "rt <angle>".
func (e *Emitter) Right(angle float64) {
	e.Emit(Command{Op: OpRight, Arg: angle, HasArg: true})
}

// Left is Right with the angle negated.
func (e *Emitter) Left(angle float64) {
	e.Right(-angle)
}

// Pu, Up, Pd, Down, Fd, Bk, Back, Rt and Lt are short names for the
// operations above; each behaves exactly like its long form.
func (e *Emitter) Pu()                   { e.PenUp() }
func (e *Emitter) Up()                   { e.PenUp() }
func (e *Emitter) Pd()                   { e.PenDown() }
func (e *Emitter) Down()                 { e.PenDown() }
func (e *Emitter) Fd(distance float64)   { e.Forward(distance) }
func (e *Emitter) Bk(distance float64)   { e.Backward(distance) }
func (e *Emitter) Back(distance float64) { e.Backward(distance) }
func (e *Emitter) Rt(angle float64)      { e.Right(angle) }
func (e *Emitter) Lt(angle float64)      { e.Left(angle) }
