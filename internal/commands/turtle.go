package commands

import (
	"context"
	"strconv"

	"github.com/turtle-script/turtle"
)

// PenUpCommandHandler lifts the pen
type PenUpCommandHandler struct {
	emitter *turtle.Emitter
}

// NewPenUpCommandHandler creates a new pen up command handler
func NewPenUpCommandHandler(emitter *turtle.Emitter) *PenUpCommandHandler {
	return &PenUpCommandHandler{emitter: emitter}
}

// Handle emits pu
func (h *PenUpCommandHandler) Handle(ctx context.Context, params []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(params) > 0 {
		return &CommandError{Code: ErrInvalidParams, Message: "This command does not accept parameters", Details: h.GetName()}
	}
	h.emitter.PenUp()
	return nil
}

func (h *PenUpCommandHandler) GetName() string {
	return "penup"
}

func (h *PenUpCommandHandler) GetDescription() string {
	return "Lift the pen"
}

func (h *PenUpCommandHandler) GetAliases() []string {
	return []string{"pu", "up"}
}

// PenDownCommandHandler lowers the pen
type PenDownCommandHandler struct {
	emitter *turtle.Emitter
}

// NewPenDownCommandHandler creates a new pen down command handler
func NewPenDownCommandHandler(emitter *turtle.Emitter) *PenDownCommandHandler {
	return &PenDownCommandHandler{emitter: emitter}
}

// Handle emits pd
func (h *PenDownCommandHandler) Handle(ctx context.Context, params []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(params) > 0 {
		return &CommandError{Code: ErrInvalidParams, Message: "This command does not accept parameters", Details: h.GetName()}
	}
	h.emitter.PenDown()
	return nil
}

func (h *PenDownCommandHandler) GetName() string {
	return "pendown"
}

func (h *PenDownCommandHandler) GetDescription() string {
	return "Lower the pen"
}

func (h *PenDownCommandHandler) GetAliases() []string {
	return []string{"pd", "down"}
}

// MotionCommandHandler handles the commands taking one numeric argument
type MotionCommandHandler struct {
	emitter     *turtle.Emitter
	name        string
	description string
	aliases     []string
	apply       func(e *turtle.Emitter, v float64)
}

// NewForwardCommandHandler creates the forward (fd) handler
func NewForwardCommandHandler(emitter *turtle.Emitter) *MotionCommandHandler {
	return &MotionCommandHandler{
		emitter:     emitter,
		name:        "forward",
		description: "Move forward by a distance",
		aliases:     []string{"fd"},
		apply:       (*turtle.Emitter).Forward,
	}
}

// NewBackwardCommandHandler creates the backward (bk, back) handler
func NewBackwardCommandHandler(emitter *turtle.Emitter) *MotionCommandHandler {
	return &MotionCommandHandler{
		emitter:     emitter,
		name:        "backward",
		description: "Move backward by a distance",
		aliases:     []string{"bk", "back"},
		apply:       (*turtle.Emitter).Backward,
	}
}

// NewRightCommandHandler creates the right (rt) handler
func NewRightCommandHandler(emitter *turtle.Emitter) *MotionCommandHandler {
	return &MotionCommandHandler{
		emitter:     emitter,
		name:        "right",
		description: "Turn right by an angle",
		aliases:     []string{"rt"},
		apply:       (*turtle.Emitter).Right,
	}
}

// NewLeftCommandHandler creates the left (lt) handler
func NewLeftCommandHandler(emitter *turtle.Emitter) *MotionCommandHandler {
	return &MotionCommandHandler{
		emitter:     emitter,
		name:        "left",
		description: "Turn left by an angle",
		aliases:     []string{"lt"},
		apply:       (*turtle.Emitter).Left,
	}
}

// Handle parses the single numeric parameter and emits the command
func (h *MotionCommandHandler) Handle(ctx context.Context, params []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(params) != 1 {
		return &CommandError{Code: ErrInvalidParams, Message: "Expected exactly one numeric parameter", Details: h.name}
	}

	v, err := strconv.ParseFloat(params[0], 64)
	if err != nil {
		return &CommandError{Code: ErrInvalidParams, Message: "Parameter is not a number", Details: params[0]}
	}

	h.apply(h.emitter, v)
	return nil
}

func (h *MotionCommandHandler) GetName() string {
	return h.name
}

func (h *MotionCommandHandler) GetDescription() string {
	return h.description
}

func (h *MotionCommandHandler) GetAliases() []string {
	return h.aliases
}

// RegisterTurtleCommands registers all turtle commands in the registry
func RegisterTurtleCommands(registry *CommandRegistry, emitter *turtle.Emitter) {
	registry.Register(NewPenUpCommandHandler(emitter))
	registry.Register(NewPenDownCommandHandler(emitter))
	registry.Register(NewForwardCommandHandler(emitter))
	registry.Register(NewBackwardCommandHandler(emitter))
	registry.Register(NewRightCommandHandler(emitter))
	registry.Register(NewLeftCommandHandler(emitter))
}
