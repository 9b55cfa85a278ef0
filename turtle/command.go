package turtle

import (
	"strconv"
	"strings"
)

// Opcode is the first token of an emitted line.
type Opcode string

const (
	OpPenUp   Opcode = "pu"
	OpPenDown Opcode = "pd"
	OpForward Opcode = "fd"
	OpRight   Opcode = "rt"
)

// TakesArg reports whether lines with this opcode carry a numeric argument.
func (op Opcode) TakesArg() bool {
	return op == OpForward || op == OpRight
}

// Valid reports whether op is one of the four known opcodes.
func (op Opcode) Valid() bool {
	switch op {
	case OpPenUp, OpPenDown, OpForward, OpRight:
		return true
	default:
		return false
	}
}

// Command is a single instruction: an opcode and, for fd and rt, its argument.
type Command struct {
	Op     Opcode
	Arg    float64
	HasArg bool
}

// String formats the command as it is written, without the trailing newline.
func (c Command) String() string {
	if !c.HasArg {
		return string(c.Op)
	}
	var b strings.Builder
	b.WriteString(string(c.Op))
	b.WriteByte(' ')
	b.WriteString(FormatArg(c.Arg))
	return b.String()
}

// FormatArg returns the textual form of an argument. Whole numbers have no
// decimal point; negative zero is written as 0.
func FormatArg(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
