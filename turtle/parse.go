package turtle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	ErrUnknownOpcode      = errors.New("unknown opcode")
	ErrMissingArgument    = errors.New("missing argument")
	ErrUnexpectedArgument = errors.New("unexpected argument")
	ErrBadArgument        = errors.New("bad argument")
)

// ParseError reports a line of an emitted script that could not be read.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseLine reads one emitted line (without its newline) back into a Command.
// Tokens are separated by exactly one space and the argument must be in the
// exact form FormatArg writes, so "1.50", "0x1p4" or "inf" are rejected.
func ParseLine(line string) (Command, error) {
	tokens := strings.Split(line, " ")
	op := Opcode(tokens[0])
	if !op.Valid() {
		return Command{}, ErrUnknownOpcode
	}

	if !op.TakesArg() {
		if len(tokens) > 1 {
			return Command{}, ErrUnexpectedArgument
		}
		return Command{Op: op}, nil
	}

	switch {
	case len(tokens) < 2:
		return Command{}, ErrMissingArgument
	case len(tokens) > 2:
		return Command{}, ErrUnexpectedArgument
	}

	v, err := strconv.ParseFloat(tokens[1], 64)
	if err != nil {
		return Command{}, fmt.Errorf("%w: %v", ErrBadArgument, err)
	}
	if FormatArg(v) != tokens[1] {
		return Command{}, fmt.Errorf("%w: %q is not written as %q", ErrBadArgument, tokens[1], FormatArg(v))
	}
	return Command{Op: op, Arg: v, HasArg: true}, nil
}

// ParseScript reads every line of r. It stops at the first bad line and
// returns a *ParseError for it along with the commands read so far.
func ParseScript(r io.Reader) ([]Command, error) {
	var cmds []Command
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		text := scanner.Text()
		cmd, err := ParseLine(text)
		if err != nil {
			return cmds, &ParseError{Line: n, Text: text, Err: err}
		}
		cmds = append(cmds, cmd)
	}
	if err := scanner.Err(); err != nil {
		return cmds, fmt.Errorf("failed to read script: %w", err)
	}
	return cmds, nil
}
