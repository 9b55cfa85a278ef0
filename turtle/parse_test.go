package turtle

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		line     string
		expected Command
		err      error
	}{
		{"pu", Command{Op: OpPenUp}, nil},
		{"pd", Command{Op: OpPenDown}, nil},
		{"fd 100", Command{Op: OpForward, Arg: 100, HasArg: true}, nil},
		{"fd -12.5", Command{Op: OpForward, Arg: -12.5, HasArg: true}, nil},
		{"rt 90", Command{Op: OpRight, Arg: 90, HasArg: true}, nil},
		{"lt 90", Command{}, ErrUnknownOpcode},
		{"", Command{}, ErrUnknownOpcode},
		{"fd", Command{}, ErrMissingArgument},
		{"rt 1 2", Command{}, ErrUnexpectedArgument},
		{"pu 3", Command{}, ErrUnexpectedArgument},
		{"fd ten", Command{}, ErrBadArgument},
		{"fd  10", Command{}, ErrUnexpectedArgument},
		{"fd 0x1p4", Command{}, ErrBadArgument},
		{"fd inf", Command{}, ErrBadArgument},
		{"rt Infinity", Command{}, ErrBadArgument},
		{"fd 1.50", Command{}, ErrBadArgument},
		{"fd -0", Command{}, ErrBadArgument},
		{"fd +10", Command{}, ErrBadArgument},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseLine(tt.line)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Errorf("Expected error %v, got %v", tt.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestParseScriptRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	e := New(&buf)
	e.PenDown()
	for i := 0; i < 4; i++ {
		e.Forward(50)
		e.Left(90)
	}
	e.PenUp()
	e.Backward(2.5)

	cmds, err := ParseScript(&buf)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(cmds) != 11 {
		t.Fatalf("Expected 11 commands, got %d", len(cmds))
	}

	var again bytes.Buffer
	replay := New(&again)
	for _, c := range cmds {
		replay.Emit(c)
	}
	if again.String() != "pd\n"+strings.Repeat("fd 50\nrt -90\n", 4)+"pu\nfd -2.5\n" {
		t.Errorf("Unexpected replay output %q", again.String())
	}
}

func TestParseScriptReportsLine(t *testing.T) {
	cmds, err := ParseScript(strings.NewReader("pd\nfd 10\njump 3\nfd 1\n"))

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Expected *ParseError, got %v", err)
	}
	if perr.Line != 3 {
		t.Errorf("Expected line 3, got %d", perr.Line)
	}
	if perr.Text != "jump 3" {
		t.Errorf("Expected text 'jump 3', got %q", perr.Text)
	}
	if !errors.Is(err, ErrUnknownOpcode) {
		t.Errorf("Expected ErrUnknownOpcode, got %v", err)
	}
	if len(cmds) != 2 {
		t.Errorf("Expected 2 commands before the error, got %d", len(cmds))
	}
}

func TestParseLineAcceptsNonFiniteAsWritten(t *testing.T) {
	for _, line := range []string{"fd NaN", "fd +Inf", "rt -Inf"} {
		var buf bytes.Buffer
		cmd, err := ParseLine(line)
		if err != nil {
			t.Errorf("%s: Expected no error, got %v", line, err)
			continue
		}
		New(&buf).Emit(cmd)
		if buf.String() != line+"\n" {
			t.Errorf("Expected %q to re-emit unchanged, got %q", line, buf.String())
		}
	}
}
