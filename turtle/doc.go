// Package turtle emits turtle drawing instructions as text lines.
//
// Each operation writes exactly one line of the form
//
//	<opcode>[ <argument>]
//
// where the opcode is one of pu, pd, fd or rt. Backward and Left are not
// opcodes of their own: they are written as fd and rt with the argument
// negated. Arguments are passed through as plain numbers; the package attaches
// no unit to them and keeps no position or heading.
//
// The package-level functions write to standard output through a shared
// Emitter. Use New to write somewhere else, or SetOutput to redirect the
// shared one.
package turtle
