// Package commands maps script command names and their aliases onto the
// turtle emitter.
//
// Each operation has one canonical name (penup, pendown, forward, backward,
// right, left) and a fixed set of aliases; an alias always resolves to the
// same handler as its canonical name.
package commands
