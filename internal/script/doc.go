// Package script loads turtle scripts and runs them through the command
// registry.
//
// A text script has one command per line, "name [arg]", where name is any
// canonical command name or alias. Everything after '#' is a comment. A YAML
// script holds the same commands as a list of steps:
//
//	steps:
//	  - cmd: pd
//	  - cmd: forward
//	    args: [100]
package script
