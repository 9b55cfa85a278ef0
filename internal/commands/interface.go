package commands

import (
	"context"
	"sort"
)

// CommandHandler defines the interface for command handlers
type CommandHandler interface {
	// Handle executes the command with its textual parameters
	Handle(ctx context.Context, params []string) error

	// GetName returns the canonical command name
	GetName() string

	// GetDescription returns a human-readable description
	GetDescription() string

	// GetAliases returns the other names the command answers to
	GetAliases() []string
}

// CommandRegistry manages available commands and their aliases
type CommandRegistry struct {
	handlers map[string]CommandHandler
	aliases  map[string]string
}

// NewCommandRegistry creates a new command registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		handlers: make(map[string]CommandHandler),
		aliases:  make(map[string]string),
	}
}

// Register adds a command handler and its aliases to the registry.
// A later registration under the same name or alias replaces the earlier one.
func (r *CommandRegistry) Register(handler CommandHandler) {
	name := handler.GetName()
	r.handlers[name] = handler
	for _, alias := range handler.GetAliases() {
		r.aliases[alias] = name
	}
}

// Resolve maps a name or alias to its canonical command name
func (r *CommandRegistry) Resolve(name string) (string, bool) {
	if _, exists := r.handlers[name]; exists {
		return name, true
	}
	canonical, exists := r.aliases[name]
	return canonical, exists
}

// Get returns a command handler by name or alias
func (r *CommandRegistry) Get(name string) (CommandHandler, bool) {
	canonical, exists := r.Resolve(name)
	if !exists {
		return nil, false
	}
	handler, exists := r.handlers[canonical]
	return handler, exists
}

// List returns all registered canonical command names in sorted order
func (r *CommandRegistry) List() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute looks up a command by name or alias and runs it
func (r *CommandRegistry) Execute(ctx context.Context, name string, params []string) error {
	handler, exists := r.Get(name)
	if !exists {
		return &CommandError{Code: ErrUnknownCommand, Message: "Unknown command", Details: name}
	}
	return handler.Handle(ctx, params)
}

// CommandError represents a command-specific error
type CommandError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (e *CommandError) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

// Common error codes
const (
	ErrInvalidParams  = "INVALID_PARAMS"
	ErrUnknownCommand = "UNKNOWN_COMMAND"
)
