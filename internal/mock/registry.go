package mock

import (
	"fmt"
	"slices"
	"strings"
)

// Handler builds the payload for a command. args holds the full argument
// list without --json, so args[0] is the command name itself.
type Handler func(args []string) (any, error)

// Result is the canned answer to every mutating command.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// successCommands always report success without touching the state.
var successCommands = []string{"create", "modify", "delete", "setup", "passwd"}

// Registry maps command names to their handlers.
type Registry struct {
	handlers map[string]Handler
	names    []string
}

// NewRegistry creates a registry answering from the given state.
func NewRegistry(state State) *Registry {
	r := &Registry{handlers: make(map[string]Handler)}

	r.register("get-state", func([]string) (any, error) {
		return state, nil
	})
	r.register("list", listPools)

	for _, name := range successCommands {
		r.register(name, succeed)
	}

	return r
}

func (r *Registry) register(name string, h Handler) {
	r.handlers[name] = h
	r.names = append(r.names, name)
}

// Get returns the handler for a command, or nil if the mock does not know it.
func (r *Registry) Get(name string) Handler {
	return r.handlers[name]
}

// All returns the registered command names in registration order.
func (r *Registry) All() []string {
	return slices.Clone(r.names)
}

// listPools only answers when "pools" appears somewhere in args, not
// necessarily right after "list".
func listPools(args []string) (any, error) {
	if !slices.Contains(args, "pools") {
		return nil, &NotImplementedError{Command: args[0]}
	}

	return slices.Clone(Pools), nil
}

func succeed(args []string) (any, error) {
	return Result{
		Success: true,
		Message: fmt.Sprintf("Mocked '%s' command was successful.", strings.Join(args, " ")),
	}, nil
}
