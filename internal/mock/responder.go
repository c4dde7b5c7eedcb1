// Package mock answers smb-zfs commands with canned JSON so a UI can be
// developed without a ZFS/Samba host.
package mock

import (
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/dennisklein/smb-zfs-mock/internal/jsonfmt"
)

// JSONFlag is accepted anywhere on the command line and ignored; the mock
// always prints JSON.
const JSONFlag = "--json"

// Config defines the collaborators of a Responder. Zero values fall back to
// the process defaults.
type Config struct {
	Stdout io.Writer
	State  *State
	Logger *zap.Logger
}

// Responder dispatches one command line to the registry and prints the result.
type Responder struct {
	stdout   io.Writer
	registry *Registry
	logger   *zap.Logger
}

// NewResponder creates a Responder from a configuration.
func NewResponder(cfg Config) *Responder {
	stdout := cfg.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	state := DefaultState()
	if cfg.State != nil {
		state = *cfg.State
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Responder{
		stdout:   stdout,
		registry: NewRegistry(state),
		logger:   logger,
	}
}

// Run answers a single command line. It returns ErrMissingCommand,
// a *NotImplementedError, or a write error; nothing is printed on failure.
func (r *Responder) Run(args []string) error {
	args = StripJSONFlag(args)
	if len(args) == 0 {
		r.logger.Debug("no command given")

		return ErrMissingCommand
	}

	command := args[0]

	handler := r.registry.Get(command)
	if handler == nil {
		r.logger.Debug("unknown command", zap.String("command", command))

		return &NotImplementedError{Command: command}
	}

	payload, err := handler(args)
	if err != nil {
		r.logger.Debug("command rejected", zap.String("command", command), zap.Error(err))

		return err
	}

	if err := jsonfmt.Fprintln(r.stdout, payload); err != nil {
		return err
	}

	r.logger.Debug("command answered", zap.String("command", command), zap.Strings("args", args[1:]))

	return nil
}

// Usage returns the usage line listing every command this responder answers.
func (r *Responder) Usage(program string) string {
	return UsageLine(program, r.registry.All())
}

// StripJSONFlag returns args without any --json token. The input is not modified.
func StripJSONFlag(args []string) []string {
	stripped := make([]string, 0, len(args))

	for _, arg := range args {
		if arg != JSONFlag {
			stripped = append(stripped, arg)
		}
	}

	return stripped
}
