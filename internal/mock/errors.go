package mock

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingCommand is returned when no command remains once --json is removed.
var ErrMissingCommand = errors.New("no command given")

// NotImplementedError reports a command the mock does not answer.
type NotImplementedError struct {
	Command string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("Mock command '%s' not implemented.", e.Command)
}

// UsageLine returns the one-line usage printed when no command is given,
// e.g. "Usage: smb-zfs {get-state|list|create}".
func UsageLine(program string, commands []string) string {
	return fmt.Sprintf("Usage: %s {%s}", program, strings.Join(commands, "|"))
}
