package ofxconfig

import (
	"fmt"
	"strings"

	"github.com/alexandremahdhaoui/ofx/pkg/flaterrors"
)

// Command is one of the actions ofx can perform.
type Command string

const (
	CommandBootstrap Command = "bootstrap"
	CommandClean     Command = "clean"
	CommandInstall   Command = "install"
)

// Commands returns every valid command, in the order they are documented.
func Commands() []Command {
	return []Command{CommandBootstrap, CommandClean, CommandInstall}
}

// ParseCommand returns the Command named s. Matching is exact.
func ParseCommand(s string) (Command, error) {
	for _, c := range Commands() {
		if string(c) == s {
			return c, nil
		}
	}

	names := make([]string, 0, len(Commands()))
	for _, c := range Commands() {
		names = append(names, string(c))
	}

	return "", flaterrors.Join(
		fmt.Errorf("%q is not one of %s", s, strings.Join(names, ", ")),
		ErrInvalidCommand,
	)
}
