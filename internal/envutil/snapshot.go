package envutil

import (
	"maps"

	"github.com/caarlos0/env/v11"
)

// Snapshot merges the variables of envFile with environ, a list of KEY=VALUE
// pairs as returned by os.Environ. Variables from environ win.
func Snapshot(environ []string, envFile string) (map[string]string, error) {
	out, err := LoadFile(envFile)
	if err != nil {
		return nil, err
	}

	maps.Copy(out, env.ToMap(environ))

	return out, nil
}
