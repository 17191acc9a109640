package ofxconfig

import (
	"strings"

	"github.com/caarlos0/env/v11"
)

// ----------------------------------------------------- TRUTHY ----------------------------------------------------- //

// Truthy is a boolean environment flag. Any non-empty value other than
// "0", "false", "no" or "off" (case-insensitive) is true.
type Truthy bool

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Truthy) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "0", "false", "no", "off":
		*t = false
	default:
		*t = true
	}

	return nil
}

// ----------------------------------------------------- ENVS ------------------------------------------------------- //

// Envs holds every environment variable ofx reads.
type Envs struct {
	CI       CIEnvs
	Provider ProviderEnvs
	Paths    PathEnvs
	Clone    CloneEnvs
	Local    LocalEnvs
}

// CIEnvs flags the CI service ofx runs under.
type CIEnvs struct {
	CI       Truthy `env:"CI"`
	Appveyor Truthy `env:"APPVEYOR"`
	Travis   Truthy `env:"TRAVIS"`
}

// ProviderEnvs holds the repository slug and branch exported by each CI provider.
type ProviderEnvs struct {
	AppveyorSlug   string `env:"APPVEYOR_PROJECT_SLUG"`
	AppveyorBranch string `env:"APPVEYOR_REPO_BRANCH"`
	TravisSlug     string `env:"TRAVIS_REPO_SLUG"`
	TravisBranch   string `env:"TRAVIS_BRANCH"`
}

// PathEnvs overrides the derived openFrameworks and addon paths.
type PathEnvs struct {
	OfRoot               string `env:"OF_ROOT"`
	OfAddonsPath         string `env:"OF_ADDONS_PATH"`
	OfScriptsPath        string `env:"OF_SCRIPTS_PATH"`
	OfApothecaryPath     string `env:"OF_APOTHECARY_PATH"`
	ProjectGeneratorPath string `env:"OF_PROJECT_GENERATOR_PATH"`

	AddonPath           string `env:"THIS_ADDON_PATH"`
	AddonSharedPath     string `env:"THIS_ADDON_SHARED_PATH"`
	AddonSharedDataPath string `env:"THIS_ADDON_SHARED_DATA_PATH"`
	AddonScriptsPath    string `env:"THIS_ADDON_SCRIPTS_PATH"`
}

// CloneEnvs overrides how openFrameworks and the addon are cloned.
// Depths are kept as strings so that malformed values are reported as
// ErrInvalidArgument rather than as parse errors.
type CloneEnvs struct {
	DefaultDepth string `env:"DEFAULT_CLONE_DEPTH" envDefault:"1"`

	OfDepth    string `env:"OF_CLONE_DEPTH"`
	OfBranch   string `env:"OF_CLONE_BRANCH"`
	OfUsername string `env:"OF_CLONE_USERNAME"`

	AddonDepth    string `env:"ADDON_CLONE_DEPTH"`
	AddonBranch   string `env:"ADDON_CLONE_BRANCH"`
	AddonUsername string `env:"ADDON_CLONE_USERNAME"`
}

// LocalEnvs is used to find the current user when the OS lookup fails.
type LocalEnvs struct {
	User     string `env:"USER"`
	Username string `env:"USERNAME"`
}

// ParseEnvs reads Envs from snapshot. The process environment is never consulted.
func ParseEnvs(snapshot map[string]string) (Envs, error) {
	if snapshot == nil {
		// a nil Environment makes env fall back to os.Environ.
		snapshot = map[string]string{}
	}

	out := Envs{} //nolint:exhaustruct // unmarshal

	if err := env.ParseWithOptions(&out, env.Options{Environment: snapshot}); err != nil { //nolint:exhaustruct
		return Envs{}, err
	}

	return out, nil
}
