package ofxconfig

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/alexandremahdhaoui/ofx/internal/gitutil"
	"github.com/alexandremahdhaoui/ofx/pkg/flaterrors"
)

const (
	// ofRootDirName is the folder openFrameworks is cloned into under the home directory on CI.
	ofRootDirName = "openFrameworks"
	// ofCloneUsername owns the upstream openFrameworks repository.
	ofCloneUsername = "openFrameworks"
	// defaultCloneDepth is used when DEFAULT_CLONE_DEPTH is unset.
	defaultCloneDepth = "1"

	// The ofx script lives in <OF_ROOT>/addons/<addon>/scripts/<dir>.
	addonLevels  = 2
	ofRootLevels = 4
)

// Resolver builds ResolvedConfig values. Every collaborator is injected so that
// resolution only depends on its inputs.
type Resolver struct {
	// Env is the environment snapshot. It is never written.
	Env map[string]string
	// ScriptDir is the directory holding the ofx script.
	ScriptDir string
	// GOOS selects the project generator flavour.
	GOOS string

	HomeDir     func() (string, error)
	CurrentUser func() (string, error)
	// Branch returns the git branch checked out in dir.
	Branch func(dir string) (string, error)

	Logger *zap.Logger
}

// NewResolver returns a Resolver querying the OS and git for local introspection.
func NewResolver(snapshot map[string]string, scriptDir string, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Resolver{
		Env:         snapshot,
		ScriptDir:   scriptDir,
		GOOS:        runtime.GOOS,
		HomeDir:     homeDir(snapshot),
		CurrentUser: currentUsername,
		Branch:      gitutil.GetCurrentBranch,
		Logger:      logger,
	}
}

// homeDir prefers HOME from the snapshot over the OS lookup.
func homeDir(snapshot map[string]string) func() (string, error) {
	return func() (string, error) {
		if home := snapshot["HOME"]; home != "" {
			return home, nil
		}

		return os.UserHomeDir()
	}
}

func currentUsername() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", err
	}

	return u.Username, nil
}

// ----------------------------------------------------- RESOLVE ---------------------------------------------------- //

// Resolve validates args and resolves every field of the configuration.
// It returns an error wrapping ErrInvalidCommand or ErrInvalidArgument, and
// never a partially filled ResolvedConfig.
func (r *Resolver) Resolve(args Args) (ResolvedConfig, error) {
	command, err := ParseCommand(args.Command)
	if err != nil {
		return ResolvedConfig{}, err
	}

	if args.Jobs <= 0 {
		return ResolvedConfig{}, flaterrors.Join(
			fmt.Errorf("jobs must be a positive integer, got %d", args.Jobs), ErrInvalidArgument)
	}

	if args.Verbosity < 0 {
		return ResolvedConfig{}, flaterrors.Join(
			fmt.Errorf("verbosity must not be negative, got %d", args.Verbosity), ErrInvalidArgument)
	}

	envs, err := ParseEnvs(r.Env)
	if err != nil {
		return ResolvedConfig{}, flaterrors.Join(err, ErrInvalidArgument)
	}

	res := resolution{
		r:        r,
		logger:   r.logger(),
		args:     args,
		envs:     envs,
		provider: detectProvider(envs.CI),
	}

	out := ResolvedConfig{
		Command:              command,
		Jobs:                 args.Jobs,
		Verbosity:            args.Verbosity,
		ProjectGeneratorPath: args.ProjectGeneratorPath,
		OfRootOverride:       args.OfRoot,
		IsCI:                 bool(envs.CI.CI),
		IsAppveyor:           bool(envs.CI.Appveyor),
		IsTravis:             bool(envs.CI.Travis),
		Provider:             res.provider,
		ScriptDir:            r.ScriptDir,
	}

	out.OfRoot = res.ofRoot(out.IsCI)
	out.AddonOwner, out.AddonName = res.addonIdentity(out.IsCI)
	out.Branch = res.branch(out.IsCI)
	out.Paths = res.paths(out.OfRoot, out.AddonName)

	if out.OfClone, err = res.cloneSpec("of", envs.Clone.OfDepth, envs.Clone.OfBranch, out.Branch,
		envs.Clone.OfUsername, ofCloneUsername); err != nil {
		return ResolvedConfig{}, err
	}

	if out.AddonClone, err = res.cloneSpec("addon", envs.Clone.AddonDepth, envs.Clone.AddonBranch, out.Branch,
		envs.Clone.AddonUsername, out.AddonOwner); err != nil {
		return ResolvedConfig{}, err
	}

	return out, nil
}

func (r *Resolver) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}

	return r.Logger
}

// resolution holds the inputs of a single Resolve call.
type resolution struct {
	r        *Resolver
	logger   *zap.Logger
	args     Args
	envs     Envs
	provider Provider
}

func (res resolution) first(field string, layers ...layer) string {
	return firstNonEmpty(res.logger, field, layers...)
}

// ----------------------------------------------------- FIELDS ----------------------------------------------------- //

func (res resolution) ofRoot(isCI bool) string {
	layers := []layer{
		fromValue("--of_root", res.args.OfRoot),
		fromValue("OF_ROOT", res.envs.Paths.OfRoot),
	}

	if isCI {
		layers = append(layers, fromFunc("home directory", func() (string, error) {
			home, err := res.call(res.r.HomeDir)
			if err != nil {
				return "", err
			}

			return filepath.Join(home, ofRootDirName), nil
		}))
	} else {
		layers = append(layers, fromFunc("script directory", func() (string, error) {
			return ancestorDir(res.r.ScriptDir, ofRootLevels)
		}))
	}

	return res.first("ofRoot", layers...)
}

func (res resolution) addonIdentity(isCI bool) (owner, name string) {
	if isCI {
		owner = res.first("addonOwner", fromFunc(res.slugSource(), func() (string, error) {
			owner, _, err := res.splitSlug()
			return owner, err
		}))

		name = res.first("addonName", fromFunc(res.slugSource(), func() (string, error) {
			_, name, err := res.splitSlug()
			return name, err
		}))

		return owner, name
	}

	owner = res.first("addonOwner",
		fromFunc("current user", func() (string, error) { return res.call(res.r.CurrentUser) }),
		fromValue("USER", res.envs.Local.User),
		fromValue("USERNAME", res.envs.Local.Username),
	)

	name = res.first("addonName", fromFunc("script directory", func() (string, error) {
		dir, err := ancestorDir(res.r.ScriptDir, addonLevels)
		if err != nil {
			return "", err
		}

		return filepath.Base(dir), nil
	}))

	return owner, name
}

func (res resolution) branch(isCI bool) string {
	if isCI {
		return res.first("branch", fromFunc(res.branchSource(), func() (string, error) {
			return res.providerValue(res.provider.BranchVariable(), res.provider.branch(res.envs.Provider))
		}))
	}

	return res.first("branch", fromFunc("git", func() (string, error) {
		if res.r.ScriptDir == "" {
			return "", flaterrors.Join(errScriptDirUnknown, ErrVcsQueryFailed)
		}

		if res.r.Branch == nil {
			return "", flaterrors.Join(fmt.Errorf("no branch query configured"), ErrVcsQueryFailed)
		}

		branch, err := res.r.Branch(res.r.ScriptDir)
		if err != nil {
			return "", flaterrors.Join(err, ErrVcsQueryFailed)
		}

		return branch, nil
	}))
}

func (res resolution) paths(ofRoot, addonName string) Paths {
	var out Paths

	e := res.envs.Paths

	out.OfAddons = res.first("paths.ofAddons",
		fromValue("OF_ADDONS_PATH", e.OfAddonsPath), derived(ofRoot, "addons"))
	out.OfScripts = res.first("paths.ofScripts",
		fromValue("OF_SCRIPTS_PATH", e.OfScriptsPath), derived(ofRoot, "scripts"))
	out.OfApothecary = res.first("paths.ofApothecary",
		fromValue("OF_APOTHECARY_PATH", e.OfApothecaryPath), derived(out.OfScripts, "apothecary"))
	out.ProjectGenerator = res.first("paths.projectGenerator",
		fromValue("--project_generator_path", res.args.ProjectGeneratorPath),
		fromValue("OF_PROJECT_GENERATOR_PATH", e.ProjectGeneratorPath),
		derived(ofRoot, ProjectGeneratorDir(res.r.GOOS)))

	addonBase := ""
	if addonName != "" {
		addonBase = out.OfAddons
	}

	out.Addon = res.first("paths.addon",
		fromValue("THIS_ADDON_PATH", e.AddonPath), derived(addonBase, addonName))
	out.AddonShared = res.first("paths.addonShared",
		fromValue("THIS_ADDON_SHARED_PATH", e.AddonSharedPath), derived(out.Addon, "shared"))
	out.AddonSharedData = res.first("paths.addonSharedData",
		fromValue("THIS_ADDON_SHARED_DATA_PATH", e.AddonSharedDataPath), derived(out.AddonShared, "data"))
	out.AddonScripts = res.first("paths.addonScripts",
		fromValue("THIS_ADDON_SCRIPTS_PATH", e.AddonScriptsPath), derived(out.Addon, "scripts"))

	return out
}

func (res resolution) cloneSpec(
	prefix, depthEnv, branchEnv, branch, usernameEnv, username string,
) (CloneSpec, error) {
	upper := strings.ToUpper(prefix)

	rawDepth := res.first(prefix+"Clone.depth",
		fromValue(upper+"_CLONE_DEPTH", depthEnv),
		fromValue("DEFAULT_CLONE_DEPTH", res.envs.Clone.DefaultDepth),
		fromValue("built-in default", defaultCloneDepth),
	)

	depth, err := strconv.Atoi(rawDepth)
	if err != nil || depth <= 0 {
		return CloneSpec{}, flaterrors.Join(
			fmt.Errorf("%s clone depth must be a positive integer, got %q", prefix, rawDepth), ErrInvalidArgument)
	}

	return CloneSpec{
		Depth: depth,
		Branch: res.first(prefix+"Clone.branch",
			fromValue(upper+"_CLONE_BRANCH", branchEnv), fromValue("branch", branch)),
		Username: res.first(prefix+"Clone.username",
			fromValue(upper+"_CLONE_USERNAME", usernameEnv), fromValue("default", username)),
	}, nil
}

// ----------------------------------------------------- HELPERS ---------------------------------------------------- //

func (res resolution) slugSource() string {
	if v := res.provider.SlugVariable(); v != "" {
		return v
	}

	return "CI provider slug"
}

func (res resolution) branchSource() string {
	if v := res.provider.BranchVariable(); v != "" {
		return v
	}

	return "CI provider branch"
}

// providerValue returns value, or ErrEnvironmentAmbiguous if it is empty or no provider was detected.
func (res resolution) providerValue(name, value string) (string, error) {
	if res.provider == ProviderNone {
		return "", flaterrors.Join(fmt.Errorf("CI is set but no known CI provider was detected"), ErrEnvironmentAmbiguous)
	}

	if value == "" {
		return "", flaterrors.Join(fmt.Errorf("%s is empty or unset", name), ErrEnvironmentAmbiguous)
	}

	return value, nil
}

// splitSlug splits the provider slug "owner/name" on its first slash.
func (res resolution) splitSlug() (owner, name string, err error) {
	slug, err := res.providerValue(res.provider.SlugVariable(), res.provider.slug(res.envs.Provider))
	if err != nil {
		return "", "", err
	}

	owner, name, ok := strings.Cut(slug, "/")
	if !ok || owner == "" || name == "" {
		return "", "", flaterrors.Join(
			fmt.Errorf("%s=%q is not of the form owner/name", res.provider.SlugVariable(), slug),
			ErrEnvironmentAmbiguous)
	}

	return owner, name, nil
}

func (res resolution) call(f func() (string, error)) (string, error) {
	if f == nil {
		return "", fmt.Errorf("lookup not configured")
	}

	return f()
}

// derived joins elems onto base, or yields "" when base is unknown.
func derived(base string, elems ...string) layer {
	return fromFunc("derived", func() (string, error) {
		if base == "" {
			return "", nil
		}

		return filepath.Join(append([]string{base}, elems...)...), nil
	})
}

// ancestorDir walks levels directories up from dir and checks the result is a directory.
func ancestorDir(dir string, levels int) (string, error) {
	if dir == "" {
		return "", errScriptDirUnknown
	}

	out, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for i := 0; i < levels; i++ {
		out = filepath.Dir(out)
	}

	info, err := os.Stat(out)
	if err != nil {
		return "", err
	}

	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", out)
	}

	return out, nil
}

// ProjectGeneratorDir is the name of the project generator folder shipped with
// openFrameworks releases for goos.
func ProjectGeneratorDir(goos string) string {
	switch goos {
	case "darwin":
		return "projectGenerator-osx"
	case "windows":
		return "projectGenerator-vs"
	default:
		return "projectGenerator-linux64"
	}
}
