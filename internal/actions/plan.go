package actions

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/alexandremahdhaoui/ofx/pkg/flaterrors"
	"github.com/alexandremahdhaoui/ofx/pkg/ofxconfig"
)

const githubBaseURL = "https://github.com"

// ErrIncompleteConfig is returned when a field a step depends on could not be resolved.
var ErrIncompleteConfig = errors.New("incomplete configuration")

// Step is one command of a plan.
type Step struct {
	Description string
	Args        []string
}

// String renders the step as a shell command line.
func (s Step) String() string {
	quoted := make([]string, 0, len(s.Args))
	for _, a := range s.Args {
		if a == "" || strings.ContainsAny(a, " \t\"'$\\") {
			a = strconv.Quote(a)
		}

		quoted = append(quoted, a)
	}

	return strings.Join(quoted, " ")
}

// Plan returns the steps cfg.Command is made of, for the given GOOS.
func Plan(cfg ofxconfig.ResolvedConfig, goos string) ([]Step, error) {
	switch cfg.Command {
	case ofxconfig.CommandBootstrap:
		return planBootstrap(cfg, goos)
	case ofxconfig.CommandClean:
		return planClean(cfg)
	case ofxconfig.CommandInstall:
		return planInstall(cfg)
	default:
		return nil, flaterrors.Join(fmt.Errorf("no plan for command %q", cfg.Command), ofxconfig.ErrInvalidCommand)
	}
}

// planBootstrap clones openFrameworks and the addon on CI, where neither is
// checked out yet, then downloads the openFrameworks libraries.
func planBootstrap(cfg ofxconfig.ResolvedConfig, goos string) ([]Step, error) {
	if err := requireFields(map[string]string{
		"ofRoot":          cfg.OfRoot,
		"paths.ofScripts": cfg.Paths.OfScripts,
	}); err != nil {
		return nil, err
	}

	var steps []Step

	if cfg.IsCI {
		if err := requireFields(map[string]string{
			"addonName":   cfg.AddonName,
			"paths.addon": cfg.Paths.Addon,
		}); err != nil {
			return nil, err
		}

		steps = append(steps,
			cloneStep("Clone openFrameworks", cfg.OfClone, "openFrameworks", cfg.OfRoot),
			cloneStep("Clone addon "+cfg.AddonName, cfg.AddonClone, cfg.AddonName, cfg.Paths.Addon),
		)
	}

	steps = append(steps, Step{
		Description: "Download openFrameworks libraries",
		Args: []string{
			filepath.Join(cfg.Paths.OfScripts, platformScriptsDir(goos), "download_libs.sh"),
			"--silent",
		},
	})

	return steps, nil
}

// planClean removes the ignored build output of the addon.
func planClean(cfg ofxconfig.ResolvedConfig) ([]Step, error) {
	if err := requireFields(map[string]string{"paths.addon": cfg.Paths.Addon}); err != nil {
		return nil, err
	}

	return []Step{{
		Description: "Remove ignored build output of " + filepath.Base(cfg.Paths.Addon),
		Args:        []string{"git", "-C", cfg.Paths.Addon, "clean", "-d", "--force", "-X"},
	}}, nil
}

// planInstall generates the example projects of the addon and builds each of them.
func planInstall(cfg ofxconfig.ResolvedConfig) ([]Step, error) {
	if err := requireFields(map[string]string{
		"ofRoot":                 cfg.OfRoot,
		"paths.addon":            cfg.Paths.Addon,
		"paths.projectGenerator": cfg.Paths.ProjectGenerator,
	}); err != nil {
		return nil, err
	}

	steps := []Step{{
		Description: "Generate example projects",
		Args: []string{
			filepath.Join(cfg.Paths.ProjectGenerator, "projectGenerator"),
			"--recursive",
			"-o" + cfg.OfRoot,
			cfg.Paths.Addon,
		},
	}}

	examples, err := filepath.Glob(filepath.Join(cfg.Paths.Addon, "example*"))
	if err != nil {
		return nil, err
	}

	sort.Strings(examples)

	for _, dir := range examples {
		steps = append(steps, Step{
			Description: "Build " + filepath.Base(dir),
			Args:        []string{"make", "-j" + strconv.Itoa(cfg.Jobs), "-C", dir},
		})
	}

	return steps, nil
}

func cloneStep(description string, spec ofxconfig.CloneSpec, repo, dest string) Step {
	args := []string{"git", "clone", "--depth", strconv.Itoa(spec.Depth)}
	if spec.Branch != "" {
		args = append(args, "--branch", spec.Branch)
	}

	return Step{
		Description: description,
		Args:        append(args, fmt.Sprintf("%s/%s/%s.git", githubBaseURL, spec.Username, repo), dest),
	}
}

func requireFields(fields map[string]string) error {
	var missing []string
	for name, v := range fields {
		if v == "" {
			missing = append(missing, name)
		}
	}

	if len(missing) == 0 {
		return nil
	}

	sort.Strings(missing)

	return flaterrors.Join(fmt.Errorf("unresolved %s", strings.Join(missing, ", ")), ErrIncompleteConfig)
}

func platformScriptsDir(goos string) string {
	switch goos {
	case "darwin":
		return "osx"
	case "windows":
		return "vs"
	default:
		return "linux"
	}
}
