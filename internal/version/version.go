package version

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
)

const (
	devVersion = "dev"
	unknown    = "unknown"
)

// Info describes the build of the ofx binary.
type Info struct {
	// ToolName is the name printed in front of the version.
	ToolName string
	// Version is set via ldflags, falling back to the module version.
	Version string
	// CommitSHA is set via ldflags, falling back to vcs.revision.
	CommitSHA string
	// BuildTimestamp is set via ldflags, falling back to vcs.time.
	BuildTimestamp string
}

// New creates a new Info with default values.
func New(toolName string) *Info {
	return &Info{
		ToolName:       toolName,
		Version:        devVersion,
		CommitSHA:      unknown,
		BuildTimestamp: unknown,
	}
}

// Get returns version information, reading build info for values not set via ldflags.
func (i *Info) Get() (version, commit, timestamp string) {
	version, commit, timestamp = i.Version, i.CommitSHA, i.BuildTimestamp

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version, commit, timestamp
	}

	if version == devVersion && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if commit == unknown && len(setting.Value) >= 7 {
				commit = setting.Value[:7]
			}
		case "vcs.time":
			if timestamp == unknown {
				timestamp = setting.Value
			}
		}
	}

	return version, commit, timestamp
}

// Fprint writes the multi-line version report to w.
func (i *Info) Fprint(w io.Writer) {
	version, commit, timestamp := i.Get()
	_, _ = fmt.Fprintf(w, "%s version %s\n", i.ToolName, version)
	_, _ = fmt.Fprintf(w, "  commit:    %s\n", commit)
	_, _ = fmt.Fprintf(w, "  built:     %s\n", timestamp)
	_, _ = fmt.Fprintf(w, "  go:        %s\n", runtime.Version())
	_, _ = fmt.Fprintf(w, "  platform:  %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

// String returns a one-line version string.
func (i *Info) String() string {
	version, _, _ := i.Get()
	return fmt.Sprintf("%s version %s", i.ToolName, version)
}
