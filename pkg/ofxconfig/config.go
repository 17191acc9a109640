package ofxconfig

// Args are the parsed command-line arguments of one invocation.
type Args struct {
	Command              string
	Jobs                 int
	Verbosity            int
	ProjectGeneratorPath string
	OfRoot               string
}

// ResolvedConfig is the fully resolved configuration of one invocation.
// It only holds values, so copies never share state.
type ResolvedConfig struct {
	Command   Command `json:"command"`
	Jobs      int     `json:"jobs"`
	Verbosity int     `json:"verbosity"`

	// ProjectGeneratorPath and OfRootOverride are the raw command-line values.
	ProjectGeneratorPath string `json:"projectGeneratorPath,omitempty"`
	OfRootOverride       string `json:"ofRootOverride,omitempty"`

	IsCI       bool     `json:"isCI"`
	IsAppveyor bool     `json:"isAppveyor"`
	IsTravis   bool     `json:"isTravis"`
	Provider   Provider `json:"provider"`

	ScriptDir  string `json:"scriptDir,omitempty"`
	OfRoot     string `json:"ofRoot"`
	AddonName  string `json:"addonName"`
	AddonOwner string `json:"addonOwner"`
	Branch     string `json:"branch"`

	Paths      Paths     `json:"paths"`
	OfClone    CloneSpec `json:"ofClone"`
	AddonClone CloneSpec `json:"addonClone"`
}

// Paths are the openFrameworks and addon locations derived from OfRoot and AddonName.
type Paths struct {
	OfAddons         string `json:"ofAddons"`
	OfScripts        string `json:"ofScripts"`
	OfApothecary     string `json:"ofApothecary"`
	ProjectGenerator string `json:"projectGenerator"`

	Addon           string `json:"addon"`
	AddonShared     string `json:"addonShared"`
	AddonSharedData string `json:"addonSharedData"`
	AddonScripts    string `json:"addonScripts"`
}

// CloneSpec describes how a repository is cloned from GitHub.
type CloneSpec struct {
	Depth    int    `json:"depth"`
	Branch   string `json:"branch"`
	Username string `json:"username"`
}
