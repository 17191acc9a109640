package ofxconfig

// Provider is the CI service ofx runs under.
type Provider int

const (
	// ProviderNone means ofx runs outside CI, or under a CI service it does not know.
	ProviderNone Provider = iota
	ProviderAppveyor
	ProviderTravis
)

// detectProvider returns the provider flagged in ci. Appveyor wins when both
// providers are flagged. Providers are only considered under CI.
func detectProvider(ci CIEnvs) Provider {
	switch {
	case !bool(ci.CI):
		return ProviderNone
	case bool(ci.Appveyor):
		return ProviderAppveyor
	case bool(ci.Travis):
		return ProviderTravis
	default:
		return ProviderNone
	}
}

func (p Provider) String() string {
	switch p {
	case ProviderAppveyor:
		return "appveyor"
	case ProviderTravis:
		return "travis"
	default:
		return "none"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Provider) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// SlugVariable is the variable holding the "owner/name" slug of the repository being built.
func (p Provider) SlugVariable() string {
	switch p {
	case ProviderAppveyor:
		return "APPVEYOR_PROJECT_SLUG"
	case ProviderTravis:
		return "TRAVIS_REPO_SLUG"
	default:
		return ""
	}
}

// BranchVariable is the variable holding the branch being built.
func (p Provider) BranchVariable() string {
	switch p {
	case ProviderAppveyor:
		return "APPVEYOR_REPO_BRANCH"
	case ProviderTravis:
		return "TRAVIS_BRANCH"
	default:
		return ""
	}
}

func (p Provider) slug(e ProviderEnvs) string {
	switch p {
	case ProviderAppveyor:
		return e.AppveyorSlug
	case ProviderTravis:
		return e.TravisSlug
	default:
		return ""
	}
}

func (p Provider) branch(e ProviderEnvs) string {
	switch p {
	case ProviderAppveyor:
		return e.AppveyorBranch
	case ProviderTravis:
		return e.TravisBranch
	default:
		return ""
	}
}
