package ofxconfig

import "errors"

var (
	// ErrInvalidCommand is returned when the requested command is not one of Commands().
	ErrInvalidCommand = errors.New("invalid command")
	// ErrInvalidArgument is returned for a non-positive job count or clone depth,
	// or a negative verbosity.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrVcsQueryFailed is logged when the local git branch cannot be read.
	ErrVcsQueryFailed = errors.New("vcs query failed")
	// ErrEnvironmentAmbiguous is logged when a variable expected under the
	// detected CI provider is missing or malformed.
	ErrEnvironmentAmbiguous = errors.New("environment ambiguous")

	errScriptDirUnknown = errors.New("script directory unknown")
)
