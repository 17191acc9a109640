// Package ofxconfig resolves the configuration of a single ofx invocation.
//
// A Resolver turns parsed command-line Args and a snapshot of the environment
// into a ResolvedConfig. Each field is resolved exactly once by walking an
// ordered list of sources and keeping the first non-empty value:
//
//  1. explicit command-line flag
//  2. environment variable (CI provider variables under CI)
//  3. local filesystem or git introspection
//  4. built-in default
//
// CI detection reads CI, APPVEYOR and TRAVIS. Under CI the addon identity and
// branch come from the detected Provider; outside CI they are derived from the
// directory the ofx script lives in, the current user and the git branch.
//
// Failing lookups in steps 2 and 3 never abort resolution: the field falls
// through to the next source and a warning is logged. Only an invalid command
// or argument makes Resolve return an error.
package ofxconfig
