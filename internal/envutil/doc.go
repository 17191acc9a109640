// Package envutil builds the environment snapshot ofx resolves its
// configuration from.
//
// A snapshot is a plain map taken once at process start. It merges, in order
// of increasing precedence:
//   - variables read from an optional env file (see LoadFile)
//   - variables of the running process
//
// Resolution code only ever reads from the snapshot, never from os.Getenv.
package envutil
