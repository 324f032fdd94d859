//go:build !debug

package cliutil

// Debug is false in an ordinary build. Build with `-tags debug` to
// flip it, the Go equivalent of the original engine's do-debug Cargo
// feature flag.
const Debug = false
