//go:build lognop

package log

// Stripped build profile: every logging call and setter compiles to a
// no-op.
const enabled = false
