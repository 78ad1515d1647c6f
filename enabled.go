//go:build !lognop

package log

// enabled gates every entry point of the facility. Building with the
// lognop tag flips it to false, turning all logging calls and setters into
// no-ops the compiler removes entirely.
const enabled = true
