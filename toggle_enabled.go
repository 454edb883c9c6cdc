//go:build !nodebug

package tslogger

// compiledDefaultLevel is the process-wide default dbgLvl baked into this
// build. DEBUG in the environment still overrides it (see env.go).
const compiledDefaultLevel = 0

// facilityCompiledIn reports whether this build includes the logging
// facility's coordinator. Pass -tags nodebug to compile it out entirely.
const facilityCompiledIn = true
