//go:build nodebug

package tslogger

// compiledDefaultLevel is pinned to 0, the level DbgLvl reports when DEBUG
// is unset. submit does not consult it; facilityCompiledIn below is what
// turns submit into a no-op.
const compiledDefaultLevel = 0

// facilityCompiledIn is false under -tags nodebug: NewLogger still
// returns a usable Logger value (so callers never need their own build
// tags) but its coordinator is never spawned and submit is a single
// return, giving the facility zero runtime cost.
const facilityCompiledIn = false
