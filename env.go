package tslogger

import (
	"os"
	"strconv"
	"sync"

	"github.com/rs/zerolog/log"
)

// envSnapshot is the process-wide, lazily-read configuration derived from
// DEBUG and SILENCEOTR. It is read once and memoized: later mutation of
// the environment is ignored, matching the GOKANDO_WFS_TRACE env-snapshot
// idiom (read once via sync.Once, cached in package state).
var (
	envOnce       sync.Once
	envDbgLvl     int
	envSilenceOTR bool
)

func loadEnvOnce() {
	envOnce.Do(func() {
		envDbgLvl = compiledDefaultLevel

		raw, set := os.LookupEnv("DEBUG")
		if set && raw != "" && raw != "0" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				log.Fatal().Err(ErrBadDebugEnv).Str("DEBUG", raw).Msg("tslogger: invalid DEBUG environment variable")
			}
			envDbgLvl = n
			log.Info().Int("DEBUG", n).Msg("Responding to env var: DEBUG=" + raw)
		}

		val, present := os.LookupEnv("SILENCEOTR")
		switch {
		case !present:
			envSilenceOTR = false
		case val == "0" || val == "false" || val == "False":
			envSilenceOTR = false
		default:
			envSilenceOTR = true
		}
	})
}

// DbgLvl returns the process-wide debug level: the compile-time default
// unless DEBUG is set in the environment to a non-empty, non-"0" value.
func DbgLvl() int {
	loadEnvOnce()
	return envDbgLvl
}

// silenceOffTheRecord reports whether SILENCEOTR suppresses echoing of
// off-the-record messages in the scheduling loop.
func silenceOffTheRecord() bool {
	loadEnvOnce()
	return envSilenceOTR
}
