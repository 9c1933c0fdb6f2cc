package logger

import (
	"os"

	"github.com/rs/zerolog"
	logger "github.com/rs/zerolog/log"

	"github.com/retrolm/retrolm/pkg/core/errs"
)

var Log = logger.With().Caller().Logger().Output(zerolog.ConsoleWriter{Out: os.Stderr})

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}

// Fatal logs err at ERROR severity and terminates the process with the
// exit code dictated by its errs.Kind. All five core error kinds are
// fatal by policy; this is the single place that policy is enforced.
func Fatal(err error) {
	Log.Error().Err(err).Msg("fatal error")
	os.Exit(errs.ExitCode(err))
}
