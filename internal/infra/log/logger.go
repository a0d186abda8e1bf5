package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"lounge/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
	// Output overrides stdout, e.g. for commands that print results there.
	Output io.Writer `name:"log_output" optional:"true"`
}

// New creates the process logger. Every record carries the service name and
// environment so logs from the API and the migration command can be told apart.
func New(params Params) (*slog.Logger, error) {
	level, err := parseLogLevel(params.Config.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	out := params.Output
	if out == nil {
		out = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if params.Config.Env.Log.Pretty {
		handler = slog.NewTextHandler(out, opts)
	} else {
		handler = slog.NewJSONHandler(out, opts)
	}

	return slog.New(handler).With(
		slog.String("service", serviceName(params.Config)),
		slog.String("env", params.Config.Env.Env),
	), nil
}

func serviceName(cfg *config.Config) string {
	if cfg.Env.ServiceName == "" {
		return "lounge"
	}

	return cfg.Env.ServiceName
}

// parseLogLevel converts string log level to slog.Level
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
