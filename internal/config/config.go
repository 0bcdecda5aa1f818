package config

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	"github.com/leighmacdonald/wgapi/internal/network"
	"github.com/leighmacdonald/wgapi/pkg/wargaming"
)

var (
	errConfigWrite   = errors.New("failed to write config file")
	errConfigRead    = errors.New("failed to read config file")
	errConfigInvalid = errors.New("invalid config")
	errLoggerInit    = errors.New("failed to initialize logger")
	errClientInit    = errors.New("failed to create api client")
)

const (
	ConfigDirName      = "wgapi"
	DefaultConfigName  = "wgapi"
	DefaultLogName     = "wgapi.log"
	EnvPrefix          = "wgapi"
	DefaultHTTPTimeout = network.DefaultTimeout
	DefaultLogLevel    = "info"
)

type Config struct {
	// ApplicationID is the id of the application registered on the developer room. It
	// is sent with every request as application_id.
	ApplicationID string `mapstructure:"application_id" validate:"required"`
	Language      string `mapstructure:"language" validate:"required,lowercase"`
	// Server is either a realm name (eu, na, ru, asia, kr) or an api hostname.
	Server          string        `mapstructure:"server" validate:"required"`
	SSLVerification bool          `mapstructure:"ssl_verification"`
	HTTPTimeout     time.Duration `mapstructure:"http_timeout" validate:"gt=0"`
	LogLevel        string        `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	// LogFile is relative to $XDG_STATE_HOME/wgapi. Empty logs to stderr.
	LogFile string `mapstructure:"log_file"`
}

// Validate checks the loaded values. Errors name the offending fields.
func (c Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		return errors.Join(err, errConfigInvalid)
	}

	return nil
}

// Level converts LogLevel into a slog.Level, defaulting to info.
func (c Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}

	return level
}

// NewClient creates an api client from the config. Extra options are applied after the
// ones derived from the config.
func (c Config) NewClient(opts ...wargaming.Option) (*wargaming.Client, error) {
	server, errServer := wargaming.ServerByName(c.Server, c.ApplicationID)
	if errServer != nil {
		return nil, errors.Join(errServer, errClientInit)
	}

	timeout := c.HTTPTimeout
	if timeout <= 0 {
		timeout = DefaultHTTPTimeout
	}

	options := append([]wargaming.Option{
		wargaming.WithSSLVerification(c.SSLVerification),
		wargaming.WithTimeout(timeout),
	}, opts...)

	client, errClient := wargaming.New(c.ApplicationID, wargaming.NewLanguage(c.Language), server, options...)
	if errClient != nil {
		return nil, errors.Join(errClient, errClientInit)
	}

	return client, nil
}

// Path generates a path pointing to the filename under this apps defined $XDG_CONFIG_HOME.
func Path(name string) string {
	fullPath, errFullPath := xdg.ConfigFile(path.Join(ConfigDirName, name))
	if errFullPath != nil {
		panic(errFullPath)
	}

	return fullPath
}

// PathState points to name under $XDG_STATE_HOME/wgapi, creating the directory.
func PathState(name string) (string, error) {
	return xdg.StateFile(path.Join(ConfigDirName, name))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// LoggerInit sets up the slog global handler. With an empty logPath records go to
// stderr, stdout is reserved for command output and the mcp protocol.
func LoggerInit(logPath string, level slog.Level) (io.Closer, error) {
	var (
		writer io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
		opts             = &slog.HandlerOptions{AddSource: false, Level: level}
	)

	if logPath != "" {
		fullPath, errPath := PathState(logPath)
		if errPath != nil {
			return nil, errors.Join(errPath, errLoggerInit)
		}

		logFile, errLogFile := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if errLogFile != nil {
			return nil, errors.Join(errLogFile, errLoggerInit)
		}

		writer = logFile
		closer = logFile
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(writer, opts)))

	return closer, nil
}
