package config

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path"

	"github.com/adrg/xdg"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flagKeys maps command line flag names onto config keys.
var flagKeys = map[string]string{ //nolint:gochecknoglobals
	"application-id": "application_id",
	"language":       "language",
	"server":         "server",
	"timeout":        "http_timeout",
	"log-level":      "log_level",
	"log-file":       "log_file",
}

// Loader handles setting up viper, loading configuration from files, and broadcasting configuration changes.
type Loader struct {
	*viper.Viper
	changes chan<- Config
	done    <-chan struct{}
}

func NewLoader() *Loader {
	loader := Loader{Viper: viper.New()}
	loader.SetDefault("application_id", "")
	loader.SetDefault("language", "en")
	loader.SetDefault("server", "eu")
	loader.SetDefault("ssl_verification", true)
	loader.SetDefault("http_timeout", DefaultHTTPTimeout)
	loader.SetDefault("log_level", DefaultLogLevel)
	loader.SetDefault("log_file", "")
	loader.SetConfigName(DefaultConfigName)
	loader.SetConfigType("yaml")
	loader.SetEnvPrefix(EnvPrefix)
	loader.AddConfigPath(path.Join(xdg.ConfigHome, ConfigDirName))
	loader.AddConfigPath(".")
	loader.AutomaticEnv()

	return &loader
}

// UseFile points the loader at an explicit config file. Missing files are ignored so
// the search paths and environment still apply.
func (cl *Loader) UseFile(configFile string) {
	if configFile == "" {
		return
	}

	if _, err := os.Stat(configFile); err != nil {
		slog.Debug("Config file not found, using search paths", slog.String("path", configFile))

		return
	}

	cl.SetConfigFile(configFile)
}

// BindFlags binds the known persistent flags so explicitly set flags override the file
// and the environment.
func (cl *Loader) BindFlags(flags *pflag.FlagSet) error {
	for flagName, key := range flagKeys {
		flag := flags.Lookup(flagName)
		if flag == nil {
			continue
		}

		if err := cl.BindPFlag(key, flag); err != nil {
			return errors.Join(err, errConfigRead)
		}
	}

	return nil
}

func (cl *Loader) Path() string {
	return cl.ConfigFileUsed()
}

// Watch starts watching the config file, sending every successfully read and valid
// Config on changes. Changes seen after ctx is done are dropped.
func (cl *Loader) Watch(ctx context.Context, changes chan<- Config) {
	cl.changes = changes
	cl.done = ctx.Done()
	cl.OnConfigChange(cl.onConfigChange)
	cl.WatchConfig()
}

func (cl *Loader) onConfigChange(in fsnotify.Event) {
	if !in.Has(fsnotify.Write) && !in.Has(fsnotify.Create) && !in.Has(fsnotify.Rename) {
		return
	}

	slog.Debug("External config reload triggered", slog.String("path", in.Name))
	config, err := cl.Read()
	if err != nil {
		slog.Error("Error reading config", slog.String("error", err.Error()))

		return
	}

	if errValid := config.Validate(); errValid != nil {
		slog.Error("Ignoring invalid config", slog.String("error", errValid.Error()))

		return
	}

	cl.publish(config)
}

// publish hands config to the receiver, or drops it once the watch context is done.
func (cl *Loader) publish(config Config) bool {
	select {
	case cl.changes <- config:
		return true
	case <-cl.done:
		slog.Debug("Dropping config change, watcher stopped")

		return false
	}
}

// Write persists config to the file in use, or to the default location under
// $XDG_CONFIG_HOME when no file was loaded. The written path is returned.
func (cl *Loader) Write(config Config) (string, error) {
	cl.Set("application_id", config.ApplicationID)
	cl.Set("language", config.Language)
	cl.Set("server", config.Server)
	cl.Set("ssl_verification", config.SSLVerification)
	cl.Set("http_timeout", config.HTTPTimeout.String())
	cl.Set("log_level", config.LogLevel)
	cl.Set("log_file", config.LogFile)

	target := cl.ConfigFileUsed()
	if target == "" {
		target = Path(DefaultConfigName + ".yaml")
	}

	if err := cl.WriteConfigAs(target); err != nil {
		return "", errors.Join(err, errConfigWrite)
	}

	return target, nil
}

func (cl *Loader) Read() (Config, error) {
	if err := cl.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return Config{}, errors.Join(err, errConfigRead)
		}
	}

	var config Config
	if err := cl.Unmarshal(&config); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	return config, nil
}
