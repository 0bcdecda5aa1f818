package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/charmbracelet/fang"
	_ "github.com/joho/godotenv/autoload"
	"github.com/leighmacdonald/wgapi/internal/config"
	"github.com/leighmacdonald/wgapi/internal/styles"
	"github.com/spf13/cobra"
)

var (
	BuildVersion   = "master"
	BuildCommit    = "00000000"
	BuildDate      = time.Now().Format("2006-01-02T15:04:05Z")
	BuildGoVersion = runtime.Version()
)

var errApp = errors.New("application error")

// rootFlags are the persistent flags shared by every command.
type rootFlags struct {
	configFile string
	insecure   bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:           "wgapi",
		Short:         "Wargaming.net API client",
		Long:          `wgapi - Query the Wargaming.net public API from the command line or an MCP client`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	persistent := rootCmd.PersistentFlags()
	persistent.StringVar(&flags.configFile, "config", config.Path(config.DefaultConfigName+".yaml"), "Config file path")
	persistent.String("application-id", "", "Application id from the developer room")
	persistent.String("language", "", "Response language code, eg: en, ru, zh-cn")
	persistent.String("server", "", "Realm (eu, na, ru, asia, kr) or api host")
	persistent.BoolVar(&flags.insecure, "insecure", false, "Disable TLS certificate verification")
	persistent.Duration("timeout", 0, "HTTP request timeout")
	persistent.String("log-level", "", "Log level: debug, info, warn, error")
	persistent.String("log-file", "", "Log file name under the state directory, stderr when empty")

	rootCmd.AddCommand(
		newGetCmd(flags),
		newTranslateCmd(),
		newServersCmd(),
		newLanguagesCmd(),
		newMCPCmd(flags),
		newInitCmd(flags),
		newVersionCmd(),
	)

	return rootCmd
}

func main() {
	if err := fang.Execute(context.Background(), newRootCmd()); err != nil {
		slog.Error("Exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Long:              "Print detailed version information about wgapi",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s\n\n", styles.Title.Render("wgapi - Wargaming.net API client"))
			_, _ = fmt.Fprintf(out, "  Version: %s\n", BuildVersion)
			_, _ = fmt.Fprintf(out, "  Commit:  %s\n", BuildCommit)
			_, _ = fmt.Fprintf(out, "  Built:   %s\n", BuildDate)
			_, _ = fmt.Fprintf(out, "  Runtime: %s\n\n", BuildGoVersion)
		},
	}
}

// loadConfig reads the config file, environment and flags, in increasing order of
// precedence, and installs the logger. The returned closer releases the log file.
func loadConfig(cmd *cobra.Command, flags *rootFlags) (config.Config, *config.Loader, io.Closer, error) {
	loader := config.NewLoader()
	loader.UseFile(flags.configFile)

	if err := loader.BindFlags(cmd.Flags()); err != nil {
		return config.Config{}, nil, nil, errors.Join(err, errApp)
	}

	conf, errRead := loader.Read()
	if errRead != nil {
		return config.Config{}, nil, nil, errors.Join(errRead, errApp)
	}

	if cmd.Flags().Changed("insecure") {
		conf.SSLVerification = !flags.insecure
	}

	logCloser, errLogger := config.LoggerInit(conf.LogFile, conf.Level())
	if errLogger != nil {
		return config.Config{}, nil, nil, errors.Join(errLogger, errApp)
	}

	slog.Debug("Loaded config", slog.String("path", loader.Path()),
		slog.String("server", conf.Server), slog.String("language", conf.Language))

	return conf, loader, logCloser, nil
}

func closeLogger(closer io.Closer) {
	if err := closer.Close(); err != nil {
		slog.Error("Failed to close log file", slog.String("error", err.Error()))
	}
}
