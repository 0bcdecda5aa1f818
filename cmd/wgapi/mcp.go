package main

import (
	"errors"
	"log/slog"

	"github.com/leighmacdonald/wgapi/internal/config"
	"github.com/leighmacdonald/wgapi/internal/mcp"
	"github.com/spf13/cobra"
)

func newMCPCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run MCP (Model Context Protocol) server",
		Long: `Run an MCP server that exposes the Wargaming.net API to AI assistants.

The server communicates over stdio. Logs go to stderr or the configured log file.
Changes to the config file are applied without a restart.

Available tools:
    wargaming_get              - Call an API method
    wargaming_translate_error  - Translate an error code
    wargaming_servers          - List the known realms
    wargaming_languages        - List the known language codes

Example MCP configuration:
  {
    "mcpServers": {
      "wargaming": {
        "command": "wgapi",
        "args": ["mcp"],
        "env": {
          "WGAPI_APPLICATION_ID": "your-application-id"
        }
      }
    }
  }`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, loader, logCloser, errConf := loadConfig(cmd, root)
			if errConf != nil {
				return errConf
			}
			defer closeLogger(logCloser)

			if errValid := conf.Validate(); errValid != nil {
				return errors.Join(errValid, errApp)
			}

			client, errClient := conf.NewClient()
			if errClient != nil {
				return errors.Join(errClient, errApp)
			}

			ctx := cmd.Context()
			server := mcp.NewServer(client, BuildVersion)

			if loader.Path() != "" {
				changes := make(chan config.Config)
				loader.Watch(ctx, changes)

				go server.Reload(ctx, changes)
			}

			slog.Info("Starting MCP server", slog.String("version", BuildVersion),
				slog.String("server", client.Server().String()))

			if errServe := server.Serve(ctx); errServe != nil {
				return errors.Join(errServe, errApp)
			}

			return nil
		},
	}
}
