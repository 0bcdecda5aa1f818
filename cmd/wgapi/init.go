package main

import (
	"errors"
	"fmt"

	"github.com/leighmacdonald/wgapi/internal/styles"
	"github.com/spf13/cobra"
)

func newInitCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the current settings to the config file",
		Long: `Write the effective settings (config file, environment and flags merged) to the
config file, creating it under the user config directory when none exists.

  wgapi init --application-id <id> --server na`,
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

			if root.configFile != "" {
				loader.SetConfigFile(root.configFile)
			}

			written, errWrite := loader.Write(conf)
			if errWrite != nil {
				return errors.Join(errWrite, errApp)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), styles.KeyValue("wrote", written))

			return nil
		},
	}
}
