package main

import (
	"fmt"

	"github.com/leighmacdonald/wgapi/internal/styles"
	"github.com/leighmacdonald/wgapi/pkg/wargaming"
	"github.com/spf13/cobra"
)

func newServersCmd() *cobra.Command {
	var plain bool

	serversCmd := &cobra.Command{
		Use:               "servers",
		Short:             "List the known API realms",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run: func(cmd *cobra.Command, _ []string) {
			rows := make([][]string, 0)
			for _, server := range wargaming.Servers() {
				rows = append(rows, []string{server.Name, server.Host})
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), styles.RenderTable([]string{"Realm", "Host"}, rows, plain))
		},
	}

	serversCmd.Flags().BoolVar(&plain, "plain", false, "Render without borders or colours")

	return serversCmd
}

func newLanguagesCmd() *cobra.Command {
	var plain bool

	languagesCmd := &cobra.Command{
		Use:               "languages",
		Short:             "List the known language codes",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run: func(cmd *cobra.Command, _ []string) {
			rows := make([][]string, 0)
			for _, language := range wargaming.Languages() {
				rows = append(rows, []string{language.String(), language.Name()})
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), styles.RenderTable([]string{"Code", "Language"}, rows, plain))
		},
	}

	languagesCmd.Flags().BoolVar(&plain, "plain", false, "Render without borders or colours")

	return languagesCmd
}
