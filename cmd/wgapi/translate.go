package main

import (
	"fmt"

	"github.com/leighmacdonald/wgapi/internal/styles"
	"github.com/leighmacdonald/wgapi/pkg/wargaming"
	"github.com/spf13/cobra"
)

func newTranslateCmd() *cobra.Command {
	var (
		namespace string
		list      bool
		plain     bool
	)

	translateCmd := &cobra.Command{
		Use:   "translate [CODE]",
		Short: "Translate an API error code into a readable message",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if list || len(args) == 0 {
				rows := make([][]string, 0)
				for _, code := range wargaming.KnownErrorCodes() {
					rows = append(rows, []string{code, wargaming.TranslateError(code, namespace)})
				}

				_, _ = fmt.Fprintln(out, styles.RenderTable([]string{"Code", "Message"}, rows, plain))

				return nil
			}

			_, _ = fmt.Fprintln(out, wargaming.TranslateError(args[0], namespace))

			return nil
		},
	}

	translateCmd.Flags().StringVar(&namespace, "namespace", "", "Namespace of the failed call, used for METHOD_NOT_FOUND")
	translateCmd.Flags().BoolVar(&list, "list", false, "List all known error codes")
	translateCmd.Flags().BoolVar(&plain, "plain", false, "Render the listing without borders or colours")

	return translateCmd
}
