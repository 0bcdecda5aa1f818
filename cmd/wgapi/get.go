package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/leighmacdonald/wgapi/internal/encoding"
	"github.com/leighmacdonald/wgapi/internal/styles"
	"github.com/leighmacdonald/wgapi/pkg/wargaming"
	"github.com/spf13/cobra"
)

type getFlags struct {
	etag    string
	headers bool
	assoc   bool
}

type getOutput struct {
	Headers wargaming.Headers `json:"headers"`
	Data    any               `json:"data"`
}

func newGetCmd(root *rootFlags) *cobra.Command {
	flags := &getFlags{}

	getCmd := &cobra.Command{
		Use:   "get <namespace> [key=value...]",
		Short: "Call an API method and print its data",
		Long: `Call an API method and print the data member of the response as JSON.

Parameters are given as key=value pairs, eg:

  wgapi get wot/account/list search=tanker limit=5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, _, logCloser, errConf := loadConfig(cmd, root)
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

			options, errOptions := wargaming.ParseOptions(args[1:])
			if errOptions != nil {
				return errors.Join(errOptions, errApp)
			}

			var callOpts []wargaming.CallOption
			if cmd.Flags().Changed("etag") {
				callOpts = append(callOpts, wargaming.WithETag(flags.etag))
			}

			if flags.headers {
				callOpts = append(callOpts, wargaming.WithResponseHeaders())
			}

			resp, errGet := client.Get(cmd.Context(), args[0], options, callOpts...)
			if errGet != nil {
				return errGet
			}

			return printResponse(cmd, resp, flags)
		},
	}

	getCmd.Flags().StringVar(&flags.etag, "etag", "", "ETag of previously fetched data, sent as If-None-Match")
	getCmd.Flags().BoolVar(&flags.headers, "headers", false, "Include the raw response headers")
	getCmd.Flags().BoolVar(&flags.assoc, "assoc", false, "Decode data into generic maps, sorting object keys")

	return getCmd
}

func printResponse(cmd *cobra.Command, resp *wargaming.Response, flags *getFlags) error {
	if resp.ETag != "" {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), styles.KeyValue("etag", resp.ETag))
	}

	if resp.NotModified {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), styles.NoticeStyle.Render("not modified"))

		return nil
	}

	slog.Debug("Received data", slog.String("size", humanize.Bytes(uint64(len(resp.Data)))),
		slog.Int("count", resp.Meta.Count))

	var data any = resp.Data
	if flags.assoc {
		generic, errAny := resp.Data.Any()
		if errAny != nil {
			return errors.Join(errAny, errApp)
		}

		data = generic
	}

	if flags.headers {
		data = getOutput{Headers: resp.Headers, Data: data}
	}

	body, errMarshal := encoding.MarshalIndent(data)
	if errMarshal != nil {
		return errors.Join(errMarshal, errApp)
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(body))

	return nil
}
