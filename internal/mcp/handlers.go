package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/leighmacdonald/wgapi/internal/config"
	"github.com/leighmacdonald/wgapi/internal/encoding"
	"github.com/leighmacdonald/wgapi/pkg/wargaming"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handlers contains the tool handlers. The client can be swapped while requests are in
// flight.
type Handlers struct {
	client atomic.Pointer[wargaming.Client]
}

func NewHandlers(client *wargaming.Client) *Handlers {
	handlers := &Handlers{}
	handlers.SetClient(client)

	return handlers
}

// SetClient replaces the client used by subsequent calls. nil is ignored.
func (h *Handlers) SetClient(client *wargaming.Client) {
	if client == nil {
		return
	}

	h.client.Store(client)
}

func (h *Handlers) Client() *wargaming.Client {
	return h.client.Load()
}

// Reload applies every config received on changes until ctx is done. Configs that
// cannot produce a client are logged and skipped.
func (h *Handlers) Reload(ctx context.Context, changes <-chan config.Config) {
	for {
		select {
		case <-ctx.Done():
			return
		case conf := <-changes:
			client, errClient := conf.NewClient()
			if errClient != nil {
				slog.Error("Failed to apply config change", slog.String("error", errClient.Error()))

				continue
			}

			h.SetClient(client)
			slog.Info("Reloaded api client", slog.String("server", client.Server().String()),
				slog.String("language", client.Language().String()))
		}
	}
}

// HandleGet handles the wargaming_get tool.
func (h *Handlers) HandleGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	namespace, err := req.RequireString("namespace")
	if err != nil || strings.TrimSpace(namespace) == "" {
		return mcp.NewToolResultError("namespace is required"), nil
	}

	client := h.Client()
	if client == nil {
		return mcp.NewToolResultError("no application_id configured"), nil
	}

	args := req.GetArguments()

	options := wargaming.Options{}
	if raw, ok := args["options"].(map[string]any); ok {
		for key, value := range raw {
			options[key] = value
		}
	}

	var callOpts []wargaming.CallOption
	if etag := req.GetString("etag", ""); etag != "" {
		callOpts = append(callOpts, wargaming.WithETag(etag))
	}

	if req.GetBool("headers", false) {
		callOpts = append(callOpts, wargaming.WithResponseHeaders())
	}

	resp, errGet := client.Get(ctx, namespace, options, callOpts...)
	if errGet != nil {
		return errorResult(errGet), nil
	}

	body, errMarshal := encoding.MarshalIndent(newGetResult(resp))
	if errMarshal != nil {
		return mcp.NewToolResultErrorFromErr("Failed to encode response", errMarshal), nil
	}

	return mcp.NewToolResultText(string(body)), nil
}

// HandleTranslateError handles the wargaming_translate_error tool.
func (h *Handlers) HandleTranslateError(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code, err := req.RequireString("code")
	if err != nil {
		return mcp.NewToolResultError("code is required"), nil
	}

	return mcp.NewToolResultText(wargaming.TranslateError(code, req.GetString("namespace", ""))), nil
}

// HandleServers handles the wargaming_servers tool.
func (h *Handlers) HandleServers(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var builder strings.Builder
	for _, named := range wargaming.Servers() {
		fmt.Fprintf(&builder, "%s\t%s\n", named.Name, named.Host)
	}

	return mcp.NewToolResultText(builder.String()), nil
}

// HandleLanguages handles the wargaming_languages tool.
func (h *Handlers) HandleLanguages(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var builder strings.Builder
	for _, language := range wargaming.Languages() {
		fmt.Fprintf(&builder, "%s\t%s\n", language, language.Name())
	}

	return mcp.NewToolResultText(builder.String()), nil
}

type getResult struct {
	StatusCode  int               `json:"status_code"`
	NotModified bool              `json:"not_modified"`
	ETag        string            `json:"etag,omitempty"`
	Meta        *wargaming.Meta   `json:"meta,omitempty"`
	Headers     wargaming.Headers `json:"headers,omitempty"`
	Data        wargaming.Value   `json:"data,omitempty"`
}

func newGetResult(resp *wargaming.Response) getResult {
	result := getResult{
		StatusCode:  resp.StatusCode,
		NotModified: resp.NotModified,
		ETag:        resp.ETag,
		Headers:     resp.Headers,
		Data:        resp.Data,
	}

	if !resp.NotModified {
		meta := resp.Meta
		result.Meta = &meta
	}

	return result
}

func errorResult(err error) *mcp.CallToolResult {
	var apiErr *wargaming.Error
	if !errors.As(err, &apiErr) {
		return mcp.NewToolResultErrorFromErr("Request failed", err)
	}

	text := fmt.Sprintf("%s (code %d): %s", apiErr.Kind, apiErr.Code, apiErr.Message)
	if apiErr.Field != "" {
		text += fmt.Sprintf(" [field=%s value=%s]", apiErr.Field, apiErr.Value)
	}

	return mcp.NewToolResultError(text)
}
