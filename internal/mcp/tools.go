package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

const (
	ToolGet            = "wargaming_get"
	ToolTranslateError = "wargaming_translate_error"
	ToolServers        = "wargaming_servers"
	ToolLanguages      = "wargaming_languages"
)

func ToolDefinitions() []mcp.Tool {
	return []mcp.Tool{
		toolGet(),
		toolTranslateError(),
		toolServers(),
		toolLanguages(),
	}
}

func toolGet() mcp.Tool {
	return mcp.NewTool(ToolGet,
		mcp.WithDescription(`Call a Wargaming.net API method and return its data as JSON.

The namespace selects the method, eg: wot/account/list, wot/account/info, wgn/servers/info.
application_id and language are added automatically.`),
		mcp.WithString("namespace",
			mcp.Description("API method path, eg: wot/account/list"),
			mcp.Required(),
		),
		mcp.WithObject("options",
			mcp.Description(`Method parameters, eg: {"search": "tanker", "limit": 10}. Arrays are sent comma separated.`),
		),
		mcp.WithString("etag",
			mcp.Description("ETag of previously fetched data. When unchanged the result reports not_modified."),
		),
		mcp.WithBoolean("headers",
			mcp.Description("Include the raw response headers"),
		),
	)
}

func toolTranslateError() mcp.Tool {
	return mcp.NewTool(ToolTranslateError,
		mcp.WithDescription("Translate an API error code such as REQUEST_LIMIT_EXCEEDED into a readable message"),
		mcp.WithString("code",
			mcp.Description("Error code returned by the API"),
			mcp.Required(),
		),
		mcp.WithString("namespace",
			mcp.Description("Namespace of the failed call, used for METHOD_NOT_FOUND"),
		),
	)
}

func toolServers() mcp.Tool {
	return mcp.NewTool(ToolServers,
		mcp.WithDescription("List the known API realms and their hosts"),
	)
}

func toolLanguages() mcp.Tool {
	return mcp.NewTool(ToolLanguages,
		mcp.WithDescription("List the known language codes"),
	)
}
