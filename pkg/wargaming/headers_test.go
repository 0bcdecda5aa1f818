package wargaming_test

import (
	"testing"

	"github.com/leighmacdonald/wgapi/pkg/wargaming"
	"github.com/stretchr/testify/require"
)

func TestParseHeaders(t *testing.T) {
	const block = "HTTP/1.1 200 OK\r\n" +
		"Content-Type: application/json; charset=utf-8\r\n" +
		"ETag: \"abc123\"\r\n" +
		"X-Note: a: b\r\n" +
		"X-Empty:\r\n" +
		"\r\n" +
		"{\"status\":\"ok\"}"

	headers := wargaming.ParseHeaders(block)
	require.Equal(t, wargaming.Headers{
		"HTTP/1.1 200 OK": "",
		"Content-Type":    "application/json; charset=utf-8",
		"ETag":            `"abc123"`,
		"X-Note":          "a: b",
		"X-Empty:":        "",
	}, headers)

	require.Equal(t, `"abc123"`, headers.Get("etag"))
	require.Empty(t, headers.Get("missing"))
}
