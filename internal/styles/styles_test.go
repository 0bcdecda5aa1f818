package styles_test

import (
	"strings"
	"testing"

	"github.com/leighmacdonald/wgapi/internal/styles"
	"github.com/stretchr/testify/require"
)

func TestRenderTable(t *testing.T) {
	out := styles.RenderTable([]string{"Realm", "Host"}, [][]string{
		{"eu", "api.worldoftanks.eu"},
		{"na", "api.worldoftanks.com"},
	}, false)

	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	require.Contains(t, out, "Realm")
	require.Contains(t, out, "api.worldoftanks.eu")
	require.Contains(t, out, "api.worldoftanks.com")
	require.Less(t, strings.Index(out, "eu"), strings.Index(out, "api.worldoftanks.com"))
}

func TestRenderPlainTable(t *testing.T) {
	headers := []string{"Code", "Message"}
	rows := [][]string{{"INVALID_IP", "Invalid IP-address for the server application."}}

	plain := styles.RenderTable(headers, rows, true)
	require.Contains(t, plain, "INVALID_IP")
	require.Contains(t, plain, "Message")
	require.NotContains(t, plain, "╭")

	styled := styles.RenderTable(headers, rows, false)
	require.Contains(t, styled, "╭")
}

func TestKeyValue(t *testing.T) {
	out := styles.KeyValue("etag", "abc")
	require.Contains(t, out, "etag:")
	require.Contains(t, out, "abc")
}
