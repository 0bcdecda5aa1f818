package wargaming_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/leighmacdonald/wgapi/pkg/wargaming"
	"github.com/stretchr/testify/require"
)

func TestOptionsEncode(t *testing.T) {
	created := time.Unix(1420070400, 0)
	limit := 5
	var missing *int

	options := wargaming.Options{
		"search":         "tank er",
		"limit":          limit,
		"account_id":     []int64{1000, 2000},
		"fields":         []string{"nickname", "statistics.all.battles"},
		"extra":          true,
		"hidden":         false,
		"ratio":          0.25,
		"created_at":     created,
		"lang":           wargaming.Polish,
		"page":           &limit,
		"nothing":        nil,
		"absent":         missing,
		"application_id": "override",
		"language":       "xx",
	}

	values, err := url.ParseQuery(options.Encode())
	require.NoError(t, err)
	require.Equal(t, url.Values{
		"search":     {"tank er"},
		"limit":      {"5"},
		"account_id": {"1000,2000"},
		"fields":     {"nickname,statistics.all.battles"},
		"extra":      {"1"},
		"hidden":     {"0"},
		"ratio":      {"0.25"},
		"created_at": {"1420070400"},
		"lang":       {"pl"},
		"page":       {"5"},
	}, values)
}

func TestOptionsEncodeSorted(t *testing.T) {
	require.Equal(t, "a=1&b=2&c=3", wargaming.Options{"c": 3, "a": 1, "b": "2"}.Encode())
	require.Empty(t, wargaming.Options{}.Encode())
	require.Empty(t, wargaming.Options(nil).Encode())
}

func TestParseOptions(t *testing.T) {
	options, err := wargaming.ParseOptions([]string{"search=tanker", "fields=nickname,account_id", "empty="})
	require.NoError(t, err)
	require.Equal(t, wargaming.Options{
		"search": "tanker",
		"fields": "nickname,account_id",
		"empty":  "",
	}, options)

	_, errMissing := wargaming.ParseOptions([]string{"search"})
	require.Error(t, errMissing)

	_, errKey := wargaming.ParseOptions([]string{"=value"})
	require.Error(t, errKey)
}
