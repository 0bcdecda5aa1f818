package wargaming_test

import (
	"testing"

	"github.com/leighmacdonald/wgapi/pkg/wargaming"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	server, err := wargaming.NewServer("api.worldoftanks.eu/", "app")
	require.NoError(t, err)
	require.Equal(t, "api.worldoftanks.eu", server.URL())
	require.Equal(t, "api.worldoftanks.eu", server.String())
	require.Equal(t, "app", server.ApplicationID())
	require.True(t, server.Valid())

	server.SetApplicationID("other")
	require.Equal(t, "other", server.ApplicationID())

	_, errEmpty := wargaming.NewServer("  ", "app")
	require.ErrorIs(t, errEmpty, wargaming.ErrConfig)
	require.False(t, wargaming.Server{}.Valid())
}

func TestServerByName(t *testing.T) {
	for name, host := range map[string]string{
		"eu":   wargaming.HostEU,
		"NA":   wargaming.HostNA,
		"ru":   wargaming.HostRU,
		"asia": wargaming.HostAsia,
		"kr":   wargaming.HostKR,
	} {
		server, err := wargaming.ServerByName(name, "")
		require.NoError(t, err)
		require.Equal(t, host, server.URL())
	}

	custom, err := wargaming.ServerByName("api.example.com", "id")
	require.NoError(t, err)
	require.Equal(t, "api.example.com", custom.URL())

	_, errEmpty := wargaming.ServerByName("", "id")
	require.ErrorIs(t, errEmpty, wargaming.ErrConfig)
}

func TestServers(t *testing.T) {
	servers := wargaming.Servers()
	require.Len(t, servers, 5)
	require.Equal(t, "asia", servers[0].Name)
	require.Equal(t, "ru", servers[len(servers)-1].Name)
}

func TestLanguages(t *testing.T) {
	require.Equal(t, wargaming.Chinese, wargaming.NewLanguage(" ZH-CN "))
	require.Equal(t, "en", wargaming.English.String())
	require.Equal(t, "Deutsch", wargaming.Deutsch.Name())
	require.True(t, wargaming.Thai.Known())

	custom := wargaming.NewLanguage("ko")
	require.False(t, custom.Known())
	require.Equal(t, "ko", custom.Name())

	languages := wargaming.Languages()
	require.Len(t, languages, 11)
	require.Equal(t, wargaming.Czech, languages[0])
	require.Equal(t, wargaming.Chinese, languages[len(languages)-1])
}
