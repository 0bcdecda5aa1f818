package network_test

import (
	"crypto/tls"
	"net/http"
	"testing"
	"time"

	"github.com/leighmacdonald/wgapi/internal/network"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient(t *testing.T) {
	client := network.NewHTTPClient(network.ClientOpts{VerifyTLS: true})
	require.Equal(t, network.DefaultTimeout, client.Timeout)

	transport, ok := client.Transport.(*http.Transport)
	require.True(t, ok)
	require.False(t, transport.TLSClientConfig.InsecureSkipVerify)

	insecure := network.NewHTTPClient(network.ClientOpts{VerifyTLS: false, Timeout: time.Second})
	require.Equal(t, time.Second, insecure.Timeout)

	insecureTransport, ok := insecure.Transport.(*http.Transport)
	require.True(t, ok)
	require.Equal(t, &tls.Config{InsecureSkipVerify: true}, insecureTransport.TLSClientConfig) //nolint:gosec
}

func TestCloseIdle(t *testing.T) {
	// Must not panic for doers without idle connection support.
	network.CloseIdle(doerFunc(func(*http.Request) (*http.Response, error) { return nil, nil }))
	network.CloseIdle(network.NewHTTPClient(network.ClientOpts{}))
}

type doerFunc func(*http.Request) (*http.Response, error)

func (f doerFunc) Do(r *http.Request) (*http.Response, error) { return f(r) }
