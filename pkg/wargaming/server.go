package wargaming

import (
	"errors"
	"strings"

	"golang.org/x/exp/slices"
)

// Realm hosts of the public API.
const (
	HostEU   = "api.worldoftanks.eu"
	HostNA   = "api.worldoftanks.com"
	HostRU   = "api.worldoftanks.ru"
	HostAsia = "api.worldoftanks.asia"
	HostKR   = "api.worldoftanks.kr"

	DefaultServer = "eu"
)

var (
	errMissingURL           = errors.New("server is missing its URL")
	errMissingApplicationID = errors.New("no application id configured")

	realms = map[string]string{ //nolint:gochecknoglobals
		"eu":   HostEU,
		"na":   HostNA,
		"ru":   HostRU,
		"asia": HostAsia,
		"kr":   HostKR,
	}
)

// Server identifies the API cluster requests are sent to, optionally along with the
// application id registered for that cluster.
type Server struct {
	url           string
	applicationID string
}

// NewServer validates and creates a server. The url may be a bare hostname, in which case
// requests use https, or include an explicit scheme.
func NewServer(url string, applicationID string) (Server, error) {
	url = strings.TrimRight(strings.TrimSpace(url), "/")
	if url == "" {
		return Server{}, newError(ErrConfig, 0, errMissingURL.Error(), errMissingURL)
	}

	return Server{url: url, applicationID: applicationID}, nil
}

// ServerByName resolves one of the named realms (eu, na, ru, asia, kr). Any other
// name is treated as a hostname.
func ServerByName(name string, applicationID string) (Server, error) {
	if host, found := realms[strings.ToLower(strings.TrimSpace(name))]; found {
		return NewServer(host, applicationID)
	}

	return NewServer(name, applicationID)
}

// NamedServer is a realm name and its API host.
type NamedServer struct {
	Name string
	Host string
}

// Servers returns the known realms ordered by name.
func Servers() []NamedServer {
	servers := make([]NamedServer, 0, len(realms))
	for name, host := range realms {
		servers = append(servers, NamedServer{Name: name, Host: host})
	}

	slices.SortStableFunc(servers, func(a, b NamedServer) int {
		return strings.Compare(a.Name, b.Name)
	})

	return servers
}

func (s Server) URL() string {
	return s.url
}

func (s Server) ApplicationID() string {
	return s.applicationID
}

func (s *Server) SetApplicationID(applicationID string) {
	s.applicationID = applicationID
}

func (s Server) String() string {
	return s.url
}

// Valid is false for the zero value.
func (s Server) Valid() bool {
	return s.url != ""
}

// baseURL returns the server url including the scheme.
func (s Server) baseURL() string {
	if strings.Contains(s.url, "://") {
		return s.url
	}

	return "https://" + s.url
}
