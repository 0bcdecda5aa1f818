package wargaming

import (
	"bytes"
	"net/http"
	"net/http/httputil"
	"strings"
)

// Headers are the raw response headers keyed by their name as sent. The status line
// is included with an empty value.
type Headers map[string]string

// Get looks up a header ignoring case.
func (h Headers) Get(name string) string {
	if value, found := h[name]; found {
		return value
	}

	for key, value := range h {
		if strings.EqualFold(key, name) {
			return value
		}
	}

	return ""
}

// ParseHeaders splits a raw header block. Each line is split on the first ": ", lines
// without a value map to an empty string. Parsing stops at the first blank line.
func ParseHeaders(block string) Headers {
	headers := Headers{}
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			break
		}

		name, value, found := strings.Cut(line, ": ")
		if !found {
			headers[line] = ""

			continue
		}

		headers[name] = value
	}

	return headers
}

func captureHeaders(resp *http.Response) Headers {
	head, errDump := httputil.DumpResponse(resp, false)
	if errDump != nil {
		headers := Headers{}
		for name := range resp.Header {
			headers[name] = strings.Join(resp.Header.Values(name), ", ")
		}

		return headers
	}

	if idx := bytes.Index(head, []byte("\r\n\r\n")); idx >= 0 {
		head = head[:idx]
	}

	return ParseHeaders(string(head))
}

// parseETag strips the weak prefix and quotes so the value can be passed back to WithETag.
func parseETag(value string) string {
	value = strings.TrimPrefix(strings.TrimSpace(value), "W/")

	return strings.Trim(value, `"`)
}
