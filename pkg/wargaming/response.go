package wargaming

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/leighmacdonald/wgapi/internal/encoding"
)

var errNoData = errors.New("response has no data")

// Value holds the `data` member of an ok envelope exactly as it was received. It is
// decoded once per call and converted on demand.
type Value []byte

// IsNull is true for a missing or null data member.
func (v Value) IsNull() bool {
	trimmed := bytes.TrimSpace(v)

	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// Decode unmarshals the data into target, typically a pointer to a struct.
func (v Value) Decode(target any) error {
	if v.IsNull() {
		return errNoData
	}

	return encoding.Unmarshal(v, target)
}

// Map decodes the data into a generic map. Numbers are json.Number values.
func (v Value) Map() (map[string]any, error) {
	var out map[string]any
	if err := v.Decode(&out); err != nil {
		return nil, err
	}

	return out, nil
}

// Slice decodes the data into a generic slice, for methods returning a list.
func (v Value) Slice() ([]any, error) {
	var out []any
	if err := v.Decode(&out); err != nil {
		return nil, err
	}

	return out, nil
}

// Any decodes the data into whatever generic shape it has.
func (v Value) Any() (any, error) {
	if v.IsNull() {
		return nil, nil //nolint:nilnil
	}

	var out any
	if err := encoding.Unmarshal(v, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	if len(bytes.TrimSpace(v)) == 0 {
		return []byte("null"), nil
	}

	return v, nil
}

// Meta is the `meta` member of an ok envelope.
type Meta struct {
	Count     int `json:"count"`
	Total     int `json:"total,omitempty"`
	Page      int `json:"page,omitempty"`
	PageTotal int `json:"page_total,omitempty"`
	Limit     int `json:"limit,omitempty"`
}

// Response is the result of a successful Get. When NotModified is set the server
// answered 304 to a conditional request and Data is empty.
type Response struct {
	StatusCode  int
	NotModified bool
	Data        Value
	Meta        Meta
	// ETag of the returned data, unquoted, for the next conditional request.
	ETag string
	// Headers is only populated when requested with WithResponseHeaders.
	Headers Headers
}

// envelope is the wire object. Every member is kept raw so that an unexpected type in
// one member never fails the whole response.
type envelope struct {
	Status json.RawMessage `json:"status"`
	Data   json.RawMessage `json:"data"`
	Meta   json.RawMessage `json:"meta"`
	Error  json.RawMessage `json:"error"`
}

// status is the status member, or "" when it is missing or not a string.
func (e envelope) status() string {
	var status string
	if err := json.Unmarshal(e.Status, &status); err != nil {
		return ""
	}

	return status
}

// meta decodes the meta member field by field, ignoring members of an unexpected type.
func (e envelope) meta() Meta {
	fields := rawObject(e.Meta)

	return Meta{
		Count:     intValue(fields["count"]),
		Total:     intValue(fields["total"]),
		Page:      intValue(fields["page"]),
		PageTotal: intValue(fields["page_total"]),
		Limit:     intValue(fields["limit"]),
	}
}

// apiError decodes the error member. A missing or malformed member yields a zero value.
func (e envelope) apiError() envelopeError {
	fields := rawObject(e.Error)

	return envelopeError{
		Code:    intValue(fields["code"]),
		Message: stringValue(fields["message"]),
		Field:   stringValue(fields["field"]),
		Value:   fields["value"],
	}
}

type envelopeError struct {
	Code    int
	Message string
	Field   string
	Value   any
}

func rawObject(raw json.RawMessage) map[string]any {
	if len(raw) == 0 {
		return nil
	}

	var fields map[string]any
	if err := encoding.Unmarshal(raw, &fields); err != nil {
		return nil
	}

	return fields
}

// intValue accepts numbers and numeric strings, the API is not consistent between methods.
func intValue(value any) int {
	switch typed := value.(type) {
	case json.Number:
		if number, err := typed.Int64(); err == nil {
			return int(number)
		}

		if number, err := typed.Float64(); err == nil {
			return int(number)
		}
	case string:
		if number, err := strconv.Atoi(strings.TrimSpace(typed)); err == nil {
			return number
		}
	case float64:
		return int(typed)
	}

	return 0
}

func stringValue(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	default:
		return fmt.Sprint(typed)
	}
}
