package wargaming

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"
)

const (
	paramApplicationID = "application_id"
	paramLanguage      = "language"
)

var errInvalidOption = errors.New("invalid option, expected key=value")

// Options are the query parameters of a request, eg: {"search": "tanker", "limit": 10}.
//
// Values are encoded the way the API expects them: slices become comma separated lists,
// booleans 1/0 and times unix timestamps. Nil values are skipped. application_id and
// language are always set by the client and cannot be overridden here.
type Options map[string]any

// ParseOptions builds Options from key=value pairs.
func ParseOptions(pairs []string) (Options, error) {
	options := make(Options, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !found || key == "" {
			return nil, errors.Join(errInvalidOption, fmt.Errorf("%q", pair))
		}

		options[key] = value
	}

	return options, nil
}

// Encode returns the url encoded query, keys in sorted order.
func (o Options) Encode() string {
	values := url.Values{}
	for key, value := range o {
		if key == "" || key == paramApplicationID || key == paramLanguage {
			continue
		}

		if encoded, ok := formatValue(value); ok {
			values.Set(key, encoded)
		}
	}

	return values.Encode()
}

func formatValue(value any) (string, bool) {
	switch typed := value.(type) {
	case nil:
		return "", false
	case string:
		return typed, true
	case bool:
		if typed {
			return "1", true
		}

		return "0", true
	case time.Time:
		return strconv.FormatInt(typed.Unix(), 10), true
	case fmt.Stringer:
		return typed.String(), true
	case []string:
		return strings.Join(typed, ","), true
	case float32:
		return strconv.FormatFloat(float64(typed), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), true
	}

	reflected := reflect.ValueOf(value)
	switch reflected.Kind() { //nolint:exhaustive
	case reflect.Slice, reflect.Array:
		parts := make([]string, 0, reflected.Len())
		for idx := range reflected.Len() {
			if part, ok := formatValue(reflected.Index(idx).Interface()); ok {
				parts = append(parts, part)
			}
		}

		return strings.Join(parts, ","), true
	case reflect.Pointer:
		if reflected.IsNil() {
			return "", false
		}

		return formatValue(reflected.Elem().Interface())
	default:
		return fmt.Sprint(value), true
	}
}
