// Package encoding wraps the JSON codec used across wgapi so every package decodes
// with the same settings.
package encoding

import (
	"bytes"
	"errors"
	"io"

	"github.com/goccy/go-json"
)

var (
	ErrDecodeJSON = errors.New("failed to decode JSON")
	ErrEncodeJSON = errors.New("failed to encode JSON")
)

// Shape describes the top level kind of a JSON document.
type Shape int

const (
	ShapeInvalid Shape = iota
	ShapeObject
	ShapeArray
	ShapeScalar
)

// Decode reads one JSON document from reader into a new T. Numbers are kept as
// json.Number when decoding into interface values so large ids (account_id, clan_id)
// survive untouched.
func Decode[T any](reader io.Reader) (T, error) {
	var value T
	if err := decode(reader, &value); err != nil {
		return value, err
	}

	return value, nil
}

// Unmarshal decodes body into target with the same settings as Decode.
func Unmarshal(body []byte, target any) error {
	return decode(bytes.NewReader(body), target)
}

func decode(reader io.Reader, target any) error {
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()

	if err := decoder.Decode(target); err != nil {
		return errors.Join(err, ErrDecodeJSON)
	}

	return nil
}

func MarshalIndent(value any) ([]byte, error) {
	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return nil, errors.Join(err, ErrEncodeJSON)
	}

	return out, nil
}

// Detect reports the top level shape of body without decoding it.
func Detect(body []byte) Shape {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || !json.Valid(trimmed) {
		return ShapeInvalid
	}

	switch trimmed[0] {
	case '{':
		return ShapeObject
	case '[':
		return ShapeArray
	default:
		return ShapeScalar
	}
}
