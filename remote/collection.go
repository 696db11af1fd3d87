package remote

import (
	"bytes"
	"context"
	"encoding/json"

	serverError "github.com/supakorn-kn/go-dashboard/errors"
)

// GetCollection fetches a list endpoint and normalizes its body with DecodeCollection.
func GetCollection[T any](ctx context.Context, c *Client, path string) ([]T, error) {

	body, err := c.GetRaw(ctx, path)
	if err != nil {
		return nil, err
	}

	return DecodeCollection[T](path, body)
}

// DecodeCollection accepts a bare JSON array or an object wrapping the
// array in "data". An object without a "data" array is an empty collection.
func DecodeCollection[T any](source string, body []byte) ([]T, error) {

	trimmed := bytes.TrimSpace(body)

	switch {
	case len(trimmed) == 0:
		return []T{}, nil

	case trimmed[0] == '[':
		return decodeArray[T](source, trimmed)

	case trimmed[0] == '{':

		var envelope struct {
			Data json.RawMessage `json:"data"`
		}

		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, serverError.MalformedPayloadError.New(source, err)
		}

		data := bytes.TrimSpace(envelope.Data)
		if len(data) == 0 || data[0] != '[' {
			return []T{}, nil
		}

		return decodeArray[T](source, data)

	default:
		return nil, serverError.MalformedPayloadError.New(source, "expected an array or an object with a data array")
	}
}

// DecodeOneOrMany is DecodeCollection for endpoints that answer with a
// single object when only one section exists.
func DecodeOneOrMany[T any](source string, body []byte) ([]T, error) {

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return DecodeCollection[T](source, trimmed)
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}

	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, serverError.MalformedPayloadError.New(source, err)
	}

	data := bytes.TrimSpace(envelope.Data)
	if len(data) > 0 && data[0] == '[' {
		return decodeArray[T](source, data)
	}

	if len(data) > 0 && data[0] == '{' {
		trimmed = data
	}

	var single T
	if err := json.Unmarshal(trimmed, &single); err != nil {
		return nil, serverError.MalformedPayloadError.New(source, err)
	}

	return []T{single}, nil
}

func decodeArray[T any](source string, body []byte) ([]T, error) {

	collection := []T{}
	if err := json.Unmarshal(body, &collection); err != nil {
		return nil, serverError.MalformedPayloadError.New(source, err)
	}

	return collection, nil
}
