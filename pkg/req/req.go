// Package req декодирует входящие JSON-тела запросов.
package req

import (
	"bytes"
	"errors"
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrEmptyBody тело запроса отсутствует
var ErrEmptyBody = errors.New("empty request body")

// Decode читает JSON из r в значение типа T
func Decode[T any](r io.Reader) (T, error) {
	var v T
	data, err := io.ReadAll(r)
	if err != nil {
		return v, err
	}
	return Unmarshal[T](data)
}

// Unmarshal разбирает JSON-объект data в значение типа T
func Unmarshal[T any](data []byte) (T, error) {
	var v T
	if len(bytes.TrimSpace(data)) == 0 {
		return v, ErrEmptyBody
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, err
	}
	return v, nil
}
