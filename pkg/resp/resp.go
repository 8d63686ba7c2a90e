// Package resp пишет JSON-ответы.
package resp

import (
	"log"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Marshal сериализует v в JSON
func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// WriteJSONResponse пишет v в w как JSON с заданным статусом
func WriteJSONResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to write response: %v", err)
	}
}
