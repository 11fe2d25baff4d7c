package webutil

import (
	"encoding/json"
	"log"
	"net/http"

	"go_rel_diary/internal/model"
)

// DecodeJSONBody decodes the request body into dst.
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.ErrInvalidInput
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		log.Printf("Error decoding JSON body: %v", err)
		return model.ErrInvalidInput
	}
	return nil
}
