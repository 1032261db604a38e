package responses

import (
	"encoding/json/v2"
	"log"
	"net/http"
)

// EncodeWriteJSON streams the payload as the JSON response body.
func EncodeWriteJSON(w http.ResponseWriter, httpStatusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatusCode) // headers frozen from here
	if err := json.MarshalWrite(w, payload); err != nil {
		log.Printf("[ERROR] failed to write JSON stream to response: %v", err)
	}
}

// WriteSimpleErrorJSON wraps a bare message into an error Message
// without an app logic code.
func WriteSimpleErrorJSON(w http.ResponseWriter, httpStatusCode int, msg string) {
	EncodeWriteJSON(w, httpStatusCode, Message{Type: "error", Message: msg})
}
