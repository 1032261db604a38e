package responses

// Message - generic response envelope for non-entity replies.
type Message struct {
	Type    string `json:"type"` // "ok", "error"
	Message string `json:"message"`
	Code    int    `json:"code,omitzero"` // application-level logic code
}
