package response

import (
	"encoding/json"
	"strings"
)

// ErrorBody is the JSON body the listings service sends with non-2xx responses.
type ErrorBody struct {
	Error string `json:"error"`
}

// ParseError extracts the error message from a non-2xx body.
// It reports false when the body is not JSON or carries no message.
func ParseError(raw []byte) (string, bool) {
	var body ErrorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return "", false
	}
	msg := strings.TrimSpace(body.Error)
	if msg == "" {
		return "", false
	}
	return msg, true
}
