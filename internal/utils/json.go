package utils

import "github.com/gofiber/fiber/v2/log"

// JSONWriter is anything that can push a JSON frame to a client, e.g. *websocket.Conn
type JSONWriter interface {
	WriteJSON(v interface{}) error
}

// SendJSON writes payload to w. Callers serialize writes per connection.
func SendJSON(w JSONWriter, payload interface{}) error {
	return w.WriteJSON(payload)
}

// LogError logs an error if it's not nil
func LogError(err error, context string) {
	if err != nil {
		log.Errorf("Error [%s]: %v", context, err)
	}
}
