package models

import "encoding/json"

// Envelope adalah pembungkus respons standar backend: {status, message, data}.
// Sebagian endpoint lama mengembalikan payload telanjang tanpa pembungkus,
// jadi Data dibiarkan mentah untuk di-decode ulang oleh pemanggil.
type Envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// ErrorBody menampung payload error terstruktur; backend kadang memakai key
// "message", kadang "error".
type ErrorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (e ErrorBody) Text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}
