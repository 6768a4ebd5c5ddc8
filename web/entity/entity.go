// Package entity defines data structures shared by the web layer.
package entity

// Msg is the standard API response envelope.
type Msg struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
	Obj     any    `json:"obj,omitempty"`
}

// FieldErrors maps field names to validation messages. It is the payload of a
// 400 response and doubles as the error value returned by schema validation.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	for field, msg := range e {
		return field + ": " + msg
	}
	return "validation failed"
}

// ValidationMsg is the 4xx response body for invalid form input.
type ValidationMsg struct {
	Success bool        `json:"success"`
	Msg     string      `json:"msg"`
	Errors  FieldErrors `json:"errors"`
}
