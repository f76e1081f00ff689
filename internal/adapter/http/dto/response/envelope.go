package response

// Envelope is the success side of every API answer. Failures use
// pkg.HTTPError, which shares the success/error fields.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

func OKWithMessage(data any, message string) Envelope {
	return Envelope{Success: true, Data: data, Message: message}
}
