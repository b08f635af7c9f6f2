package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

type Response struct {
	Message string `json:"message,omitempty"` // short message for humans
	Data    any    `json:"data,omitempty"`    // partial result, e.g. a transaction that was sent but not confirmed
	Error   string `json:"error,omitempty"`   // error detail (if any)
}
