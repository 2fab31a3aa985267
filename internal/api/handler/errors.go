package handler

// ErrorResponse is the error envelope of every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// OpError carries the user-facing message of the operation that failed
// together with its cause. The HTTP error handler renders it as a 500 with
// the cause in Details unless the cause is a known domain error.
type OpError struct {
	Message string
	Err     error
}

func (e *OpError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error { return e.Err }

func opError(msg string, err error) error {
	return &OpError{Message: msg, Err: err}
}
