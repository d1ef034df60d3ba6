package model

// ErrorKind classifies a CalculatorError for routing and display.
type ErrorKind string

const (
	ErrValidation  ErrorKind = "validation"
	ErrCalculation ErrorKind = "calculation"
	ErrSave        ErrorKind = "save"
	ErrLoad        ErrorKind = "load"
	ErrDelete      ErrorKind = "delete"
	ErrExport      ErrorKind = "export"
	ErrImport      ErrorKind = "import"
)

// CalculatorError is the error shape carried across the event bus.
// It wraps failures from persistence and export collaborators so every
// listener sees a uniform kind + message pair.
type CalculatorError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *CalculatorError) Error() string {
	return string(e.Kind) + ": " + e.Message
}

func (e *CalculatorError) Unwrap() error {
	return e.Err
}

// WrapError builds a CalculatorError around an underlying failure.
func WrapError(kind ErrorKind, message string, err error) *CalculatorError {
	return &CalculatorError{Kind: kind, Message: message, Err: err}
}
