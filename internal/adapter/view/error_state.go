package view

// Error view texts.
const (
	ErrorHeading        = "Something went wrong"
	DefaultErrorMessage = "An unexpected error occurred. Please try again later."
)

// ErrorState is the render model of the error view.
type ErrorState struct {
	Heading string
	Message string
}

// NewErrorState builds the error view, falling back to the default message.
func NewErrorState(message string) ErrorState {
	if message == "" {
		message = DefaultErrorMessage
	}
	return ErrorState{Heading: ErrorHeading, Message: message}
}
