package service

import "fmt"

// ValidationError marks user-correctable input problems; handlers map it to
// a 400 response.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

func validationErrorf(format string, args ...any) ValidationError {
	return ValidationError(fmt.Sprintf(format, args...))
}
