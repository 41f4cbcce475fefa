package errors

import "fmt"

var (
	ErrNotFound   = fmt.Errorf("record niet gevonden")
	ErrBadRequest = fmt.Errorf("ongeldige aanvraag")

	ErrInvalidCredentials = fmt.Errorf("ongeldige inloggegevens")
	ErrUnauthorized       = fmt.Errorf("niet geautoriseerd")
	ErrForbidden          = fmt.Errorf("toegang geweigerd")

	ErrInvalidToken      = fmt.Errorf("ongeldig token")
	ErrTokenExpired      = fmt.Errorf("token is verlopen")
	ErrTokenIsNotRefresh = fmt.Errorf("token is geen refresh-token")

	ErrUserIDNotFoundInContext = fmt.Errorf("userID niet gevonden in request-context")
)

// InvalidConfigurationError: het keuringsinterval van een materiaaltype is
// nul of negatief terwijl een vervaldatum berekend moet worden. Dit wordt
// nooit stilzwijgend gedefault.
type InvalidConfigurationError struct {
	Message string
}

func (e *InvalidConfigurationError) Error() string { return e.Message }

func NewInvalidConfigurationError(format string, args ...interface{}) error {
	return &InvalidConfigurationError{Message: fmt.Sprintf(format, args...)}
}

type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}
