package auth

import (
	"strings"

	fbauth "firebase.google.com/go/auth"
	rpccode "google.golang.org/genproto/googleapis/rpc/code"
)

//AuthError Auth failure with a fixed reason code and a user-facing message.
type AuthError struct {
	Reason string
	Msg    string
}

func (e *AuthError) Error() string {
	return e.Msg
}

//Code Code of the error.
func (e *AuthError) Code() rpccode.Code {
	switch e.Reason {
	case ReasonEmailInUse:
		return rpccode.Code_FAILED_PRECONDITION
	case ReasonWeakPassword, ReasonInvalidEmail:
		return rpccode.Code_INVALID_ARGUMENT
	default:
		return rpccode.Code_UNAUTHENTICATED
	}
}

// Fixed vocabulary of user-facing auth errors. Anything unknown falls back to ReasonGeneric.
const (
	ReasonUserNotFound    = "user-not-found"
	ReasonWrongPassword   = "wrong-password"
	ReasonEmailInUse      = "email-in-use"
	ReasonWeakPassword    = "weak-password"
	ReasonInvalidEmail    = "invalid-email"
	ReasonTooManyRequests = "too-many-requests"
	ReasonGeneric         = "auth-error"
)

var reasonMessages = map[string]string{
	ReasonUserNotFound:    "No existe ninguna cuenta con ese correo",
	ReasonWrongPassword:   "Contraseña incorrecta",
	ReasonEmailInUse:      "El correo ya está en uso",
	ReasonWeakPassword:    "La contraseña es demasiado débil",
	ReasonInvalidEmail:    "Correo electrónico no válido",
	ReasonTooManyRequests: "Demasiados intentos, inténtalo más tarde",
	ReasonGeneric:         "Error de autenticación",
}

func newAuthError(reason string) *AuthError {
	return &AuthError{Reason: reason, Msg: reasonMessages[reason]}
}

//MapSignInCode Maps Identity Toolkit REST error codes to the fixed vocabulary.
func MapSignInCode(code string) *AuthError {
	// codes like WEAK_PASSWORD come suffixed with an explanation
	switch {
	case strings.HasPrefix(code, "EMAIL_NOT_FOUND"):
		return newAuthError(ReasonUserNotFound)
	case strings.HasPrefix(code, "INVALID_PASSWORD"), strings.HasPrefix(code, "INVALID_LOGIN_CREDENTIALS"):
		return newAuthError(ReasonWrongPassword)
	case strings.HasPrefix(code, "EMAIL_EXISTS"):
		return newAuthError(ReasonEmailInUse)
	case strings.HasPrefix(code, "WEAK_PASSWORD"):
		return newAuthError(ReasonWeakPassword)
	case strings.HasPrefix(code, "INVALID_EMAIL"):
		return newAuthError(ReasonInvalidEmail)
	case strings.HasPrefix(code, "TOO_MANY_ATTEMPTS_TRY_LATER"):
		return newAuthError(ReasonTooManyRequests)
	default:
		return newAuthError(ReasonGeneric)
	}
}

//MapAdminError Maps admin SDK errors to the fixed vocabulary.
func MapAdminError(err error) *AuthError {
	switch {
	case fbauth.IsUserNotFound(err):
		return newAuthError(ReasonUserNotFound)
	case fbauth.IsEmailAlreadyExists(err):
		return newAuthError(ReasonEmailInUse)
	default:
		return newAuthError(ReasonGeneric)
	}
}
