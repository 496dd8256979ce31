package session

//Type Derived identity of the current app user.
type Type string

const (
	//TypeGuest Nobody is signed in.
	TypeGuest Type = "guest"
	//TypeUser An end-user is signed in.
	TypeUser Type = "user"
	//TypeEmpresa A business account is signed in.
	TypeEmpresa Type = "empresa"
)

//AuthState State of one auth backend as delivered by its listener.
type AuthState struct {
	Authenticated bool
	Loading       bool
	UID           string
	DisplayName   string
	Email         string
}

//Session Unified view over both auth backends.
type Session struct {
	Type        Type
	UID         string
	DisplayName string
	Email       string
	Loading     bool
}

//IsAuthenticated Whether anybody is signed in.
func (s Session) IsAuthenticated() bool {
	return s.Type != TypeGuest
}

//Resolve Combines both auth states into a single session. When both a user and an empresa
//session are active at once, the empresa identity wins. That both can be active is not
//prevented by the system, so the priority is a fixed contract here rather than an accident
//of listener ordering.
func Resolve(user AuthState, empresa AuthState) Session {
	loading := user.Loading || empresa.Loading

	if empresa.Authenticated {
		return Session{
			Type:        TypeEmpresa,
			UID:         empresa.UID,
			DisplayName: empresa.DisplayName,
			Email:       empresa.Email,
			Loading:     loading,
		}
	}

	if user.Authenticated {
		return Session{
			Type:        TypeUser,
			UID:         user.UID,
			DisplayName: user.DisplayName,
			Email:       user.Email,
			Loading:     loading,
		}
	}

	return Session{Type: TypeGuest, Loading: loading}
}

//LogoutOrder Which sub-sessions to log out and in which order. The empresa session goes
//first; a failure of one logout must not prevent attempting the other.
func LogoutOrder(user AuthState, empresa AuthState) []Type {
	var order []Type

	if empresa.Authenticated {
		order = append(order, TypeEmpresa)
	}
	if user.Authenticated {
		order = append(order, TypeUser)
	}

	return order
}
