package session

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {

	userState := AuthState{Authenticated: true, UID: "user1", DisplayName: "Ana", Email: "ana@example.com"}
	empresaState := AuthState{Authenticated: true, UID: "owner1", DisplayName: "Bar Central", Email: "bar@example.com"}

	tables := []struct {
		name    string
		user    AuthState
		empresa AuthState
		want    Session
	}{
		{
			name: "nobody signed in",
			want: Session{Type: TypeGuest},
		},
		{
			name: "only user",
			user: userState,
			want: Session{Type: TypeUser, UID: "user1", DisplayName: "Ana", Email: "ana@example.com"},
		},
		{
			name:    "only empresa",
			empresa: empresaState,
			want:    Session{Type: TypeEmpresa, UID: "owner1", DisplayName: "Bar Central", Email: "bar@example.com"},
		},
		{
			name:    "both signed in, empresa wins",
			user:    userState,
			empresa: empresaState,
			want:    Session{Type: TypeEmpresa, UID: "owner1", DisplayName: "Bar Central", Email: "bar@example.com"},
		},
		{
			name: "user still loading",
			user: AuthState{Loading: true},
			want: Session{Type: TypeGuest, Loading: true},
		},
		{
			name:    "user signed in, empresa still loading",
			user:    userState,
			empresa: AuthState{Loading: true},
			want:    Session{Type: TypeUser, UID: "user1", DisplayName: "Ana", Email: "ana@example.com", Loading: true},
		},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			got := Resolve(table.user, table.empresa)

			if diff := cmp.Diff(table.want, got); diff != "" {
				t.Fatalf("Resolve mismatch (-want +got):\n%v", diff)
			}
		})
	}
}

func TestIsAuthenticated(t *testing.T) {
	assert.False(t, Session{Type: TypeGuest}.IsAuthenticated())
	assert.True(t, Session{Type: TypeUser}.IsAuthenticated())
	assert.True(t, Session{Type: TypeEmpresa}.IsAuthenticated())
}

func TestLogoutOrder(t *testing.T) {

	signedIn := AuthState{Authenticated: true}

	tables := []struct {
		user    AuthState
		empresa AuthState
		want    []Type
	}{
		{want: nil},
		{user: signedIn, want: []Type{TypeUser}},
		{empresa: signedIn, want: []Type{TypeEmpresa}},
		// empresa session always goes first
		{user: signedIn, empresa: signedIn, want: []Type{TypeEmpresa, TypeUser}},
	}

	for _, table := range tables {
		got := LogoutOrder(table.user, table.empresa)

		if diff := cmp.Diff(table.want, got); diff != "" {
			t.Fatalf("LogoutOrder mismatch (-want +got):\n%v", diff)
		}
	}
}
