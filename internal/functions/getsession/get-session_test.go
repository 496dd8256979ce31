package getsession

import (
	"context"
	"errors"
	"testing"

	"github.com/drinkgo/drinkgo-backend/internal/auth"
	"github.com/drinkgo/drinkgo-backend/internal/session"
	"github.com/google/go-cmp/cmp"
)

var errTokenInvalid = errors.New("ID token has expired")

func TestStateFromToken(t *testing.T) {

	ctx := context.Background()

	tables := []struct {
		name       string
		authClient *auth.MockClient
		idToken    string
		want       session.AuthState
	}{
		{
			name:       "no token means signed out",
			authClient: &auth.MockClient{UID: "user1"},
			idToken:    "",
			want:       session.AuthState{},
		},
		{
			name:       "valid token",
			authClient: &auth.MockClient{UID: "user1", Name: "Ana", Email: "ana@example.com"},
			idToken:    "some-token",
			want:       session.AuthState{Authenticated: true, UID: "user1", DisplayName: "Ana", Email: "ana@example.com"},
		},
		{
			name:       "unverifiable token counts as signed out",
			authClient: &auth.MockClient{TokenErr: errTokenInvalid},
			idToken:    "expired-token",
			want:       session.AuthState{},
		},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			got := stateFromToken(ctx, table.authClient, table.idToken)

			if diff := cmp.Diff(table.want, got); diff != "" {
				t.Fatalf("stateFromToken mismatch (-want +got):\n%v", diff)
			}
		})
	}
}
