package loginempresa

import (
	"context"
	"testing"

	"github.com/drinkgo/drinkgo-backend/internal/auth"
	"github.com/drinkgo/drinkgo-backend/internal/firebase/structs"
	v1 "github.com/drinkgo/drinkgo-backend/pkg/api/v1"
	"github.com/stretchr/testify/assert"
)

var request = v1.LoginEmpresaRequest{
	Email:    "bar@example.com",
	Password: "secret123",
}

var signInResult = &auth.SignInResult{
	UID:          "owner1",
	Email:        "bar@example.com",
	IDToken:      "id-token",
	RefreshToken: "refresh-token",
}

func TestLogin(t *testing.T) {

	ctx := context.Background()

	signInClient := auth.MockSignInClient{Result: signInResult}
	authClient := &auth.MockClient{}

	empresa := structs.Empresa{Nombre: "Bar Central", OwnerID: "owner1", Activo: true}

	findEmpresa := func(ctx context.Context, uid string) (string, *structs.Empresa, error) {
		assert.Equal(t, "owner1", uid)
		return "b1", &empresa, nil
	}

	response, err := login(ctx, signInClient, authClient, findEmpresa, request)

	assert.Nil(t, err)
	assert.Equal(t, "owner1", response.UID)
	assert.Equal(t, "b1", response.EmpresaID)
	assert.Equal(t, "id-token", response.IDToken)
	assert.Equal(t, "refresh-token", response.RefreshToken)
	assert.Equal(t, empresa, response.Empresa)
	assert.Empty(t, authClient.Revoked)
}

func TestLoginUnlinkedIdentity(t *testing.T) {

	ctx := context.Background()

	signInClient := auth.MockSignInClient{Result: signInResult}
	authClient := &auth.MockClient{}

	findEmpresa := func(ctx context.Context, uid string) (string, *structs.Empresa, error) {
		return "", nil, nil
	}

	response, err := login(ctx, signInClient, authClient, findEmpresa, request)

	assert.Nil(t, response)
	assert.Equal(t, ErrNotLinked, err)

	// the freshly issued session must not stay usable
	assert.Equal(t, []string{"owner1"}, authClient.Revoked)
}

func TestLoginBadCredentials(t *testing.T) {

	ctx := context.Background()

	signInErr := auth.MapSignInCode("INVALID_PASSWORD")
	signInClient := auth.MockSignInClient{Err: signInErr}
	authClient := &auth.MockClient{}

	findEmpresa := func(ctx context.Context, uid string) (string, *structs.Empresa, error) {
		t.Fatal("empresa lookup must not run for failed sign-in")
		return "", nil, nil
	}

	response, err := login(ctx, signInClient, authClient, findEmpresa, request)

	assert.Nil(t, response)
	assert.Equal(t, signInErr, err)
	assert.Empty(t, authClient.Revoked)
}
