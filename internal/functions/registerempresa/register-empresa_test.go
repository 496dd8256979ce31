package registerempresa

import (
	"context"
	"testing"

	"github.com/drinkgo/drinkgo-backend/internal/auth"
	"github.com/drinkgo/drinkgo-backend/internal/constants"
	"github.com/drinkgo/drinkgo-backend/internal/pubsub"
	"github.com/drinkgo/drinkgo-backend/internal/store"
	v1 "github.com/drinkgo/drinkgo-backend/pkg/api/v1"
	"github.com/stretchr/testify/assert"
)

var request = v1.RegisterEmpresaRequest{
	Nombre:    "Bar Central",
	Tipo:      "bar",
	Direccion: "Calle Mayor 1",
	Email:     "bar@example.com",
	Password:  "secret123",
}

func generateTestID() string {
	return "bABCDEF123"
}

func TestRegister(t *testing.T) {

	ctx := context.Background()

	storeClient := &store.MockClient{}
	authClient := &auth.MockClient{UID: "owner1"}
	pubSubClient := &pubsub.MockClient{}

	response, err := register(ctx, storeClient, authClient, pubSubClient, generateTestID, request)

	assert.Nil(t, err)
	assert.Equal(t, "owner1", response.UID)
	assert.Equal(t, "bABCDEF123", response.EmpresaID)
	assert.Equal(t, "custom-token-owner1", response.CustomToken)

	assert.Len(t, pubSubClient.Published[constants.TopicRegisterEmpresa], 1)
	assert.Empty(t, authClient.DeletedUIDs)
}

func TestRegisterRollsBackIdentityOnDocWriteFailure(t *testing.T) {

	ctx := context.Background()

	storeClient := &store.MockClient{TxErr: assert.AnError}
	authClient := &auth.MockClient{UID: "owner1"}
	pubSubClient := &pubsub.MockClient{}

	response, err := register(ctx, storeClient, authClient, pubSubClient, generateTestID, request)

	assert.NotNil(t, err)
	assert.Nil(t, response)

	// the half-created identity must not survive
	assert.Equal(t, []string{"owner1"}, authClient.DeletedUIDs)
	assert.Empty(t, pubSubClient.Published)
}

func TestRegisterFailedIdentityCreation(t *testing.T) {

	ctx := context.Background()

	storeClient := &store.MockClient{}
	authClient := &auth.MockClient{CreateErr: assert.AnError}
	pubSubClient := &pubsub.MockClient{}

	response, err := register(ctx, storeClient, authClient, pubSubClient, generateTestID, request)

	assert.NotNil(t, err)
	assert.Nil(t, response)
	assert.Empty(t, authClient.DeletedUIDs)
}
