package registeruser

import (
	"context"
	"testing"

	"github.com/drinkgo/drinkgo-backend/internal/auth"
	"github.com/drinkgo/drinkgo-backend/internal/constants"
	"github.com/drinkgo/drinkgo-backend/internal/firebase/structs"
	"github.com/drinkgo/drinkgo-backend/internal/pubsub"
	"github.com/drinkgo/drinkgo-backend/internal/store"
	v1 "github.com/drinkgo/drinkgo-backend/pkg/api/v1"
	"github.com/stretchr/testify/assert"
)

var request = v1.RegisterUserRequest{
	Nombre:   "Ana",
	Email:    "ana@example.com",
	Password: "secret123",
}

func TestRegister(t *testing.T) {

	ctx := context.Background()

	storeClient := &store.MockClient{}
	authClient := &auth.MockClient{UID: "user1"}
	pubSubClient := &pubsub.MockClient{}

	response, err := register(ctx, storeClient, authClient, pubSubClient, request)

	assert.Nil(t, err)
	assert.Equal(t, "user1", response.UID)
	assert.Equal(t, "custom-token-user1", response.CustomToken)

	if assert.Len(t, storeClient.Sets, 1) {
		set := storeClient.Sets[0]
		assert.Equal(t, constants.CollectionUsuarios, set.Collection)
		assert.Equal(t, "user1", set.Path)

		profile := set.Data.(structs.Usuario)
		assert.Equal(t, "Ana", profile.Nombre)
		assert.Equal(t, "ana@example.com", profile.Email)
		assert.NotZero(t, profile.FechaRegistro)
	}

	assert.Len(t, pubSubClient.Published[constants.TopicRegisterUser], 1)
	assert.Empty(t, authClient.DeletedUIDs)
}

func TestRegisterRollsBackIdentityOnProfileWriteFailure(t *testing.T) {

	ctx := context.Background()

	storeClient := &store.MockClient{
		SetErrs: map[string]error{constants.CollectionUsuarios: assert.AnError},
	}
	authClient := &auth.MockClient{UID: "user1"}
	pubSubClient := &pubsub.MockClient{}

	response, err := register(ctx, storeClient, authClient, pubSubClient, request)

	assert.NotNil(t, err)
	assert.Nil(t, response)

	// the half-created identity must not survive
	assert.Equal(t, []string{"user1"}, authClient.DeletedUIDs)
	assert.Empty(t, pubSubClient.Published)
}

func TestRegisterFailedIdentityCreation(t *testing.T) {

	ctx := context.Background()

	storeClient := &store.MockClient{}
	authClient := &auth.MockClient{CreateErr: assert.AnError}
	pubSubClient := &pubsub.MockClient{}

	response, err := register(ctx, storeClient, authClient, pubSubClient, request)

	assert.NotNil(t, err)
	assert.Nil(t, response)
	assert.Empty(t, storeClient.Sets)
}
