package registeruser

import (
	"context"
	"net/http"

	"github.com/drinkgo/drinkgo-backend/internal/auth"
	"github.com/drinkgo/drinkgo-backend/internal/constants"
	"github.com/drinkgo/drinkgo-backend/internal/firebase/structs"
	"github.com/drinkgo/drinkgo-backend/internal/logging"
	"github.com/drinkgo/drinkgo-backend/internal/pubsub"
	"github.com/drinkgo/drinkgo-backend/internal/store"
	"github.com/drinkgo/drinkgo-backend/internal/utils"
	httputils "github.com/drinkgo/drinkgo-backend/internal/utils/http"
	v1 "github.com/drinkgo/drinkgo-backend/pkg/api/v1"
)

//AftermathPayload Payload of the user-registered event.
type AftermathPayload struct {
	UID string `json:"uid"`
}

//RegisterUser Registers new end-user: auth identity first, then the profile document. When
//the profile write fails the identity is deleted again so no orphaned credential remains.
func RegisterUser(w http.ResponseWriter, r *http.Request) {
	var ctx = r.Context()
	logger := logging.FromContext(ctx)

	storeClient := store.Client{}
	authClient := auth.Client{}
	pubSubClient := pubsub.Client{}

	var request v1.RegisterUserRequest

	if !httputils.DecodeJSONOrReportError(w, r, &request) {
		return
	}

	logger.Debugf("Handling RegisterUser request for %v", request.Email)

	response, err := register(ctx, storeClient, authClient, pubSubClient, request)
	if err != nil {
		logger.Warnf("Cannot register user %v: %v", request.Email, err)
		httputils.SendErrorResponse(w, r, err)
		return
	}

	httputils.SendResponse(w, r, response)
}

func register(ctx context.Context, storeClient store.Storer, authClient auth.Auther, pubSubClient pubsub.EventPublisher, request v1.RegisterUserRequest) (*v1.RegisterUserResponse, error) {
	logger := logging.FromContext(ctx)

	uid, err := authClient.CreateUser(ctx, request.Email, request.Password, request.Nombre)
	if err != nil {
		return nil, auth.MapAdminError(err)
	}

	profile := structs.Usuario{
		Nombre:        request.Nombre,
		Email:         request.Email,
		FechaRegistro: utils.GetTimeNow().Unix(),
	}

	if err := storeClient.Set(ctx, constants.CollectionUsuarios, uid, profile); err != nil {
		logger.Warnf("Profile write for %v failed, rolling back auth identity: %v", uid, err)

		if deleteErr := authClient.DeleteUser(ctx, uid); deleteErr != nil {
			logger.Errorf("Rollback of auth identity %v failed: %v", uid, deleteErr)
		}

		return nil, err
	}

	customToken, err := authClient.CustomToken(ctx, uid)
	if err != nil {
		return nil, err
	}

	if err := pubSubClient.Publish(constants.TopicRegisterUser, AftermathPayload{UID: uid}); err != nil {
		// aftermath only feeds counters, the registration itself already succeeded
		logger.Warnf("Could not publish user-registered event for %v: %v", uid, err)
	}

	logger.Infof("Registered new user %v", uid)

	return &v1.RegisterUserResponse{UID: uid, CustomToken: customToken}, nil
}
