package registerempresa

import (
	"context"
	"fmt"
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/avast/retry-go"
	"github.com/drinkgo/drinkgo-backend/internal/auth"
	"github.com/drinkgo/drinkgo-backend/internal/constants"
	"github.com/drinkgo/drinkgo-backend/internal/firebase/structs"
	"github.com/drinkgo/drinkgo-backend/internal/logging"
	"github.com/drinkgo/drinkgo-backend/internal/pubsub"
	"github.com/drinkgo/drinkgo-backend/internal/store"
	"github.com/drinkgo/drinkgo-backend/internal/utils"
	"github.com/drinkgo/drinkgo-backend/internal/utils/errors"
	httputils "github.com/drinkgo/drinkgo-backend/internal/utils/http"
	v1 "github.com/drinkgo/drinkgo-backend/pkg/api/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const needsRetry = "needs_retry"

//AftermathPayload Payload of the empresa-registered event.
type AftermathPayload struct {
	UID       string `json:"uid"`
	EmpresaID string `json:"empresaId"`
}

//RegisterEmpresa Registers new business account: auth identity first, then the empresa
//document. When the document write fails the identity is deleted again so no orphaned
//credential remains.
func RegisterEmpresa(w http.ResponseWriter, r *http.Request) {
	var ctx = r.Context()
	logger := logging.FromContext(ctx)

	storeClient := store.Client{}
	authClient := auth.Client{}
	pubSubClient := pubsub.Client{}

	var request v1.RegisterEmpresaRequest

	if !httputils.DecodeJSONOrReportError(w, r, &request) {
		return
	}

	logger.Debugf("Handling RegisterEmpresa request for %v", request.Email)

	response, err := register(ctx, storeClient, authClient, pubSubClient, utils.GenerateEmpresaID, request)
	if err != nil {
		logger.Warnf("Cannot register empresa %v: %v", request.Email, err)
		httputils.SendErrorResponse(w, r, err)
		return
	}

	httputils.SendResponse(w, r, response)
}

func register(ctx context.Context, storeClient store.Storer, authClient auth.Auther, pubSubClient pubsub.EventPublisher, generateEmpresaID func() string, request v1.RegisterEmpresaRequest) (*v1.RegisterEmpresaResponse, error) {
	logger := logging.FromContext(ctx)

	uid, err := authClient.CreateUser(ctx, request.Email, request.Password, request.Nombre)
	if err != nil {
		return nil, auth.MapAdminError(err)
	}

	empresa := structs.Empresa{
		Nombre:        request.Nombre,
		Tipo:          request.Tipo,
		Descripcion:   request.Descripcion,
		Direccion:     request.Direccion,
		OwnerID:       uid,
		Activo:        true,
		FechaRegistro: utils.GetTimeNow().Unix(),
	}

	empresaID, err := createEmpresaDoc(ctx, storeClient, generateEmpresaID, empresa)
	if err != nil {
		logger.Warnf("Empresa doc write for %v failed, rolling back auth identity: %v", uid, err)

		if deleteErr := authClient.DeleteUser(ctx, uid); deleteErr != nil {
			logger.Errorf("Rollback of auth identity %v failed: %v", uid, deleteErr)
		}

		return nil, err
	}

	customToken, err := authClient.CustomToken(ctx, uid)
	if err != nil {
		return nil, err
	}

	if err := pubSubClient.Publish(constants.TopicRegisterEmpresa, AftermathPayload{UID: uid, EmpresaID: empresaID}); err != nil {
		logger.Warnf("Could not publish empresa-registered event for %v: %v", empresaID, err)
	}

	logger.Infof("Registered new empresa %v owned by %v", empresaID, uid)

	return &v1.RegisterEmpresaResponse{UID: uid, EmpresaID: empresaID, CustomToken: customToken}, nil
}

func createEmpresaDoc(ctx context.Context, storeClient store.Storer, generateEmpresaID func() string, empresa structs.Empresa) (string, error) {
	logger := logging.FromContext(ctx)

	var empresaID string

	err := retry.Do(
		func() error {
			empresaID = generateEmpresaID()
			var doc = storeClient.Doc(constants.CollectionEmpresas, empresaID)

			logger.Debugf("Trying empresa ID: %v", empresaID)

			return storeClient.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
				_, err := tx.Get(doc)

				if err == nil {
					// doc found, need retry
					return &errors.CustomError{Msg: needsRetry}
				}

				if status.Code(err) != codes.NotFound {
					return fmt.Errorf("Error while querying Firestore: %v", err)
				}
				// not found, great!

				return tx.Set(doc, empresa)
			})
		},
		retry.RetryIf(func(err error) bool {
			return err.Error() == needsRetry
		}),
	)

	return empresaID, err
}
