package notifications

import (
	"context"
	"fmt"
	"net/http"

	"github.com/drinkgo/drinkgo-backend/internal/auth"
	"github.com/drinkgo/drinkgo-backend/internal/constants"
	"github.com/drinkgo/drinkgo-backend/internal/firebase/structs"
	"github.com/drinkgo/drinkgo-backend/internal/logging"
	"github.com/drinkgo/drinkgo-backend/internal/messaging"
	"github.com/drinkgo/drinkgo-backend/internal/store"
	"github.com/drinkgo/drinkgo-backend/internal/utils"
	"github.com/drinkgo/drinkgo-backend/internal/utils/errors"
	httputils "github.com/drinkgo/drinkgo-backend/internal/utils/http"
	v1 "github.com/drinkgo/drinkgo-backend/pkg/api/v1"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

//AddNotification Appends a notification to the target user's log and pushes it to their
//device. Empresa-typed notifications may only be sent by an identity linked to an empresa,
//and carry that empresa's ID regardless of what the request claims.
func AddNotification(w http.ResponseWriter, r *http.Request) {
	var ctx = r.Context()
	logger := logging.FromContext(ctx)

	storeClient := store.Client{}
	authClient := auth.Client{}

	var request v1.AddNotificationRequest

	if !httputils.DecodeJSONOrReportError(w, r, &request) {
		return
	}

	uid, err := authClient.AuthenticateToken(ctx, request.IDToken)
	if err != nil {
		logger.Debugf("Unverifiable token provided: %v", err)
		httputils.SendErrorResponse(w, r, &errors.UnauthenticatedError{Msg: "Invalid token"})
		return
	}

	empresaID := request.EmpresaID

	if request.Tipo != "sistema" {
		empresaID, err = empresaOfOwner(ctx, storeClient, uid)
		if err != nil {
			logger.Warnf("Cannot handle request due to unknown error: %+v", err.Error())
			httputils.SendErrorResponse(w, r, err)
			return
		}

		if empresaID == "" {
			httputils.SendErrorResponse(w, r, &errors.ConflictError{Msg: "Esta cuenta no está vinculada a ninguna empresa"})
			return
		}
	}

	logger.Debugf("Handling AddNotification request for %v: %+v", request.TargetUID, request)

	pushToken, err := pushTokenOf(ctx, storeClient, request.TargetUID)
	if err != nil {
		logger.Debugf("Could not resolve target user %v: %v", request.TargetUID, err)
		httputils.SendErrorResponse(w, r, err)
		return
	}

	record := structs.NotificationRecord{
		ID:        utils.GenerateNotificationID(),
		Titulo:    request.Titulo,
		Mensaje:   request.Mensaje,
		Timestamp: utils.GetTimeNow().Unix(),
		Tipo:      request.Tipo,
		EmpresaID: empresaID,
		CuponID:   request.CuponID,
	}

	if err := Append(ctx, storeClient, messaging.Client{}, request.TargetUID, record, pushToken); err != nil {
		logger.Warnf("Cannot handle request due to unknown error: %+v", err.Error())
		httputils.SendErrorResponse(w, r, err)
		return
	}

	logger.Infof("Notification %v added for %v", record.ID, request.TargetUID)

	httputils.SendResponse(w, r, v1.AddNotificationResponse{NotificationID: record.ID})
}

func pushTokenOf(ctx context.Context, storeClient store.Storer, uid string) (string, error) {
	rec, err := storeClient.Doc(constants.CollectionUsuarios, uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return "", &errors.NotFoundError{Msg: fmt.Sprintf("Could not find usuario %v", uid)}
		}
		return "", fmt.Errorf("Error while querying Firestore: %v", err)
	}

	var usuario structs.Usuario
	if err := rec.DataTo(&usuario); err != nil {
		return "", fmt.Errorf("Error while querying Firestore: %v", err)
	}

	return usuario.PushRegistrationToken, nil
}

func empresaOfOwner(ctx context.Context, client store.Client, uid string) (string, error) {
	it := client.Find(constants.CollectionEmpresas, "ownerId", uid).Documents(ctx)
	defer it.Stop()

	rec, err := it.Next()
	if err == iterator.Done {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("Error while querying Firestore: %v", err)
	}

	return rec.Ref.ID, nil
}
