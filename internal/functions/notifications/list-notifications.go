package notifications

import (
	"fmt"
	"net/http"

	"github.com/drinkgo/drinkgo-backend/internal/auth"
	"github.com/drinkgo/drinkgo-backend/internal/constants"
	"github.com/drinkgo/drinkgo-backend/internal/firebase/structs"
	"github.com/drinkgo/drinkgo-backend/internal/logging"
	"github.com/drinkgo/drinkgo-backend/internal/store"
	"github.com/drinkgo/drinkgo-backend/internal/utils/errors"
	httputils "github.com/drinkgo/drinkgo-backend/internal/utils/http"
	v1 "github.com/drinkgo/drinkgo-backend/pkg/api/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

//ListNotifications Returns the authenticated user's notification log, newest first.
func ListNotifications(w http.ResponseWriter, r *http.Request) {
	var ctx = r.Context()
	logger := logging.FromContext(ctx)

	storeClient := store.Client{}
	authClient := auth.Client{}

	var request v1.ListNotificationsRequest

	if !httputils.DecodeJSONOrReportError(w, r, &request) {
		return
	}

	uid, err := authClient.AuthenticateToken(ctx, request.IDToken)
	if err != nil {
		logger.Debugf("Unverifiable token provided: %v", err)
		httputils.SendErrorResponse(w, r, &errors.UnauthenticatedError{Msg: "Invalid token"})
		return
	}

	logger.Debugf("Handling ListNotifications request for %v", uid)

	rec, err := storeClient.Doc(constants.CollectionNotificaciones, uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			httputils.SendResponse(w, r, v1.ListNotificationsResponse{Notificaciones: []structs.NotificationRecord{}})
			return
		}
		logger.Warnf("Cannot handle request due to unknown error: %+v", err.Error())
		httputils.SendErrorResponse(w, r, fmt.Errorf("Error while querying Firestore: %v", err))
		return
	}

	var log structs.NotificationLog
	if err := rec.DataTo(&log); err != nil {
		logger.Warnf("Cannot handle request due to unknown error: %+v", err.Error())
		httputils.SendErrorResponse(w, r, fmt.Errorf("Error while querying Firestore: %v", err))
		return
	}

	httputils.SendResponse(w, r, v1.ListNotificationsResponse{Notificaciones: newestFirst(log.Records)})
}

// records are stored oldest to newest, clients want the opposite
func newestFirst(records []structs.NotificationRecord) []structs.NotificationRecord {
	reversed := make([]structs.NotificationRecord, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		reversed = append(reversed, records[i])
	}
	return reversed
}
