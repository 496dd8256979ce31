package notifications

import (
	"fmt"
	"net/http"

	"github.com/drinkgo/drinkgo-backend/internal/auth"
	"github.com/drinkgo/drinkgo-backend/internal/firebase/structs"
	"github.com/drinkgo/drinkgo-backend/internal/logging"
	"github.com/drinkgo/drinkgo-backend/internal/store"
	"github.com/drinkgo/drinkgo-backend/internal/utils/errors"
	httputils "github.com/drinkgo/drinkgo-backend/internal/utils/http"
	v1 "github.com/drinkgo/drinkgo-backend/pkg/api/v1"
)

//MarkNotificationRead Marks one notification of the authenticated user as read.
func MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	var ctx = r.Context()
	logger := logging.FromContext(ctx)

	storeClient := store.Client{}
	authClient := auth.Client{}

	var request v1.MarkNotificationReadRequest

	if !httputils.DecodeJSONOrReportError(w, r, &request) {
		return
	}

	uid, err := authClient.AuthenticateToken(ctx, request.IDToken)
	if err != nil {
		logger.Debugf("Unverifiable token provided: %v", err)
		httputils.SendErrorResponse(w, r, &errors.UnauthenticatedError{Msg: "Invalid token"})
		return
	}

	logger.Debugf("Handling MarkNotificationRead request for %v, notification %v", uid, request.NotificationID)

	var found bool

	err = updateLog(ctx, storeClient, uid, func(records []structs.NotificationRecord) []structs.NotificationRecord {
		found = false
		for i := range records {
			if records[i].ID == request.NotificationID {
				records[i].Leida = true
				found = true
			}
		}
		return records
	})
	if err != nil {
		logger.Warnf("Cannot handle request due to unknown error: %+v", err.Error())
		httputils.SendErrorResponse(w, r, err)
		return
	}

	if !found {
		httputils.SendErrorResponse(w, r, &errors.NotFoundError{Msg: fmt.Sprintf("Could not find notification %v", request.NotificationID)})
		return
	}

	httputils.SendEmptyResponse(w, r)
}
