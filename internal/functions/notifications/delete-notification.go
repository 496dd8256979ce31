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

//DeleteNotification Removes one notification from the authenticated user's log.
func DeleteNotification(w http.ResponseWriter, r *http.Request) {
	var ctx = r.Context()
	logger := logging.FromContext(ctx)

	storeClient := store.Client{}
	authClient := auth.Client{}

	var request v1.DeleteNotificationRequest

	if !httputils.DecodeJSONOrReportError(w, r, &request) {
		return
	}

	uid, err := authClient.AuthenticateToken(ctx, request.IDToken)
	if err != nil {
		logger.Debugf("Unverifiable token provided: %v", err)
		httputils.SendErrorResponse(w, r, &errors.UnauthenticatedError{Msg: "Invalid token"})
		return
	}

	logger.Debugf("Handling DeleteNotification request for %v, notification %v", uid, request.NotificationID)

	var found bool

	err = updateLog(ctx, storeClient, uid, func(records []structs.NotificationRecord) []structs.NotificationRecord {
		found = false
		kept := records[:0]
		for _, record := range records {
			if record.ID == request.NotificationID {
				found = true
				continue
			}
			kept = append(kept, record)
		}
		return kept
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
