package checkredemptionthresholds

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/drinkgo/drinkgo-backend/internal/constants"
	"github.com/drinkgo/drinkgo-backend/internal/firebase/structs"
	"github.com/drinkgo/drinkgo-backend/internal/logging"
	"github.com/drinkgo/drinkgo-backend/internal/monitoring"
	"github.com/drinkgo/drinkgo-backend/internal/store"
	"github.com/drinkgo/drinkgo-backend/internal/utils"
	httputils "github.com/drinkgo/drinkgo-backend/internal/utils/http"
	"google.golang.org/api/iterator"
)

// Flagging thresholds. A single user redeeming this many coupons in one day is abuse,
// and so is the whole backend suddenly redeeming at this rate.
const maxDailyRedemptionsPerUser = 20
const maxRedemptionsPerHour = 1000

const redeemMetricFilter = `metric.type="cloudfunctions.googleapis.com/function/execution_count" resource.label."function_name"="RedeemCupon"`

type queryRequest struct {
	UID string `json:"uid" validate:"required"`
}

type queryResponse struct {
	ThresholdsOk bool `json:"thresholdsOK"`
}

//CheckRedemptionThresholds Checks whether redemptions stay under the abuse thresholds, both
//for one user (counted from canjeos records) and globally (read from Cloud Monitoring).
//Meant to be called by ops tooling and scheduled checks, not by the app.
func CheckRedemptionThresholds(w http.ResponseWriter, r *http.Request) {
	var ctx = r.Context()
	logger := logging.FromContext(ctx)

	storeClient := store.Client{}
	monitoringClient := monitoring.Client{}

	var request queryRequest

	if !httputils.DecodeJSONOrReportError(w, r, &request) {
		return
	}

	logger.Debugf("Handling CheckRedemptionThresholds request: %+v", request)

	userCount, err := dailyRedemptionsOf(ctx, storeClient, request.UID)
	if err != nil {
		logger.Warnf("Cannot handle request due to unknown error: %+v", err.Error())
		httputils.SendErrorResponse(w, r, err)
		return
	}

	globalOk, err := globalRateOk(ctx, monitoringClient)
	if err != nil {
		// the metric read failing must not block redemptions
		logger.Warnf("Could not read redemption rate metric: %v", err)
		globalOk = true
	}

	var isOk = userCount < maxDailyRedemptionsPerUser && globalOk

	logger.Infof("Thresholds check for %v: daily count %v, global ok %v", request.UID, userCount, globalOk)

	httputils.SendResponse(w, r, queryResponse{ThresholdsOk: isOk})
}

func dailyRedemptionsOf(ctx context.Context, client store.Client, uid string) (int, error) {
	midnight := utils.GetTimeNow().Truncate(24 * time.Hour).Unix()

	it := client.FindAll(constants.CollectionCanjeos, "uid", uid).Documents(ctx)
	defer it.Stop()

	var count int

	for {
		rec, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("Error while querying Firestore: %v", err)
		}

		var canjeo structs.Canjeo
		if err := rec.DataTo(&canjeo); err != nil {
			return 0, fmt.Errorf("Error while querying Firestore: %v", err)
		}

		if canjeo.RedeemedAt >= midnight {
			count++
		}
	}

	return count, nil
}

func globalRateOk(ctx context.Context, reader monitoring.Reader) (bool, error) {
	projectID := constants.ProjectID
	if id, exists := os.LookupEnv("PROJECT_ID"); exists {
		projectID = id
	}

	until := *utils.GetTimeNow()
	from := until.Add(-1 * time.Hour)

	values, err := reader.ReadSummarized(ctx, projectID, redeemMetricFilter, from, until, 3600)
	if err != nil {
		return false, err
	}

	for _, value := range values {
		if value >= maxRedemptionsPerHour {
			return false, nil
		}
	}

	return true, nil
}
