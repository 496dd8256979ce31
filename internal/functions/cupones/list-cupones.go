package cupones

import (
	"context"
	"fmt"
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/drinkgo/drinkgo-backend/internal/auth"
	"github.com/drinkgo/drinkgo-backend/internal/constants"
	"github.com/drinkgo/drinkgo-backend/internal/firebase/structs"
	"github.com/drinkgo/drinkgo-backend/internal/logging"
	"github.com/drinkgo/drinkgo-backend/internal/store"
	"github.com/drinkgo/drinkgo-backend/internal/utils"
	httputils "github.com/drinkgo/drinkgo-backend/internal/utils/http"
	v1 "github.com/drinkgo/drinkgo-backend/pkg/api/v1"
	"google.golang.org/api/iterator"
)

//ListCupones Lists coupons, optionally restricted to one empresa. Availability is computed
//per viewer; guests get the viewer-independent part only.
func ListCupones(w http.ResponseWriter, r *http.Request) {
	var ctx = r.Context()
	logger := logging.FromContext(ctx)

	storeClient := store.Client{}
	authClient := auth.Client{}

	var request v1.ListCuponesRequest

	if !httputils.DecodeJSONOrReportError(w, r, &request) {
		return
	}

	var uid string
	if request.IDToken != "" {
		var err error
		uid, err = authClient.AuthenticateToken(ctx, request.IDToken)
		if err != nil {
			logger.Debugf("Unverifiable token provided, treating viewer as guest: %v", err)
		}
	}

	logger.Debugf("Handling ListCupones request (empresa %q, viewer %q)", request.EmpresaID, uid)

	var query firestore.Query
	if request.EmpresaID != "" {
		query = storeClient.FindAll(constants.CollectionCupones, "empresaId", request.EmpresaID)
	} else {
		query = storeClient.FindAll(constants.CollectionCupones, "activo", true)
	}

	cupones, err := collectCupones(ctx, query)
	if err != nil {
		logger.Warnf("Cannot handle request due to unknown error: %+v", err.Error())
		httputils.SendErrorResponse(w, r, err)
		return
	}

	redeemedIDs := map[string]bool{}
	if uid != "" {
		redeemedIDs, err = redeemedByViewer(ctx, storeClient, uid)
		if err != nil {
			logger.Warnf("Cannot handle request due to unknown error: %+v", err.Error())
			httputils.SendErrorResponse(w, r, err)
			return
		}
	}

	httputils.SendResponse(w, r, v1.ListCuponesResponse{Cupones: buildViews(cupones, utils.Today(), redeemedIDs)})
}

//storedCupon A coupon together with its document ID, in query order.
type storedCupon struct {
	ID    string
	Cupon structs.Cupon
}

func collectCupones(ctx context.Context, query firestore.Query) ([]storedCupon, error) {
	it := query.Documents(ctx)
	defer it.Stop()

	var cupones []storedCupon

	for {
		rec, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("Error while querying Firestore: %v", err)
		}

		var cupon structs.Cupon
		if err := rec.DataTo(&cupon); err != nil {
			return nil, fmt.Errorf("Error while querying Firestore: %v", err)
		}

		cupones = append(cupones, storedCupon{ID: rec.Ref.ID, Cupon: cupon})
	}

	return cupones, nil
}

//buildViews Keeps the document order of the query so clients render a stable list.
func buildViews(cupones []storedCupon, today string, redeemedIDs map[string]bool) []v1.CuponView {
	views := make([]v1.CuponView, 0, len(cupones))
	for _, stored := range cupones {
		views = append(views, v1.CuponView{
			ID:         stored.ID,
			Cupon:      stored.Cupon,
			Disponible: IsAvailable(stored.ID, stored.Cupon, today, redeemedIDs),
		})
	}
	return views
}

func redeemedByViewer(ctx context.Context, client store.Client, uid string) (map[string]bool, error) {
	it := client.FindAll(constants.CollectionCanjeos, "uid", uid).Documents(ctx)
	defer it.Stop()

	redeemed := make(map[string]bool)

	for {
		rec, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("Error while querying Firestore: %v", err)
		}

		var canjeo structs.Canjeo
		if err := rec.DataTo(&canjeo); err != nil {
			return nil, fmt.Errorf("Error while querying Firestore: %v", err)
		}

		redeemed[canjeo.CuponID] = true
	}

	return redeemed, nil
}
