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
	"github.com/drinkgo/drinkgo-backend/internal/pubsub"
	"github.com/drinkgo/drinkgo-backend/internal/store"
	"github.com/drinkgo/drinkgo-backend/internal/utils"
	"github.com/drinkgo/drinkgo-backend/internal/utils/errors"
	httputils "github.com/drinkgo/drinkgo-backend/internal/utils/http"
	v1 "github.com/drinkgo/drinkgo-backend/pkg/api/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

//AftermathPayload Payload of the cupon-redeemed event.
type AftermathPayload struct {
	CuponID   string `json:"cuponId"`
	EmpresaID string `json:"empresaId"`
	UID       string `json:"uid"`
}

//RedeemCupon Redeems a coupon for the authenticated user. The whole check-and-increment runs
//in one Firestore transaction, so the redemption cap holds across devices: concurrent
//redemptions serialize and the one that would exceed the limit is rejected.
func RedeemCupon(w http.ResponseWriter, r *http.Request) {
	var ctx = r.Context()
	logger := logging.FromContext(ctx)

	storeClient := store.Client{}
	authClient := auth.Client{}
	pubSubClient := pubsub.Client{}

	var request v1.RedeemCuponRequest

	if !httputils.DecodeJSONOrReportError(w, r, &request) {
		return
	}

	uid, err := authClient.AuthenticateToken(ctx, request.IDToken)
	if err != nil {
		logger.Debugf("Unverifiable token provided: %v", err)
		httputils.SendErrorResponse(w, r, &errors.UnauthenticatedError{Msg: "Invalid token"})
		return
	}

	logger.Debugf("Handling RedeemCupon request by %v: %+v", uid, request)

	newCount, empresaID, err := redeem(ctx, storeClient, uid, request.CuponID, request.Codigo, utils.Today())
	if err != nil {
		logger.Debugf("Redemption of %v by %v refused: %v", request.CuponID, uid, err)
		httputils.SendErrorResponse(w, r, err)
		return
	}

	if err := pubSubClient.Publish(constants.TopicRedeemCupon, AftermathPayload{CuponID: request.CuponID, EmpresaID: empresaID, UID: uid}); err != nil {
		// the redemption itself is already committed
		logger.Warnf("Could not publish cupon-redeemed event for %v: %v", request.CuponID, err)
	}

	logger.Infof("Cupon %v redeemed by %v (count %v)", request.CuponID, uid, newCount)

	httputils.SendResponse(w, r, v1.RedeemCuponResponse{CanjeosActuales: newCount})
}

func redeem(ctx context.Context, storeClient store.Storer, uid string, cuponID string, codigo string, today string) (int, string, error) {
	cuponDoc := storeClient.Doc(constants.CollectionCupones, cuponID)
	canjeoDoc := storeClient.Doc(constants.CollectionCanjeos, cuponID+"_"+uid)

	var newCount int
	var empresaID string

	err := storeClient.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		rec, err := tx.Get(cuponDoc)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return &errors.NotFoundError{Msg: fmt.Sprintf("Could not find cupon %v", cuponID)}
			}
			return fmt.Errorf("Error while querying Firestore: %v", err)
		}

		var cupon structs.Cupon
		if err := rec.DataTo(&cupon); err != nil {
			return fmt.Errorf("Error while querying Firestore: %v", err)
		}

		_, err = tx.Get(canjeoDoc)
		alreadyRedeemed := err == nil
		if err != nil && status.Code(err) != codes.NotFound {
			return fmt.Errorf("Error while querying Firestore: %v", err)
		}

		if err := CheckRedemption(cupon, alreadyRedeemed, codigo, today); err != nil {
			return err
		}

		cupon.CanjeosActuales++
		newCount = cupon.CanjeosActuales
		empresaID = cupon.EmpresaID

		if err := tx.Set(cuponDoc, cupon); err != nil {
			return err
		}

		return tx.Set(canjeoDoc, structs.Canjeo{
			CuponID:    cuponID,
			EmpresaID:  cupon.EmpresaID,
			UID:        uid,
			RedeemedAt: utils.GetTimeNow().Unix(),
		})
	})

	if err != nil {
		return 0, "", err
	}

	return newCount, empresaID, nil
}
