package cupones

import (
	"context"
	"fmt"

	"firebase.google.com/go/db"
	"github.com/drinkgo/drinkgo-backend/internal/constants"
	"github.com/drinkgo/drinkgo-backend/internal/firebase/structs"
	"github.com/drinkgo/drinkgo-backend/internal/functions/notifications"
	"github.com/drinkgo/drinkgo-backend/internal/logging"
	"github.com/drinkgo/drinkgo-backend/internal/messaging"
	"github.com/drinkgo/drinkgo-backend/internal/pubsub"
	"github.com/drinkgo/drinkgo-backend/internal/realtimedb"
	"github.com/drinkgo/drinkgo-backend/internal/store"
	"github.com/drinkgo/drinkgo-backend/internal/utils"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

//Aftermath Consumes the cupon-redeemed event. Bumps daily/total redemption counters and logs
//a notification for the empresa owner. Counter failures are returned so Pub/Sub retries,
//the owner notification is best-effort.
func Aftermath(ctx context.Context, m pubsub.Message) error {
	logger := logging.FromContext(ctx)

	var payload AftermathPayload

	decodeErr := pubsub.DecodeJSONEvent(m, &payload)
	if decodeErr != nil {
		return fmt.Errorf("Error while parsing event payload: %v", decodeErr)
	}

	logger.Debugf("Doing redemption aftermath for cupon '%s' by '%s'", payload.CuponID, payload.UID)

	client := realtimedb.Client{}

	var date = utils.GetTimeNow().Format("20060102")

	// update daily counter
	err := updateRedemptionCounter(ctx, client, constants.DbRedemptionCountersPrefix+date)
	if err != nil {
		logger.Warnf("Cannot handle redemption aftermath due to unknown error: %+v", err.Error())
		return err
	}

	// update total counter
	err = updateRedemptionCounter(ctx, client, constants.DbRedemptionCountersPrefix+"total")
	if err != nil {
		logger.Warnf("Cannot handle redemption aftermath due to unknown error: %+v", err.Error())
		return err
	}

	if err := notifyOwner(ctx, store.Client{}, messaging.Client{}, payload); err != nil {
		logger.Warnf("Could not notify empresa owner about redemption of %v: %v", payload.CuponID, err)
	}

	logger.Debugf("Redemption aftermath done")

	return nil
}

func updateRedemptionCounter(ctx context.Context, client realtimedb.Client, key string) error {
	logger := logging.FromContext(ctx)

	return client.RunTransaction(ctx, key, func(tn db.TransactionNode) (interface{}, error) {
		var state structs.RedemptionCounter

		if err := tn.Unmarshal(&state); err != nil {
			return nil, err
		}

		state.RedemptionsCount++

		logger.Debugf("Saving updated counter state, key %v: %+v", key, state)

		return state, nil
	})
}

func notifyOwner(ctx context.Context, storeClient store.Storer, pushSender messaging.PushSender, payload AftermathPayload) error {
	rec, err := storeClient.Doc(constants.CollectionCupones, payload.CuponID).Get(ctx)
	if err != nil {
		return fmt.Errorf("Error while querying Firestore: %v", err)
	}

	var cupon structs.Cupon
	if err := rec.DataTo(&cupon); err != nil {
		return fmt.Errorf("Error while querying Firestore: %v", err)
	}

	rec, err = storeClient.Doc(constants.CollectionEmpresas, payload.EmpresaID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			// empresa deleted meanwhile, nobody to notify
			return nil
		}
		return fmt.Errorf("Error while querying Firestore: %v", err)
	}

	var empresa structs.Empresa
	if err := rec.DataTo(&empresa); err != nil {
		return fmt.Errorf("Error while querying Firestore: %v", err)
	}

	record := structs.NotificationRecord{
		ID:        utils.GenerateNotificationID(),
		Titulo:    "Cupón canjeado",
		Mensaje:   fmt.Sprintf("Tu cupón '%s' fue canjeado", cupon.Titulo),
		Timestamp: utils.GetTimeNow().Unix(),
		Tipo:      "cupon",
		EmpresaID: payload.EmpresaID,
		CuponID:   payload.CuponID,
	}

	return notifications.Append(ctx, storeClient, pushSender, empresa.OwnerID, record, empresa.PushRegistrationToken)
}
