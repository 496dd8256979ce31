package registeruser

import (
	"context"
	"fmt"

	"firebase.google.com/go/db"
	"github.com/drinkgo/drinkgo-backend/internal/constants"
	"github.com/drinkgo/drinkgo-backend/internal/firebase/structs"
	"github.com/drinkgo/drinkgo-backend/internal/logging"
	"github.com/drinkgo/drinkgo-backend/internal/pubsub"
	"github.com/drinkgo/drinkgo-backend/internal/realtimedb"
	"github.com/drinkgo/drinkgo-backend/internal/utils"
)

// Aftermath handler. Consumes the user-registered event and bumps daily/total user counters.
func Aftermath(ctx context.Context, m pubsub.Message) error {
	logger := logging.FromContext(ctx)

	var payload AftermathPayload

	decodeErr := pubsub.DecodeJSONEvent(m, &payload)
	if decodeErr != nil {
		return fmt.Errorf("Error while parsing event payload: %v", decodeErr)
	}

	logger.Debugf("Doing user registration aftermath for '%s'", payload.UID)

	client := realtimedb.Client{}

	var date = utils.GetTimeNow().Format("20060102")

	// update daily counter
	err := updateCounter(ctx, client, constants.DbUserCountersPrefix+date)
	if err != nil {
		logger.Warnf("Cannot handle register user aftermath due to unknown error: %+v", err.Error())
		return err
	}

	// update total counter
	err = updateCounter(ctx, client, constants.DbUserCountersPrefix+"total")
	if err != nil {
		logger.Warnf("Cannot handle register user aftermath due to unknown error: %+v", err.Error())
		return err
	}

	logger.Debugf("Register user aftermath done")

	return nil
}

func updateCounter(ctx context.Context, client realtimedb.Client, key string) error {
	logger := logging.FromContext(ctx)

	return client.RunTransaction(ctx, key, func(tn db.TransactionNode) (interface{}, error) {
		var state structs.UserCounter

		if err := tn.Unmarshal(&state); err != nil {
			return nil, err
		}

		state.UsersCount++

		logger.Debugf("Saving updated counter state, key %v: %+v", key, state)

		return state, nil
	})
}
