package notifications

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	fbmessaging "firebase.google.com/go/messaging"
	"github.com/drinkgo/drinkgo-backend/internal/constants"
	"github.com/drinkgo/drinkgo-backend/internal/firebase/structs"
	"github.com/drinkgo/drinkgo-backend/internal/logging"
	"github.com/drinkgo/drinkgo-backend/internal/messaging"
	"github.com/drinkgo/drinkgo-backend/internal/store"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// The log keeps only the newest entries, the original app capped its on-device log the same way.
const maxRecords = 50

//Append Appends a record to the user's notification log, dropping the oldest entries over
//the cap, and best-effort pushes it to the given device token. The push never fails the append.
func Append(ctx context.Context, storeClient store.Storer, pushSender messaging.PushSender, uid string, record structs.NotificationRecord, pushToken string) error {
	logger := logging.FromContext(ctx)

	doc := storeClient.Doc(constants.CollectionNotificaciones, uid)

	err := storeClient.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		log, err := readLog(tx, doc)
		if err != nil {
			return err
		}

		log.Records = capped(append(log.Records, record))

		return tx.Set(doc, log)
	})
	if err != nil {
		return err
	}

	if pushToken != "" {
		msg := fbmessaging.Message{
			Token: pushToken,
			Notification: &fbmessaging.Notification{
				Title: record.Titulo,
				Body:  record.Mensaje,
			},
		}

		if err := pushSender.Send(ctx, &msg); err != nil {
			logger.Warnf("Could not push notification %v to %v: %v", record.ID, uid, err)
		}
	}

	return nil
}

func capped(records []structs.NotificationRecord) []structs.NotificationRecord {
	if len(records) > maxRecords {
		return records[len(records)-maxRecords:]
	}
	return records
}

func readLog(tx *firestore.Transaction, doc *firestore.DocumentRef) (*structs.NotificationLog, error) {
	var log structs.NotificationLog

	rec, err := tx.Get(doc)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return &log, nil
		}
		return nil, fmt.Errorf("Error while querying Firestore: %v", err)
	}

	if err := rec.DataTo(&log); err != nil {
		return nil, fmt.Errorf("Error while querying Firestore: %v", err)
	}

	return &log, nil
}

// read-modify-write of the whole list; fine while the log stays capped at 50
func updateLog(ctx context.Context, storeClient store.Storer, uid string, update func(records []structs.NotificationRecord) []structs.NotificationRecord) error {
	doc := storeClient.Doc(constants.CollectionNotificaciones, uid)

	return storeClient.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		log, err := readLog(tx, doc)
		if err != nil {
			return err
		}

		log.Records = update(log.Records)

		return tx.Set(doc, log)
	})
}
