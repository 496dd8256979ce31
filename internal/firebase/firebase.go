package firebase

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	fbauth "firebase.google.com/go/auth"
	"firebase.google.com/go/db"
	"firebase.google.com/go/messaging"
	"github.com/drinkgo/drinkgo-backend/internal/constants"
)

//FirebaseDbClient -_-
var FirebaseDbClient *db.Client

//FirestoreClient -_-
var FirestoreClient *firestore.Client

//FirebaseAuth -_-
var FirebaseAuth *fbauth.Client

//FirebaseMessaging -_-
var FirebaseMessaging *messaging.Client

func init() {
	ctx := context.Background()

	firebaseURL := constants.FirebaseURL
	url, exists := os.LookupEnv("FIREBASE_URL")
	if exists {
		firebaseURL = url
	}

	if firebaseURL == "NOOP" {
		log.Printf("Mocking Firebase")
		return
	}

	conf := &firebase.Config{
		DatabaseURL: firebaseURL,
	}

	app, err := firebase.NewApp(ctx, conf)
	if err != nil {
		log.Fatalf("firebase.NewApp: %v", err)
	}
	FirebaseDbClient, err = app.Database(ctx)
	if err != nil {
		log.Fatalf("app.Database: %v", err)
	}
	FirestoreClient, err = app.Firestore(ctx)
	if err != nil {
		log.Fatalf("app.Firestore: %v", err)
	}
	FirebaseAuth, err = app.Auth(ctx)
	if err != nil {
		log.Fatalf("app.Auth: %v", err)
	}
	FirebaseMessaging, err = app.Messaging(ctx)
	if err != nil {
		log.Fatalf("app.Messaging: %v", err)
	}
}
