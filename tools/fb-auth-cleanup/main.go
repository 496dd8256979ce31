package main

import (
	"context"
	"flag"
	"log"

	firebase "firebase.google.com/go"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Deletes auth identities that have neither a usuarios nor an empresas (by ownerId) profile.
// Such orphans are left behind when the registration rollback itself fails.

var (
	projectID = flag.String("project", "drinkgo-app", "Firebase project ID")
	dryRun    = flag.Bool("dry-run", true, "only print what would be deleted")
)

func main() {
	flag.Parse()

	ctx := context.Background()

	conf := &firebase.Config{
		ProjectID: *projectID,
	}

	app, err := firebase.NewApp(ctx, conf)
	if err != nil {
		log.Fatalf("error initializing app: %v\n", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		log.Fatalf("error getting Auth client: %v\n", err)
	}

	firestoreClient, err := app.Firestore(ctx)
	if err != nil {
		log.Fatalf("error getting Firestore client: %v\n", err)
	}

	// Note, behind the scenes, the Users() iterator will retrieve 1000 Users at a time through the API
	iter := authClient.Users(ctx, "")
	for {
		user, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			log.Fatalf("error listing users: %s\n", err)
		}

		uid := user.UID

		_, err = firestoreClient.Collection("usuarios").Doc(uid).Get(ctx)
		if err == nil {
			continue
		}
		if status.Code(err) != codes.NotFound {
			log.Fatalf("error reading usuario %s: %s\n", uid, err)
		}

		it := firestoreClient.Collection("empresas").Where("ownerId", "==", uid).Limit(1).Documents(ctx)
		_, err = it.Next()
		it.Stop()
		if err == nil {
			continue
		}
		if err != iterator.Done {
			log.Fatalf("error reading empresas of %s: %s\n", uid, err)
		}

		if *dryRun {
			log.Printf("would delete orphaned identity: %s (%s)\n", uid, user.Email)
			continue
		}

		if err := authClient.DeleteUser(ctx, uid); err != nil {
			log.Printf("could not delete %s: %s\n", uid, err)
			continue
		}

		log.Printf("deleted orphaned identity: %s (%s)\n", uid, user.Email)
	}
}
