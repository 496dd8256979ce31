package favoritos

import (
	"fmt"
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/drinkgo/drinkgo-backend/internal/auth"
	"github.com/drinkgo/drinkgo-backend/internal/constants"
	"github.com/drinkgo/drinkgo-backend/internal/firebase/structs"
	"github.com/drinkgo/drinkgo-backend/internal/logging"
	"github.com/drinkgo/drinkgo-backend/internal/store"
	"github.com/drinkgo/drinkgo-backend/internal/utils/errors"
	httputils "github.com/drinkgo/drinkgo-backend/internal/utils/http"
	v1 "github.com/drinkgo/drinkgo-backend/pkg/api/v1"
	"google.golang.org/api/iterator"
)

//ListFavorites Returns the authenticated user's favorites, most recently added first.
func ListFavorites(w http.ResponseWriter, r *http.Request) {
	var ctx = r.Context()
	logger := logging.FromContext(ctx)

	storeClient := store.Client{}
	authClient := auth.Client{}

	var request v1.ListFavoritesRequest

	if !httputils.DecodeJSONOrReportError(w, r, &request) {
		return
	}

	uid, err := authClient.AuthenticateToken(ctx, request.IDToken)
	if err != nil {
		logger.Debugf("Unverifiable token provided: %v", err)
		httputils.SendErrorResponse(w, r, &errors.UnauthenticatedError{Msg: "Invalid token"})
		return
	}

	logger.Debugf("Handling ListFavorites request for %v", uid)

	it := storeClient.SubCollection(constants.CollectionUsuarios, uid, constants.CollectionFavoritos).
		OrderBy("addedAt", firestore.Desc).
		Documents(ctx)
	defer it.Stop()

	favoritos := []structs.FavoriteDrink{}

	for {
		rec, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			logger.Warnf("Cannot handle request due to unknown error: %+v", err.Error())
			httputils.SendErrorResponse(w, r, fmt.Errorf("Error while querying Firestore: %v", err))
			return
		}

		var favorite structs.FavoriteDrink
		if err := rec.DataTo(&favorite); err != nil {
			logger.Warnf("Cannot handle request due to unknown error: %+v", err.Error())
			httputils.SendErrorResponse(w, r, fmt.Errorf("Error while querying Firestore: %v", err))
			return
		}

		favoritos = append(favoritos, favorite)
	}

	httputils.SendResponse(w, r, v1.ListFavoritesResponse{Favoritos: favoritos})
}
