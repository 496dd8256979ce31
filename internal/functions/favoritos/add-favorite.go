package favoritos

import (
	"net/http"

	"github.com/drinkgo/drinkgo-backend/internal/auth"
	"github.com/drinkgo/drinkgo-backend/internal/constants"
	"github.com/drinkgo/drinkgo-backend/internal/firebase/structs"
	"github.com/drinkgo/drinkgo-backend/internal/logging"
	"github.com/drinkgo/drinkgo-backend/internal/store"
	"github.com/drinkgo/drinkgo-backend/internal/utils"
	"github.com/drinkgo/drinkgo-backend/internal/utils/errors"
	httputils "github.com/drinkgo/drinkgo-backend/internal/utils/http"
	v1 "github.com/drinkgo/drinkgo-backend/pkg/api/v1"
)

//AddFavorite Stores a denormalized recipe under the authenticated user's favorites. The
//drink ID is the document ID, so re-adding the same drink just overwrites it.
func AddFavorite(w http.ResponseWriter, r *http.Request) {
	var ctx = r.Context()
	logger := logging.FromContext(ctx)

	storeClient := store.Client{}
	authClient := auth.Client{}

	var request v1.AddFavoriteRequest

	if !httputils.DecodeJSONOrReportError(w, r, &request) {
		return
	}

	uid, err := authClient.AuthenticateToken(ctx, request.IDToken)
	if err != nil {
		logger.Debugf("Unverifiable token provided: %v", err)
		httputils.SendErrorResponse(w, r, &errors.UnauthenticatedError{Msg: "Invalid token"})
		return
	}

	logger.Debugf("Handling AddFavorite request for %v: %+v", uid, request)

	favorite := structs.FavoriteDrink{
		IDDrink:   request.IDDrink,
		Nombre:    request.Nombre,
		Miniatura: request.Miniatura,
		Categoria: request.Categoria,
		AddedAt:   utils.GetTimeNow().Unix(),
	}

	err = storeClient.SetSub(ctx, constants.CollectionUsuarios, uid, constants.CollectionFavoritos, request.IDDrink, favorite)
	if err != nil {
		logger.Warnf("Cannot handle request due to unknown error: %+v", err.Error())
		httputils.SendErrorResponse(w, r, err)
		return
	}

	logger.Infof("Favorite %v added for %v", request.IDDrink, uid)

	httputils.SendEmptyResponse(w, r)
}
