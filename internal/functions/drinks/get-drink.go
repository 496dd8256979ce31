package drinks

import (
	goerrors "errors"
	"net/http"

	"github.com/drinkgo/drinkgo-backend/internal/cocktaildb"
	"github.com/drinkgo/drinkgo-backend/internal/logging"
	"github.com/drinkgo/drinkgo-backend/internal/utils/errors"
	httputils "github.com/drinkgo/drinkgo-backend/internal/utils/http"
	v1 "github.com/drinkgo/drinkgo-backend/pkg/api/v1"
)

//GetDrink Fetches one recipe detail, served through the cache. An unknown drink ID is a
//not-found error, not a degraded-data state.
func GetDrink(w http.ResponseWriter, r *http.Request) {
	var ctx = r.Context()
	logger := logging.FromContext(ctx)

	var request v1.GetDrinkRequest

	if !httputils.DecodeJSONOrReportError(w, r, &request) {
		return
	}

	logger.Debugf("Handling GetDrink request for %v", request.IDDrink)

	fetcher, cache, err := newFetcherAndCache(ctx)
	if err != nil {
		logger.Warnf("Cannot handle request due to unknown error: %+v", err.Error())
		httputils.SendErrorResponse(w, r, err)
		return
	}

	var drink cocktaildb.Drink
	var notFoundErr *errors.NotFoundError

	source, err := cache.GetOrFetch(ctx, "drink:"+request.IDDrink, &drink, func() error {
		fetched, err := fetcher.Lookup(ctx, request.IDDrink)
		if err != nil {
			goerrors.As(err, &notFoundErr)
			return err
		}
		drink = *fetched
		return nil
	})
	if err != nil {
		logger.Warnf("Cannot handle request due to unknown error: %+v", err.Error())
		httputils.SendErrorResponse(w, r, err)
		return
	}

	// the API answered, the drink just does not exist
	if notFoundErr != nil && source != cocktaildb.SourceStale {
		httputils.SendErrorResponse(w, r, notFoundErr)
		return
	}

	if source == cocktaildb.SourceUnavailable {
		httputils.SendResponse(w, r, v1.GetDrinkResponse{Source: string(source)})
		return
	}

	httputils.SendResponse(w, r, v1.GetDrinkResponse{Source: string(source), Drink: &drink})
}
