package drinks

import (
	"net/http"

	"github.com/drinkgo/drinkgo-backend/internal/cocktaildb"
	"github.com/drinkgo/drinkgo-backend/internal/logging"
	httputils "github.com/drinkgo/drinkgo-backend/internal/utils/http"
	v1 "github.com/drinkgo/drinkgo-backend/pkg/api/v1"
)

//SearchDrinks Searches recipes by name, served through the cache.
func SearchDrinks(w http.ResponseWriter, r *http.Request) {
	var ctx = r.Context()
	logger := logging.FromContext(ctx)

	var request v1.SearchDrinksRequest

	if !httputils.DecodeJSONOrReportError(w, r, &request) {
		return
	}

	logger.Debugf("Handling SearchDrinks request for '%v'", request.Query)

	fetcher, cache, err := newFetcherAndCache(ctx)
	if err != nil {
		logger.Warnf("Cannot handle request due to unknown error: %+v", err.Error())
		httputils.SendErrorResponse(w, r, err)
		return
	}

	var drinks []cocktaildb.Drink

	source, err := cache.GetOrFetch(ctx, "search:"+request.Query, &drinks, func() error {
		fetched, err := fetcher.Search(ctx, request.Query)
		if err != nil {
			return err
		}
		drinks = fetched
		return nil
	})
	if err != nil {
		logger.Warnf("Cannot handle request due to unknown error: %+v", err.Error())
		httputils.SendErrorResponse(w, r, err)
		return
	}

	if drinks == nil {
		drinks = []cocktaildb.Drink{}
	}

	httputils.SendResponse(w, r, v1.SearchDrinksResponse{Source: string(source), Drinks: drinks})
}
