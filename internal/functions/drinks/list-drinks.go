package drinks

import (
	"net/http"

	"github.com/drinkgo/drinkgo-backend/internal/cocktaildb"
	"github.com/drinkgo/drinkgo-backend/internal/logging"
	httputils "github.com/drinkgo/drinkgo-backend/internal/utils/http"
	v1 "github.com/drinkgo/drinkgo-backend/pkg/api/v1"
)

//ListDrinks Lists recipe summaries of a category, served through the cache. The response
//carries where the data came from, so a client can show a stale copy as such instead of
//pretending it is live.
func ListDrinks(w http.ResponseWriter, r *http.Request) {
	var ctx = r.Context()
	logger := logging.FromContext(ctx)

	var request v1.ListDrinksRequest

	if !httputils.DecodeJSONOrReportError(w, r, &request) {
		return
	}

	categoria := request.Categoria
	if categoria == "" {
		categoria = defaultCategory
	}

	logger.Debugf("Handling ListDrinks request for category %v", categoria)

	fetcher, cache, err := newFetcherAndCache(ctx)
	if err != nil {
		logger.Warnf("Cannot handle request due to unknown error: %+v", err.Error())
		httputils.SendErrorResponse(w, r, err)
		return
	}

	var summaries []cocktaildb.DrinkSummary

	source, err := cache.GetOrFetch(ctx, "filter:"+categoria, &summaries, func() error {
		fetched, err := fetcher.FilterByCategory(ctx, categoria)
		if err != nil {
			return err
		}
		summaries = fetched
		return nil
	})
	if err != nil {
		logger.Warnf("Cannot handle request due to unknown error: %+v", err.Error())
		httputils.SendErrorResponse(w, r, err)
		return
	}

	if summaries == nil {
		summaries = []cocktaildb.DrinkSummary{}
	}

	httputils.SendResponse(w, r, v1.ListDrinksResponse{Source: string(source), Drinks: summaries})
}
