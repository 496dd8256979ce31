package drinks

import (
	"context"

	"github.com/drinkgo/drinkgo-backend/internal/cocktaildb"
	"github.com/drinkgo/drinkgo-backend/internal/redis"
	"github.com/drinkgo/drinkgo-backend/internal/redismutex"
)

// The category the app's home screen shows when the user picked none.
const defaultCategory = "Cocktail"

func newFetcherAndCache(ctx context.Context) (cocktaildb.Fetcher, *cocktaildb.Cache, error) {
	fetcher, err := cocktaildb.NewClient(ctx)
	if err != nil {
		return nil, nil, err
	}

	cache := cocktaildb.NewCache(redis.ClientImpl{}, redismutex.ClientImpl{})

	return fetcher, cache, nil
}
