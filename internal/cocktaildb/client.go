package cocktaildb

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	urlutils "net/url"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/drinkgo/drinkgo-backend/internal/logging"
	"github.com/drinkgo/drinkgo-backend/internal/utils/errors"
	httputils "github.com/drinkgo/drinkgo-backend/internal/utils/http"
)

//Config Configuration of the CocktailDB API.
type Config struct {
	URL string `env:"COCKTAILDB_URL, default=https://www.thecocktaildb.com/api/json/v1/1"`
}

//GetURL Gets configured url with given path and query set. It ensures that a valid URL comes
//out of it, no matter if the original one (passed to ENV) included a trailing slash etc.
func (c *Config) GetURL(path string, query urlutils.Values) string {
	url, err := urlutils.Parse(c.URL)
	if err != nil {
		panic(err)
	}

	url.Path = url.Path + path
	url.RawQuery = query.Encode()
	return url.String()
}

//Fetcher Interface for the recipe API client.
type Fetcher interface {
	FilterByCategory(ctx context.Context, category string) ([]DrinkSummary, error)
	Search(ctx context.Context, query string) ([]Drink, error)
	Lookup(ctx context.Context, id string) (*Drink, error)
}

//Client Real recipe API client.
type Client struct {
	config     Config
	httpClient *http.Client
}

//NewClient Creates recipe API client with throttling-aware HTTP transport.
func NewClient(ctx context.Context) (*Client, error) {
	logger := logging.FromContext(ctx)

	var config Config
	if err := envconfig.Process(ctx, &config); err != nil {
		logger.Debugf("Could not load cocktaildb Config: %v", err)
		return nil, err
	}

	inner := &http.Client{
		Timeout: time.Second * 10,
	}

	return &Client{
		config:     config,
		httpClient: httputils.NewThrottlingAwareClient(inner, logger.Named("cocktaildb").Debugf),
	}, nil
}

func (c *Client) fetch(ctx context.Context, path string, query urlutils.Values) (*drinksResponse, error) {
	logger := logging.FromContext(ctx)

	url := c.config.GetURL(path, query)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	res, err := c.httpClient.Do(req.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	if res.Body != nil {
		defer res.Body.Close()
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cocktaildb returned HTTP %v for %v", res.StatusCode, path)
	}

	body, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	var response drinksResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("could not parse cocktaildb response: %v", err)
	}

	logger.Debugf("Fetched %v drinks from %v", len(response.Drinks), path)

	return &response, nil
}

//FilterByCategory Lists drinks of given category (GET /filter.php?c=).
func (c *Client) FilterByCategory(ctx context.Context, category string) ([]DrinkSummary, error) {
	response, err := c.fetch(ctx, "/filter.php", urlutils.Values{"c": {category}})
	if err != nil {
		return nil, err
	}

	summaries := make([]DrinkSummary, 0, len(response.Drinks))
	for i := range response.Drinks {
		summaries = append(summaries, response.Drinks[i].toSummary())
	}

	return summaries, nil
}

//Search Searches drinks by name (GET /search.php?s=). Empty result is not an error,
//the API answers with a null 'drinks' field.
func (c *Client) Search(ctx context.Context, query string) ([]Drink, error) {
	response, err := c.fetch(ctx, "/search.php", urlutils.Values{"s": {query}})
	if err != nil {
		return nil, err
	}

	drinks := make([]Drink, 0, len(response.Drinks))
	for i := range response.Drinks {
		drinks = append(drinks, response.Drinks[i].toDrink())
	}

	return drinks, nil
}

//Lookup Fetches full recipe detail by id (GET /lookup.php?i=).
func (c *Client) Lookup(ctx context.Context, id string) (*Drink, error) {
	response, err := c.fetch(ctx, "/lookup.php", urlutils.Values{"i": {id}})
	if err != nil {
		return nil, err
	}

	if len(response.Drinks) == 0 {
		return nil, &errors.NotFoundError{Msg: fmt.Sprintf("Could not find drink %v", id)}
	}

	drink := response.Drinks[0].toDrink()

	return &drink, nil
}

//MockFetcher Mock recipe API client for unit tests.
type MockFetcher struct {
	Summaries []DrinkSummary
	Drinks    []Drink
	Err       error
}

//FilterByCategory Returns preconfigured summaries.
func (m *MockFetcher) FilterByCategory(ctx context.Context, category string) ([]DrinkSummary, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Summaries, nil
}

//Search Returns preconfigured drinks.
func (m *MockFetcher) Search(ctx context.Context, query string) ([]Drink, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Drinks, nil
}

//Lookup Returns first preconfigured drink.
func (m *MockFetcher) Lookup(ctx context.Context, id string) (*Drink, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if len(m.Drinks) == 0 {
		return nil, &errors.NotFoundError{Msg: "Could not find drink " + id}
	}
	return &m.Drinks[0], nil
}
