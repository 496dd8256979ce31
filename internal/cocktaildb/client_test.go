package cocktaildb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/drinkgo/drinkgo-backend/internal/utils/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &Client{
		config:     Config{URL: srv.URL},
		httpClient: srv.Client(),
	}
}

func TestLookupFlattensIngredients(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/lookup.php", r.URL.Path)
		assert.Equal(t, "11007", r.URL.Query().Get("i"))

		w.Write([]byte(`{"drinks":[{
			"idDrink":"11007",
			"strDrink":"Margarita",
			"strDrinkThumb":"https://example.com/margarita.jpg",
			"strCategory":"Ordinary Drink",
			"strAlcoholic":"Alcoholic",
			"strGlass":"Cocktail glass",
			"strInstructions":"Shake with ice.",
			"strIngredient1":"Tequila",
			"strIngredient2":"Triple sec",
			"strIngredient3":"Lime juice",
			"strIngredient4":null,
			"strMeasure1":"1 1/2 oz",
			"strMeasure2":"1/2 oz",
			"strMeasure3":"1 oz",
			"strMeasure4":null
		}]}`))
	})

	drink, err := client.Lookup(context.Background(), "11007")

	assert.Nil(t, err)

	want := &Drink{
		ID:           "11007",
		Name:         "Margarita",
		Thumb:        "https://example.com/margarita.jpg",
		Category:     "Ordinary Drink",
		Alcoholic:    "Alcoholic",
		Glass:        "Cocktail glass",
		Instructions: "Shake with ice.",
		Ingredients: []Ingredient{
			{Name: "Tequila", Measure: "1 1/2 oz"},
			{Name: "Triple sec", Measure: "1/2 oz"},
			{Name: "Lime juice", Measure: "1 oz"},
		},
	}

	if diff := cmp.Diff(want, drink); diff != "" {
		t.Fatalf("Lookup mismatch (-want +got):\n%v", diff)
	}
}

func TestLookupUnknownDrink(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// the API answers null instead of an empty list
		w.Write([]byte(`{"drinks":null}`))
	})

	drink, err := client.Lookup(context.Background(), "nope")

	assert.Nil(t, drink)
	assert.IsType(t, &errors.NotFoundError{}, err)
}

func TestSearchEmptyResult(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search.php", r.URL.Path)
		assert.Equal(t, "xyzzy", r.URL.Query().Get("s"))

		w.Write([]byte(`{"drinks":null}`))
	})

	drinks, err := client.Search(context.Background(), "xyzzy")

	assert.Nil(t, err)
	assert.Empty(t, drinks)
}

func TestFilterByCategory(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/filter.php", r.URL.Path)
		assert.Equal(t, "Cocktail", r.URL.Query().Get("c"))

		w.Write([]byte(`{"drinks":[
			{"idDrink":"1","strDrink":"A1","strDrinkThumb":"https://example.com/a1.jpg"},
			{"idDrink":"2","strDrink":"Ace","strDrinkThumb":"https://example.com/ace.jpg"}
		]}`))
	})

	summaries, err := client.FilterByCategory(context.Background(), "Cocktail")

	assert.Nil(t, err)

	want := []DrinkSummary{
		{ID: "1", Name: "A1", Thumb: "https://example.com/a1.jpg"},
		{ID: "2", Name: "Ace", Thumb: "https://example.com/ace.jpg"},
	}

	if diff := cmp.Diff(want, summaries); diff != "" {
		t.Fatalf("FilterByCategory mismatch (-want +got):\n%v", diff)
	}
}

func TestFetchServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	})

	_, err := client.FilterByCategory(context.Background(), "Cocktail")

	assert.NotNil(t, err)
}
