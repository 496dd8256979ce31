package cocktaildb

//Ingredient One ingredient/measure pair of a recipe.
type Ingredient struct {
	Name    string `json:"name"`
	Measure string `json:"measure,omitempty"`
}

//Drink Recipe record with the numbered ingredient columns of the API flattened into a slice.
type Drink struct {
	ID           string       `json:"idDrink"`
	Name         string       `json:"name"`
	Thumb        string       `json:"thumb"`
	Category     string       `json:"category"`
	Alcoholic    string       `json:"alcoholic"`
	Glass        string       `json:"glass"`
	Instructions string       `json:"instructions"`
	Ingredients  []Ingredient `json:"ingredients"`
}

//DrinkSummary Reduced recipe record as returned by filter.php.
type DrinkSummary struct {
	ID    string `json:"idDrink"`
	Name  string `json:"name"`
	Thumb string `json:"thumb"`
}

// Wire formats of the API. Up to 15 numbered ingredient/measure columns, empty or null when unused.

type rawDrink struct {
	IDDrink         string `json:"idDrink"`
	StrDrink        string `json:"strDrink"`
	StrDrinkThumb   string `json:"strDrinkThumb"`
	StrCategory     string `json:"strCategory"`
	StrAlcoholic    string `json:"strAlcoholic"`
	StrGlass        string `json:"strGlass"`
	StrInstructions string `json:"strInstructions"`
	StrIngredient1  string `json:"strIngredient1"`
	StrIngredient2  string `json:"strIngredient2"`
	StrIngredient3  string `json:"strIngredient3"`
	StrIngredient4  string `json:"strIngredient4"`
	StrIngredient5  string `json:"strIngredient5"`
	StrIngredient6  string `json:"strIngredient6"`
	StrIngredient7  string `json:"strIngredient7"`
	StrIngredient8  string `json:"strIngredient8"`
	StrIngredient9  string `json:"strIngredient9"`
	StrIngredient10 string `json:"strIngredient10"`
	StrIngredient11 string `json:"strIngredient11"`
	StrIngredient12 string `json:"strIngredient12"`
	StrIngredient13 string `json:"strIngredient13"`
	StrIngredient14 string `json:"strIngredient14"`
	StrIngredient15 string `json:"strIngredient15"`
	StrMeasure1     string `json:"strMeasure1"`
	StrMeasure2     string `json:"strMeasure2"`
	StrMeasure3     string `json:"strMeasure3"`
	StrMeasure4     string `json:"strMeasure4"`
	StrMeasure5     string `json:"strMeasure5"`
	StrMeasure6     string `json:"strMeasure6"`
	StrMeasure7     string `json:"strMeasure7"`
	StrMeasure8     string `json:"strMeasure8"`
	StrMeasure9     string `json:"strMeasure9"`
	StrMeasure10    string `json:"strMeasure10"`
	StrMeasure11    string `json:"strMeasure11"`
	StrMeasure12    string `json:"strMeasure12"`
	StrMeasure13    string `json:"strMeasure13"`
	StrMeasure14    string `json:"strMeasure14"`
	StrMeasure15    string `json:"strMeasure15"`
}

type drinksResponse struct {
	Drinks []rawDrink `json:"drinks"`
}

func (d *rawDrink) ingredientPairs() [][2]string {
	return [][2]string{
		{d.StrIngredient1, d.StrMeasure1},
		{d.StrIngredient2, d.StrMeasure2},
		{d.StrIngredient3, d.StrMeasure3},
		{d.StrIngredient4, d.StrMeasure4},
		{d.StrIngredient5, d.StrMeasure5},
		{d.StrIngredient6, d.StrMeasure6},
		{d.StrIngredient7, d.StrMeasure7},
		{d.StrIngredient8, d.StrMeasure8},
		{d.StrIngredient9, d.StrMeasure9},
		{d.StrIngredient10, d.StrMeasure10},
		{d.StrIngredient11, d.StrMeasure11},
		{d.StrIngredient12, d.StrMeasure12},
		{d.StrIngredient13, d.StrMeasure13},
		{d.StrIngredient14, d.StrMeasure14},
		{d.StrIngredient15, d.StrMeasure15},
	}
}

func (d *rawDrink) toDrink() Drink {
	drink := Drink{
		ID:           d.IDDrink,
		Name:         d.StrDrink,
		Thumb:        d.StrDrinkThumb,
		Category:     d.StrCategory,
		Alcoholic:    d.StrAlcoholic,
		Glass:        d.StrGlass,
		Instructions: d.StrInstructions,
	}

	for _, pair := range d.ingredientPairs() {
		if pair[0] == "" {
			continue
		}
		drink.Ingredients = append(drink.Ingredients, Ingredient{Name: pair[0], Measure: pair[1]})
	}

	return drink
}

func (d *rawDrink) toSummary() DrinkSummary {
	return DrinkSummary{
		ID:    d.IDDrink,
		Name:  d.StrDrink,
		Thumb: d.StrDrinkThumb,
	}
}
