package services

// MealMenu holds the curated dish lists for one diet preference. The lists
// are fixed, process-wide data; slot order and item order are part of the
// product contract.
type MealMenu struct {
	Breakfast []string `json:"breakfast"`
	Lunch     []string `json:"lunch"`
	Dinner    []string `json:"dinner"`
	Snacks    []string `json:"snacks"`
}

var mealMenus = map[string]MealMenu{
	"vegetarian": {
		Breakfast: []string{
			"Oats with fruits and nuts",
			"Poha with vegetables",
			"Upma with vegetables",
			"Idli with sambar",
			"Paratha with curd",
		},
		Lunch: []string{
			"Dal, rice, and vegetables",
			"Rajma with rice",
			"Chole with roti",
			"Vegetable curry with roti",
			"Sambar rice with vegetables",
		},
		Dinner: []string{
			"Vegetable khichdi",
			"Dal tadka with roti",
			"Mixed vegetable curry with rice",
			"Palak paneer with roti",
			"Vegetable pulao",
		},
		Snacks: []string{
			"Fruits with nuts",
			"Roasted chana",
			"Sprouts salad",
			"Yogurt with fruits",
		},
	},
	"non-vegetarian": {
		Breakfast: []string{
			"Eggs with toast",
			"Chicken sandwich",
			"Egg curry with roti",
			"Omelette with vegetables",
		},
		Lunch: []string{
			"Chicken curry with rice",
			"Fish curry with rice",
			"Mutton curry with roti",
			"Egg curry with rice",
		},
		Dinner: []string{
			"Grilled chicken with vegetables",
			"Fish fry with rice",
			"Chicken biryani",
			"Egg curry with roti",
		},
		Snacks: []string{
			"Boiled eggs",
			"Chicken salad",
			"Fish tikka",
		},
	},
	"vegan": {
		Breakfast: []string{
			"Oats with fruits",
			"Poha with vegetables",
			"Upma",
			"Fruit smoothie",
		},
		Lunch: []string{
			"Dal with rice",
			"Rajma with rice",
			"Chole with roti",
			"Vegetable curry",
		},
		Dinner: []string{
			"Vegetable khichdi",
			"Dal tadka with roti",
			"Mixed vegetable curry",
		},
		Snacks: []string{
			"Fruits",
			"Roasted chana",
			"Sprouts salad",
		},
	},
}

// menuFor resolves the menu for a food preference. Unknown or unset
// preferences fall back to the vegetarian menu.
func menuFor(preference string) MealMenu {
	if menu, ok := mealMenus[preference]; ok {
		return menu
	}
	return mealMenus["vegetarian"]
}
