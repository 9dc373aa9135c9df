package model

// Ingredient is one line of a recipe's shopping list.
type Ingredient struct {
	Name     string
	Quantity float64
	Unit     string
}

// Recipe is one meal inside a weekly plan.
type Recipe struct {
	Name        string
	Servings    int
	Ingredients []Ingredient
}

// MealPlan is one week of planned meals.
type MealPlan struct {
	ID        string
	Name      string
	WeekOf    string // YYYY-MM-DD, the Monday the plan starts
	Recipes   []Recipe
	CreatedAt string
	UpdatedAt string
}

// CreateMealPlanRequest carries the fields for a new meal plan.
type CreateMealPlanRequest struct {
	Name    string
	WeekOf  string
	Recipes []Recipe
}

// UpdateMealPlanRequest is a partial update; only provided fields are
// written. Recipes are replaced wholesale, never merged element-wise.
type UpdateMealPlanRequest struct {
	Name    Opt[string]
	WeekOf  Opt[string]
	Recipes Opt[[]Recipe]
}
