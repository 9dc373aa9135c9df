package repository

import (
	"context"

	"github.com/carterbs/brad-os-sub006/internal/docstore"
	"github.com/carterbs/brad-os-sub006/internal/docval"
	"github.com/carterbs/brad-os-sub006/internal/model"
)

// CollectionMealPlans names the backing collection.
const CollectionMealPlans = "meal_plans"

// MealPlanRepository persists weekly meal plans with their nested recipes.
type MealPlanRepository struct {
	*base[model.MealPlan, model.CreateMealPlanRequest, model.UpdateMealPlanRequest]
}

// NewMealPlanRepository builds the repository on the injected store.
func NewMealPlanRepository(d Deps) *MealPlanRepository {
	return &MealPlanRepository{
		base: newBase(d, CollectionMealPlans, decodeMealPlan, encodeMealPlanCreate, encodeMealPlanUpdate),
	}
}

// FindAll lists every plan, newest week first.
func (r *MealPlanRepository) FindAll(ctx context.Context) ([]*model.MealPlan, error) {
	return r.findWhere(ctx, docstore.NewQuery().OrderBy("weekOf", true))
}

// FindByWeekOf returns the plan starting on the given Monday, or nil.
func (r *MealPlanRepository) FindByWeekOf(ctx context.Context, weekOf string) (*model.MealPlan, error) {
	q := docstore.NewQuery().
		Where("weekOf", docstore.OpEq, weekOf).
		WithLimit(1)
	plans, err := r.findWhere(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(plans) == 0 {
		return nil, nil
	}
	return plans[0], nil
}

// decodeMealPlan rejects the whole plan when any recipe, or any ingredient
// of any recipe, is malformed. A plan with a truncated shopping list is
// worse than no plan.
func decodeMealPlan(id string, data map[string]any) (*model.MealPlan, bool) {
	if data == nil {
		return nil, false
	}

	name := docval.String(data, "name")
	weekOf := docval.String(data, "weekOf")
	recipesRaw := docval.RecordArray(data, "recipes")
	if !name.Ok() || !weekOf.Ok() || !recipesRaw.Ok() {
		return nil, false
	}

	recipes := make([]model.Recipe, 0, len(recipesRaw.Value))
	for _, rec := range recipesRaw.Value {
		recipe, ok := decodeRecipe(rec)
		if !ok {
			return nil, false
		}
		recipes = append(recipes, recipe)
	}

	created, updated, ok := requireTimestamps(data)
	if !ok {
		return nil, false
	}

	return &model.MealPlan{
		ID:        id,
		Name:      name.Value,
		WeekOf:    weekOf.Value,
		Recipes:   recipes,
		CreatedAt: created,
		UpdatedAt: updated,
	}, true
}

func decodeRecipe(rec map[string]any) (model.Recipe, bool) {
	name := docval.String(rec, "name")
	servings := docval.Number(rec, "servings")
	ingredientsRaw := docval.RecordArray(rec, "ingredients")
	if !name.Ok() || !servings.Ok() || !ingredientsRaw.Ok() {
		return model.Recipe{}, false
	}

	ingredients := make([]model.Ingredient, 0, len(ingredientsRaw.Value))
	for _, ing := range ingredientsRaw.Value {
		iname := docval.String(ing, "name")
		quantity := docval.Number(ing, "quantity")
		unit := docval.String(ing, "unit")
		if !iname.Ok() || !quantity.Ok() || !unit.Ok() {
			return model.Recipe{}, false
		}
		ingredients = append(ingredients, model.Ingredient{
			Name:     iname.Value,
			Quantity: quantity.Value,
			Unit:     unit.Value,
		})
	}

	return model.Recipe{
		Name:        name.Value,
		Servings:    int(servings.Value),
		Ingredients: ingredients,
	}, true
}

func encodeRecipes(recipes []model.Recipe) []map[string]any {
	out := make([]map[string]any, 0, len(recipes))
	for _, rec := range recipes {
		ingredients := make([]map[string]any, 0, len(rec.Ingredients))
		for _, ing := range rec.Ingredients {
			ingredients = append(ingredients, map[string]any{
				"name":     ing.Name,
				"quantity": ing.Quantity,
				"unit":     ing.Unit,
			})
		}
		out = append(out, map[string]any{
			"name":        rec.Name,
			"servings":    rec.Servings,
			"ingredients": ingredients,
		})
	}
	return out
}

func encodeMealPlanCreate(req model.CreateMealPlanRequest) map[string]any {
	return map[string]any{
		"name":    req.Name,
		"weekOf":  req.WeekOf,
		"recipes": encodeRecipes(req.Recipes),
	}
}

func encodeMealPlanUpdate(req model.UpdateMealPlanRequest) map[string]any {
	m := map[string]any{}
	putOpt(m, "name", req.Name)
	putOpt(m, "weekOf", req.WeekOf)
	if req.Recipes.Provided() {
		if recipes, ok := req.Recipes.Get(); ok {
			m["recipes"] = encodeRecipes(recipes)
		} else {
			m["recipes"] = nil
		}
	}
	return m
}
