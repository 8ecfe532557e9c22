package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/pantrydb/internal/middleware"
	"github.com/localnerve/pantrydb/internal/services"
)

// RecipeHandler handles /recipes and /cookable
type RecipeHandler struct{}

// ListRecipes handles GET /recipes
// @Summary List recipes
// @Tags Recipes
// @Produce json
// @Success 200 {object} map[string][]models.Recipe
// @Failure 503 {object} utils.ErrorResponseStruct
// @Router /recipes [get]
func (h *RecipeHandler) ListRecipes(c *fiber.Ctx) error {
	db, err := middleware.Conn(c)
	if err != nil {
		return err
	}

	recipes, err := services.ListRecipes(db)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"recipes": recipes})
}

// ListCookable handles GET /cookable?hid=
// @Summary Recipes a household can cook
// @Description Recipes whose every ingredient is present in the household's inventory. Quantities are not compared.
// @Tags Recipes
// @Produce json
// @Param hid query integer false "Household id, defaults to the first household by name"
// @Success 200 {object} services.CookableView
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /cookable [get]
func (h *RecipeHandler) ListCookable(c *fiber.Ctx) error {
	hid, err := householdSelector(c)
	if err != nil {
		return err
	}

	db, err := middleware.Conn(c)
	if err != nil {
		return err
	}

	view, err := services.ListCookableRecipes(db, hid)
	if err != nil {
		return err
	}

	return c.JSON(view)
}
