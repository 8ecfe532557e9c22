package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/pantrydb/internal/middleware"
	"github.com/localnerve/pantrydb/internal/services"
)

// DemoHandler serves the starter routes kept from the first version of the service
type DemoHandler struct{}

// Index handles GET /
// @Summary Demo listing
// @Tags Demo
// @Produce json
// @Success 200 {object} map[string][]string
// @Router / [get]
func (h *DemoHandler) Index(c *fiber.Ctx) error {
	db, err := middleware.Conn(c)
	if err != nil {
		return err
	}

	names, err := services.ListDemoNames(db)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": names})
}

// Another handles GET /another
// @Summary Static demo page
// @Tags Demo
// @Produce json
// @Success 200 {object} map[string]string
// @Router /another [get]
func (h *DemoHandler) Another(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "another page"})
}

// Add handles POST /add
// @Summary Demo insert
// @Tags Demo
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param name formData string true "Name to add"
// @Success 200 {object} utils.SuccessResponseStruct
// @Success 303
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /add [post]
func (h *DemoHandler) Add(c *fiber.Ctx) error {
	var form struct {
		Name string `json:"name" form:"name"`
	}
	if err := parseBody(c, &form); err != nil {
		return err
	}

	db, err := middleware.Conn(c)
	if err != nil {
		return err
	}

	affectedRows, err := services.AddDemoName(db, form.Name)
	if err != nil {
		return err
	}

	return respondMutation(c, "/", affectedRows)
}
