package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/pantrydb/internal/middleware"
	"github.com/localnerve/pantrydb/internal/services"
	"github.com/localnerve/pantrydb/internal/types"
)

// HouseholdHandler handles /households
type HouseholdHandler struct{}

type householdForm struct {
	Action        string           `json:"action" form:"action"`
	HouseholdName string           `json:"household_name" form:"household_name"`
	HouseholdID   types.FlexUint64 `json:"household_id" form:"household_id"`
}

// ListHouseholds handles GET /households
// @Summary List households
// @Description All households ordered by name
// @Tags Households
// @Produce json
// @Success 200 {object} map[string][]models.Household
// @Failure 503 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /households [get]
func (h *HouseholdHandler) ListHouseholds(c *fiber.Ctx) error {
	db, err := middleware.Conn(c)
	if err != nil {
		return err
	}

	households, err := services.ListHouseholds(db)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"households": households})
}

// PostHousehold handles POST /households
// @Summary Create or delete a household
// @Description Without action, creates a household named household_name. With action=delete, deletes household_id.
// @Tags Households
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param action formData string false "delete"
// @Param household_name formData string false "Name for a new household"
// @Param household_id formData integer false "Household to delete"
// @Success 200 {object} utils.SuccessResponseStruct
// @Success 303
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /households [post]
func (h *HouseholdHandler) PostHousehold(c *fiber.Ctx) error {
	var form householdForm
	if err := parseBody(c, &form); err != nil {
		return err
	}

	db, err := middleware.Conn(c)
	if err != nil {
		return err
	}

	var affectedRows int64
	switch form.Action {
	case "delete":
		if form.HouseholdID == 0 {
			return types.Validation("household_id is required")
		}
		if affectedRows, err = services.DeleteHousehold(db, form.HouseholdID.Uint64()); err != nil {
			return err
		}
	case "":
		if _, err = services.CreateHousehold(db, form.HouseholdName); err != nil {
			return err
		}
		affectedRows = 1
	default:
		return types.Validation("unknown action %q", form.Action)
	}

	return respondMutation(c, "/households", affectedRows)
}
