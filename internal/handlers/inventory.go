package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/pantrydb/internal/middleware"
	"github.com/localnerve/pantrydb/internal/services"
	"github.com/localnerve/pantrydb/internal/types"
)

// InventoryHandler handles /inventory
type InventoryHandler struct{}

type inventoryForm struct {
	HID      types.FlexUint64   `json:"hid" form:"hid"`
	IID      types.FlexUint64   `json:"iid" form:"iid"`
	Quantity *types.FlexFloat64 `json:"quantity" form:"quantity"`
}

// GetInventory handles GET /inventory?hid=
// @Summary View a household's inventory
// @Description Household selector, ingredient catalog and the selected household's stock
// @Tags Inventory
// @Produce json
// @Param hid query integer false "Household id, defaults to the first household by name"
// @Success 200 {object} services.InventoryView
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 503 {object} utils.ErrorResponseStruct
// @Router /inventory [get]
func (h *InventoryHandler) GetInventory(c *fiber.Ctx) error {
	hid, err := householdSelector(c)
	if err != nil {
		return err
	}

	db, err := middleware.Conn(c)
	if err != nil {
		return err
	}

	view, err := services.GetInventory(db, hid)
	if err != nil {
		return err
	}

	return c.JSON(view)
}

// PostInventory handles POST /inventory
// @Summary Add to a household's inventory
// @Description Adds quantity of ingredient iid to household hid. Repeated additions accumulate; the unit is the ingredient's.
// @Tags Inventory
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param hid formData integer true "Household id"
// @Param iid formData integer true "Ingredient id"
// @Param quantity formData number true "Quantity to add"
// @Success 200 {object} utils.SuccessResponseStruct
// @Success 303
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /inventory [post]
func (h *InventoryHandler) PostInventory(c *fiber.Ctx) error {
	var form inventoryForm
	if err := parseBody(c, &form); err != nil {
		return err
	}

	hid, err := bodyOrQueryHID(c, form.HID)
	if err != nil {
		return err
	}
	if form.Quantity == nil {
		return types.Validation("quantity is required")
	}

	db, err := middleware.Conn(c)
	if err != nil {
		return err
	}

	affectedRows, err := services.AddInventory(db, hid, form.IID.Uint64(), form.Quantity.Float64())
	if err != nil {
		return err
	}

	return respondMutation(c, withHousehold("/inventory", hid), affectedRows)
}
