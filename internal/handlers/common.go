// common.go
//
// Household pantry, recipe and meal plan data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of pantrydb.
// pantrydb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// pantrydb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with pantrydb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/pantrydb/internal/middleware"
	"github.com/localnerve/pantrydb/internal/types"
	"github.com/localnerve/pantrydb/internal/utils"
)

// householdSelector reads the optional ?hid= selector. Absent or empty means "no choice".
func householdSelector(c *fiber.Ctx) (uint64, error) {
	raw := strings.TrimSpace(c.Query("hid"))
	if raw == "" {
		return 0, nil
	}

	hid, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || hid == 0 {
		return 0, types.Validation("hid must be a positive integer, got %q", raw)
	}

	return hid, nil
}

// parseBody decodes a JSON or form body
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return types.Validation("Invalid input: %v", err)
	}
	return nil
}

// bodyOrQueryHID prefers the body's hid and falls back to the ?hid= selector
func bodyOrQueryHID(c *fiber.Ctx, body types.FlexUint64) (uint64, error) {
	if body != 0 {
		return body.Uint64(), nil
	}
	return householdSelector(c)
}

// respondMutation finishes a successful POST with a JSON result or a redirect to the list view
func respondMutation(c *fiber.Ctx, location string, affectedRows int64) error {
	if middleware.WantsJSON(c) {
		return utils.MutationSuccessResponse(c, location, affectedRows)
	}
	return utils.SeeOther(c, location)
}

// withHousehold builds a list view location carrying the household selector
func withHousehold(path string, hid uint64) string {
	if hid == 0 {
		return path
	}
	return fmt.Sprintf("%s?hid=%d", path, hid)
}
