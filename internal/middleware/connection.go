// connection.go
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

package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/pantrydb/internal/types"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const connKey = "dbConn"

// Connection pins one pooled connection for the rest of the handler chain and stores a handle to it
// in the request context. The connection goes back to the pool when the chain returns, whether or
// not a handler failed.
func Connection(db *gorm.DB, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var (
			acquired   bool
			handlerErr error
		)

		err := db.WithContext(c.UserContext()).Connection(func(conn *gorm.DB) error {
			acquired = true
			c.Locals(connKey, conn.Session(&gorm.Session{NewDB: true}))
			defer c.Locals(connKey, nil)

			handlerErr = c.Next()
			return nil
		})

		if !acquired {
			log.Error("Failed to acquire database connection",
				zap.String("path", c.Path()),
				zap.String("requestId", RequestID(c)),
				zap.Error(err))
			return types.Unavailable(err)
		}

		return handlerErr
	}
}

// Conn returns the connection pinned by Connection
func Conn(c *fiber.Ctx) (*gorm.DB, error) {
	conn, ok := c.Locals(connKey).(*gorm.DB)
	if !ok || conn == nil {
		return nil, types.Unavailable(fiber.ErrServiceUnavailable)
	}
	return conn, nil
}

// RequestID returns the id assigned by the requestid middleware, if any
func RequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}
