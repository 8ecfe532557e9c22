package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/pantrydb/internal/types"
	"gorm.io/gorm"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		kind   string
	}{
		{"validation", types.Validation("hid is required"), http.StatusBadRequest, types.KindValidation},
		{"wrapped not found", fmt.Errorf("loading: %w", types.NotFound("plan %d not found", 3)), http.StatusNotFound, types.KindNotFound},
		{"unavailable", types.Unavailable(errors.New("pool closed")), http.StatusServiceUnavailable, types.KindConnection},
		{"foreign key", gorm.ErrForeignKeyViolated, http.StatusConflict, types.KindConflict},
		{"duplicate", fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), http.StatusConflict, types.KindConflict},
		{"record not found", gorm.ErrRecordNotFound, http.StatusNotFound, types.KindNotFound},
		{"fiber not found", fiber.ErrNotFound, http.StatusNotFound, types.KindNotFound},
		{"fiber bad request", fiber.ErrUnprocessableEntity, http.StatusUnprocessableEntity, types.KindValidation},
		{"store error", errors.New("syntax error near SELECT"), http.StatusInternalServerError, types.KindDatabase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, kind, message := classify(tt.err)
			if status != tt.status || kind != tt.kind {
				t.Errorf("Expected %d/%s, got %d/%s", tt.status, tt.kind, status, kind)
			}
			if message == "" {
				t.Error("Expected a message")
			}
		})
	}
}

func TestWithHousehold(t *testing.T) {
	if got := withHousehold("/inventory", 0); got != "/inventory" {
		t.Errorf("Expected bare path, got %s", got)
	}
	if got := withHousehold("/mealplans", 12); got != "/mealplans?hid=12" {
		t.Errorf("Expected selector, got %s", got)
	}
}
