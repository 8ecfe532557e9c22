// e2e_test.go
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

package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/localnerve/pantrydb/internal/testutil"
	"github.com/testcontainers/testcontainers-go"
)

// TestE2EWithFullStack builds the service image and drives it over HTTP against a seeded database
func TestE2EWithFullStack(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	t.Setenv("TESTCONTAINERS_BUILD_CONTEXT", "../..")

	tc, err := testutil.CreateAllTestContainers(t)
	if err != nil {
		t.Fatalf("Failed to start test containers: %v", err)
	}
	defer tc.Terminate(t)

	client := &http.Client{
		// observe the 303s instead of following them
		CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
	}

	t.Run("HealthCheck", func(t *testing.T) {
		resp := mustGet(t, client, tc.BaseURL+"/health")
		testutil.AssertStatus(t, resp, http.StatusOK)
	})

	t.Run("PrometheusMetrics", func(t *testing.T) {
		resp := mustGet(t, client, tc.BaseURL+"/metrics")
		testutil.AssertStatus(t, resp, http.StatusOK)
		body, _ := io.ReadAll(resp.Body)
		if !strings.Contains(string(body), "pantrydb") {
			t.Error("Expected pantrydb metrics")
		}
	})

	t.Run("SwaggerUI", func(t *testing.T) {
		resp := mustGet(t, client, tc.BaseURL+"/swagger/index.html")
		testutil.AssertStatus(t, resp, http.StatusOK)
	})

	t.Run("PantryFlow", func(t *testing.T) {
		resp, err := client.PostForm(tc.BaseURL+"/households", url.Values{"household_name": {"E2E"}})
		if err != nil {
			t.Fatalf("Failed to create household: %v", err)
		}
		testutil.AssertRedirect(t, resp, "/households")

		resp = mustGet(t, client, tc.BaseURL+"/inventory")
		testutil.AssertStatus(t, resp, http.StatusOK)
		var view struct {
			SelectedHouseholdID *uint64 `json:"selected_household_id"`
			Ingredients         []struct {
				IngredientID   uint64 `json:"ingredient_id"`
				IngredientName string `json:"ingredient_name"`
			} `json:"ingredients"`
		}
		testutil.ParseJSON(t, resp, &view)
		if view.SelectedHouseholdID == nil || len(view.Ingredients) == 0 {
			t.Fatalf("Expected a selected household and the seeded catalog, got %+v", view)
		}

		body, _ := json.Marshal(map[string]interface{}{
			"hid":      *view.SelectedHouseholdID,
			"iid":      view.Ingredients[0].IngredientID,
			"quantity": 3,
		})
		resp, err = client.Post(tc.BaseURL+"/inventory", "application/json", strings.NewReader(string(body)))
		if err != nil {
			t.Fatalf("Failed to add inventory: %v", err)
		}
		testutil.AssertStatus(t, resp, http.StatusOK)

		resp = mustGet(t, client, tc.BaseURL+"/login")
		testutil.AssertErrorType(t, resp, http.StatusUnauthorized, "unauthorized")
	})
}

func mustGet(t *testing.T, client *http.Client, target string) *http.Response {
	t.Helper()
	resp, err := client.Get(target)
	if err != nil {
		t.Fatalf("Failed to GET %s: %v", target, err)
	}
	return resp
}
