package types

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestFlexUint64(t *testing.T) {
	tests := []struct {
		input    string
		expected uint64
		wantErr  bool
	}{
		{`12`, 12, false},
		{`"12"`, 12, false},
		{`""`, 0, false},
		{`null`, 0, false},
		{`"abc"`, 0, true},
		{`true`, 0, true},
	}

	for _, tt := range tests {
		var f FlexUint64
		err := json.Unmarshal([]byte(tt.input), &f)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: unexpected error state: %v", tt.input, err)
			continue
		}
		if !tt.wantErr && f.Uint64() != tt.expected {
			t.Errorf("%s: expected %d, got %d", tt.input, tt.expected, f.Uint64())
		}
	}
}

func TestFlexFloat64(t *testing.T) {
	var body struct {
		Quantity *FlexFloat64 `json:"quantity"`
	}

	if err := json.Unmarshal([]byte(`{"quantity": "2.5"}`), &body); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if body.Quantity == nil || body.Quantity.Float64() != 2.5 {
		t.Errorf("expected 2.5, got %v", body.Quantity)
	}

	body.Quantity = nil
	if err := json.Unmarshal([]byte(`{}`), &body); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if body.Quantity != nil {
		t.Error("expected absent quantity to stay nil")
	}

	if err := json.Unmarshal([]byte(`{"quantity": "lots"}`), &body); err == nil {
		t.Error("expected error for non-numeric quantity")
	}
}

func TestFlexListIDs(t *testing.T) {
	tests := []struct {
		input    string
		expected []uint64
	}{
		{`{"recipe_id": 4}`, []uint64{4}},
		{`{"recipe_id": "4"}`, []uint64{4}},
		{`{"recipe_id": [4, "9", 4, 0]}`, []uint64{4, 9}},
		{`{"recipe_id": "4, 9"}`, []uint64{4, 9}},
		{`{}`, []uint64{}},
	}

	for _, tt := range tests {
		var body struct {
			RecipeID FlexList[FlexUint64] `json:"recipe_id"`
		}
		if err := json.Unmarshal([]byte(tt.input), &body); err != nil {
			t.Fatalf("%s: unmarshal failed: %v", tt.input, err)
		}
		if got := IDs(body.RecipeID); !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("%s: expected %v, got %v", tt.input, tt.expected, got)
		}
	}
}
