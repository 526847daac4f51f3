package repository

import (
	"testing"
	"time"

	"github.com/surrealdb/surrealdb.go/pkg/models"
)

func TestNewRecordID_Positive(t *testing.T) {
	t.Parallel()

	seen := make(map[int64]bool)
	for i := 0; i < 100; i++ {
		id := newRecordID()
		if id < 0 {
			t.Fatalf("generated negative id %d", id)
		}
		if seen[id] {
			t.Fatalf("generated duplicate id %d", id)
		}
		seen[id] = true
	}
}

func TestNumericRecordID(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   interface{}
		want int64
	}{
		{"int64", int64(42), 42},
		{"uint64", uint64(42), 42},
		{"float64", float64(42), 42},
		{"record id", models.RecordID{Table: "airplane", ID: int64(42)}, 42},
		{"record id pointer", &models.RecordID{Table: "airplane", ID: uint64(42)}, 42},
		{"map form", map[string]interface{}{"tb": "airplane", "id": int64(42)}, 42},
		{"unparseable", "banana", 0},
		{"nil", nil, 0},
	}

	for _, tc := range cases {
		if got := numericRecordID(tc.in); got != tc.want {
			t.Errorf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestExtractCount(t *testing.T) {
	t.Parallel()

	wrapped := map[string]interface{}{
		"status": "OK",
		"result": []interface{}{
			map[string]interface{}{"count": float64(7)},
		},
	}
	if got := extractCount(wrapped); got != 7 {
		t.Errorf("expected 7, got %d", got)
	}

	direct := map[string]interface{}{"count": uint64(3)}
	if got := extractCount(direct); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}

	if got := extractCount(nil); got != 0 {
		t.Errorf("expected 0 for nil, got %d", got)
	}
}

func TestGetTime(t *testing.T) {
	t.Parallel()

	want := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	fromString := map[string]interface{}{"last_update": "2025-06-01T12:00:00Z"}
	if got := getTime(fromString, "last_update"); !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	fromCustom := map[string]interface{}{"last_update": models.CustomDateTime{Time: want}}
	if got := getTime(fromCustom, "last_update"); !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	missing := map[string]interface{}{}
	if got := getTime(missing, "last_update"); !got.IsZero() {
		t.Errorf("expected zero time, got %v", got)
	}
}

func TestParseCargoRefs(t *testing.T) {
	t.Parallel()

	refs := parseCargoRefs([]interface{}{
		map[string]interface{}{"id": int64(7), "weight": float64(40)},
		map[string]interface{}{"id": uint64(8), "weight": int64(25)},
	})

	if len(refs) != 2 {
		t.Fatalf("expected 2 refs, got %d", len(refs))
	}
	if refs[0].ID != 7 || refs[0].Weight != 40 {
		t.Errorf("unexpected first ref: %+v", refs[0])
	}
	if refs[1].ID != 8 || refs[1].Weight != 25 {
		t.Errorf("unexpected second ref: %+v", refs[1])
	}

	if got := parseCargoRefs(nil); len(got) != 0 {
		t.Errorf("expected empty refs for nil, got %v", got)
	}
}

func TestParseCarrierRef(t *testing.T) {
	t.Parallel()

	ref := parseCarrierRef(map[string]interface{}{
		"id":          int64(42),
		"tail_number": "N-12345",
	})
	if ref == nil || ref.ID != 42 || ref.TailNumber != "N-12345" {
		t.Errorf("unexpected carrier ref: %+v", ref)
	}

	if parseCarrierRef(nil) != nil {
		t.Error("expected nil carrier for NONE value")
	}
}
