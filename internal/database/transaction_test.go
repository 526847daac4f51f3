package database

import (
	"strings"
	"testing"
)

func TestAtomicBatch_Empty(t *testing.T) {
	t.Parallel()

	batch := NewAtomicBatch()
	query, vars := batch.Build()

	if query != "" || vars != nil {
		t.Errorf("empty batch must build to nothing, got %q", query)
	}
}

func TestAtomicBatch_WrapsInTransaction(t *testing.T) {
	t.Parallel()

	batch := NewAtomicBatch()
	batch.Add(`UPDATE type::thing('cargo', $id) MERGE { carrier: NONE }`, map[string]interface{}{"id": int64(7)})
	batch.Add(`DELETE type::thing('airplane', $id)`, map[string]interface{}{"id": int64(9)})

	query, vars := batch.Build()

	if !strings.HasPrefix(query, "BEGIN TRANSACTION;") {
		t.Errorf("expected BEGIN TRANSACTION prefix, got %q", query)
	}
	if !strings.HasSuffix(query, "COMMIT TRANSACTION;") {
		t.Errorf("expected COMMIT TRANSACTION suffix, got %q", query)
	}
	if len(vars) != 2 {
		t.Errorf("expected 2 namespaced vars, got %d", len(vars))
	}
}

func TestAtomicBatch_NamespacesVariables(t *testing.T) {
	t.Parallel()

	// Two statements using the same variable name must not collide
	batch := NewAtomicBatch()
	batch.Add(`UPDATE type::thing('cargo', $id) MERGE { carrier: NONE }`, map[string]interface{}{"id": int64(7)})
	batch.Add(`DELETE type::thing('cargo', $id)`, map[string]interface{}{"id": int64(8)})

	query, vars := batch.Build()

	if strings.Contains(query, "$id)") {
		t.Errorf("unscoped variable survived namespacing: %q", query)
	}
	if vars["v1_id"] != int64(7) || vars["v2_id"] != int64(8) {
		t.Errorf("expected per-statement values, got %v", vars)
	}
}

func TestAtomicBatch_PrefixVariableNames(t *testing.T) {
	t.Parallel()

	// A variable that is a prefix of another must be replaced whole-name
	// only, in either iteration order
	batch := NewAtomicBatch()
	batch.Add(`RELATE type::thing('a', $id)->links->type::thing('b', $id2)`, map[string]interface{}{
		"id":  int64(1),
		"id2": int64(2),
	})

	query, vars := batch.Build()

	if !strings.Contains(query, "$v1_id)") {
		t.Errorf("expected $v1_id in query, got %q", query)
	}
	if !strings.Contains(query, "$v1_id2)") {
		t.Errorf("expected $v1_id2 in query, got %q", query)
	}
	if strings.Contains(query, "$v1_v1_") || strings.Contains(query, "$v1_id2)2") {
		t.Errorf("prefix replacement corrupted query: %q", query)
	}
	if vars["v1_id"] != int64(1) || vars["v1_id2"] != int64(2) {
		t.Errorf("expected both vars scoped, got %v", vars)
	}
}

func TestAtomicBatch_Len(t *testing.T) {
	t.Parallel()

	batch := NewAtomicBatch()
	if batch.Len() != 0 {
		t.Errorf("expected 0, got %d", batch.Len())
	}
	batch.Add(`DELETE type::thing('cargo', $id)`, map[string]interface{}{"id": int64(1)})
	if batch.Len() != 1 {
		t.Errorf("expected 1, got %d", batch.Len())
	}
}
