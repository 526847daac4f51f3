package database

// Atomic write support for Hangar.
//
// Cargo assignment and detachment touch two records (the cargo's carrier
// field and the airplane's embedded cargo list), and deleting an airplane
// touches one record per carried cargo plus the airplane itself. A crash or
// a concurrent conflicting write between independent statements would leave
// the bidirectional link desynchronized, so every such operation is built as
// an AtomicBatch and executed as one transaction:
//
//	batch := NewAtomicBatch()
//	batch.Add(updateCargo, cargoVars)
//	batch.Add(updateAirplane, airplaneVars)
//	err := batch.Execute(ctx, db)  // all or nothing
//
// Statements accumulate in memory and are wrapped in
// BEGIN TRANSACTION / COMMIT TRANSACTION at execute time. Variables are
// namespaced per statement so $cid in one statement cannot collide with
// $cid in another.

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// AtomicBatch accumulates statements to be executed as a single transaction.
type AtomicBatch struct {
	statements []string
	vars       map[string]interface{}
	counter    int
}

// NewAtomicBatch creates an empty batch.
func NewAtomicBatch() *AtomicBatch {
	return &AtomicBatch{
		vars: make(map[string]interface{}),
	}
}

// Add appends a statement to the batch, namespacing its variables to avoid
// collisions with variables of previously added statements. Replacement is
// whole-name only, so a variable that is a prefix of another ($id, $id2)
// cannot corrupt the query.
func (b *AtomicBatch) Add(query string, vars map[string]interface{}) *AtomicBatch {
	b.counter++
	for name, value := range vars {
		scoped := fmt.Sprintf("v%d_%s", b.counter, name)
		re := regexp.MustCompile(`\$` + regexp.QuoteMeta(name) + `\b`)
		query = re.ReplaceAllLiteralString(query, "$"+scoped)
		b.vars[scoped] = value
	}
	b.statements = append(b.statements, query)
	return b
}

// Len returns the number of statements in the batch.
func (b *AtomicBatch) Len() int {
	return len(b.statements)
}

// Build returns the full transaction query and the merged variable map.
// An empty batch builds to an empty query.
func (b *AtomicBatch) Build() (string, map[string]interface{}) {
	if len(b.statements) == 0 {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString("BEGIN TRANSACTION;\n")
	for _, stmt := range b.statements {
		sb.WriteString(stmt)
		if !strings.HasSuffix(strings.TrimSpace(stmt), ";") {
			sb.WriteString(";")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("COMMIT TRANSACTION;")

	return sb.String(), b.vars
}

// Execute runs all statements as one transaction. All succeed or none do.
func (b *AtomicBatch) Execute(ctx context.Context, db Database) error {
	query, vars := b.Build()
	if query == "" {
		return nil
	}
	return db.Execute(ctx, query, vars)
}
