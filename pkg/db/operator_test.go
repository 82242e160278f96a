package db_test

import (
	"testing"

	"github.com/gnames/pubdb/internal/iodb"
	"github.com/gnames/pubdb/pkg/db"
)

// TestOperatorsImplementInterface verifies that both operators
// implement the db.Operator interface.
func TestOperatorsImplementInterface(t *testing.T) {
	var _ db.Operator = iodb.NewSQLiteOperator()
	var _ db.Operator = iodb.NewPgxOperator()
}
