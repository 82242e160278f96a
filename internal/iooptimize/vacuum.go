package iooptimize

import (
	"context"
	"log/slog"
	"time"
)

// vacuumAnalyze reclaims space and updates statistics used by the
// query planner. VACUUM cannot run inside a transaction block.
func (o *optimizer) vacuumAnalyze(ctx context.Context) error {
	stmts := []string{"VACUUM", "ANALYZE"}
	if o.operator.Driver() == "postgres" {
		stmts = []string{"VACUUM ANALYZE"}
	}

	conn := o.operator.DB()
	for _, stmt := range stmts {
		timeStart := time.Now()
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			slog.Error("Failed to update statistics",
				"statement", stmt, "error", err)
			return VacuumError(stmt, err)
		}
		slog.Info("Statement completed",
			"statement", stmt,
			"duration", time.Since(timeStart).String(),
		)
	}
	return nil
}
