// Package iooptimize implements Optimizer interface for database
// performance optimization. This is an impure I/O package that
// creates indexes and refreshes statistics.
package iooptimize

import (
	"context"
	"log/slog"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/pubdb/pkg/db"
	"github.com/gnames/pubdb/pkg/lifecycle"
)

// optimizer implements the Optimizer interface.
type optimizer struct {
	operator db.Operator
}

// NewOptimizer creates a new Optimizer.
func NewOptimizer(op db.Operator) lifecycle.Optimizer {
	return &optimizer{
		operator: op,
	}
}

// Optimize executes 2 sequential steps:
//  1. Create indexes on label references
//  2. Compact storage and update planner statistics
func (o *optimizer) Optimize(ctx context.Context) error {
	if o.operator.DB() == nil {
		return NotConnectedError()
	}

	timeStart := time.Now()
	slog.Info("Starting database optimization",
		"driver", o.operator.Driver())

	gn.Info("(1/2) Creating indexes...")
	if err := o.createIndexes(ctx); err != nil {
		return err
	}

	gn.Info("(2/2) Updating statistics...")
	if err := o.vacuumAnalyze(ctx); err != nil {
		return err
	}

	slog.Info("Database optimization completed",
		"duration", gnfmt.TimeString(time.Since(timeStart).Seconds()))
	return nil
}
