// Package iosample implements Sampler interface that reads random
// publications with their labels from a built database.
// This is an impure I/O package.
package iosample

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/gnames/pubdb/pkg/db"
	"github.com/gnames/pubdb/pkg/lifecycle"
	"github.com/gnames/pubdb/pkg/schema"
)

// sampler implements the lifecycle.Sampler interface.
type sampler struct {
	operator db.Operator
}

// New creates a new Sampler.
func New(op db.Operator) lifecycle.Sampler {
	return &sampler{operator: op}
}

// Sample picks up to limit distinct publications in random order and
// adds matched labels to each of them. Label identifiers and texts are
// reported as subscription_id and subscription.
func (s *sampler) Sample(
	ctx context.Context,
	limit int,
) ([]schema.PublicationSample, error) {
	if limit < 0 {
		return nil, InvalidLimitError(limit)
	}
	if limit == 0 {
		return []schema.PublicationSample{}, nil
	}

	conn := s.operator.DB()
	if conn == nil {
		return nil, NotConnectedError()
	}

	res, err := s.publications(ctx, conn, limit)
	if err != nil {
		slog.Error("Cannot fetch random publications",
			"limit", limit, "error", err)
		return nil, SampleError(err)
	}

	q := s.operator.Rebind(`
		SELECT l.label_id, l.label
		FROM publication_matches pm
		JOIN labels l ON pm.label_id = l.label_id
		WHERE pm.publication_id = ?
		ORDER BY l.label_id`)
	stmt, err := conn.PrepareContext(ctx, q)
	if err != nil {
		slog.Error("Cannot prepare matches query", "error", err)
		return nil, SampleError(err)
	}
	defer stmt.Close()

	for i := range res {
		res[i].SubscriptionMatches, err = matches(ctx, stmt, res[i].PublicationID)
		if err != nil {
			slog.Error("Cannot fetch label matches",
				"publication_id", res[i].PublicationID, "error", err)
			return nil, SampleError(err)
		}
	}

	slog.Info("Sampled publications", "limit", limit, "count", len(res))
	return res, nil
}

// publications are read completely before matches are queried, so only
// one connection is busy at a time.
func (s *sampler) publications(
	ctx context.Context,
	conn *sql.DB,
	limit int,
) ([]schema.PublicationSample, error) {
	q := s.operator.Rebind(`
		SELECT publication_id, publication
		FROM publications
		ORDER BY RANDOM()
		LIMIT ?`)
	rows, err := conn.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]schema.PublicationSample, 0, min(limit, 1024))
	for rows.Next() {
		var ps schema.PublicationSample
		if err = rows.Scan(&ps.PublicationID, &ps.Publication); err != nil {
			return nil, err
		}
		res = append(res, ps)
	}
	return res, rows.Err()
}

func matches(
	ctx context.Context,
	stmt *sql.Stmt,
	publicationID int64,
) ([]schema.SubscriptionMatch, error) {
	rows, err := stmt.QueryContext(ctx, publicationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := []schema.SubscriptionMatch{}
	for rows.Next() {
		var sm schema.SubscriptionMatch
		if err = rows.Scan(&sm.SubscriptionID, &sm.Subscription); err != nil {
			return nil, err
		}
		res = append(res, sm)
	}
	return res, rows.Err()
}

// Subscriptions returns all subscriptions in storage order.
func (s *sampler) Subscriptions(
	ctx context.Context,
) ([]schema.SubscriptionMatch, error) {
	conn := s.operator.DB()
	if conn == nil {
		return nil, NotConnectedError()
	}

	rows, err := conn.QueryContext(ctx,
		"SELECT subscription_id, subscription FROM subscriptions")
	if err != nil {
		slog.Error("Cannot fetch subscriptions", "error", err)
		return nil, SubscriptionsError(err)
	}
	defer rows.Close()

	res := []schema.SubscriptionMatch{}
	for rows.Next() {
		var sm schema.SubscriptionMatch
		if err = rows.Scan(&sm.SubscriptionID, &sm.Subscription); err != nil {
			return nil, SubscriptionsError(err)
		}
		res = append(res, sm)
	}
	if err = rows.Err(); err != nil {
		return nil, SubscriptionsError(err)
	}
	return res, nil
}
