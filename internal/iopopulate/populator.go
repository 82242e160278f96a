// Package iopopulate implements Populator interface for importing
// taxonomies and a multi-label dataset into the database.
// This is an impure I/O package that reads source files and performs
// bulk inserts inside one transaction.
package iopopulate

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/pubdb/internal/iofs"
	"github.com/gnames/pubdb/internal/ioschema"
	"github.com/gnames/pubdb/internal/iosources"
	"github.com/gnames/pubdb/pkg/config"
	"github.com/gnames/pubdb/pkg/db"
	"github.com/gnames/pubdb/pkg/labelcodec"
	"github.com/gnames/pubdb/pkg/lifecycle"
	"github.com/gnames/pubdb/pkg/sources"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// populator implements the Populator interface.
type populator struct {
	operator db.Operator
	src      sources.Sources
	log      *slog.Logger
}

// New creates a new Populator. If src is nil, sources are read from
// files set in the configuration given to Populate.
func New(op db.Operator, src sources.Sources) lifecycle.Populator {
	return &populator{operator: op, src: src}
}

// sourceData holds everything read from sources before writing starts.
type sourceData struct {
	labels        []sources.LabelEntry
	subscriptions []sources.SubscriptionEntry
	publications  []sources.PublicationRecord
}

// Populate imports labels, subscriptions and publications as one batch.
// Any error rolls the whole batch back.
func (p *populator) Populate(
	ctx context.Context,
	cfg *config.Config,
) (lifecycle.Stats, error) {
	var stats lifecycle.Stats
	conn := p.operator.DB()
	if conn == nil {
		return stats, NotConnectedError()
	}

	startTime := time.Now()
	p.log = slog.With("batch_id", uuid.NewString())
	p.log.Info("Starting database population",
		"driver", p.operator.Driver(),
		"publications_num", cfg.Populate.PublicationsNum,
	)

	src := p.src
	if src == nil {
		src = iosources.New(cfg)
	}
	data, err := p.readSources(
		ctx, src, cfg.Populate.PublicationsNum, cfg.JobsNumber,
	)
	if err != nil {
		return stats, err
	}

	sm := ioschema.NewManager(p.operator)
	if err = sm.Create(ctx, cfg); err != nil {
		return stats, err
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return stats, TransactionError("begin", err)
	}
	// no-op after a successful commit
	defer tx.Rollback()

	gn.Info("(1/4) Importing labels...")
	labels, err := p.insertLabels(ctx, tx, data.labels)
	if err != nil {
		return stats, err
	}
	stats.Labels = len(labels)
	gn.Message("<em>Imported %s labels</em>",
		humanize.Comma(int64(stats.Labels)))

	gn.Info("(2/4) Importing subscriptions...")
	stats.Subscriptions, err = p.insertSubscriptions(
		ctx, tx, data.subscriptions, labels,
	)
	if err != nil {
		return stats, err
	}
	gn.Message("<em>Imported %s subscriptions</em>",
		humanize.Comma(int64(stats.Subscriptions)))

	gn.Info("(3/4) Importing publications...")
	stats.Publications, stats.Matches, err = p.insertPublications(
		ctx, tx, data.publications, labels,
	)
	if err != nil {
		return stats, err
	}
	gn.Message("<em>Imported %s publications with %s label matches</em>",
		humanize.Comma(int64(stats.Publications)),
		humanize.Comma(int64(stats.Matches)),
	)

	gn.Info("(4/4) Exporting schema...")
	stmts, err := sm.Export(ctx, tx)
	if err != nil {
		return stats, err
	}
	if err = commit(tx, cfg.Export.SchemaFile, stmts); err != nil {
		return stats, err
	}
	gn.Message("<em>Schema saved to %s</em>", cfg.Export.SchemaFile)

	totalDuration := time.Since(startTime)
	p.log.Info("Population complete",
		"labels", stats.Labels,
		"subscriptions", stats.Subscriptions,
		"publications", stats.Publications,
		"matches", stats.Matches,
		"duration", gnfmt.TimeString(totalDuration.Seconds()),
	)
	return stats, nil
}

// readSources reads the three sources concurrently, at most jobs of them
// at a time. They do not depend on each other, writing happens after all
// of them are read.
func (p *populator) readSources(
	ctx context.Context,
	src sources.Sources,
	limit, jobs int,
) (*sourceData, error) {
	var res sourceData
	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}

	g.Go(func() error {
		var err error
		res.labels, err = src.Labels(ctx)
		return err
	})

	g.Go(func() error {
		var err error
		res.subscriptions, err = src.Subscriptions(ctx)
		return err
	})

	g.Go(func() error {
		var err error
		res.publications, err = src.Publications(ctx, limit)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	p.log.Info("Sources are read",
		"labels", len(res.labels),
		"subscriptions", len(res.subscriptions),
		"publications", len(res.publications),
	)
	return &res, nil
}

// insertLabels stores taxonomy A and returns the set of imported label
// identifiers.
func (p *populator) insertLabels(
	ctx context.Context,
	tx *sql.Tx,
	labels []sources.LabelEntry,
) (map[int64]struct{}, error) {
	res := make(map[int64]struct{}, len(labels))
	rows := make([][]any, len(labels))
	for i, v := range labels {
		rows[i] = []any{v.Identifier, v.Subscription}
		res[v.Identifier] = struct{}{}
	}

	ins := p.inserter(tx, "labels", "label_id", "label")
	if err := ins.insert(ctx, rows, nil); err != nil {
		return nil, LabelsError(err)
	}
	return res, nil
}

// insertSubscriptions stores taxonomy B. Every subscription must
// resolve to one of the imported labels, otherwise nothing is written.
func (p *populator) insertSubscriptions(
	ctx context.Context,
	tx *sql.Tx,
	subs []sources.SubscriptionEntry,
	labels map[int64]struct{},
) (int, error) {
	resolver := sources.NewGroupResolver(subs)

	rows := make([][]any, len(subs))
	for i, v := range subs {
		groupID, ok := resolver.GroupID(v.SubscriptionID)
		if _, known := labels[groupID]; !ok || !known {
			err := UnresolvedGroupError(v.SubscriptionID, groupID, ok)
			p.log.Error("Unresolved subscription group",
				"subscription_id", v.SubscriptionID,
				"error", err,
			)
			return 0, err
		}
		rows[i] = []any{v.SubscriptionID, groupID, v.Subscription}
	}

	ins := p.inserter(tx,
		"subscriptions", "subscription_id", "label_id", "subscription",
	)
	if err := ins.insert(ctx, rows, nil); err != nil {
		return 0, SubscriptionsError(err)
	}
	return len(rows), nil
}

// insertPublications stores publications and one match per label
// decoded from their label vectors. Returns numbers of publications
// and matches.
func (p *populator) insertPublications(
	ctx context.Context,
	tx *sql.Tx,
	pubs []sources.PublicationRecord,
	labels map[int64]struct{},
) (int, int, error) {
	pubRows := make([][]any, len(pubs))
	var matchRows [][]any
	for i, v := range pubs {
		pubRows[i] = []any{v.ID, v.Text}

		ids, err := labelcodec.Decode(v.Label)
		if err != nil {
			return 0, 0, DecodeError(v.ID, err)
		}
		for _, id := range ids {
			if _, ok := labels[id]; !ok {
				err = DanglingLabelError(v.ID, id)
				p.log.Error("Dangling label",
					"publication_id", v.ID,
					"label_id", id,
				)
				return 0, 0, err
			}
			matchRows = append(matchRows, []any{v.ID, id})
		}
	}

	bar := pb.Full.Start(len(pubRows) + len(matchRows))
	bar.Set("prefix", "Processing publications: ")
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	ins := p.inserter(tx, "publications", "publication_id", "publication")
	if err := ins.insert(ctx, pubRows, bar); err != nil {
		return 0, 0, PublicationsError(err)
	}

	ins = p.inserter(tx, "publication_matches", "publication_id", "label_id")
	if err := ins.insert(ctx, matchRows, bar); err != nil {
		return 0, 0, PublicationsError(err)
	}

	return len(pubRows), len(matchRows), nil
}

func (p *populator) inserter(
	tx *sql.Tx,
	table string,
	columns ...string,
) *inserter {
	return &inserter{
		q:       tx,
		rebind:  p.operator.Rebind,
		table:   table,
		columns: columns,
	}
}

// commit finishes the batch, schema is saved only after a successful
// commit.
func commit(tx *sql.Tx, schemaFile string, stmts []string) error {
	if err := tx.Commit(); err != nil {
		return TransactionError("commit", err)
	}
	return iofs.WriteSchema(schemaFile, stmts)
}
