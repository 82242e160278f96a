// Package iosources reads taxonomies and the dataset from files.
// This is an impure I/O package that implements contracts
// defined in pkg/sources.
package iosources

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/pubdb/pkg/config"
	"github.com/gnames/pubdb/pkg/sources"
	"gopkg.in/yaml.v3"
)

// maxLineSize limits the size of one dataset record.
const maxLineSize = 16 * 1024 * 1024

type iosources struct {
	cfg config.SourcesConfig
}

// New creates sources that read files set in the configuration.
func New(cfg *config.Config) sources.Sources {
	res := iosources{cfg: cfg.Sources}
	return &res
}

// Labels loads taxonomy A from a YAML file.
func (s *iosources) Labels(ctx context.Context) ([]sources.LabelEntry, error) {
	path := s.cfg.LabelsFile
	var res []sources.LabelEntry
	if err := loadYAML(path, &res); err != nil {
		return nil, LabelsError(path, err)
	}

	warnings, err := sources.ValidateLabels(res)
	if err != nil {
		return nil, LabelsError(path, err)
	}
	for _, w := range warnings {
		gn.Warn("Label <em>%d</em>: %s", w.ID, w.Message)
	}
	return res, nil
}

// Subscriptions loads taxonomy B from a YAML file.
func (s *iosources) Subscriptions(
	ctx context.Context,
) ([]sources.SubscriptionEntry, error) {
	path := s.cfg.SubscriptionsFile
	var res []sources.SubscriptionEntry
	if err := loadYAML(path, &res); err != nil {
		return nil, SubscriptionsError(path, err)
	}

	warnings, err := sources.ValidateSubscriptions(res)
	if err != nil {
		return nil, SubscriptionsError(path, err)
	}
	for _, w := range warnings {
		gn.Warn("Subscription <em>%d</em>: %s", w.ID, w.Message)
	}
	return res, nil
}

func loadYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, out)
}

// record is the JSON form of a dataset line.
type record struct {
	ID    *flexID `json:"id"`
	Text  string  `json:"text"`
	Label []int   `json:"label"`
}

// flexID accepts both numbers and numeric strings.
type flexID int64

func (f *flexID) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	i, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("id is not an integer: %s", data)
	}
	*f = flexID(i)
	return nil
}

// Publications reads the dataset from a JSON Lines file. Empty lines
// are skipped.
func (s *iosources) Publications(
	ctx context.Context,
	limit int,
) ([]sources.PublicationRecord, error) {
	path := s.cfg.DatasetFile
	f, err := os.Open(path)
	if err != nil {
		return nil, DatasetError(path, err)
	}
	defer f.Close()

	enc := gnfmt.GNjson{}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var res []sources.PublicationRecord
	var line int
	for scanner.Scan() {
		line++
		if limit > 0 && len(res) >= limit {
			break
		}
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		data := bytes.TrimSpace(scanner.Bytes())
		if len(data) == 0 {
			continue
		}

		var r record
		if err = enc.Decode(data, &r); err != nil {
			return nil, RecordError(path, line, err)
		}
		if r.ID == nil {
			return nil, RecordError(path, line, errors.New("id is missing"))
		}
		res = append(res, sources.PublicationRecord{
			ID:    int64(*r.ID),
			Text:  r.Text,
			Label: r.Label,
		})
	}
	if err = scanner.Err(); err != nil {
		return nil, DatasetError(path, err)
	}

	return res, nil
}
