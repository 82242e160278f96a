package iotesting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/pubdb/pkg/config"
)

// Fixture sizes. FixtureMatches is the total number of set flags in the
// label vectors of FixtureDataset.
const (
	FixtureLabels        = 4
	FixtureSubscriptions = 5
	FixturePublications  = 6
	FixtureMatches       = 10
)

// FixtureLabelsYAML is taxonomy A: original labels.
const FixtureLabelsYAML = `- identifier: 1
  subscription: Mathematics
- identifier: 2
  subscription: Physics
- identifier: 4
  subscription: Computer Science
- identifier: 8
  subscription: Biology
`

// FixtureSubscriptionsYAML is taxonomy B: expanded subscriptions grouped
// under the labels of FixtureLabelsYAML.
const FixtureSubscriptionsYAML = `- subscription_id: 101
  subscription: Algebra
  group_id: 1
- subscription_id: 102
  subscription: Geometry
  group_id: 1
- subscription_id: 201
  subscription: Optics
  group_id: 2
- subscription_id: 301
  subscription: Databases
  group_id: 4
- subscription_id: 401
  subscription: Genetics
  group_id: 8
`

// FixtureDataset holds publications with 4-flag label vectors. The last
// flag of a vector corresponds to label 1.
const FixtureDataset = `{"id": 1, "text": "On prime numbers", "label": [0, 0, 0, 1]}
{"id": 2, "text": "Algorithms for algebra", "label": [0, 1, 0, 1]}
{"id": 3, "text": "Everything at once", "label": [1, 1, 1, 1]}
{"id": 4, "text": "Unlabeled note", "label": [0, 0, 0, 0]}

{"id": 5, "text": "Biophysics of the cell", "label": [1, 0, 1, 0]}
{"id": "6", "text": "Über die Quantenmechanik", "label": [0, 0, 1, 0]}
`

// WriteFixtures writes the fixture sources into dir and returns sources
// configuration pointing to them.
func WriteFixtures(t *testing.T, dir string) config.SourcesConfig {
	t.Helper()

	res := config.SourcesConfig{
		LabelsFile:        filepath.Join(dir, "labels.yaml"),
		SubscriptionsFile: filepath.Join(dir, "subscriptions.yaml"),
		DatasetFile:       filepath.Join(dir, "dataset.jsonl"),
	}
	WriteFile(t, res.LabelsFile, FixtureLabelsYAML)
	WriteFile(t, res.SubscriptionsFile, FixtureSubscriptionsYAML)
	WriteFile(t, res.DatasetFile, FixtureDataset)
	return res
}

// WriteFile writes content to path, failing the test on error.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()

	err := os.WriteFile(path, []byte(content), 0644)
	if err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}
