package store

import (
	"time"

	"github.com/chronobio/thermograph/schema"
)

// Dataset describes one imported copy of the source CSV.
type Dataset struct {
	ID         string
	Name       string
	Source     string
	RowCount   int
	ImportedAt time.Time
}

// Backend persists imported datasets so restarts do not re-parse the CSV.
type Backend interface {
	SaveDataset(ds Dataset, rows []schema.Row) error

	// LoadRows reconstructs the rows of a dataset in ordinal order. Rows
	// whose cells were all missing come back with an empty Temps map.
	LoadRows(datasetID string) ([]schema.Row, error)

	ListDatasets() ([]Dataset, error)

	DeleteDataset(datasetID string) error
}
