package inmem

import (
	"math"
	"sort"
	"sync"

	"github.com/chronobio/thermograph/schema"
	"github.com/chronobio/thermograph/store"
	"github.com/pkg/errors"
)

// Backend keeps datasets in memory, for tests and ephemeral runs.
type Backend struct {
	lock     sync.Mutex
	datasets map[string]store.Dataset
	rows     map[string][]schema.Row
}

func NewBackend() *Backend {
	return &Backend{
		datasets: map[string]store.Dataset{},
		rows:     map[string][]schema.Row{},
	}
}

func (b *Backend) SaveDataset(ds store.Dataset, rows []schema.Row) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	copied := make([]schema.Row, len(rows))
	for i, row := range rows {
		temps := make(map[string]float64, len(row.Temps))
		for sensor, value := range row.Temps {
			if math.IsNaN(value) {
				continue
			}
			temps[sensor] = value
		}
		copied[i] = schema.Row{Ordinal: row.Ordinal, Temps: temps}
	}

	ds.RowCount = len(rows)
	b.datasets[ds.ID] = ds
	b.rows[ds.ID] = copied
	return nil
}

func (b *Backend) LoadRows(datasetID string) ([]schema.Row, error) {
	b.lock.Lock()
	defer b.lock.Unlock()

	rows, ok := b.rows[datasetID]
	if !ok {
		return nil, errors.Errorf("unknown dataset: %s", datasetID)
	}

	result := make([]schema.Row, len(rows))
	copy(result, rows)
	return result, nil
}

func (b *Backend) ListDatasets() ([]store.Dataset, error) {
	b.lock.Lock()
	defer b.lock.Unlock()

	var result []store.Dataset
	for _, ds := range b.datasets {
		result = append(result, ds)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].ImportedAt.Equal(result[j].ImportedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].ImportedAt.Before(result[j].ImportedAt)
	})
	return result, nil
}

func (b *Backend) DeleteDataset(datasetID string) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	delete(b.datasets, datasetID)
	delete(b.rows, datasetID)
	return nil
}
