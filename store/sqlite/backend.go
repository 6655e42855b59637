package sqlite

import (
	"crypto/rand"
	"math"
	"time"

	"github.com/chronobio/thermograph/schema"
	"github.com/chronobio/thermograph/store"
	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type datasetRecord struct {
	ID         string `gorm:"primaryKey"`
	Name       string
	Source     string
	RowCount   int
	ImportedAt time.Time
}

func (datasetRecord) TableName() string { return "datasets" }

type sampleRecord struct {
	ID        []byte `gorm:"primaryKey"`
	DatasetID string `gorm:"index;not null"`
	Ordinal   int    `gorm:"index;not null"`
	Sensor    string `gorm:"not null"`
	Value     float64
}

func (sampleRecord) TableName() string { return "samples" }

type Backend struct {
	db *gorm.DB
}

func Get(filename string) (*Backend, error) {
	db, err := gorm.Open(sqlite.Open(filename), &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "open")
	}

	for _, table := range []any{
		&datasetRecord{},
		&sampleRecord{},
	} {
		if err := db.AutoMigrate(table); err != nil {
			return nil, errors.Wrap(err, "migrate")
		}
	}

	return &Backend{db: db}, nil
}

func (b *Backend) GetORM() *gorm.DB {
	return b.db
}

func randomID() []byte {
	var result [16]byte
	_, err := rand.Read(result[:])
	if err != nil {
		panic(err)
	}
	return result[:]
}

// SaveDataset replaces any previous copy of the dataset. NaN cells are not
// stored; a missing sample row is the persisted form of a missing value.
func (b *Backend) SaveDataset(ds store.Dataset, rows []schema.Row) error {
	var samples []sampleRecord
	for _, row := range rows {
		for sensor, value := range row.Temps {
			if math.IsNaN(value) {
				continue
			}
			samples = append(samples, sampleRecord{
				ID:        randomID(),
				DatasetID: ds.ID,
				Ordinal:   row.Ordinal,
				Sensor:    sensor,
				Value:     value,
			})
		}
	}

	err := b.db.Transaction(func(tx *gorm.DB) error {
		if res := tx.Where("dataset_id = ?", ds.ID).Delete(&sampleRecord{}); res.Error != nil {
			return errors.Wrap(res.Error, "delete samples")
		}
		if res := tx.Delete(&datasetRecord{}, "id = ?", ds.ID); res.Error != nil {
			return errors.Wrap(res.Error, "delete dataset")
		}

		record := datasetRecord{
			ID:         ds.ID,
			Name:       ds.Name,
			Source:     ds.Source,
			RowCount:   len(rows),
			ImportedAt: ds.ImportedAt,
		}
		if res := tx.Create(&record); res.Error != nil {
			return errors.Wrap(res.Error, "create dataset")
		}

		if len(samples) > 0 {
			if res := tx.CreateInBatches(samples, 500); res.Error != nil {
				return errors.Wrap(res.Error, "create samples")
			}
		}
		return nil
	})
	return err
}

func (b *Backend) LoadRows(datasetID string) ([]schema.Row, error) {
	var ds datasetRecord
	if tx := b.db.First(&ds, "id = ?", datasetID); tx.Error != nil {
		return nil, errors.Wrap(tx.Error, "find dataset")
	}

	var samples []sampleRecord
	tx := b.db.Where(
		"dataset_id = ?", datasetID,
	).Order("ordinal asc").Find(&samples)
	if tx.Error != nil {
		return nil, errors.Wrap(tx.Error, "find samples")
	}

	rows := make([]schema.Row, ds.RowCount)
	for i := range rows {
		rows[i] = schema.Row{
			Ordinal: i,
			Temps:   map[string]float64{},
		}
	}

	for _, s := range samples {
		if s.Ordinal < 0 || s.Ordinal >= len(rows) {
			return nil, errors.Errorf("sample ordinal %d out of range", s.Ordinal)
		}
		rows[s.Ordinal].Temps[s.Sensor] = s.Value
	}

	return rows, nil
}

func (b *Backend) ListDatasets() ([]store.Dataset, error) {
	var records []datasetRecord
	if tx := b.db.Order("imported_at asc").Find(&records); tx.Error != nil {
		return nil, errors.Wrap(tx.Error, "find datasets")
	}

	result := make([]store.Dataset, len(records))
	for i, r := range records {
		result[i] = store.Dataset{
			ID:         r.ID,
			Name:       r.Name,
			Source:     r.Source,
			RowCount:   r.RowCount,
			ImportedAt: r.ImportedAt,
		}
	}
	return result, nil
}

func (b *Backend) DeleteDataset(datasetID string) error {
	return b.db.Transaction(func(tx *gorm.DB) error {
		if res := tx.Where("dataset_id = ?", datasetID).Delete(&sampleRecord{}); res.Error != nil {
			return errors.Wrap(res.Error, "delete samples")
		}
		if res := tx.Delete(&datasetRecord{}, "id = ?", datasetID); res.Error != nil {
			return errors.Wrap(res.Error, "delete dataset")
		}
		return nil
	})
}
