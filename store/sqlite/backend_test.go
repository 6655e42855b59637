package sqlite

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/chronobio/thermograph/schema"
	"github.com/chronobio/thermograph/store"
	"github.com/stretchr/testify/require"
)

func testBackend(t *testing.T) *Backend {
	t.Helper()
	b, err := Get(filepath.Join(t.TempDir(), "thermograph.db"))
	require.NoError(t, err)
	return b
}

func TestSaveDatasetRoundTrip(t *testing.T) {
	b := testBackend(t)

	rows := []schema.Row{
		{Ordinal: 0, Temps: map[string]float64{"fem_temp_1": 37.0, "male_temp_1": 36.5}},
		{Ordinal: 1, Temps: map[string]float64{"fem_temp_1": math.NaN()}},
		{Ordinal: 2, Temps: map[string]float64{"fem_temp_1": 36.8}},
	}

	ds := store.Dataset{
		ID:         "ds1",
		Name:       "mice",
		Source:     "mouse_data.csv",
		ImportedAt: time.Now(),
	}
	require.NoError(t, b.SaveDataset(ds, rows))

	loaded, err := b.LoadRows("ds1")
	require.NoError(t, err)
	require.Len(t, loaded, 3)

	require.Equal(t, 37.0, loaded[0].Temps["fem_temp_1"])
	require.Equal(t, 36.5, loaded[0].Temps["male_temp_1"])
	require.Equal(t, 36.8, loaded[2].Temps["fem_temp_1"])

	// the all-NaN row still exists, with no stored samples
	require.Equal(t, 1, loaded[1].Ordinal)
	require.Empty(t, loaded[1].Temps)
}

func TestSaveDatasetReplaces(t *testing.T) {
	b := testBackend(t)

	ds := store.Dataset{ID: "ds1", Name: "mice", ImportedAt: time.Now()}

	require.NoError(t, b.SaveDataset(ds, []schema.Row{
		{Ordinal: 0, Temps: map[string]float64{"fem_temp_1": 30.0}},
		{Ordinal: 1, Temps: map[string]float64{"fem_temp_1": 31.0}},
	}))
	require.NoError(t, b.SaveDataset(ds, []schema.Row{
		{Ordinal: 0, Temps: map[string]float64{"fem_temp_1": 37.0}},
	}))

	loaded, err := b.LoadRows("ds1")
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	require.Equal(t, 37.0, loaded[0].Temps["fem_temp_1"])
}

func TestListAndDeleteDatasets(t *testing.T) {
	b := testBackend(t)

	t0 := time.Now()
	require.NoError(t, b.SaveDataset(store.Dataset{ID: "a", ImportedAt: t0}, nil))
	require.NoError(t, b.SaveDataset(store.Dataset{ID: "b", ImportedAt: t0.Add(time.Second)}, nil))

	datasets, err := b.ListDatasets()
	require.NoError(t, err)
	require.Len(t, datasets, 2)
	require.Equal(t, "a", datasets[0].ID)

	require.NoError(t, b.DeleteDataset("a"))

	datasets, err = b.ListDatasets()
	require.NoError(t, err)
	require.Len(t, datasets, 1)
	require.Equal(t, "b", datasets[0].ID)

	_, err = b.LoadRows("a")
	require.Error(t, err)
}
