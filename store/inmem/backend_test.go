package inmem

import (
	"math"
	"testing"
	"time"

	"github.com/chronobio/thermograph/schema"
	"github.com/chronobio/thermograph/store"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoad(t *testing.T) {
	b := NewBackend()

	rows := []schema.Row{
		{Ordinal: 0, Temps: map[string]float64{"fem_temp_1": 37.0}},
		{Ordinal: 1, Temps: map[string]float64{"fem_temp_1": math.NaN()}},
	}

	err := b.SaveDataset(store.Dataset{ID: "ds1", Name: "mice"}, rows)
	require.NoError(t, err)

	loaded, err := b.LoadRows("ds1")
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	require.Equal(t, 37.0, loaded[0].Temps["fem_temp_1"])

	// NaN cells are dropped on save; absence means missing
	_, ok := loaded[1].Temps["fem_temp_1"]
	require.False(t, ok)
}

func TestLoadUnknownDataset(t *testing.T) {
	b := NewBackend()
	_, err := b.LoadRows("nope")
	require.Error(t, err)
}

func TestListAndDelete(t *testing.T) {
	b := NewBackend()

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
}
