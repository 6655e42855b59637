package thermograph

import (
	"sync"
	"time"

	"github.com/chronobio/thermograph/broker"
	"github.com/chronobio/thermograph/config"
	"github.com/chronobio/thermograph/dataset"
	"github.com/chronobio/thermograph/schema"
	"github.com/chronobio/thermograph/store"
	"github.com/chronobio/thermograph/window"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Chart serves the temperature chart: it holds the current dataset rows,
// recomputes window series on demand, and fans recomputes out to websocket
// clients through the broker.
type Chart struct {
	backend store.Backend
	broker  *broker.Broker
	server  *gin.Engine
	parser  *window.Parser
	cfg     config.Config

	mu        sync.Mutex
	datasetID string
	rows      []schema.Row
}

func New(
	backend store.Backend,
	cfg config.Config,
) (*Chart, error) {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	br := broker.NewBroker()
	c := &Chart{
		backend: backend,
		broker:  br,
		server:  gin.Default(),
		parser:  window.NewParser(),
		cfg:     cfg,
	}

	if err := c.setupServer(); err != nil {
		return nil, errors.Wrap(err, "setup server")
	}

	go br.Start()
	go c.publishPrometheusMetrics()

	return c, nil
}

func (c *Chart) GetEngine() *gin.Engine {
	return c.server
}

func (c *Chart) Broker() *broker.Broker {
	return c.broker
}

// ImportCSV parses the source file, persists it as a new dataset, makes it
// the current one, and broadcasts recomputed series for every cohort.
func (c *Chart) ImportCSV(path string, name string) (store.Dataset, error) {
	t0 := time.Now()

	rows, err := dataset.ReadFile(path)
	if err != nil {
		return store.Dataset{}, errors.Wrap(err, "read csv")
	}

	ds := store.Dataset{
		ID:         uuid.NewString(),
		Name:       name,
		Source:     path,
		RowCount:   len(rows),
		ImportedAt: time.Now(),
	}
	if err := c.backend.SaveDataset(ds, rows); err != nil {
		return store.Dataset{}, errors.Wrap(err, "save dataset")
	}

	c.setCurrent(ds.ID, rows)

	rowsImported.Add(float64(len(rows)))
	importDuration.Observe(time.Since(t0).Seconds())

	c.publishAll()
	return ds, nil
}

// LoadLatestDataset makes the most recently imported dataset current.
// Returns false when the store is empty.
func (c *Chart) LoadLatestDataset() (bool, error) {
	datasets, err := c.backend.ListDatasets()
	if err != nil {
		return false, errors.Wrap(err, "list datasets")
	}
	if len(datasets) == 0 {
		return false, nil
	}

	latest := datasets[len(datasets)-1]
	rows, err := c.backend.LoadRows(latest.ID)
	if err != nil {
		return false, errors.Wrap(err, "load rows")
	}

	c.setCurrent(latest.ID, rows)
	c.publishAll()
	return true, nil
}

func (c *Chart) setCurrent(datasetID string, rows []schema.Row) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.datasetID = datasetID
	c.rows = rows
}

func (c *Chart) currentRows() []schema.Row {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rows
}

func (c *Chart) DatasetID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.datasetID
}

// SeriesFor aggregates the current rows for a cohort and applies a display
// operator. The aggregation runs from scratch on every call; windows are
// never mutated in place.
func (c *Chart) SeriesFor(
	cohort window.Cohort,
	op window.Operator,
	windowMinutes float64,
) schema.WindowSeries {
	if windowMinutes <= 0 {
		windowMinutes = c.cfg.WindowMinutes
	}

	windows := window.Aggregate(c.currentRows(), cohort, windowMinutes)
	return schema.WindowSeries{
		SeriesName: cohort.String(),
		Unit:       window.UnitOf(op),
		Windows:    op.ProcessWindows(windows),
	}
}

// SeriesForExpr is SeriesFor driven by a view expression like
// "female | range 2 9 | CtoF".
func (c *Chart) SeriesForExpr(expr string, windowMinutes float64) (schema.WindowSeries, error) {
	cohort, op, err := c.parser.Parse(expr)
	if err != nil {
		return schema.WindowSeries{}, errors.Wrap(err, "parse expression")
	}
	return c.SeriesFor(cohort, op, windowMinutes), nil
}

// publishAll broadcasts freshly aggregated series for every cohort. Clients
// apply their own display operators; published series are always Celsius.
func (c *Chart) publishAll() {
	rows := c.currentRows()

	for _, cohort := range []window.Cohort{
		window.CohortFemale,
		window.CohortMale,
		window.CohortBoth,
	} {
		c.broker.Publish(schema.WindowSeries{
			SeriesName: cohort.String(),
			Unit:       "c",
			Windows:    window.Aggregate(rows, cohort, c.cfg.WindowMinutes),
		})
	}
}
