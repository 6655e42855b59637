package main

import (
	"fmt"
	"os"
	"time"

	"github.com/chronobio/thermograph"
	"github.com/chronobio/thermograph/config"
	"github.com/chronobio/thermograph/store/sqlite"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

func run() error {
	_ = godotenv.Load()

	configPath := os.Getenv("THERMOGRAPH_CONFIG")
	if configPath == "" {
		configPath = "thermograph.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	backend, err := sqlite.Get(cfg.DBPath)
	if err != nil {
		return errors.Wrap(err, "open store")
	}

	chart, err := thermograph.New(backend, cfg)
	if err != nil {
		return errors.Wrap(err, "new chart")
	}

	loaded, err := chart.LoadLatestDataset()
	if err != nil {
		return errors.Wrap(err, "load latest dataset")
	}
	if !loaded {
		ds, err := chart.ImportCSV(cfg.CSVPath, cfg.CSVPath)
		if err != nil {
			return errors.Wrap(err, "import csv")
		}
		fmt.Printf("imported %s: %d rows\n", ds.Source, ds.RowCount)
	}

	var group errgroup.Group
	group.Go(func() error {
		return chart.RunServer(cfg.Listen)
	})
	group.Go(func() error {
		return watchCSV(chart, cfg.CSVPath, 5*time.Second)
	})

	return group.Wait()
}

// watchCSV re-imports the source file whenever its mtime changes, which
// recomputes all series and pushes them to connected clients.
func watchCSV(chart *thermograph.Chart, path string, every time.Duration) error {
	ticker := time.NewTicker(every)

	var lastMod time.Time
	if fi, err := os.Stat(path); err == nil {
		lastMod = fi.ModTime()
	}

	for {
		<-ticker.C

		fi, err := os.Stat(path)
		if err != nil {
			continue
		}
		if !fi.ModTime().After(lastMod) {
			continue
		}
		lastMod = fi.ModTime()

		if _, err := chart.ImportCSV(path, path); err != nil {
			fmt.Println(errors.Wrap(err, "reimport csv"))
		}
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
