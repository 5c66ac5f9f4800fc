// Command tablerw writes a generated stock report to an xlsx workbook, reads
// it back with the matching read layout and checks the totals. With the
// database enabled the same layouts also mirror the report into SQLite.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"github.com/xuri/excelize/v2"

	"github.com/kbukum/tablerw/cache"
	"github.com/kbukum/tablerw/config"
	"github.com/kbukum/tablerw/database"
	"github.com/kbukum/tablerw/excel"
	"github.com/kbukum/tablerw/logger"
	"github.com/kbukum/tablerw/observability"
	"github.com/kbukum/tablerw/read"
	"github.com/kbukum/tablerw/storage"
	_ "github.com/kbukum/tablerw/storage/local"
	_ "github.com/kbukum/tablerw/storage/s3"
	"github.com/kbukum/tablerw/version"
	"github.com/kbukum/tablerw/write"
)

const serviceName = "tablerw"

type flags struct {
	configFile string
	envFile    string
	output     string
	sheet      string
	rows       int
	version    bool
}

func main() {
	var f flags
	pflag.StringVarP(&f.configFile, "config", "c", "", "path to config.yml")
	pflag.StringVar(&f.envFile, "env", "", "path to a .env file")
	pflag.StringVarP(&f.output, "output", "o", "", "workbook to write (overrides export.output)")
	pflag.StringVarP(&f.sheet, "sheet", "s", "", "worksheet name (overrides export.sheet)")
	pflag.IntVarP(&f.rows, "rows", "n", -1, "number of stock lines (overrides export.rows)")
	pflag.BoolVarP(&f.version, "version", "v", false, "print the version and exit")
	pflag.Parse()

	if f.version {
		fmt.Println(version.Get())
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, f); err != nil {
		logger.Error("tablerw failed", logger.ErrorFields("run", err))
		stop()
		os.Exit(1)
	}
}

func loadConfig(f flags) (*config.Config, error) {
	var opts []config.LoaderOption
	if f.configFile != "" {
		opts = append(opts, config.WithConfigFile(f.configFile))
	}
	if f.envFile != "" {
		opts = append(opts, config.WithEnvFile(f.envFile))
	}
	cfg, err := config.Load(serviceName, opts...)
	if err != nil {
		return nil, err
	}

	if f.output != "" {
		cfg.Export.Output = f.output
	}
	if f.sheet != "" {
		cfg.Export.Sheet = f.sheet
	}
	if f.rows >= 0 {
		cfg.Export.Rows = f.rows
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(ctx context.Context, f flags) error {
	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}
	log := logger.New(&cfg.Logging, cfg.Name)
	logger.SetGlobalLogger(log)
	logger.RegisterComponents(log, "cache", "config", "storage", "database", "gorm")

	shutdown, err := initTelemetry(ctx, cfg)
	if err != nil {
		return err
	}
	defer shutdown()

	metrics, err := observability.NewMetrics(observability.Meter(serviceName))
	if err != nil {
		return err
	}
	procs := cache.New(cache.WithMetrics(metrics))
	store, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		return err
	}

	items := generateStock(cfg.Export.Rows)
	if err := export(ctx, cfg.Export, store, procs, metrics, items); err != nil {
		return err
	}
	url, err := store.URL(ctx, cfg.Export.Output)
	if err != nil {
		return err
	}
	log.Info("report written", map[string]interface{}{
		logger.FieldPath:  url,
		logger.FieldSheet: cfg.Export.Sheet,
		logger.FieldRows:  len(items),
	})

	n, err := verify(ctx, cfg.Export, store, procs, metrics, items)
	if err != nil {
		return err
	}
	log.Info("report verified", map[string]interface{}{
		logger.FieldPath: url,
		logger.FieldRows: n,
	})

	if cfg.Database.Enabled {
		db, err := database.Open(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer db.Close()

		n, err := mirror(ctx, cfg.Export, db, procs, metrics, items)
		if err != nil {
			return err
		}
		log.Info("report mirrored", map[string]interface{}{
			logger.FieldPath:  cfg.Database.DSN,
			logger.FieldSheet: cfg.Export.Sheet,
			logger.FieldRows:  n,
		})
	}

	for _, e := range procs.Entries() {
		log.Debug("cached procedure", logger.Fields(
			"entry_id", e.ID,
			"record", e.Record,
			"procedure", e.Procedure,
			"key", e.Key,
		))
	}
	return nil
}

func initTelemetry(ctx context.Context, cfg *config.Config) (func(), error) {
	if !cfg.Telemetry.Enabled {
		return func() {}, nil
	}
	build := version.Get().Short()
	mp, err := observability.InitMeter(ctx, &observability.MeterConfig{
		ServiceName:    cfg.Name,
		ServiceVersion: build,
		Environment:    cfg.Environment,
		Endpoint:       cfg.Telemetry.Endpoint,
		Insecure:       cfg.Telemetry.Insecure,
		Interval:       cfg.Telemetry.Interval,
	})
	if err != nil {
		return nil, err
	}
	tp, err := observability.InitTracer(ctx, &observability.TracerConfig{
		ServiceName:    cfg.Name,
		ServiceVersion: build,
		Environment:    cfg.Environment,
		Endpoint:       cfg.Telemetry.Endpoint,
		Insecure:       cfg.Telemetry.Insecure,
		SampleRate:     cfg.Telemetry.SampleRate,
	})
	if err != nil {
		_ = mp.Shutdown(ctx)
		return nil, err
	}
	return func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = tp.Shutdown(sctx)
		_ = mp.Shutdown(sctx)
	}, nil
}

// export writes items to a new workbook and uploads it to exp.Output.
func export(ctx context.Context, exp config.Export, store storage.Storage, procs *cache.Cache, m *observability.Metrics, items []Stock) error {
	wb := excelize.NewFile()
	defer wb.Close()

	sh, err := excel.NewSheet(wb, exp.Sheet)
	if err != nil {
		return err
	}
	if idx, err := wb.GetSheetIndex(exp.Sheet); err == nil {
		wb.SetActiveSheet(idx)
	}

	err = observability.Track(ctx, m, observability.Run{Direction: "write", Layout: "stock"}, func(context.Context) (int, error) {
		return len(items), excel.WriteFromWithData(procs, sh, items, keyWrite, writeLayout[*excel.Sheet](exp))
	})
	if err != nil {
		return err
	}
	buf, err := wb.WriteToBuffer()
	if err != nil {
		return fmt.Errorf("encoding workbook: %w", err)
	}
	return store.Upload(ctx, exp.Output, buf)
}

// verify downloads exp.Output and compares it with items. It returns the
// number of records read.
func verify(ctx context.Context, exp config.Export, store storage.Storage, procs *cache.Cache, m *observability.Metrics, items []Stock) (int, error) {
	rc, err := store.Download(ctx, exp.Output)
	if err != nil {
		return 0, err
	}
	defer rc.Close()

	sh, err := excel.Open(rc, exp.Sheet)
	if err != nil {
		return 0, err
	}
	defer sh.File.Close()

	proc, err := read.Cached(procs, excel.Cells{}, keyRead, readLayout[*excel.Sheet](exp))
	if err != nil {
		return 0, err
	}
	return checkTotals(ctx, m, "stock", proc, sh, items)
}

// mirror replaces the cells of the exp.Sheet database sheet with the report
// and reads it back. It returns the number of records read.
func mirror(ctx context.Context, exp config.Export, db *database.DB, procs *cache.Cache, m *observability.Metrics, items []Stock) (int, error) {
	wp, err := write.Cached(procs, database.Cells{}, keyWrite, writeLayout[*database.Sheet](exp))
	if err != nil {
		return 0, err
	}
	rp, err := read.Cached(procs, database.Cells{}, keyRead, readLayout[*database.Sheet](exp))
	if err != nil {
		return 0, err
	}

	sh := database.NewSheet(db, exp.Sheet).WithContext(ctx)
	err = observability.Track(ctx, m, observability.Run{Direction: "write", Layout: "stock-db"}, func(context.Context) (int, error) {
		return len(items), sh.Atomically(func(tx *database.Sheet) error {
			if err := tx.Clear(); err != nil {
				return err
			}
			return wp.Slice(tx, items)
		})
	})
	if err != nil {
		return 0, err
	}
	return checkTotals(ctx, m, "stock-db", rp, sh, items)
}
