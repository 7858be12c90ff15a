// Command backtest replays CSV candle data through a strategy and prints the
// realized results. Every *.csv file in the data directory is loaded as one
// symbol's series, so option leg premium files sit next to the base
// instrument file.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rxtech-lab/argo-strategies/internal/datasource"
	"github.com/rxtech-lab/argo-strategies/internal/engine"
	"github.com/rxtech-lab/argo-strategies/internal/journal"
	"github.com/rxtech-lab/argo-strategies/internal/logger"
	"github.com/rxtech-lab/argo-strategies/internal/strategy"
	"github.com/rxtech-lab/argo-strategies/internal/types"
	"github.com/rxtech-lab/argo-strategies/internal/version"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// runConfig is the YAML run configuration.
type runConfig struct {
	engine.Config `yaml:",inline"`

	// RequiredVersion pins the library version the config was written for.
	RequiredVersion string `yaml:"required_version"`
}

func loadRunConfig(path string) (runConfig, error) {
	var cfg runConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read run config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse run config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return cfg, fmt.Errorf("invalid run config: %w", err)
	}

	return cfg, nil
}

// loadCandles reads every CSV in dir and merges the series into one
// time-ordered stream.
func loadCandles(dir string) ([]types.Candle, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no CSV files found in %s", dir)
	}

	var candles []types.Candle

	for _, file := range files {
		symbol := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))

		bars, err := datasource.LoadCSV(file, symbol)
		if err != nil {
			return nil, err
		}

		candles = append(candles, bars...)
	}

	sort.SliceStable(candles, func(i, j int) bool {
		return candles[i].Time.Before(candles[j].Time)
	})

	return candles, nil
}

func runAction(ctx context.Context, cmd *cli.Command) error {
	appLogger, err := logger.NewLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = appLogger.Sync() }()

	cfg, err := loadRunConfig(cmd.String("config"))
	if err != nil {
		return err
	}

	if cfg.RequiredVersion != "" {
		if err := version.CheckCompatibility(version.GetVersion(), cfg.RequiredVersion); err != nil {
			return err
		}
	}

	candles, err := loadCandles(cmd.String("data"))
	if err != nil {
		return err
	}

	tradeJournal, err := journal.New(appLogger)
	if err != nil {
		return err
	}
	defer func() { _ = tradeJournal.Close() }()

	if err := tradeJournal.Initialize(); err != nil {
		return err
	}

	eng, err := engine.New(cfg.Config, appLogger, tradeJournal)
	if err != nil {
		return err
	}

	if err := eng.Replay(candles); err != nil {
		return err
	}

	trades, err := tradeJournal.Trades("")
	if err != nil {
		return err
	}

	pnl, err := eng.RealizedPnL()
	if err != nil {
		return err
	}

	fmt.Printf("strategy:       %s\n", cfg.StrategyName)
	fmt.Printf("candles:        %d\n", len(candles))
	fmt.Printf("trades:         %d\n", len(trades))
	fmt.Printf("realized pnl:   %.2f\n", pnl)

	if open := eng.OpenPositions(); len(open) > 0 {
		fmt.Printf("open positions: %s\n", strings.Join(open, ", "))
	}

	return nil
}

func listAction(ctx context.Context, cmd *cli.Command) error {
	for _, name := range strategy.Names() {
		fmt.Println(name)
	}

	return nil
}

func main() {
	cmd := &cli.Command{
		Name:    "backtest",
		Usage:   "Replay candle data through a trading strategy",
		Version: version.GetVersion(),
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "Run a strategy over a directory of CSV candle data",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "config",
						Aliases:  []string{"c"},
						Usage:    "Path to the YAML run config",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "data",
						Aliases:  []string{"d"},
						Usage:    "Directory containing one CSV per symbol",
						Value:    "data",
						Required: false,
					},
				},
				Action: runAction,
			},
			{
				Name:   "list",
				Usage:  "List the available strategies",
				Action: listAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
