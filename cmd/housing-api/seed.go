package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	housing "github.com/ynstf/boston-housing-api"
	"github.com/ynstf/boston-housing-api/application/service"
	"github.com/ynstf/boston-housing-api/internal/log"
)

// seedColumns are the CSV columns imported into the homes table, in
// storage order.
var seedColumns = []string{"rm", "lstat", "dis", "tax", "ptratio", "age", "indus", "medv"}

func seedCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:   "seed <csv-file>",
		Short: "Import housing records from a CSV file",
		Long: `Import housing records from a CSV file into the database.

The file must have a header row. Only the rm, lstat, dis, tax, ptratio,
age, indus, and medv columns are imported; any other columns are ignored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(envFile, args[0])
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")

	return cmd
}

func runSeed(envFile, csvPath string) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}
	if err := cfg.EnsureDataDir(); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	logger := log.Configure(cfg)
	slogger := logger.Slog()

	client, err := housing.New(
		housing.WithDatabaseURL(cfg.DBURL()),
		housing.WithLogger(slogger),
	)
	if err != nil {
		return fmt.Errorf("create housing client: %w", err)
	}
	defer func() { _ = client.Close() }()

	records, err := readSeedFile(csvPath)
	if err != nil {
		return err
	}

	saved, err := client.Homes.Import(context.Background(), records)
	if err != nil {
		return err
	}

	slogger.Info("seed complete", "records", len(saved), "file", csvPath)
	return nil
}

// readSeedFile parses the CSV file, mapping header names to the columns
// the homes table stores.
func readSeedFile(path string) ([]service.HomeCreateParams, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, col := range seedColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("csv missing column %q", col)
		}
	}

	var records []service.HomeCreateParams
	line := 1
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		line++

		values := make(map[string]float64, len(seedColumns))
		for _, col := range seedColumns {
			v, err := strconv.ParseFloat(row[index[col]], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: parse %s: %w", line, col, err)
			}
			values[col] = v
		}

		records = append(records, service.HomeCreateParams{
			Rooms:              values["rm"],
			LowStatusPct:       values["lstat"],
			EmploymentDistance: values["dis"],
			TaxRate:            values["tax"],
			PupilTeacherRatio:  values["ptratio"],
			Age:                values["age"],
			IndustrialPct:      values["indus"],
			MedianValue:        values["medv"],
		})
	}

	return records, nil
}
