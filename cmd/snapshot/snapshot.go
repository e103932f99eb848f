package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"pokeplot/config"
	"pokeplot/export"
	"pokeplot/models"
	"pokeplot/sources"
	"pokeplot/store"
	"pokeplot/utils"
)

const snapshotName = "scatter"

type snapshotFlags struct {
	sheet      string
	format     string
	outDir     string
	generation string
	legendary  string
	timeout    time.Duration
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &snapshotFlags{}
	rootCmd := &cobra.Command{
		Use:   "snapshot <data>",
		Short: "Render the scatter plot to a png or svg file",
		Long: `Render the special defense vs total stats scatter plot of a csv or xlsx file, or http(s) url,
to a static image. The generation and legendary filters behave like the dropdowns of the dashboard.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := run(cmd.Context(), args[0], flags)
			if err != nil {
				return err
			}
			cmd.Println(path)
			return nil
		},
	}

	rootCmd.Flags().StringVar(&flags.sheet, "sheet", "", "workbook sheet to read for xlsx data")
	rootCmd.Flags().StringVarP(&flags.format, "format", "f", string(export.PNG), "output format: png or svg")
	rootCmd.Flags().StringVarP(&flags.outDir, "out", "o", ".", "directory to write the snapshot to")
	rootCmd.Flags().StringVar(&flags.generation, "generation", models.All, "only plot this generation")
	rootCmd.Flags().StringVar(&flags.legendary, "legendary", models.All, "only plot this legendary value")
	rootCmd.Flags().DurationVar(&flags.timeout, "fetch-timeout", 10*time.Second, "timeout for fetching remote data")

	return rootCmd
}

// run renders the snapshot and returns the path it was written to. Existing files are never overwritten.
func run(ctx context.Context, data string, flags *snapshotFlags) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	format, err := export.ParseFormat(flags.format)
	if err != nil {
		return "", err
	}

	env, err := config.LoadEnv(ctx, nil)
	if err != nil {
		return "", err
	}
	columns := env.Columns()

	source, err := sources.Open(data, sources.Options{Sheet: flags.sheet, Timeout: flags.timeout})
	if err != nil {
		return "", err
	}
	dataset, err := sources.LoadDataset(ctx, source, columns)
	if err != nil {
		return "", err
	}

	scatter := models.NewScatter(dataset, store.Layout(columns), store.TypeColours)
	filters := scatter.NewFilters()
	if err := filters.Apply(models.Selection{Generation: flags.generation, Legendary: flags.legendary}); err != nil {
		return "", err
	}

	if err := os.MkdirAll(flags.outDir, 0o755); err != nil {
		return "", fmt.Errorf("couldn't create %s: %w", flags.outDir, err)
	}
	path := utils.NextAvailableFilename(flags.outDir, snapshotName, format.Ext())
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer func(f *os.File) {
		if err := f.Close(); err != nil {
			log.Printf("couldn't close file: %s", err)
		}
	}(f)

	if err := export.Render(f, scatter, filters.Visible(), format); err != nil {
		_ = os.Remove(path)
		return "", err
	}
	return path, nil
}
