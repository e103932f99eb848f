package config

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sethvargo/go-envconfig"

	"pokeplot/models"
	"pokeplot/store"
)

// Env holds the defaults read from the environment. Flags override every one of them.
type Env struct {
	Addr         string        `env:"POKEPLOT_ADDR,default=:8080"`
	Data         string        `env:"POKEPLOT_DATA,default=pokemon.csv"`
	Sheet        string        `env:"POKEPLOT_SHEET"`
	FetchTimeout time.Duration `env:"POKEPLOT_FETCH_TIMEOUT,default=10s"`
	SessionTTL   time.Duration `env:"POKEPLOT_SESSION_TTL,default=30m"`

	NameColumn       string `env:"POKEPLOT_NAME_COLUMN"`
	XColumn          string `env:"POKEPLOT_X_COLUMN"`
	YColumn          string `env:"POKEPLOT_Y_COLUMN"`
	PrimaryColumn    string `env:"POKEPLOT_PRIMARY_COLUMN"`
	SecondaryColumn  string `env:"POKEPLOT_SECONDARY_COLUMN"`
	GenerationColumn string `env:"POKEPLOT_GENERATION_COLUMN"`
	LegendaryColumn  string `env:"POKEPLOT_LEGENDARY_COLUMN"`
}

type Flags struct {
	Addr string
	// Data is a csv or xlsx file path, or an http(s) url.
	Data         string
	Sheet        string
	FetchTimeout time.Duration
	// SessionTTL is how long a client's filters are kept after its last request, 0 keeps them forever.
	SessionTTL time.Duration
	Columns    models.Columns
}

// LoadEnv reads Env through lookuper, nil means the process environment.
func LoadEnv(ctx context.Context, lookuper envconfig.Lookuper) (*Env, error) {
	if lookuper == nil {
		lookuper = envconfig.OsLookuper()
	}
	env := &Env{}
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   env,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("couldn't process env: %w", err)
	}
	return env, nil
}

// Columns starts from the default column names and applies any overrides set in the environment.
func (e *Env) Columns() models.Columns {
	columns := store.DefaultColumns
	override := func(dst *string, value string) {
		if value != "" {
			*dst = value
		}
	}
	override(&columns.Name, e.NameColumn)
	override(&columns.X, e.XColumn)
	override(&columns.Y, e.YColumn)
	override(&columns.Primary, e.PrimaryColumn)
	override(&columns.Secondary, e.SecondaryColumn)
	override(&columns.Generation, e.GenerationColumn)
	override(&columns.Legendary, e.LegendaryColumn)
	return columns
}

// ParseFlags parses the dashboard command line on top of env.
func ParseFlags(name string, args []string, env *Env) (*Flags, error) {
	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)

	flags := &Flags{Columns: env.Columns()}
	flagSet.StringVar(&flags.Addr, "addr", env.Addr, "http listen address")
	flagSet.StringVar(&flags.Data, "data", env.Data, "csv or xlsx file path, or http(s) url, to plot")
	flagSet.StringVar(&flags.Sheet, "sheet", env.Sheet, "workbook sheet to read for xlsx data, defaults to the first one")
	flagSet.DurationVar(&flags.FetchTimeout, "fetch-timeout", env.FetchTimeout, "timeout for fetching remote data")
	flagSet.DurationVar(&flags.SessionTTL, "session-ttl", env.SessionTTL, "forget a client's filters after this long without requests")
	flagSet.StringVar(&flags.Columns.X, "x", flags.Columns.X, "column plotted on the x axis")
	flagSet.StringVar(&flags.Columns.Y, "y", flags.Columns.Y, "column plotted on the y axis")

	if err := flagSet.Parse(args); err != nil {
		return nil, err
	}

	return flags, nil
}

// GetFlags reads the environment and the process command line.
func GetFlags(ctx context.Context) (*Flags, error) {
	env, err := LoadEnv(ctx, nil)
	if err != nil {
		return nil, err
	}
	return ParseFlags(os.Args[0], os.Args[1:], env)
}
