package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/MKhiriev/go-weather-keeper/internal/adapter"
	"github.com/MKhiriev/go-weather-keeper/internal/logger"
	"github.com/MKhiriev/go-weather-keeper/models"
)

// App runs client commands and prints their results.
type App struct {
	api      *adapter.WeatherClient
	commands map[string]kindCommands

	in  io.Reader
	out io.Writer

	logger *logger.Logger
}

// NewApp returns an App that reads ingest payloads from in and writes
// results to out.
func NewApp(api *adapter.WeatherClient, in io.Reader, out io.Writer, logger *logger.Logger) *App {
	return &App{
		api: api,
		commands: map[string]kindCommands{
			models.Humidity{}.Slug():    kindClient[models.Humidity]{},
			models.Pressure{}.Slug():    kindClient[models.Pressure]{},
			models.Temperature{}.Slug(): kindClient[models.Temperature]{},
		},
		in:     in,
		out:    out,
		logger: logger,
	}
}

// Run executes the command named by args[0].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given", ErrUsage)
	}

	name, args := args[0], args[1:]
	a.logger.Debug().Str("command", name).Msg("running command")

	switch name {
	case "login":
		return a.login(ctx, args)
	case "me":
		return a.me(ctx)
	case "password":
		return a.password(ctx, args)
	case "public", "protected", "get", "ingest", "delete":
		return a.reading(ctx, name, args)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
}

func (a *App) login(ctx context.Context, args []string) error {
	var username, password string

	fs := newFlagSet("login")
	fs.StringVar(&username, "u", "", "Username")
	fs.StringVar(&password, "p", "", "Password")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if username == "" || password == "" {
		return fmt.Errorf("%w: login needs -u and -p", ErrUsage)
	}

	token, err := a.api.Login(ctx, username, password)
	if err != nil {
		return err
	}

	return a.print(models.AccessToken{AccessToken: token})
}

func (a *App) me(ctx context.Context) error {
	account, err := a.api.Me(ctx)
	if err != nil {
		return err
	}
	return a.print(account)
}

func (a *App) password(ctx context.Context, args []string) error {
	var current, next string

	fs := newFlagSet("password")
	fs.StringVar(&current, "p", "", "Current password")
	fs.StringVar(&next, "n", "", "New password")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if current == "" || next == "" {
		return fmt.Errorf("%w: password needs -p and -n", ErrUsage)
	}

	account, err := a.api.RotatePassword(ctx, current, next)
	if err != nil {
		return err
	}
	return a.print(account)
}

func (a *App) reading(ctx context.Context, name string, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: %s needs a sensor kind", ErrUsage, name)
	}

	kind, err := models.ParseSensorKind(args[0])
	if err != nil {
		return err
	}
	commands := a.commands[kind.Slug()]
	args = args[1:]

	var result any
	switch name {
	case "public", "protected":
		filter, err := parseFilter(name, args)
		if err != nil {
			return err
		}
		if name == "public" {
			result, err = commands.public(ctx, a.api, filter)
		} else {
			result, err = commands.protected(ctx, a.api, filter)
		}
		if err != nil {
			return err
		}
	case "get", "delete":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		if name == "delete" {
			return commands.remove(ctx, a.api, id)
		}
		if result, err = commands.get(ctx, a.api, id); err != nil {
			return err
		}
	case "ingest":
		params, err := a.readParams(args)
		if err != nil {
			return err
		}
		if result, err = commands.ingest(ctx, a.api, params); err != nil {
			return err
		}
	}

	return a.print(result)
}

func (a *App) readParams(args []string) (models.ProtectedReadingParams, error) {
	var (
		params models.ProtectedReadingParams
		path   string
	)

	fs := newFlagSet("ingest")
	fs.StringVar(&path, "f", "-", "Reading JSON file, - for stdin")
	if err := fs.Parse(args); err != nil {
		return params, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	src, closeSrc, err := openInput(path, a.in)
	if err != nil {
		return params, err
	}
	defer closeSrc()

	if err = json.NewDecoder(src).Decode(&params); err != nil {
		return params, fmt.Errorf("decode reading: %w", err)
	}
	return params, nil
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseFilter(name string, args []string) (models.ReadingFilter, error) {
	var (
		filter   models.ReadingFilter
		from, to string
	)

	fs := newFlagSet(name)
	fs.StringVar(&from, "from", "", "Earliest timestamp (RFC3339)")
	fs.StringVar(&to, "to", "", "Latest timestamp (RFC3339)")
	fs.StringVar(&filter.City, "city", "", "City")
	fs.StringVar(&filter.Country, "country", "", "Country")
	fs.Uint64Var(&filter.Limit, "limit", 0, "Maximum number of readings")
	fs.Uint64Var(&filter.Offset, "offset", 0, "Number of readings to skip")
	if err := fs.Parse(args); err != nil {
		return filter, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	var err error
	if filter.From, err = parseTime(from); err != nil {
		return filter, fmt.Errorf("%w: from: %w", ErrUsage, err)
	}
	if filter.To, err = parseTime(to); err != nil {
		return filter, fmt.Errorf("%w: to: %w", ErrUsage, err)
	}
	return filter, nil
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, s)
}

func parseID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: expected exactly one reading id", ErrUsage)
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid reading id %q", ErrUsage, args[0])
	}
	return id, nil
}
