// Command atril is a terminal dashboard for the librería CRM backend.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alexflint/go-arg"
	"golang.design/x/clipboard"

	"github.com/atrilhq/atril/internal/app"
	"github.com/atrilhq/atril/internal/cache/dbcache"
	"github.com/atrilhq/atril/internal/config"
	"github.com/atrilhq/atril/internal/export"
	"github.com/atrilhq/atril/internal/libreria"
	"github.com/atrilhq/atril/internal/search"
	"github.com/atrilhq/atril/internal/ui"
)

type args struct {
	Config string `arg:"--config" help:"path to config.toml"`
	Prefs  string `arg:"--prefs" help:"path to prefs.toml"`
	Theme  string `arg:"--theme" help:"theme override (Papel, Tinta, Noche)"`

	Export *exportCmd `arg:"subcommand:export" help:"dump a collection to stdout or a file"`
	Cache  *cacheCmd  `arg:"subcommand:cache" help:"inspect or clear the snapshot database"`
}

type exportCmd struct {
	Entity string `arg:"positional,required" help:"authors|categories|topics|customers|users|orders|memberships"`
	Format string `arg:"-f,--format" default:"json" help:"json or yaml"`
	Output string `arg:"-o,--output" help:"output file (default stdout)"`
	Filter string `arg:"--filter" help:"activo or inactivo; anything else exports all records"`
}

type cacheCmd struct {
	Clear bool `arg:"--clear" help:"remove every stored snapshot"`
}

func (args) Description() string {
	return "atril - terminal dashboard for the librería CRM"
}

func (args) Version() string {
	return "atril 0.3.0"
}

func (args) Epilogue() string {
	return `Examples:
  atril                             # interactive dashboard
  atril --theme Tinta               # dashboard with a specific theme
  atril export authors              # authors as JSON on stdout
  atril export orders -f yaml -o orders.yaml
  atril export authors --filter activo      # only active records
  atril cache                       # list stored snapshots
  atril cache --clear`
}

func main() {
	os.Exit(run())
}

func run() int {
	var parsed args
	arg.MustParse(&parsed)

	if parsed.Theme != "" {
		known := false
		for _, name := range ui.ThemeNames() {
			if name == parsed.Theme {
				known = true
				break
			}
		}
		if !known {
			fmt.Fprintf(os.Stderr, "atril: unknown theme %q (available: %s)\n",
				parsed.Theme, strings.Join(ui.ThemeNames(), ", "))
			return 1
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch {
	case parsed.Export != nil:
		err = runExport(ctx, parsed)
	case parsed.Cache != nil:
		err = runCache(parsed)
	default:
		err = app.Run(ctx, app.Options{
			ConfigPath: parsed.Config,
			PrefsPath:  parsed.Prefs,
			Theme:      parsed.Theme,
			Clipboard:  clipboardWriter(),
		})
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "atril: %v\n", err)
		return 1
	}
	return 0
}

// clipboardWriter returns a clipboard write function, or nil when the
// platform offers no clipboard (headless sessions).
func clipboardWriter() func(string) {
	if err := clipboard.Init(); err != nil {
		return nil
	}
	return func(text string) {
		clipboard.Write(clipboard.FmtText, []byte(text))
	}
}

// exportPageLimit is the page size used when draining server-paginated
// collections for export.
const exportPageLimit = 100

func runExport(ctx context.Context, parsed args) error {
	format, err := export.ParseFormat(parsed.Export.Format)
	if err != nil {
		return err
	}

	cfg, err := config.Load(parsed.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	client, err := libreria.NewClient(cfg.APIBase, cfg.APIToken)
	if err != nil {
		return fmt.Errorf("init backend client: %w", err)
	}

	out := io.Writer(os.Stdout)
	if parsed.Export.Output != "" {
		f, err := os.Create(parsed.Export.Output)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	// Unrecognized filter values export everything.
	filter := search.ParseStatusFilter(parsed.Export.Filter)

	entity := parsed.Export.Entity
	switch entity {
	case "authors":
		items, err := client.ListAuthors(ctx)
		if err != nil {
			return err
		}
		items = filterByStatus(items, filter, func(a libreria.Author) bool { return a.Active })
		return export.Write(out, format, entity, items)
	case "categories":
		items, err := client.ListCategories(ctx)
		if err != nil {
			return err
		}
		items = filterByStatus(items, filter, func(c libreria.Category) bool { return c.Active })
		return export.Write(out, format, entity, items)
	case "topics":
		items, err := client.ListTopics(ctx)
		if err != nil {
			return err
		}
		items = filterByStatus(items, filter, func(t libreria.Topic) bool { return t.Active })
		return export.Write(out, format, entity, items)
	case "memberships":
		items, err := client.ListMemberships(ctx)
		if err != nil {
			return err
		}
		items = filterByStatus(items, filter, func(m libreria.Membership) bool { return m.Active })
		return export.Write(out, format, entity, items)
	case "customers":
		items, err := drainPages(ctx, client.ListCustomers)
		if err != nil {
			return err
		}
		items = filterByStatus(items, filter, func(c libreria.Customer) bool { return c.Active })
		return export.Write(out, format, entity, items)
	case "users":
		items, err := drainPages(ctx, client.ListUsers)
		if err != nil {
			return err
		}
		items = filterByStatus(items, filter, func(u libreria.User) bool { return u.Active })
		return export.Write(out, format, entity, items)
	case "orders":
		// Orders carry a fulfillment status, not an active flag.
		items, err := drainPages(ctx, client.ListOrders)
		if err != nil {
			return err
		}
		return export.Write(out, format, entity, items)
	default:
		return fmt.Errorf("unknown entity %q", entity)
	}
}

// filterByStatus narrows an export to active or inactive records.
func filterByStatus[T any](items []T, f search.StatusFilter, active func(T) bool) []T {
	if f == search.StatusAll {
		return items
	}
	pred := search.Match(f, active)
	out := make([]T, 0, len(items))
	for _, item := range items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// drainPages walks a server-paginated listing until the last page.
func drainPages[T any](ctx context.Context, list func(ctx context.Context, page, limit int, search string) ([]T, libreria.PageInfo, error)) ([]T, error) {
	var all []T
	for page := 1; ; page++ {
		items, info, err := list(ctx, page, exportPageLimit, "")
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
		if len(items) == 0 || page >= info.TotalPages {
			return all, nil
		}
	}
}

func runCache(parsed args) error {
	cfg, err := config.Load(parsed.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := dbcache.Open(cfg.CachePath)
	if err != nil {
		return fmt.Errorf("open snapshot database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if parsed.Cache.Clear {
		if err := db.Clear(); err != nil {
			return err
		}
		fmt.Println("snapshots cleared")
		return nil
	}

	entries, err := db.Entries()
	if err != nil {
		return err
	}
	fmt.Printf("snapshot database: %s\n", db.Path())
	if len(entries) == 0 {
		fmt.Println("no snapshots stored")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("  %-14s %8d bytes  %s\n", e.Entity, e.Bytes, e.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}
