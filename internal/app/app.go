package app

import (
	"context"
	"fmt"
	"time"

	"github.com/atrilhq/atril/internal/cache/dbcache"
	"github.com/atrilhq/atril/internal/config"
	"github.com/atrilhq/atril/internal/libreria"
	"github.com/atrilhq/atril/internal/notify"
	"github.com/atrilhq/atril/internal/prefs"
	"github.com/atrilhq/atril/internal/ui"
)

// Options configure the atril dashboard.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/atril/prefs.toml

	// Theme overrides the persisted preference when non-empty.
	Theme string

	// Clipboard writes a row to the system clipboard; nil disables copy.
	Clipboard func(text string)
}

// Run boots the dashboard until the context is cancelled or the operator
// quits. Snapshots of every collection are persisted on the way out.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs := prefs.Load(prefsPath)

	theme := userPrefs.Theme
	if opts.Theme != "" {
		theme = opts.Theme
	}
	pageSize := cfg.PageSize
	if userPrefs.PageSize > 0 {
		pageSize = userPrefs.PageSize
	}

	client, err := libreria.NewClient(cfg.APIBase, cfg.APIToken)
	if err != nil {
		return fmt.Errorf("init backend client: %w", err)
	}

	center := notify.NewCenter()
	stores := buildStores(client, center, pageSize)

	// The snapshot database is a convenience, not a requirement; start
	// cold when it cannot be opened.
	db, dbErr := dbcache.Open(cfg.CachePath)
	hydrated := false
	var cacheUpdatedAt time.Time
	if dbErr == nil {
		cacheUpdatedAt = hydrateStores(db, stores)
		hydrated = true
	}

	var refreshEvery time.Duration
	if cfg.RefreshEvery > 0 {
		refreshEvery = time.Duration(cfg.RefreshEvery) * time.Second
		StartRefresher(ctx, stores, refreshEvery)
	}

	uiErr := ui.Run(ui.Options{
		Context:        ctx,
		Client:         client,
		Stores:         stores,
		Center:         center,
		ThemeName:      theme,
		PrefsPath:      prefsPath,
		RefreshEvery:   refreshEvery,
		Clipboard:      opts.Clipboard,
		CacheStale:     hydrated,
		CacheUpdatedAt: cacheUpdatedAt,
	})

	if dbErr == nil {
		if err := persistStores(db, stores); err != nil && uiErr == nil {
			uiErr = err
		}
		if err := db.Close(); err != nil && uiErr == nil {
			uiErr = err
		}
	}
	return uiErr
}
