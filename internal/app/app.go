package app

import (
	"context"
	"fmt"

	"github.com/rexradio/wrench/internal/activity"
	"github.com/rexradio/wrench/internal/config"
	"github.com/rexradio/wrench/internal/logging"
	"github.com/rexradio/wrench/internal/prefs"
	"github.com/rexradio/wrench/internal/rexapi"
	"github.com/rexradio/wrench/internal/session"
	"github.com/rexradio/wrench/internal/ui"
)

// Options configure the wrench application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/wrench/prefs.toml
	LogPath    string // empty uses the configured or default log path
}

// Run boots the wrench TUI until the context is cancelled or the operator
// quits. A session.ErrNoKey return means an authenticated flow ran before
// key capture; main maps it to exit code 1.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logPath := opts.LogPath
	if logPath == "" {
		logPath = cfg.LogPath
	}
	var log logging.Logger = logging.Nop()
	if fileLog, closeLog, err := logging.NewFileLogger(logPath); err == nil {
		log = fileLog
		defer func() { _ = closeLog() }()
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	sess := session.New()
	feed := activity.NewFeed(0)

	client, err := rexapi.NewClient(cfg.APIURL, rexapi.NewSigner(sess), feed, log.With("component", "rexapi"))
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	log.Info(ctx, "starting", "api_url", cfg.APIURL)

	return ui.Run(ui.Options{
		Context:   ctx,
		Client:    client,
		Session:   sess,
		Feed:      feed,
		Log:       log,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	})
}
