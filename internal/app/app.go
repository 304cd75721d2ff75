package app

import (
	"io"
	"log/slog"

	"cryptouri/internal/cryptouri"
	"cryptouri/internal/encoding"
)

// App is the state shared by every command.
type App struct {
	Config Config
	Log    *slog.Logger
}

// New builds an App logging to w.
func New(cfg Config, w io.Writer) *App {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &App{Config: cfg, Log: slog.New(h)}
}

// Encode renders u in p, keeping the fragment only where p supports one.
func Encode(u *cryptouri.URI, p *encoding.Profile) string {
	if p == encoding.Dasherized {
		return u.DasherizedString()
	}
	return u.URIString()
}

// Render encodes u in the configured style, following input under
// FormatAuto.
func (a *App) Render(u *cryptouri.URI, input string) string {
	p := a.Config.OutputProfile(input)
	a.Log.Debug("encoding", "kind", u.Kind(), "algorithm", u.Algorithm(), "profile", p.Name)
	return Encode(u, p)
}
