// Package app runs the interactive screen ruler overlay.
package app

import (
	"fmt"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/philipparndt/goruler/internal/config"
	"github.com/philipparndt/goruler/pkg/export"
	"github.com/philipparndt/goruler/pkg/render"
	"github.com/philipparndt/goruler/pkg/watcher"
)

const title = "Ruler"

// Run starts the overlay. cfgPath selects the configuration file; an
// empty path falls back to the per-user default location. Run blocks
// until the user quits with Q or Escape.
func Run(cfgPath string) error {
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	a := fyneapp.New()

	var w fyne.Window
	if drv, ok := a.Driver().(desktop.Driver); ok {
		w = drv.CreateSplashWindow()
	} else {
		w = a.NewWindow(title)
	}

	session := NewSession(cfg)
	ruler := newRulerWidget(session, styleFromConfig(cfg))

	w.SetPadded(false)
	w.SetContent(ruler)
	w.SetFullScreen(true)

	w.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyEscape, fyne.KeyQ:
			a.Quit()
		case fyne.KeyS:
			saveSnapshot(session, ruler.style)
		}
	})

	if fw, err := watcher.New(500 * time.Millisecond); err == nil {
		defer fw.Close()
		if err := fw.Watch(cfgPath, func(path string) {
			reloaded, err := config.Load(path)
			if err != nil {
				fmt.Printf("Warning: config reload failed: %v\n", err)
				return
			}
			fyne.Do(func() {
				ruler.ApplyConfig(reloaded)
			})
		}); err != nil {
			fmt.Printf("Warning: config watch failed: %v\n", err)
		}
	}

	w.ShowAndRun()
	return nil
}

func styleFromConfig(cfg config.Config) render.Style {
	return render.Style{
		HalfWidth:     cfg.HalfWidth,
		ControlRadius: cfg.ControlRadius,
		Opacity:       cfg.Opacity,
		Background:    cfg.Background,
		Accent:        cfg.Accent,
	}
}

// saveSnapshot writes the current ruler to a timestamped PNG next to
// the working directory.
func saveSnapshot(session *Session, style render.Style) {
	name := filepath.Join(".", fmt.Sprintf("ruler-%s.png", time.Now().Format("20060102-150405")))
	if err := export.SnapshotPNG(name, session.From, session.To, style); err != nil {
		fmt.Printf("Warning: snapshot failed: %v\n", err)
		return
	}
	fmt.Printf("Saved snapshot to: %s\n", name)
}
