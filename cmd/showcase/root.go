package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/showcase/audio"
	"github.com/lixenwraith/showcase/config"
	"github.com/lixenwraith/showcase/core"
	"github.com/lixenwraith/showcase/engine"
	"github.com/lixenwraith/showcase/logging"
	"github.com/lixenwraith/showcase/page"
)

var cfgFile string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "showcase",
		Short:         "Portfolio landing page for the terminal",
		Long:          "Renders a scrolling portfolio page with reveal-on-scroll, parallax, card tilt and click ripples.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runShowcase,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "YAML config file")
	pf.String("page", "", "page description file (built-in page when empty)")

	f := root.Flags()
	f.Bool("watch", false, "reload the page file when it changes")
	f.Bool("log", false, "write JSON logs under log.dir")
	f.String("log-level", "info", "log level: debug, info, warn, error")
	f.Bool("no-audio", false, "disable interface sounds")
	f.Bool("reduced-motion", false, "skip animations and reveal everything at once")

	root.AddCommand(newLayoutCmd(), newVersionCmd())
	return root
}

// loadConfig resolves defaults, the config file, SHOWCASE_* variables and flags
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	v, err := config.New(cfgFile)
	if err != nil {
		return nil, err
	}
	bind := map[string]string{
		"page":           "page",
		"watch":          "watch",
		"log":            "log.enabled",
		"log-level":      "log.level",
		"reduced-motion": "motion.reduced",
	}
	for flag, key := range bind {
		if fl := cmd.Flags().Lookup(flag); fl != nil {
			if err := v.BindPFlag(key, fl); err != nil {
				return nil, fmt.Errorf("bind --%s: %w", flag, err)
			}
		}
	}
	if off, _ := cmd.Flags().GetBool("no-audio"); off {
		v.Set("audio.enabled", false)
	}
	return config.Load(v)
}

func runShowcase(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.LogOptions())
	if err != nil {
		return err
	}
	defer log.Sync()

	content, err := page.Load(cfg.Page)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashFinalizer(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	sound := audio.NewSoundManager(cfg.SoundConfig())
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			log.Warn("audio unavailable, continuing silently", zap.Error(err))
		}
	}

	ec, err := engine.NewContext(engine.Options{
		Config:  cfg,
		Content: content,
		Screen:  screen,
		Sound:   sound,
		Log:     log,
	})
	if err != nil {
		return err
	}
	defer ec.Close()

	if cfg.Watch {
		if cfg.Page == "" {
			log.Warn("--watch ignored for the built-in page")
		} else if err := ec.Watch(cfg.Page); err != nil {
			log.Warn("page watch failed", zap.String("path", cfg.Page), zap.Error(err))
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return ec.Run(ctx)
}
