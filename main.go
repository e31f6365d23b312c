// sokoban is a Sokoban puzzle game with a diagonal tile wipe between levels.
//
// Flags:
//
//	--config <path>   - Config file (default search: ~/.sokoban/config.yaml, ./configs/config.yaml)
//	--debug           - Debug logging and on-screen overlay
//	--watch           - Reload the config file when it changes
//	--level <n>       - Index of the first level
//	--skip-splash     - Open straight on the main menu
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/milk9111/sokoban/config"
	"github.com/milk9111/sokoban/levels"
	"github.com/milk9111/sokoban/screens"
)

var (
	flagConfig     string
	flagDebug      bool
	flagWatch      bool
	flagLevel      int
	flagSkipSplash bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sokoban",
	Short: "Push the boxes onto the goals",
	Long: `Sokoban: push every box onto a goal to finish the level.

Controls:
  Arrows/WASD      - Move, menu selection
  Enter/Space      - Start, confirm
  Esc/Backspace    - Back`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a config YAML")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable debug logging and overlay")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
	rootCmd.Flags().IntVar(&flagLevel, "level", 0, "Index of the first level")
	rootCmd.Flags().BoolVar(&flagSkipSplash, "skip-splash", false, "Start on the main menu")
}

func run(cmd *cobra.Command, args []string) error {
	log.SetReportTimestamp(true)
	log.SetPrefix("sokoban")
	if flagDebug {
		log.SetLevel(log.DebugLevel)
	}

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	log.Info("config loaded", "source", source)

	lvls, err := levels.LoadAll()
	if err != nil {
		return err
	}
	log.Debug("levels loaded", "count", len(lvls))

	env := screens.NewEnv(cfg, lvls)
	env.StartLevel = flagLevel

	if flagWatch {
		if source == config.EmbeddedSource {
			log.Warn("--watch ignored: no config file in use")
		} else {
			w, err := config.NewWatcher(source)
			if err != nil {
				return fmt.Errorf("watch %s: %w", source, err)
			}
			defer w.Close()
			env.Watcher = w
			log.Info("watching config", "path", source)
		}
	}

	ebiten.SetWindowSize(cfg.Window.Width*cfg.Window.Scale, cfg.Window.Height*cfg.Window.Scale)
	ebiten.SetWindowTitle(cfg.Window.Title)

	game := NewGame(env, flagDebug, flagSkipSplash)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	log.Debug("game closed")
	return nil
}
