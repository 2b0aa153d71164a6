package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/gridkey"
	"github.com/san-kum/gridkey/internal/config"
	"github.com/san-kum/gridkey/internal/life"
	"github.com/spf13/cobra"
)

var (
	width      int
	height     int
	glyph      string
	intervalMS int
	configFile string
	preset     string
)

// mark is the demo's cell type: a single-character marker.
type mark string

func (m mark) String() string { return string(m) }

func main() {
	rootCmd := &cobra.Command{
		Use:   "gridkey",
		Short: "interactive grid input demos",
		RunE:  runPlace,
	}

	rootCmd.PersistentFlags().IntVar(&width, "width", config.DefaultWidth, "board width")
	rootCmd.PersistentFlags().IntVar(&height, "height", config.DefaultHeight, "board height")
	rootCmd.PersistentFlags().StringVar(&glyph, "glyph", config.DefaultGlyph, "cursor glyph")
	rootCmd.PersistentFlags().IntVar(&intervalMS, "interval", config.DefaultIntervalMS, "blink interval (ms)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "board config file (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use a named board preset")

	placeCmd := &cobra.Command{
		Use:   "place",
		Short: "place markers on a board",
		RunE:  runPlace,
	}

	lifeCmd := &cobra.Command{
		Use:   "life [generations]",
		Short: "seed a game of life board and run it",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLife,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list board presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-12s %dx%d\n", name, p.Width, p.Height)
			}
		},
	}

	rootCmd.AddCommand(placeCmd, lifeCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig layers the board settings: defaults, then preset,
// then config file, then any explicitly set CLI flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if cmd.Flags().Changed("glyph") {
		cfg.Glyph = glyph
	}
	if cmd.Flags().Changed("interval") {
		cfg.IntervalMS = intervalMS
	}

	return cfg, nil
}

func runPlace(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	empty, marker := mark(cfg.Empty), mark(cfg.Mark)
	ctl, err := gridkey.New(gridkey.Config[mark]{
		Width:   cfg.Width,
		Height:  cfg.Height,
		Initial: empty,
		Callback: func(x, y int, cur mark) mark {
			if cur == marker {
				return empty
			}
			return marker
		},
		CursorGlyph:   cfg.Glyph,
		BlinkInterval: cfg.Interval(),
	})
	if err != nil {
		return err
	}

	done, err := ctl.Start(cfg.Message)
	if err != nil {
		return err
	}
	<-done
	if err := ctl.Wait(); err != nil {
		return err
	}

	board := ctl.Cells()
	placed := 0
	for _, row := range board {
		for _, cell := range row {
			if cell == marker {
				placed++
			}
		}
	}

	fmt.Println("final board:")
	printBoard(board)
	fmt.Printf("\nplaced: %d\n", placed)
	return nil
}

func runLife(cmd *cobra.Command, args []string) error {
	generations := 30
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid generation count: %s", args[0])
		}
		generations = n
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	dead, alive := mark("."), mark("o")
	ctl, err := gridkey.New(gridkey.Config[mark]{
		Width:   cfg.Width,
		Height:  cfg.Height,
		Initial: dead,
		Callback: func(x, y int, cur mark) mark {
			if cur == alive {
				return dead
			}
			return alive
		},
		CursorGlyph:   cfg.Glyph,
		BlinkInterval: cfg.Interval(),
	})
	if err != nil {
		return err
	}

	done, err := ctl.Start("seed the board")
	if err != nil {
		return err
	}
	<-done
	if err := ctl.Wait(); err != nil {
		return err
	}

	seed := life.New(cfg.Width, cfg.Height)
	for y, row := range ctl.Cells() {
		for x, cell := range row {
			if cell == alive {
				seed.SetAlive(x, y, true)
			}
		}
	}

	history, final := life.Run(seed, generations)

	fmt.Printf("ran %d generations\n\n", generations)
	graph := asciigraph.Plot(history,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("population vs generation"),
	)
	fmt.Println(graph)

	fmt.Println("\nfinal board:")
	for y := 0; y < final.Height(); y++ {
		var b strings.Builder
		for x := 0; x < final.Width(); x++ {
			if x > 0 {
				b.WriteString(" ")
			}
			if final.Alive(x, y) {
				b.WriteString(string(alive))
			} else {
				b.WriteString(string(dead))
			}
		}
		fmt.Println(b.String())
	}
	return nil
}

func printBoard(board [][]mark) {
	for _, row := range board {
		var b strings.Builder
		for x, cell := range row {
			if x > 0 {
				b.WriteString(" ")
			}
			b.WriteString(cell.String())
		}
		fmt.Println(b.String())
	}
}
