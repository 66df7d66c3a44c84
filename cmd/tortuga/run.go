package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tortugraph/tortuga"
	"github.com/tortugraph/tortuga/internal/logging"
	"github.com/tortugraph/tortuga/pkg/adapters/yamlfile"
	"github.com/tortugraph/tortuga/pkg/domain"
)

// runCmd executes a graph file and renders the finished trail.
var runCmd = &cobra.Command{
	Use:   "run <graph.yaml>",
	Short: "Execute a graph file and render the trail",
	Long:  `Compiles the graph, runs it to completion headlessly, and prints the trail to the terminal or writes it as SVG.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		speed, _ := cmd.Flags().GetInt("speed")
		svgPath, _ := cmd.Flags().GetString("svg")
		verbose, _ := cmd.Flags().GetBool("verbose")

		logger := logging.NewNop()
		if verbose {
			logger = logging.New(slog.LevelDebug)
		}

		src, err := yamlfile.Load(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		cfg := src.Config()
		if cmd.Flags().Changed("speed") {
			cfg.SpeedLevel = speed
		}

		eng := tortuga.New(
			tortuga.WithLogger(logger),
			tortuga.WithManualTick(),
		)
		if err := eng.StartFrom(src, cfg); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if eng.State() == domain.StateIdle {
			fmt.Println("Nothing to run: the graph has no start node.")
			return
		}

		// Headless loop: drive the scheduler ourselves instead of waiting
		// on the wall clock.
		for eng.State() == domain.StateRunning {
			eng.Tick(time.Now())
			if cfg.SpeedLevel < 5 {
				time.Sleep(time.Millisecond)
			}
		}

		if summary, ok := eng.Summary(); ok {
			fmt.Fprintf(os.Stderr, "Executed %d commands across %d paths in %s\n",
				summary.Commands, summary.Paths, summary.Elapsed.Round(time.Millisecond))
		}

		if svgPath != "" {
			f, err := os.Create(svgPath)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			defer f.Close()
			if err := eng.WriteSVG(f); err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Fprintf(os.Stderr, "Trail written to %s\n", svgPath)
			return
		}

		if err := eng.RenderTerminal(os.Stdout); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Int("speed", 5, "Playback speed level 1-5 (5 = instant)")
	runCmd.Flags().String("svg", "", "Write the trail to this SVG file instead of the terminal")
}
