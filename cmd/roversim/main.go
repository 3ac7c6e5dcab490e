// Package main implements the roversim CLI: run mission scripts, execute
// raw command batches and plan routes over scenario terrain.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"roversim/internal/display"
	"roversim/internal/logging"
	"roversim/internal/rover"
	"roversim/internal/scenario"
	"roversim/internal/script"
	"roversim/internal/terrain"
)

var (
	logFormat string
	logLevel  string
	showMap   bool
	version   = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "roversim",
	Short: "Simulate a rover on a grid",
	Long: `roversim simulates a single rover on an integer grid. A scenario file
binds command characters to operations and wires safety sensors; missions
are scripts of land/run/repeat statements.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "log format (console or json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level")
	runCmd.Flags().BoolVar(&showMap, "show-map", false, "print the terrain view after the mission")
	execCmd.Flags().BoolVar(&showMap, "show-map", false, "print the terrain view after the batch")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(routeCmd)
}

var runCmd = &cobra.Command{
	Use:   "run <scenario.yaml> <mission.script>",
	Short: "Run a mission script against a scenario",
	Example: `  # Run a mission
  roversim run mars.yaml survey.mission

  # Show the terrain afterwards
  roversim run --show-map mars.yaml survey.mission`,
	Args: cobra.ExactArgs(2),
	RunE: runMission,
}

var execCmd = &cobra.Command{
	Use:   "exec <scenario.yaml> <commands>",
	Short: "Execute one raw command batch",
	Example: `  # Forward twice, turn right, forward twice
  roversim exec mars.yaml ffrff`,
	Args: cobra.ExactArgs(2),
	RunE: runExec,
}

var routeCmd = &cobra.Command{
	Use:   "route <scenario.yaml> <fromX,fromY> <toX,toY>",
	Short: "Plan a command string between two terrain cells",
	Example: `  # Commands to reach (7,3) from the landing site
  roversim route mars.yaml 0,0 7,3`,
	Args: cobra.ExactArgs(3),
	RunE: runRoute,
}

func runMission(cmd *cobra.Command, args []string) error {
	log, err := logging.New(logFormat, logLevel)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	sc, err := scenario.Load(args[0])
	if err != nil {
		return err
	}
	r, err := sc.Build()
	if err != nil {
		return err
	}

	src, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("read mission: %w", err)
	}
	prog, err := script.Parse(string(src))
	if err != nil {
		return fmt.Errorf("parse mission: %w", err)
	}
	if err := prog.Exec(r, log); err != nil {
		return err
	}

	fmt.Println(r)
	if showMap && sc.Terrain != nil {
		fmt.Print(display.Render(sc.Terrain, r.State()))
	}
	return nil
}

func runExec(cmd *cobra.Command, args []string) error {
	sc, err := scenario.Load(args[0])
	if err != nil {
		return err
	}
	r, err := sc.Build()
	if err != nil {
		return err
	}
	if err := r.Execute(args[1]); err != nil {
		return err
	}

	fmt.Println(r)
	if showMap && sc.Terrain != nil {
		fmt.Print(display.Render(sc.Terrain, r.State()))
	}
	return nil
}

func runRoute(cmd *cobra.Command, args []string) error {
	sc, err := scenario.Load(args[0])
	if err != nil {
		return err
	}
	if _, err := sc.Build(); err != nil {
		return err
	}
	if sc.Terrain == nil {
		return fmt.Errorf("scenario %s has no terrain sensor to plan over", args[0])
	}

	from, err := parsePoint(args[1])
	if err != nil {
		return err
	}
	to, err := parsePoint(args[2])
	if err != nil {
		return err
	}

	path, ok := sc.Terrain.Route(from[0], from[1], to[0], to[1])
	if !ok {
		return fmt.Errorf("no route from %v to %v", from, to)
	}

	heading := rover.North
	if sc.Landing != nil {
		if heading, err = rover.ParseDirection(sc.Landing.Direction); err != nil {
			return err
		}
	}
	fmt.Println(terrain.Commands(path, heading))
	return nil
}

func parsePoint(s string) ([2]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return [2]int{}, fmt.Errorf("point %q is not x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return [2]int{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return [2]int{}, fmt.Errorf("point %q: %w", s, err)
	}
	return [2]int{x, y}, nil
}
