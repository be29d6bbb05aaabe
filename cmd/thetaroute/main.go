// Command thetaroute plans and solves a kinematic trajectory across a
// binary occupancy grid and writes the solved trajectory as a binary
// table (and, optionally, CSV) to disk.
//
// Grounded on pthm-soup/cmd/optimize/main.go's flag-package CLI shape:
// flag.* declarations up front, a config.Load overlay, explicit exit
// codes instead of panics. Unlike that command, exit codes here are
// part of the contract (spec §6): 0 success, 1 unreadable input, 2
// unreachable goal, 3 invalid endpoints, 4 invalid parameters.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/thetaroute/artifact"
	"github.com/katalvlaran/thetaroute/config"
	"github.com/katalvlaran/thetaroute/geom"
	"github.com/katalvlaran/thetaroute/grid"
	"github.com/katalvlaran/thetaroute/metrize"
	"github.com/katalvlaran/thetaroute/planner"
	"github.com/katalvlaran/thetaroute/route"
	"github.com/katalvlaran/thetaroute/speed"
)

const (
	exitSuccess           = 0
	exitUnreadableInput   = 1
	exitUnreachableGoal   = 2
	exitInvalidEndpoints  = 3
	exitInvalidParameters = 4
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("thetaroute", flag.ContinueOnError)
	startFlag := fs.String("start", "", "start cell, \"row,col\"")
	goalFlag := fs.String("goal", "", "goal cell, \"row,col\"")
	modeFlag := fs.String("mode", "", "astar | thetastar")
	passesFlag := fs.Int("passes", 0, "simplifier pass count")
	cellSizeFlag := fs.Float64("cell-size", 0, "cell size in centimeters")
	vminFlag := fs.Float64("vmin", 0, "minimum speed, cm/s")
	vmaxFlag := fs.Float64("vmax", 0, "maximum speed, cm/s")
	omegaMaxFlag := fs.Float64("omega-max", 0, "maximum turning rate, rad/s")
	amaxFlag := fs.Float64("amax", 0, "forward acceleration bound, cm/s^2")
	dmaxFlag := fs.Float64("dmax", 0, "deceleration bound, cm/s^2")
	configFlag := fs.String("config", "", "optional YAML config overlay")
	outFlag := fs.String("out", "trajectory.bin", "binary trajectory output path")
	csvFlag := fs.String("csv", "", "optional CSV trajectory output path")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitInvalidEndpoints
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: thetaroute [flags] <grid-file>")
		return exitInvalidEndpoints
	}

	g, err := readGridFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "thetaroute:", err)
		return exitUnreadableInput
	}

	start, err := parseCell(*startFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "thetaroute: -start:", err)
		return exitInvalidEndpoints
	}
	goal, err := parseCell(*goalFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "thetaroute: -goal:", err)
		return exitInvalidEndpoints
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "thetaroute:", err)
		return exitUnreadableInput
	}
	applyFlagOverrides(fs, cfg, *modeFlag, *passesFlag, *cellSizeFlag, *vminFlag, *vmaxFlag, *omegaMaxFlag, *amaxFlag, *dmaxFlag)

	opts, err := cfg.RouteOptions()
	if err != nil {
		fmt.Fprintln(os.Stderr, "thetaroute:", err)
		return exitInvalidParameters
	}

	samples, err := route.Route(g, start, goal, opts...)
	if err != nil {
		switch {
		case errors.Is(err, planner.ErrInvalidEndpoint):
			fmt.Fprintln(os.Stderr, "thetaroute:", err)
			return exitInvalidEndpoints
		case errors.Is(err, metrize.ErrInvalidParameters), errors.Is(err, speed.ErrInvalidParameters):
			fmt.Fprintln(os.Stderr, "thetaroute:", err)
			return exitInvalidParameters
		case errors.Is(err, planner.ErrNoPath), errors.Is(err, planner.ErrBudgetExhausted):
			fmt.Fprintln(os.Stderr, "thetaroute:", err)
			return exitUnreachableGoal
		default:
			fmt.Fprintln(os.Stderr, "thetaroute:", err)
			return exitUnreachableGoal
		}
	}

	out, err := os.Create(*outFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "thetaroute:", err)
		return exitUnreadableInput
	}
	defer out.Close()
	if err := artifact.EncodeBinary(out, samples); err != nil {
		fmt.Fprintln(os.Stderr, "thetaroute:", err)
		return exitUnreadableInput
	}

	if *csvFlag != "" {
		csvOut, err := os.Create(*csvFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, "thetaroute:", err)
			return exitUnreadableInput
		}
		defer csvOut.Close()
		if err := artifact.EncodeCSV(csvOut, samples); err != nil {
			fmt.Fprintln(os.Stderr, "thetaroute:", err)
			return exitUnreadableInput
		}
	}

	return exitSuccess
}

// applyFlagOverrides copies any explicitly-set CLI flag onto cfg,
// leaving config-file/embedded-default values in place for flags the
// user did not pass.
func applyFlagOverrides(fs *flag.FlagSet, cfg *config.Config, mode string, passes int, cellSize, vmin, vmax, omegaMax, amax, dmax float64) {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["mode"] {
		cfg.Mode = mode
	}
	if set["passes"] {
		cfg.SimplifyPasses = passes
	}
	if set["cell-size"] {
		cfg.CellSizeCM = cellSize
	}
	if set["vmin"] {
		cfg.VMin = vmin
	}
	if set["vmax"] {
		cfg.VMax = vmax
	}
	if set["omega-max"] {
		cfg.OmegaMax = omegaMax
	}
	if set["amax"] {
		cfg.AMax = amax
	}
	if set["dmax"] {
		cfg.DMax = dmax
	}
}

// readGridFile parses a plain-text occupancy grid: one row per line,
// one byte per cell, '0' free and anything else blocked. Blank
// trailing lines are ignored.
func readGridFile(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows [][]byte
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		row := make([]byte, len(line))
		for i, ch := range []byte(line) {
			if ch != '0' {
				row[i] = 1
			}
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return grid.NewFromBytes(rows)
}

// parseCell parses "row,col" into a geom.Cell.
func parseCell(s string) (geom.Cell, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return geom.Cell{}, fmt.Errorf("expected \"row,col\", got %q", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return geom.Cell{}, fmt.Errorf("invalid row in %q: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return geom.Cell{}, fmt.Errorf("invalid col in %q: %w", s, err)
	}
	return geom.Cell{Row: row, Col: col}, nil
}
