package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-drift/dxmotion/pkg/animation"
)

func init() {
	RegisterCommand(&Command{
		Name:  "curves",
		Short: "Sample easing curves",
		Long: `Print easing curves sampled at evenly spaced points.

With no names every built-in curve is printed. The progress row is listed
first so columns line up with their input.`,
		Usage: "dxmotion curves [name...] [--samples N]",
		Run:   runCurves,
	})
}

func runCurves(args []string) error {
	samples := 5
	var names []string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--samples":
			v, err := flagValue(args, i)
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(v)
			if err != nil || n < 2 {
				return fmt.Errorf("--samples must be an integer of at least 2, got %q", v)
			}
			samples = n
			i++
		default:
			names = append(names, args[i])
		}
	}
	if len(names) == 0 {
		names = animation.EasingNames()
	}

	curves := make([]animation.Easing, len(names))
	for i, name := range names {
		e, err := animation.EasingByName(name)
		if err != nil {
			return err
		}
		curves[i] = e
	}

	points := make([]float64, samples)
	for i := range points {
		points[i] = float64(i) / float64(samples-1)
	}
	fmt.Fprintf(stdout, "%-14s %s\n", "progress", row(points, func(p float64) float64 { return p }))
	for i, name := range names {
		fmt.Fprintf(stdout, "%-14s %s\n", name, row(points, curves[i]))
	}
	return nil
}

func row(points []float64, ease animation.Easing) string {
	cols := make([]string, len(points))
	for i, p := range points {
		cols[i] = fmt.Sprintf("%7.3f", ease(p))
	}
	return strings.Join(cols, " ")
}
