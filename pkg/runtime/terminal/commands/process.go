package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fit-tools/fittrack/pkg/models/domain"
	"github.com/fit-tools/fittrack/pkg/runtime/terminal/export"
	"github.com/fit-tools/fittrack/pkg/services/workout"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type ProcessCmd struct {
	packages []string
	registry workout.Registry
	reporter *export.Reporter
}

func NewProcessCmd(registry workout.Registry, reporter *export.Reporter) *cobra.Command {
	pc := &ProcessCmd{registry: registry, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "process",
		Short: "Compute statistics for sensor packages",
		Long: "Compute distance, mean speed and calories for each sensor package " +
			"and print one summary line per package. Without --package flags a " +
			"built-in demo set is processed.",
		RunE: pc.run,
	}

	cmd.Flags().StringArrayVar(&pc.packages, "package", nil,
		`sensor package as CODE:v1,v2,... (e.g. RUN:15000,1,75); repeatable`)

	return cmd
}

func (pc *ProcessCmd) run(cmd *cobra.Command, _ []string) error {
	log := zerolog.Ctx(cmd.Context())

	packages, err := parsePackages(pc.packages)
	if err != nil {
		return err
	}
	if len(packages) == 0 {
		packages = demoPackages()
	}

	for _, pkg := range packages {
		w, err := pc.registry.Build(pkg.Type, pkg.Data)
		if err != nil {
			return fmt.Errorf("failed to read package %q: %w", pkg.Type, err)
		}

		stats := workout.Stats(w)
		log.Debug().
			Str("type", pkg.Type).
			Float64("distance_km", stats.Distance).
			Float64("speed_kmh", stats.MeanSpeed).
			Float64("calories", stats.Calories).
			Msg("package processed")

		if err := pc.reporter.Handle(workout.Describe(w)); err != nil {
			return fmt.Errorf("failed to report workout: %w", err)
		}
	}

	return nil
}

func parsePackages(raw []string) ([]domain.SensorPackage, error) {
	packages := make([]domain.SensorPackage, 0, len(raw))
	for _, r := range raw {
		pkg, err := parsePackage(r)
		if err != nil {
			return nil, err
		}
		packages = append(packages, pkg)
	}
	return packages, nil
}

func parsePackage(raw string) (domain.SensorPackage, error) {
	code, values, found := strings.Cut(raw, ":")
	if !found || code == "" {
		return domain.SensorPackage{}, fmt.Errorf("malformed package %q: want CODE:v1,v2,...", raw)
	}

	fields := strings.Split(values, ",")
	data := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return domain.SensorPackage{}, fmt.Errorf("malformed package %q: %w", raw, err)
		}
		data = append(data, v)
	}

	return domain.SensorPackage{Type: code, Data: data}, nil
}

// demoPackages is the sample sensor feed processed when no packages are given.
func demoPackages() []domain.SensorPackage {
	return []domain.SensorPackage{
		{Type: workout.CodeSwimming, Data: []float64{720, 1, 80, 25, 40}},
		{Type: workout.CodeRunning, Data: []float64{15000, 1, 75}},
		{Type: workout.CodeWalking, Data: []float64{9000, 1, 75, 180}},
	}
}
