package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"drone-dispatch-service/internal/adapters/repositories"
	"drone-dispatch-service/internal/domain"
	"drone-dispatch-service/internal/services"
)

// batchOutput is the batch planning result file: one assignment per available
// drone, idle drones included with an empty order list.
type batchOutput struct {
	Assignments []batchAssignment `json:"assignments"`
}

type batchAssignment struct {
	Drone         string   `json:"drone"`
	Orders        []string `json:"orders"`
	TotalDistance float64  `json:"total_distance"`
}

// dispatch runs one planning pass over a batch input file and writes the
// selected plan, without a database or a server.
func main() {
	inPath := flag.String("in", "input.json", "path to the batch input file")
	outPath := flag.String("out", "output.json", "path to write the plan to")
	flag.Parse()

	if err := run(*inPath, *outPath); err != nil {
		log.Fatal(err)
	}
}

func run(inPath, outPath string) error {
	repo, err := repositories.NewFileDispatchRepository(inPath)
	if err != nil {
		return fmt.Errorf("dispatch: %w", err)
	}

	plan, stats, err := services.PlanDispatch(
		context.Background(),
		services.PlanDispatchRequest{},
		repo,
		nil, // one-shot run, nothing to cache
	)
	if err != nil {
		return fmt.Errorf("dispatch: %w", err)
	}

	log.Printf(
		"plan=%s orders=%d drones=%d routes=%d feasible_pairs=%d assignments=%d served=%d coverage=%t total_time=%g",
		plan.ID, stats.Orders, stats.Drones, stats.Routes, stats.FeasiblePairs,
		stats.ValidAssignments, plan.OrdersServed, plan.FullCoverage, plan.TotalTime,
	)

	if err := writeOutput(outPath, plan); err != nil {
		return fmt.Errorf("dispatch: %w", err)
	}

	return nil
}

func writeOutput(path string, plan *domain.DispatchPlan) error {
	out := batchOutput{Assignments: make([]batchAssignment, 0, len(plan.Entries))}
	for _, e := range plan.Entries {
		out.Assignments = append(out.Assignments, batchAssignment{
			Drone:         e.DroneID,
			Orders:        e.OrderRefs,
			TotalDistance: e.RoundTripDistance,
		})
	}

	payload, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("write output: encode plan: %w", err)
	}

	if err := os.WriteFile(path, append(payload, '\n'), 0o644); err != nil {
		return fmt.Errorf("write output: write %q: %w", path, err)
	}

	return nil
}
