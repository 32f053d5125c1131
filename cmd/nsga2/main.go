// Command nsga2 runs the NSGA-II evolutionary loop against the mLOTZ
// benchmark and writes a JSON run log.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/nsga2"
	"github.com/cpmech/nsga2/benchmark"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		individualSize int
		populationSize int
		objectiveSize  int
		maxIters       int
		seed           int
		filename       string
	)

	cmd := &cobra.Command{
		Use:           "nsga2",
		Short:         "NSGA-II algorithm over bit-string genomes and the (m)LOTZ benchmark",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if individualSize == 0 || populationSize == 0 || objectiveSize == 0 || maxIters == 0 {
				cmd.Usage()
				return errors.New("missing required flag")
			}
			return fire(individualSize, populationSize, objectiveSize, maxIters, seed, filename)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&individualSize, "individual_size", "n", 0, "size of the individual (required)")
	flags.IntVarP(&populationSize, "population_size", "N", 0, "size of the population (required)")
	flags.IntVarP(&objectiveSize, "objective_size", "m", 0, "size of the objective; must be even (required)")
	flags.IntVar(&maxIters, "max_iters", 0, "maximum number of iterations (required)")
	flags.IntVar(&seed, "seed", 0, "seed for the random number generator")
	flags.StringVar(&filename, "filename", "", "name of the JSON file to save the log")

	return cmd
}

func fire(individualSize, populationSize, objectiveSize, maxIters, seed int, filename string) error {
	prms := &nsga2.Parameters{
		IndividualSize: individualSize,
		PopulationSize: populationSize,
		ObjectiveSize:  objectiveSize,
		MaxIters:       maxIters,
		Seed:           seed,
		Filename:       filename,
	}
	prms.CalcDerived()

	f := benchmark.MLOTZFunctor(objectiveSize)
	obj := nsga2.ObjectiveFunc(func(x nsga2.Individual) nsga2.Objective { return f(x) })

	isOnFront := func(x nsga2.Individual) bool { return benchmark.IsMLOTZParetoFront(objectiveSize, x) }
	logger := nsga2.NewLogger(filename, individualSize, populationSize, objectiveSize, maxIters, isOnFront, 20)

	criterion := nsga2.CombineCriteria(logger, nsga2.MaxIterations(maxIters))

	population := nsga2.Run(prms, obj, criterion)
	logger.Finish(population)

	io.Pf("Done!\n")
	return nil
}
