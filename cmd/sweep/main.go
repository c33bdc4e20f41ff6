// Command sweep evaluates a grid of smoothlife parameter combinations in
// parallel and reports the ones that keep the field alive longest.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"soft-ca/internal/sims/smoothlife"
)

type paramSet struct {
	dt           float64
	kernelRadius int
	initDensity  float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("dt=%.3f radius=%d density=%.2f", p.dt, p.kernelRadius, p.initDensity)
}

type scenarioResult struct {
	params         paramSet
	lastActiveStep int
	peakActive     int
	finalActive    int
	finalMean      float64
}

func main() {
	steps := flag.Int("steps", 400, "ticks to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("width", 128, "grid width for sweep runs")
	height := flag.Int("height", 128, "grid height for sweep runs")
	seed := flag.Int64("seed", 1337, "seed used for deterministic runs")
	bestOut := flag.String("best-out", "", "write the best configuration to this YAML preset file")
	flag.Parse()

	dtOptions := []float64{0.02, 0.05, 0.1}
	radiusOptions := []int{9, 13, 17}
	densityOptions := []float64{0.2, 0.3, 0.4}

	var sets []paramSet
	for _, dt := range dtOptions {
		for _, radius := range radiusOptions {
			for _, density := range densityOptions {
				sets = append(sets, paramSet{dt: dt, kernelRadius: radius, initDensity: density})
			}
		}
	}

	fmt.Printf("Sweeping %d parameter sets (%d workers, %d steps)\n", len(sets), *workers, *steps)

	baseCfg := smoothlife.DefaultConfig()
	baseCfg.Width = *width
	baseCfg.Height = *height
	baseCfg.Seed = *seed

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(baseCfg, params, *steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool { return better(all[i], all[j]) })
	elapsed := time.Since(start)

	fmt.Printf("\nTop 5 results (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 5; i++ {
		res := all[i]
		fmt.Printf("%2d) lastActive=%d/%d peak=%d final=%d mean=%.4f params=%s\n",
			i+1, res.lastActiveStep, *steps, res.peakActive, res.finalActive, res.finalMean, res.params)
	}

	if len(all) == 0 {
		return
	}
	best := all[0]
	fmt.Printf("\nBest overall: lastActive=%d/%d peak=%d final=%d mean=%.4f params=%s\n",
		best.lastActiveStep, *steps, best.peakActive, best.finalActive, best.finalMean, best.params)

	if *bestOut != "" {
		if err := smoothlife.SaveConfig(*bestOut, applyParams(baseCfg, best.params)); err != nil {
			log.Fatalf("write preset: %v", err)
		}
		fmt.Printf("Wrote best preset to %s\n", *bestOut)
	}
}

// better ranks survival time first, then how much of the field is still
// alive at the end, then the activity peak along the way.
func better(a, b scenarioResult) bool {
	if a.lastActiveStep != b.lastActiveStep {
		return a.lastActiveStep > b.lastActiveStep
	}
	if a.finalActive != b.finalActive {
		return a.finalActive > b.finalActive
	}
	return a.peakActive > b.peakActive
}

func applyParams(base smoothlife.Config, params paramSet) smoothlife.Config {
	cfg := base
	cfg.Params.DT = params.dt
	cfg.Params.KernelRadius = params.kernelRadius
	cfg.Params.InitDensity = params.initDensity
	return cfg
}

func runScenario(base smoothlife.Config, params paramSet, steps int) scenarioResult {
	world := smoothlife.NewWithConfig(applyParams(base, params))
	world.Reset(base.Seed)

	res := scenarioResult{params: params}
	for step := 0; step < steps; step++ {
		world.Step()
		m := world.Metrics()
		if m.Active > 0 {
			res.lastActiveStep = step + 1
		}
		if m.Active > res.peakActive {
			res.peakActive = m.Active
		}
		if step == steps-1 {
			res.finalActive = m.Active
			res.finalMean = m.Mean
		}
	}
	return res
}
