package main

import (
	"context"
	_ "embed"
	"fmt"
	"iter"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/slotparty/signals"
	"github.com/delaneyj/slotparty/tracked"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

//go:embed scenarios.yaml
var defaultScenarios []byte

const (
	scenariosKey = "scenarios"
	profileKey   = "profile"
	warmupKey    = "warmup"
)

type scenarioFile struct {
	Scenarios []scenario `yaml:"scenarios"`
}

type scenario struct {
	Name       string  `yaml:"name"`
	Slots      int     `yaml:"slots"`
	Groups     int     `yaml:"groups"`
	Tracked    bool    `yaml:"tracked"`
	Blocked    float64 `yaml:"blocked"` // fraction of slots held blocked
	Iterations int     `yaml:"iterations"`
}

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Measure signal emission latency",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  scenariosKey,
				Usage: "YAML scenario file, the built in set when empty",
			},
			&cli.StringFlag{
				Name:  profileKey,
				Usage: "Write a CPU profile to this file",
			},
			&cli.BoolFlag{
				Name:  warmupKey,
				Usage: "Run every scenario once before measuring",
				Value: true,
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	scenarios, err := loadScenarios(cmd.String(scenariosKey))
	if err != nil {
		return err
	}

	if path := cmd.String(profileKey); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	if cmd.Bool(warmupKey) {
		log.Printf("warming up")
		for _, sc := range scenarios {
			measure(sc)
		}
	}

	tbl := table.NewWriter()
	tbl.SetTitle("Signal emission")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"scenario", "slots", "groups", "avg", "min", "p75", "p99", "max"})
	for _, sc := range scenarios {
		if err := ctx.Err(); err != nil {
			return err
		}
		calc := measure(sc)
		tbl.AppendRow(table.Row{
			sc.Name,
			sc.Slots,
			sc.Groups,
			calc.Time.Avg,
			calc.Time.Min,
			calc.Time.P75,
			calc.Time.P99,
			calc.Time.Max,
		})
	}
	tbl.Render()
	return nil
}

func loadScenarios(path string) ([]scenario, error) {
	raw := defaultScenarios
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		raw = b
	}

	var file scenarioFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse scenarios: %w", err)
	}
	for i, sc := range file.Scenarios {
		if sc.Slots < 1 || sc.Iterations < 1 {
			return nil, fmt.Errorf("scenario %d (%q): slots and iterations must be positive", i, sc.Name)
		}
		if sc.Blocked < 0 || sc.Blocked > 1 {
			return nil, fmt.Errorf("scenario %d (%q): blocked must be within [0, 1]", i, sc.Name)
		}
	}
	return file.Scenarios, nil
}

func measure(sc scenario) *tachymeter.Metrics {
	sig := signals.NewWithCombiner[int, int, int](func(results iter.Seq[int]) int {
		sum := 0
		for r := range results {
			sum += r
		}
		return sum
	})

	owner := tracked.New(sc.Name)
	defer owner.Release()

	blockEvery := 0
	if sc.Blocked > 0 {
		blockEvery = int(1 / sc.Blocked)
	}
	for i := 0; i < sc.Slots; i++ {
		slot := signals.Func(func(n int) int { return n + i })
		if sc.Tracked {
			slot.Track(owner)
		}

		var conn signals.Connection
		if sc.Groups > 0 {
			conn = sig.ConnectGroup(i%sc.Groups, slot)
		} else {
			conn = sig.Connect(slot)
		}
		if blockEvery > 0 && i%blockEvery == 0 {
			defer conn.Block().Unblock()
		}
	}

	tach := tachymeter.New(&tachymeter.Config{Size: sc.Iterations})
	for i := 0; i < sc.Iterations; i++ {
		start := time.Now()
		if _, err := sig.Emit(i); err != nil {
			log.Panic(err)
		}
		tach.AddTime(time.Since(start))
	}
	return tach.Calc()
}
