package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/delaneyj/slotparty/signals"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

const (
	durationKey = "duration"
	repeatsKey  = "repeats"
)

type contentionConfig struct {
	name       string
	emitters   int
	connectors int
	baseSlots  int // slots connected before the run starts
}

var contentionCfgs = []contentionConfig{
	{name: "emit only", emitters: 8, baseSlots: 16},
	{name: "connect only", connectors: 8, baseSlots: 16},
	{name: "balanced", emitters: 4, connectors: 4, baseSlots: 16},
	{name: "emit heavy", emitters: 7, connectors: 1, baseSlots: 256},
	{name: "churn heavy", emitters: 1, connectors: 7, baseSlots: 256},
}

type contentionResult struct {
	emits    int64
	connects int64
	calls    int64
	elapsed  time.Duration
}

func main() {
	cmd := &cli.Command{
		Name:  "benchmark_contention",
		Usage: "Measure signal throughput under concurrent connect, emit and disconnect",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  durationKey,
				Usage: "How long each configuration runs",
				Value: time.Second,
			},
			&cli.UintFlag{
				Name:  repeatsKey,
				Usage: "Runs per configuration, the best one is reported",
				Value: 3,
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	log.Print("Starting contention benchmark, please wait...")
	defer log.Print("Finished contention benchmark")

	d := cmd.Duration(durationKey)
	repeats := int(cmd.Uint(repeatsKey))
	if repeats < 1 {
		repeats = 1
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"test", "emitters", "connectors", "slots", "emits/s", "connects/s", "calls/s"})

	for _, cfg := range contentionCfgs {
		var best contentionResult
		for i := 0; i < repeats; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			log.Printf("Running '%s' config, iteration %d/%d", cfg.name, i+1, repeats)
			res := runContention(ctx, cfg, d)
			if res.emits+res.connects > best.emits+best.connects {
				best = res
			}
		}

		table.Append([]string{
			cfg.name,
			fmt.Sprint(cfg.emitters),
			fmt.Sprint(cfg.connectors),
			humanize.Comma(int64(cfg.baseSlots)),
			humanize.Comma(perSecond(best.emits, best.elapsed)),
			humanize.Comma(perSecond(best.connects, best.elapsed)),
			humanize.Comma(perSecond(best.calls, best.elapsed)),
		})
	}
	table.Render()
	return nil
}

func perSecond(n int64, d time.Duration) int64 {
	if d <= 0 {
		return 0
	}
	return int64(float64(n) / d.Seconds())
}

func runContention(ctx context.Context, cfg contentionConfig, d time.Duration) contentionResult {
	sig := signals.NewWithCombiner[int, int, struct{}](signals.Discard[int])

	var calls atomic.Int64
	slot := func() *signals.Slot[int, int] {
		return signals.Func(func(n int) int {
			calls.Add(1)
			return n
		})
	}
	for i := 0; i < cfg.baseSlots; i++ {
		sig.ConnectGroup(i%8, slot())
	}

	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	var (
		wg       sync.WaitGroup
		emits    atomic.Int64
		connects atomic.Int64
	)
	start := time.Now()
	for e := 0; e < cfg.emitters; e++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; ctx.Err() == nil; i++ {
				if _, err := sig.Emit(i); err != nil {
					log.Panic(err)
				}
				emits.Add(1)
			}
		}()
	}
	for c := 0; c < cfg.connectors; c++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; ctx.Err() == nil; i++ {
				conn := sig.ConnectGroup(i%8, slot(), signals.AtFront)
				conn.Disconnect()
				connects.Add(1)
			}
		}()
	}
	wg.Wait()

	return contentionResult{
		emits:    emits.Load(),
		connects: connects.Load(),
		calls:    calls.Load(),
		elapsed:  time.Since(start),
	}
}
