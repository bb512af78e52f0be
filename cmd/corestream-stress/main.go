// Command corestream-stress drives concurrent multi-publisher stress
// through fixed alternating Map/Filter operator chains and reports
// Emit-call latency percentiles, exercising part of the thread-safety
// stress property (spec.md §8, invariant 9): it fails if any observer
// sees an event after its terminal, and a deadlock shows as a run that
// never finishes. The chains hold no timers, so timer cleanup on dispose
// is not exercised.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/delaneyj/corestream"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

const (
	publishersKey = "publishers"
	chainDepthKey = "chain-depth"
	itersKey      = "iters"
)

func main() {
	cmd := &cli.Command{
		Name:  "corestream-stress",
		Usage: "Stress-test concurrent multi-publisher emission through operator chains",
		Flags: []cli.Flag{
			&cli.UintFlag{Name: publishersKey, Usage: "Concurrent publisher goroutines per subject", Value: 8},
			&cli.UintFlag{Name: chainDepthKey, Usage: "Operators chained after each subject", Value: 4},
			&cli.UintFlag{Name: itersKey, Usage: "Emits per publisher", Value: 1_000},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

var chainWidths = []int{1, 10, 100}

func run(ctx context.Context, cmd *cli.Command) error {
	publishers := int(cmd.Uint(publishersKey))
	depth := int(cmd.Uint(chainDepthKey))
	iters := int(cmd.Uint(itersKey))

	tbl := table.NewWriter()
	tbl.SetTitle("corestream concurrent emission stress")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"subjects", "publishers", "chain depth", "avg", "min", "p75", "p99", "max"})

	for _, width := range chainWidths {
		tach := tachymeter.New(&tachymeter.Config{Size: publishers * iters})
		if err := stressOnce(width, publishers, depth, iters, tach); err != nil {
			return err
		}
		calc := tach.Calc()
		tbl.AppendRow(table.Row{
			width, publishers, depth,
			calc.Time.Avg, calc.Time.Min, calc.Time.P75, calc.Time.P99, calc.Time.Max,
		})
	}

	tbl.Render()
	return nil
}

// stressOnce wires width independent subjects, each through a depth-deep
// chain of Map/Filter/RemoveDuplicates, then fans publishers goroutines
// of concurrent Emit calls into every subject and waits for them all to
// settle before disposing every subscription.
func stressOnce(width, publishers, depth, iters int, tach *tachymeter.Tachymeter) error {
	var wg sync.WaitGroup
	var seenMu sync.Mutex
	terminated := make([]bool, width)
	var violations int

	for i := 0; i < width; i++ {
		subj := corestream.NewPassthroughSubject[int, corestream.NoFailure]()
		sig := chainOf(subj.AsSignal(), depth)

		idx := i
		sub := sig.Observe(func(ev corestream.Event[int, corestream.NoFailure]) {
			seenMu.Lock()
			defer seenMu.Unlock()
			if terminated[idx] {
				violations++
				return
			}
			if ev.IsTerminal() {
				terminated[idx] = true
			}
		})
		defer sub.Dispose()

		for p := 0; p < publishers; p++ {
			wg.Add(1)
			go func(subj *corestream.Subject[int, corestream.NoFailure]) {
				defer wg.Done()
				for n := 0; n < iters; n++ {
					start := time.Now()
					subj.Emit(corestream.Next[int, corestream.NoFailure](n))
					tach.AddTime(time.Since(start))
				}
			}(subj)
		}
		subj.Emit(corestream.Completed[int, corestream.NoFailure]())
	}

	wg.Wait()
	if violations > 0 {
		return fmt.Errorf("corestream-stress: %d events delivered after terminal", violations)
	}
	return nil
}

func chainOf(sig corestream.Signal[int, corestream.NoFailure], depth int) corestream.Signal[int, corestream.NoFailure] {
	for i := 0; i < depth; i++ {
		if i%2 == 0 {
			sig = corestream.Map(sig, func(v int) int { return v + 1 })
		} else {
			sig = corestream.Filter(sig, func(v int) bool { return v%2 == 0 })
		}
	}
	return corestream.RemoveDuplicates(sig)
}
