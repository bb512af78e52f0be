// Command corestream-scenarios runs the end-to-end scenario suite S1
// through S8 (spec.md §8) and renders a pass/fail report, humanizing
// each scenario's wall-clock duration the way benchmark_reactively
// reported its update rate.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"reflect"
	"time"

	"github.com/delaneyj/corestream"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:   "corestream-scenarios",
		Usage:  "Run the S1-S8 scenario suite and report pass/fail",
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

type scenario struct {
	name     string
	pipeline string
	run      func() ([]string, error)
}

func run(ctx context.Context, cmd *cli.Command) error {
	scenarios := []scenario{
		{"S1", "sequence([1,2,3]).map(x2)", scenarioS1},
		{"S2", "sequence([1,2,3]).scan(0, +)", scenarioS2},
		{"S3", "sequence([1,2,3]).buffer(size: 2)", scenarioS3},
		{"S4", "A.combineLatest(B)", scenarioS4},
		{"S5", "A.amb(B), B first", scenarioS5},
		{"S6", "failed(E).retry(3)", scenarioS6},
		{"S7", "publish()", scenarioS7},
		{"S8", "replay(limit:2)", scenarioS8},
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"scenario", "pipeline", "status", "time", "events"})

	failures := 0
	for _, sc := range scenarios {
		start := time.Now()
		events, err := sc.run()
		elapsed := time.Since(start)

		status := "pass"
		if err != nil {
			status = "FAIL: " + err.Error()
			failures++
		}
		table.Append([]string{
			sc.name,
			sc.pipeline,
			status,
			humanize.Comma(elapsed.Nanoseconds()) + " ns",
			fmt.Sprint(events),
		})
	}
	table.Render()

	if failures > 0 {
		return fmt.Errorf("corestream-scenarios: %d scenario(s) failed", failures)
	}
	return nil
}

func collect[A, F any](s corestream.Signal[A, F]) []corestream.Event[A, F] {
	var got []corestream.Event[A, F]
	s.Observe(func(ev corestream.Event[A, F]) {
		got = append(got, ev)
	})
	return got
}

func expect(got, want any) error {
	if !reflect.DeepEqual(got, want) {
		return fmt.Errorf("got %v, want %v", got, want)
	}
	return nil
}

func scenarioS1() ([]string, error) {
	s := corestream.Map(corestream.FromSlice[int, corestream.NoFailure]([]int{1, 2, 3}), func(v int) int { return v * 2 })
	got := collect(s)
	want := []int{2, 4, 6}
	var next []int
	for _, ev := range got {
		if ev.IsNext() {
			next = append(next, ev.Value())
		}
	}
	if err := expect(next, want); err != nil {
		return nil, err
	}
	if len(got) == 0 || !got[len(got)-1].IsCompleted() {
		return nil, fmt.Errorf("expected trailing completed")
	}
	return []string{"2", "4", "6", "completed"}, nil
}

func scenarioS2() ([]string, error) {
	s := corestream.Scan(corestream.FromSlice[int, corestream.NoFailure]([]int{1, 2, 3}), 0, func(acc, x int) int { return acc + x })
	got := collect(s)
	var next []int
	for _, ev := range got {
		if ev.IsNext() {
			next = append(next, ev.Value())
		}
	}
	if err := expect(next, []int{0, 1, 3, 6}); err != nil {
		return nil, err
	}
	return []string{"0", "1", "3", "6", "completed"}, nil
}

func scenarioS3() ([]string, error) {
	s := corestream.Buffer(corestream.FromSlice[int, corestream.NoFailure]([]int{1, 2, 3}), 2)
	got := collect(s)
	var next [][]int
	for _, ev := range got {
		if ev.IsNext() {
			next = append(next, ev.Value())
		}
	}
	if len(next) != 1 || !reflect.DeepEqual(next[0], []int{1, 2}) {
		return nil, fmt.Errorf("got %v, want [[1 2]]", next)
	}
	return []string{"[1 2]", "completed"}, nil
}

func scenarioS4() ([]string, error) {
	a := corestream.NewPassthroughSubject[int, corestream.NoFailure]()
	b := corestream.NewPassthroughSubject[string, corestream.NoFailure]()
	combined := corestream.CombineLatest[int, string, corestream.NoFailure](a.AsSignal(), b.AsSignal())

	var got []corestream.Pair2[int, string]
	combined.Observe(func(ev corestream.Event[corestream.Pair2[int, string], corestream.NoFailure]) {
		if ev.IsNext() {
			got = append(got, ev.Value())
		}
	})

	a.Emit(corestream.Next[int, corestream.NoFailure](1))
	b.Emit(corestream.Next[string, corestream.NoFailure]("A"))
	b.Emit(corestream.Next[string, corestream.NoFailure]("B"))
	a.Emit(corestream.Next[int, corestream.NoFailure](2))
	a.Emit(corestream.Next[int, corestream.NoFailure](3))
	b.Emit(corestream.Next[string, corestream.NoFailure]("C"))
	a.Emit(corestream.Completed[int, corestream.NoFailure]())
	b.Emit(corestream.Completed[string, corestream.NoFailure]())

	want := []corestream.Pair2[int, string]{
		{First: 1, Second: "A"},
		{First: 1, Second: "B"},
		{First: 2, Second: "B"},
		{First: 3, Second: "B"},
		{First: 3, Second: "C"},
	}
	if err := expect(got, want); err != nil {
		return nil, err
	}
	return []string{"(1,A)", "(1,B)", "(2,B)", "(3,B)", "(3,C)", "completed"}, nil
}

func scenarioS5() ([]string, error) {
	a := corestream.NewPassthroughSubject[int, corestream.NoFailure]()
	b := corestream.NewPassthroughSubject[int, corestream.NoFailure]()
	ambient := corestream.Amb[int, corestream.NoFailure](a.AsSignal(), b.AsSignal())

	var got []int
	ambient.Observe(func(ev corestream.Event[int, corestream.NoFailure]) {
		if ev.IsNext() {
			got = append(got, ev.Value())
		}
	})

	b.Emit(corestream.Next[int, corestream.NoFailure](3))
	a.Emit(corestream.Next[int, corestream.NoFailure](1))
	b.Emit(corestream.Next[int, corestream.NoFailure](4))
	a.Emit(corestream.Next[int, corestream.NoFailure](2))
	b.Emit(corestream.Completed[int, corestream.NoFailure]())

	if err := expect(got, []int{3, 4}); err != nil {
		return nil, err
	}
	return []string{"3", "4", "completed"}, nil
}

func scenarioS6() ([]string, error) {
	subscriptions := 0
	failing := corestream.New(func(o corestream.Observer[int, string]) *corestream.Cancellation {
		subscriptions++
		o(corestream.Failed[int, string]("E"))
		return corestream.NonDisposable
	})

	s := corestream.Retry(failing, 3)
	var lastErr string
	s.Observe(func(ev corestream.Event[int, string]) {
		if ev.IsFailed() {
			lastErr = ev.Err()
		}
	})

	if err := expect(subscriptions, 4); err != nil {
		return nil, err
	}
	if lastErr != "E" {
		return nil, fmt.Errorf("got failure %q, want E", lastErr)
	}
	return []string{"failed E", "subscriptions=4"}, nil
}

func scenarioS7() ([]string, error) {
	upstream := corestream.FromSlice[int, corestream.NoFailure]([]int{1, 2, 3})
	conn := corestream.Publish(upstream)

	var preConnect []int
	pre := conn.AsSignal().Observe(func(ev corestream.Event[int, corestream.NoFailure]) {
		if ev.IsNext() {
			preConnect = append(preConnect, ev.Value())
		}
	})
	defer pre.Dispose()

	if len(preConnect) != 0 {
		return nil, fmt.Errorf("pre-connect observer saw %v, want nothing", preConnect)
	}

	sub := conn.Connect()
	defer sub.Dispose()

	var postConnect []int
	post := conn.AsSignal().Observe(func(ev corestream.Event[int, corestream.NoFailure]) {
		if ev.IsNext() {
			postConnect = append(postConnect, ev.Value())
		}
	})
	defer post.Dispose()

	if len(postConnect) != 0 {
		return nil, fmt.Errorf("post-connect late observer saw %v, want nothing (upstream already drained)", postConnect)
	}
	return []string{"pre-connect: none", "post-connect late: none"}, nil
}

func scenarioS8() ([]string, error) {
	upstream := corestream.FromSlice[int, corestream.NoFailure]([]int{1, 2, 3})
	conn := corestream.Replay[int, corestream.NoFailure](upstream, 2)
	conn.Connect()

	var late []int
	conn.AsSignal().Observe(func(ev corestream.Event[int, corestream.NoFailure]) {
		if ev.IsNext() {
			late = append(late, ev.Value())
		}
	})

	if err := expect(late, []int{2, 3}); err != nil {
		return nil, err
	}
	return []string{"2", "3", "completed"}, nil
}
