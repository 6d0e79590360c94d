package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"

	"github.com/kindling-go/kindling"
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Exercise the reactive engine and report timings",
		Commands: []*cli.Command{
			{
				Name:  "propagate",
				Usage: "Write latency across w*h signal->memo chains",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "iters", Value: 100},
				},
				Action: propagate,
			},
			{
				Name:  "fanout",
				Usage: "Throughput of one signal fanning out to n effects",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "iters", Value: 10_000},
				},
				Action: fanout,
			},
			{
				Name:   "graph",
				Usage:  "Dump the subscription graph of a sample network",
				Action: graph,
			},
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

var (
	widths  = []int{1, 10, 100, 1_000}
	heights = []int{1, 10, 100, 1_000}
)

func propagate(ctx context.Context, cmd *cli.Command) error {
	iters := int(cmd.Uint("iters"))

	tbl := table.NewWriter()
	tbl.SetTitle("Propagate")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range widths {
		for _, h := range heights {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			world := kindling.NewWorld()
			src := kindling.NewSignal(world, 1)

			// Strong handles: subscriber sets are weak and must not be
			// the only thing referencing the network.
			var keep []kindling.Effect
			for i := 0; i < w; i++ {
				read := src.Get
				for j := 0; j < h; j++ {
					prev := read
					m := kindling.NewMemo(world, func() int {
						return prev() + 1
					})
					keep = append(keep, m.Effect())
					read = m.Get
				}
				keep = append(keep, kindling.NewEffect(world, func() {
					_ = read()
				}))
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				src.Set(src.GetRaw() + 1)
				tach.AddTime(time.Since(start))
			}

			runtime.KeepAlive(keep)
			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	tbl.Render()
	return nil
}

func fanout(ctx context.Context, cmd *cli.Command) error {
	iters := int(cmd.Uint("iters"))

	tbl := tablewriter.NewWriter(os.Stdout)
	tbl.SetHeader([]string{"effects", "iterations", "total runs", "elapsed", "runs/sec"})

	for _, n := range []int{1, 10, 100, 1_000} {
		world := kindling.NewWorld()
		src := kindling.NewSignal(world, 0)

		runs := 0
		var keep []kindling.Effect
		for i := 0; i < n; i++ {
			keep = append(keep, kindling.NewEffect(world, func() {
				_ = src.Get()
				runs++
			}))
		}
		runs = 0

		start := time.Now()
		for i := 0; i < iters; i++ {
			src.Set(i)
		}
		elapsed := time.Since(start)
		runtime.KeepAlive(keep)

		rate := float64(runs) / elapsed.Seconds()
		tbl.Append([]string{
			humanize.Comma(int64(n)),
			humanize.Comma(int64(iters)),
			humanize.Comma(int64(runs)),
			elapsed.String(),
			humanize.Comma(int64(rate)),
		})
	}

	tbl.Render()
	return nil
}

func graph(ctx context.Context, cmd *cli.Command) error {
	world := kindling.NewWorld()

	celsius := kindling.NewSignal(world, 20.0)
	fahrenheit := kindling.NewMemo(world, func() float64 {
		return celsius.Get()*9/5 + 32
	})
	ticker := kindling.NewTrigger(world)
	report := kindling.NewEffect(world, func() {
		ticker.GatherSubscribers()
		log.Printf("%.1fC = %.1fF", celsius.GetRaw(), fahrenheit.Get())
	})
	ticker.Trigger()
	celsius.Set(25)

	g := world.Graph()
	runtime.KeepAlive(report)
	runtime.KeepAlive(fahrenheit)
	fmt.Println(g.DOT())

	tbl := tablewriter.NewWriter(os.Stdout)
	tbl.SetHeader([]string{"id", "kind", "defined at", "alive"})
	for _, n := range g.Nodes {
		tbl.Append([]string{
			fmt.Sprintf("%x", n.ID),
			n.Kind.String(),
			n.DefinedAt,
			fmt.Sprintf("%t", n.Alive),
		})
	}
	tbl.Render()
	return nil
}
