package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/followparty/chart"
	"github.com/delaneyj/followparty/followline"
	"github.com/delaneyj/followparty/pool"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
)

var (
	counts = []int{100, 1_000, 5_000}
	iters  = 100
)

func main() {
	flag.Parse()

	f, err := os.Create("default.pgo")
	if err != nil {
		log.Fatal(err)
	}
	pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	log.Printf("warming up")

	benchmarkSweep(true)
	benchmarkChurn(true)
}

func buildPlayfield(n int) (*followline.Renderer, []*chart.HitObject) {
	r := followline.NewRenderer(
		pool.New[followline.Connection](),
		pool.New[followline.FollowPoint](),
	)
	objs := make([]*chart.HitObject, 0, n)
	for i := 0; i < n; i++ {
		pos := chart.Vec2{
			X: 256 + 200*math.Sin(float64(i)),
			Y: 192 + 150*math.Cos(float64(i)*0.7),
		}
		obj := chart.NewHitObject(chart.KindCircle, float64(i)*350, pos)
		if i%8 == 0 {
			obj.NewCombo = true
		}
		r.AddObject(obj)
		objs = append(objs, obj)
	}
	return r, objs
}

func benchmarkSweep(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Follow Lines: time sweep")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, n := range counts {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})
		r, _ := buildPlayfield(n)

		length := float64(n) * 350
		for i := 0; i < iters; i++ {
			now := length * float64(i) / float64(iters)
			start := time.Now()
			r.Update(now)
			tach.AddTime(time.Since(start))
		}

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("sweep: %d objects", n),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	if shouldRender {
		tbl.Render()
	}
}

func benchmarkChurn(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Follow Lines: object churn")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, n := range counts {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})
		r, objs := buildPlayfield(n)
		r.Update(float64(n) * 350 / 2)

		for i := 0; i < iters; i++ {
			obj := objs[(i*31)%n]
			start := time.Now()
			obj.StartTime.SetValue(obj.StartTime.Value() + 175)
			r.Update(float64(n) * 350 / 2)
			tach.AddTime(time.Since(start))
		}

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("churn: %d objects", n),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	if shouldRender {
		tbl.Render()
	}
}
