package main

import (
	"log"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/delaneyj/followparty/chart"
	"github.com/delaneyj/followparty/followline"
	"github.com/delaneyj/followparty/pool"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

type seekTestConfig struct {
	name     string
	objects  int
	seeks    int
	comboGap int
}

func main() {
	log.Print("Starting seek benchmark, please wait...")
	defer log.Print("Finished seek benchmark")

	configs := []seekTestConfig{
		{name: "short chart", objects: 200, seeks: 50_000, comboGap: 8},
		{name: "long chart", objects: 2_000, seeks: 10_000, comboGap: 8},
		{name: "marathon", objects: 5_000, seeks: 2_000, comboGap: 12},
	}

	tbl := tablewriter.NewWriter(os.Stdout)
	tbl.SetHeader([]string{"test", "objects", "seeks", "births", "deaths", "time", "seeks/s"})

	for _, cfg := range configs {
		log.Printf("Running '%s' config", cfg.name)

		seq := followline.NewEntrySequence()
		sched := followline.NewLifetimeScheduler()
		binding := followline.NewConnectionRenderBinding(
			pool.New[followline.Connection](),
			pool.New[followline.FollowPoint](),
		)

		births, deaths := 0, 0
		sched.OnBecameAlive = func(e *followline.Entry) {
			births++
			binding.BecameAlive(e)
		}
		sched.OnBecameDead = func(e *followline.Entry) {
			deaths++
			binding.BecameDead(e)
		}

		rng := rand.New(rand.NewSource(42))
		for i := 0; i < cfg.objects; i++ {
			pos := chart.Vec2{X: rng.Float64() * 512, Y: rng.Float64() * 384}
			obj := chart.NewHitObject(chart.KindCircle, float64(i)*300, pos)
			if i%cfg.comboGap == 0 {
				obj.NewCombo = true
			}
			sched.AddEntry(seq.Insert(obj))
		}

		length := float64(cfg.objects) * 300
		started := time.Now()
		for i := 0; i < cfg.seeks; i++ {
			sched.Evaluate(rng.Float64() * length)
		}
		dur := time.Since(started)

		seekRate := int64(math.Round(float64(cfg.seeks) / dur.Seconds()))
		tbl.Append([]string{
			cfg.name,
			humanize.Comma(int64(cfg.objects)),
			humanize.Comma(int64(cfg.seeks)),
			humanize.Comma(int64(births)),
			humanize.Comma(int64(deaths)),
			dur.Round(time.Millisecond).String(),
			humanize.Comma(seekRate),
		})
	}

	tbl.Render()
}
