// Package main 无界面验证扫描顺序
//
// 连续执行若干次点击，每次都把周期跑完，打印每个周期的节点、
// 是否反弹、tick 数和重绘次数，以及静止帧的线段。
//
// 用法：
//
//	go run ./cmd/verify_sweep --taps 12
//	go run ./cmd/verify_sweep --config data/puncher.yaml --taps 6 --segments
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/linepuncher/pkg/chain"
	"github.com/decker502/linepuncher/pkg/config"
	"github.com/decker502/linepuncher/pkg/game"
	"github.com/decker502/linepuncher/pkg/render"
)

var (
	configFlag   = flag.String("config", "", "Puncher YAML 配置路径（默认使用内置默认值）")
	tapsFlag     = flag.Int("taps", 12, "点击次数")
	segmentsFlag = flag.Bool("segments", false, "打印每个静止帧的线段")
	verbose      = flag.Bool("verbose", false, "显示详细调试信息")
)

// cycleReport 一次点击的验证结果
type cycleReport struct {
	Tap      int
	From     int
	To       int
	Boundary bool
	Ticks    int
	Redraws  int
	SweepDir int
}

// runTap 执行一次点击并把周期跑完
func runTap(r *game.Renderer, tap int) (cycleReport, error) {
	report := cycleReport{Tap: tap, From: r.Status().Index}

	if !r.HandleTap(func() { report.Redraws++ }) {
		return report, fmt.Errorf("tap %d ignored on node %d", tap, report.From)
	}

	var last chain.TickResult
	for r.IsRunning() {
		last = r.Tick()
		report.Ticks++
	}

	if last.Status != chain.TickCompleted {
		return report, fmt.Errorf("tap %d: last tick status %v", tap, last.Status)
	}
	if report.Redraws != report.Ticks+1 {
		return report, fmt.Errorf("tap %d: %d redraws for %d ticks", tap, report.Redraws, report.Ticks)
	}

	report.To = last.NextIndex
	report.Boundary = last.BoundaryHit
	report.SweepDir = r.Status().SweepDir
	return report, nil
}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultPuncherConfig()
	if *configFlag != "" {
		loaded, err := config.LoadConfig(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	r := game.NewRenderer(cfg)
	rec := render.NewRecorder()

	fmt.Printf("nodes=%d lines=%d scGap=%.4f delay=%v\n", cfg.Nodes, cfg.Lines, cfg.ScaleGap(), cfg.Delay())
	for i := 1; i <= *tapsFlag; i++ {
		report, err := runTap(r, i)
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
			os.Exit(1)
		}

		bounce := ""
		if report.Boundary {
			bounce = " (bounce)"
		}
		fmt.Printf("tap %2d: node %d -> %d%s  ticks=%d redraws=%d sweep=%+d\n",
			report.Tap, report.From, report.To, bounce, report.Ticks, report.Redraws, report.SweepDir)

		if *segmentsFlag {
			rec.Reset()
			r.Render(rec, float64(cfg.Width), float64(cfg.Height))
			for _, s := range rec.Strokes {
				fmt.Printf("        (%.1f, %.1f) -> (%.1f, %.1f)\n", s.X1, s.Y1, s.X2, s.Y2)
			}
		}
	}
	fmt.Println("OK")
}
