package main

import (
	"flag"
	"log"
	"os"

	"github.com/decker502/linepuncher/pkg/app"
	"github.com/decker502/linepuncher/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	configFlag  = flag.String("config", "", "Path to a puncher YAML config (default: embedded data/puncher.yaml)")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		ConfigPath: *configFlag,
	})
	if err != nil {
		// 非 verbose 模式下日志已被丢弃
		log.SetOutput(os.Stderr)
		log.Fatalf("初始化失败: %v", err)
	}

	width, height := gameApp.WindowSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Horizontal Line Puncher")

	// Start the loop
	// This will call Update() and Draw() repeatedly until the window is closed
	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
