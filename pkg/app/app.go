// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/linepuncher/pkg/config"
	"github.com/decker502/linepuncher/pkg/game"
	"github.com/decker502/linepuncher/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 磁盘上的配置文件路径，为空则使用内置的 data/puncher.yaml
	ConfigPath string
	// Puncher 直接指定动画配置，非 nil 时忽略 ConfigPath（移动端使用）
	Puncher *config.PuncherConfig
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	puncher      *config.PuncherConfig
	verbose      bool
}

// NewApp 创建并初始化应用
//
// Puncher 和 ConfigPath 都为空时，调用此函数前必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	puncherCfg := cfg.Puncher
	if puncherCfg == nil {
		loaded, err := loadPuncherConfig(cfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("配置加载失败: %w", err)
		}
		puncherCfg = loaded
	} else if err := puncherCfg.Validate(); err != nil {
		return nil, fmt.Errorf("配置无效: %w", err)
	}
	log.Printf("[Config] nodes=%d lines=%d scGap=%.4f delay=%v", puncherCfg.Nodes, puncherCfg.Lines, puncherCfg.ScaleGap(), puncherCfg.Delay())

	// 场景只在请求重绘时刷新，保留上一帧内容
	ebiten.SetScreenClearedEveryFrame(false)

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewPuncherScene(puncherCfg))
	log.Printf("[App] Puncher scene ready")

	return &App{
		sceneManager: sceneManager,
		puncher:      puncherCfg,
		verbose:      cfg.Verbose,
	}, nil
}

func loadPuncherConfig(path string) (*config.PuncherConfig, error) {
	if path != "" {
		log.Printf("[Config] Loading %s", path)
		return config.LoadConfig(path)
	}
	log.Printf("[Config] Loading embedded %s", config.DefaultConfigPath)
	return config.LoadEmbeddedConfig(config.DefaultConfigPath)
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.puncher.Width, a.puncher.Height
}

// WindowSize 配置中的窗口尺寸
func (a *App) WindowSize() (int, int) {
	return a.puncher.Width, a.puncher.Height
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
