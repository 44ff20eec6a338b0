package scenes

import (
	"image/color"
	"log"
	"time"

	"github.com/decker502/linepuncher/pkg/config"
	"github.com/decker502/linepuncher/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// PuncherScene 横线冲压动画场景
//
// 屏幕不会每帧清空（见 app.NewApp），只有在渲染器请求重绘后
// Draw 才重新填充背景并绘制当前节点，其余帧保留上一帧内容。
type PuncherScene struct {
	renderer   *game.Renderer
	canvas     *EbitenCanvas
	background color.RGBA

	// tapped 检测本帧是否有点击，测试中可替换
	tapped func() bool

	dirty   bool
	redraws int
}

// NewPuncherScene 创建动画场景
func NewPuncherScene(cfg *config.PuncherConfig) *PuncherScene {
	return &PuncherScene{
		renderer:   game.NewRenderer(cfg),
		canvas:     NewEbitenCanvas(nil),
		background: cfg.BackRGBA(),
		tapped:     isJustTapped,
		dirty:      true, // 首帧需要绘制静止状态
	}
}

// Update 处理点击并推进动画
func (s *PuncherScene) Update(deltaTime float64) {
	if s.tapped() {
		if s.renderer.HandleTap(s.requestRedraw) {
			log.Printf("[PuncherScene] Tap accepted at node %d", s.renderer.Status().Index)
		}
	}

	s.renderer.Advance(time.Duration(deltaTime * float64(time.Second)))
}

// Draw 在有重绘请求时绘制当前帧
func (s *PuncherScene) Draw(screen *ebiten.Image) {
	if !s.dirty {
		return
	}

	screen.Fill(s.background)

	bounds := screen.Bounds()
	s.canvas.Reset(screen)
	s.renderer.Render(s.canvas, float64(bounds.Dx()), float64(bounds.Dy()))
	s.dirty = false
}

// Renderer 返回场景使用的渲染器
func (s *PuncherScene) Renderer() *game.Renderer {
	return s.renderer
}

// Redraws 渲染器请求重绘的累计次数
func (s *PuncherScene) Redraws() int {
	return s.redraws
}

func (s *PuncherScene) requestRedraw() {
	s.dirty = true
	s.redraws++
}
