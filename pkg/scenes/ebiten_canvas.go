package scenes

import (
	"github.com/decker502/linepuncher/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenCanvas 在 ebiten 图像上描边的 render.Canvas
type EbitenCanvas struct {
	render.PathBuilder
	dst *ebiten.Image
}

// NewEbitenCanvas 创建绘制到 dst 的 Canvas
func NewEbitenCanvas(dst *ebiten.Image) *EbitenCanvas {
	return &EbitenCanvas{dst: dst}
}

// Reset 切换目标图像并清空变换状态（每帧复用同一个 Canvas）
func (c *EbitenCanvas) Reset(dst *ebiten.Image) {
	c.dst = dst
	c.ResetPath()
}

// Stroke 描出当前路径
// 圆形线帽通过在端点补画实心圆实现
func (c *EbitenCanvas) Stroke() {
	stroke := c.CurrentStroke()
	if c.dst == nil || stroke.Color == nil || stroke.Width <= 0 {
		return
	}

	width := float32(stroke.Width)
	for _, seg := range c.Segments() {
		x1, y1 := float32(seg.X1), float32(seg.Y1)
		x2, y2 := float32(seg.X2), float32(seg.Y2)
		vector.StrokeLine(c.dst, x1, y1, x2, y2, width, stroke.Color, true)

		if stroke.Cap == render.LineCapRound {
			vector.DrawFilledCircle(c.dst, x1, y1, width/2, stroke.Color, true)
			vector.DrawFilledCircle(c.dst, x2, y2, width/2, stroke.Color, true)
		}
	}
}
