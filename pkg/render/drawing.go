package render

import (
	"image/color"
	"math"

	"github.com/decker502/linepuncher/pkg/config"
	"github.com/decker502/linepuncher/pkg/utils"
)

// NodeStyle 节点标记的绘制参数
type NodeStyle struct {
	Nodes        int
	Lines        int
	SizeFactor   float64
	StrokeFactor float64
	Color        color.RGBA
}

// NewNodeStyle 从配置提取绘制参数
func NewNodeStyle(cfg *config.PuncherConfig) NodeStyle {
	return NodeStyle{
		Nodes:        cfg.Nodes,
		Lines:        cfg.Lines,
		SizeFactor:   cfg.SizeFactor,
		StrokeFactor: cfg.StrokeFactor,
		Color:        cfg.ForeRGBA(),
	}
}

// DrawLine 描一条直线
func DrawLine(c Canvas, x1, y1, x2, y2 float64) {
	c.BeginPath()
	c.MoveTo(x1, y1)
	c.LineTo(x2, y2)
	c.Stroke()
}

// DrawLinePuncher 绘制第 j 段标记
//
// 一段标记由一条横线和末端的一条竖线组成。第 0 段从左边缘向右伸出、
// 竖线朝上；第 1 段从右边缘向左伸出、竖线朝下。
// 横线长度跟随 Sinify(scale) 的分段进度，周期中点最长、两端收回。
func DrawLinePuncher(c Canvas, j, lines int, scale, w, size float64) {
	sf := utils.Sinify(scale)
	sfj := utils.SegmentProgress(sf, j, lines)
	sj := float64(1 - 2*j)
	sx := w * float64(j)
	x := (w / 2) * sfj * sj

	WithTransform(c, sx, 0, func() {
		DrawLine(c, 0, 0, x, 0)
		DrawLine(c, x, 0, x, -size*sj)
	})
}

// DrawNode 绘制第 i 个节点在进度 scale 下的标记
//
// 节点按 height/(Nodes+1) 的间距纵向排列，竖线长度为间距除以 SizeFactor，
// 线宽为 min(width, height)/StrokeFactor。
func DrawNode(c Canvas, style NodeStyle, i int, scale, width, height float64) {
	gap := height / float64(style.Nodes+1)
	size := gap / style.SizeFactor

	c.SetStroke(StrokeStyle{
		Color: style.Color,
		Width: math.Min(width, height) / style.StrokeFactor,
		Cap:   LineCapRound,
	})

	WithTransform(c, 0, gap*float64(i+1), func() {
		for j := 0; j < style.Lines; j++ {
			DrawLinePuncher(c, j, style.Lines, scale, width, size)
		}
	})
}
