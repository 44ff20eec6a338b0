package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// TerminalCanvas 在 tcell 屏幕上描边的 Canvas
//
// 坐标单位为字符格。线宽被忽略，每条线段占一格宽；
// 水平、竖直线段分别使用 '━'、'┃'，其余使用 '█'。
type TerminalCanvas struct {
	PathBuilder
	screen tcell.Screen
	bg     tcell.Color
}

// NewTerminalCanvas 创建绘制到 screen 的 Canvas
// background 为单元格背景色
func NewTerminalCanvas(screen tcell.Screen, background color.Color) *TerminalCanvas {
	return &TerminalCanvas{
		screen: screen,
		bg:     toTcellColor(background),
	}
}

// Clear 用背景色填满屏幕并清空变换状态
func (c *TerminalCanvas) Clear() {
	c.ResetPath()
	c.screen.Fill(' ', tcell.StyleDefault.Background(c.bg))
}

func (c *TerminalCanvas) Stroke() {
	if c.stroke.Color == nil {
		return
	}

	style := tcell.StyleDefault.Foreground(toTcellColor(c.stroke.Color)).Background(c.bg)
	cols, rows := c.screen.Size()

	for _, seg := range c.segments {
		x1, y1 := math.Round(seg.X1), math.Round(seg.Y1)
		x2, y2 := math.Round(seg.X2), math.Round(seg.Y2)

		glyph := '█'
		switch {
		case y1 == y2 && x1 != x2:
			glyph = '━'
		case x1 == x2 && y1 != y2:
			glyph = '┃'
		}

		dx, dy := x2-x1, y2-y1
		steps := int(math.Max(math.Abs(dx), math.Abs(dy)))
		for k := 0; k <= steps; k++ {
			t := 0.0
			if steps > 0 {
				t = float64(k) / float64(steps)
			}
			x := int(math.Round(x1 + dx*t))
			y := int(math.Round(y1 + dy*t))
			if x < 0 || y < 0 || x >= cols || y >= rows {
				continue
			}
			c.screen.SetContent(x, y, glyph, nil, style)
		}
	}
}

func toTcellColor(c color.Color) tcell.Color {
	if c == nil {
		return tcell.ColorDefault
	}
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
