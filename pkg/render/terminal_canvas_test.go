package render

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

// TestTerminalCanvasDrawNode 在模拟终端上绘制节点
func TestTerminalCanvasDrawNode(t *testing.T) {
	screen := newTestScreen(t, 40, 12)
	fore := color.RGBA{R: 0x9c, G: 0x27, B: 0xb0, A: 255}
	back := color.RGBA{R: 0xbd, G: 0xbd, B: 0xbd, A: 255}

	canvas := NewTerminalCanvas(screen, back)
	canvas.Clear()

	style := NodeStyle{Nodes: 5, Lines: 2, SizeFactor: 2.9, StrokeFactor: 90, Color: fore}
	DrawNode(canvas, style, 0, 0.5, 40, 12)
	screen.Show()

	// gap = 12/6 = 2，横线位于第 2 行，从 0 列伸到 20 列
	for x := 0; x < 20; x++ {
		mainc, _, cellStyle, _ := screen.GetContent(x, 2)
		if mainc != '━' {
			t.Fatalf("cell (%d, 2) = %q, want '━'", x, mainc)
		}
		fg, bg, _ := cellStyle.Decompose()
		if fg != tcell.NewRGBColor(0x9c, 0x27, 0xb0) {
			t.Errorf("cell (%d, 2) fg = %v, want fore color", x, fg)
		}
		if bg != tcell.NewRGBColor(0xbd, 0xbd, 0xbd) {
			t.Errorf("cell (%d, 2) bg = %v, want back color", x, bg)
		}
	}

	// 中线上的竖线向上、向下各一格
	for _, y := range []int{1, 3} {
		if mainc, _, _, _ := screen.GetContent(20, y); mainc != '┃' {
			t.Errorf("cell (20, %d) = %q, want '┃'", y, mainc)
		}
	}

	// 其它行保持空白
	if mainc, _, _, _ := screen.GetContent(5, 8); mainc != ' ' {
		t.Errorf("cell (5, 8) = %q, want blank", mainc)
	}
}

// TestTerminalCanvasClips 超出屏幕的线段被裁剪
func TestTerminalCanvasClips(t *testing.T) {
	screen := newTestScreen(t, 10, 5)
	canvas := NewTerminalCanvas(screen, color.Black)
	canvas.Clear()
	canvas.SetStroke(StrokeStyle{Color: color.White, Width: 1})

	DrawLine(canvas, -5, 2, 20, 2)
	screen.Show()

	for x := 0; x < 10; x++ {
		if mainc, _, _, _ := screen.GetContent(x, 2); mainc != '━' {
			t.Errorf("cell (%d, 2) = %q, want '━'", x, mainc)
		}
	}
}
