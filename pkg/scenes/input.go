package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// isJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 多点触摸时只取第一个新触点
// 返回是否点击以及点击位置
func isJustTouchedOrClicked() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// isJustTapped 本帧是否有一次点击
// 鼠标左键、新触点或空格键都视为点击，位置不影响动画
func isJustTapped() bool {
	if pressed, _, _ := isJustTouchedOrClicked(); pressed {
		return true
	}
	return inpututil.IsKeyJustPressed(ebiten.KeySpace)
}
