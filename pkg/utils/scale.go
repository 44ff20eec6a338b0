// Package utils 提供动画进度的插值函数
package utils

import "math"

// Scale Functions (进度分段函数)
//
// 一个动画周期只有一个标量进度 scale ∈ [0, 1]。
// 以下函数把它拆分成多个按顺序激活的子进度，并提供两种缓动。
// 分段的夹取/缩放顺序会影响绘制时机，不要调换。

// ClampProgress 将全局进度平移到第 i 段（共 n 段）的起点
// 全局进度未超过 i/n 之前返回 0
// 公式：f(scale) = max(0, scale - i/n)
func ClampProgress(scale float64, i, n int) float64 {
	return math.Max(0, scale-float64(i)/float64(n))
}

// SegmentProgress 计算第 i 段（共 n 段）的子进度
// 宽度为 1/n 的窗口被重新缩放到 [0, 1]，前一段走满后下一段才开始
// 公式：f(scale) = min(1/n, ClampProgress(scale, i, n)) * n
func SegmentProgress(scale float64, i, n int) float64 {
	fn := float64(n)
	return math.Min(1/fn, ClampProgress(scale, i, n)) * fn
}

// Sinify 对称凸起缓动
// 两端为 0，中点为 1
// 公式：f(t) = sin(πt)
func Sinify(scale float64) float64 {
	return math.Sin(math.Pi * scale)
}

// Cosify 四分之一正弦缓动
// 只使用前半段（SegmentProgress(scale, 0, 2)），到中点时达到 1
// 公式：f(t) = sin(SegmentProgress(t, 0, 2) * π/2)
func Cosify(scale float64) float64 {
	sf := SegmentProgress(scale, 0, 2)
	return math.Sin(sf * math.Pi / 2)
}
