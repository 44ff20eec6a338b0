// Package render 定义二维绘制表面的抽象，以及节点标记的绘制逻辑
//
// Canvas 只暴露动画需要的最小能力：路径描边、描边样式和平移变换栈。
// 本包不依赖图形库：tcell 终端（TerminalCanvas）和用于测试的 Recorder
// 在这里实现，ebiten 图像上的实现在 pkg/scenes。
package render

import "image/color"

// LineCap 线帽样式
type LineCap int

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

// StrokeStyle 描边样式
type StrokeStyle struct {
	Color color.Color
	Width float64
	Cap   LineCap
}

// Canvas 二维绘制上下文
//
// 坐标在 MoveTo/LineTo 时按当前变换换算，Save/Restore 保存和恢复
// 变换与描边样式。Stroke 不清空路径，BeginPath 才会清空。
type Canvas interface {
	Save()
	Restore()
	Translate(x, y float64)
	SetStroke(style StrokeStyle)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()
}

// WithTransform 在平移 (x, y) 的作用域内执行 fn
// fn 返回（包括 panic）后一定恢复之前的变换
func WithTransform(c Canvas, x, y float64, fn func()) {
	c.Save()
	defer c.Restore()
	c.Translate(x, y)
	fn()
}

// Segment 已换算为表面坐标的线段
type Segment struct {
	X1, Y1, X2, Y2 float64
}

type point struct {
	x, y float64
}

type savedState struct {
	tx, ty float64
	stroke StrokeStyle
}

// PathBuilder 各 Canvas 实现共享的路径与变换状态
// 具体表面嵌入它，只需实现 Stroke
type PathBuilder struct {
	tx, ty    float64
	stack     []savedState
	stroke    StrokeStyle
	segments  []Segment
	cursor    point
	hasCursor bool
}

func (p *PathBuilder) Save() {
	p.stack = append(p.stack, savedState{tx: p.tx, ty: p.ty, stroke: p.stroke})
}

// Restore 恢复最近一次 Save 的状态，栈为空时为空操作
func (p *PathBuilder) Restore() {
	if len(p.stack) == 0 {
		return
	}
	top := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	p.tx, p.ty, p.stroke = top.tx, top.ty, top.stroke
}

func (p *PathBuilder) Translate(x, y float64) {
	p.tx += x
	p.ty += y
}

func (p *PathBuilder) SetStroke(style StrokeStyle) {
	p.stroke = style
}

func (p *PathBuilder) BeginPath() {
	p.segments = p.segments[:0]
	p.hasCursor = false
}

func (p *PathBuilder) MoveTo(x, y float64) {
	p.cursor = point{x: x + p.tx, y: y + p.ty}
	p.hasCursor = true
}

// LineTo 没有起点时等同于 MoveTo
func (p *PathBuilder) LineTo(x, y float64) {
	next := point{x: x + p.tx, y: y + p.ty}
	if p.hasCursor {
		p.segments = append(p.segments, Segment{X1: p.cursor.x, Y1: p.cursor.y, X2: next.x, Y2: next.y})
	}
	p.cursor = next
	p.hasCursor = true
}

// Depth 当前变换栈深度
func (p *PathBuilder) Depth() int {
	return len(p.stack)
}

// Segments 当前路径中已换算的线段
func (p *PathBuilder) Segments() []Segment {
	return p.segments
}

// CurrentStroke 当前描边样式
func (p *PathBuilder) CurrentStroke() StrokeStyle {
	return p.stroke
}

// ResetPath 清空路径、变换和描边样式，复用已分配的空间
func (p *PathBuilder) ResetPath() {
	*p = PathBuilder{segments: p.segments[:0], stack: p.stack[:0]}
}
