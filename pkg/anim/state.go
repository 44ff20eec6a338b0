// Package anim 提供单个节点的进度状态机和周期驱动器
//
// State 负责一个动画周期内的进度推进与完成检测，
// Animator 负责把宿主循环的帧时间切分成固定间隔的 tick。
// 两者都不持有 goroutine，所有变更都发生在宿主循环中。
package anim

import "math"

// State 单个节点的动画进度
//
// 零值即初始状态：静止在 0。
// 不变量：dir == 0 时 scale == prevScale，且 prevScale ∈ {0, 1}。
type State struct {
	scale     float64 // 当前进度 [0, 1]
	dir       float64 // 推进方向：1 展开，-1 收回，0 静止
	prevScale float64 // 上一次静止时的进度（0 或 1）
	gap       float64 // 每个 tick 的进度增量
}

// NewState 创建静止在 0 的状态
//
// 参数：
//   - gap: 每个 tick 的进度增量（如 0.01）
func NewState(gap float64) State {
	return State{gap: gap}
}

// Update 按当前方向推进一个 tick
//
// 当进度与上一次静止值的差超过 1 时，进度被吸附到 prevScale+dir，
// 状态回到静止，并返回 true 表示本周期完成。这是唯一的完成条件。
// 静止状态下调用不会改变任何值。
func (s *State) Update() bool {
	s.scale += s.gap * s.dir
	if math.Abs(s.scale-s.prevScale) > 1 {
		s.scale = s.prevScale + s.dir
		s.dir = 0
		s.prevScale = s.scale
		return true
	}
	return false
}

// StartUpdating 从静止状态开始一个新周期
//
// 已在运行时为空操作并返回 false（周期内的重复点击被忽略）。
// 静止在 0 时方向为 1（展开），静止在 1 时方向为 -1（收回）。
func (s *State) StartUpdating() bool {
	if s.dir != 0 {
		return false
	}
	s.dir = 1 - 2*s.prevScale
	return true
}

// Scale 当前进度
func (s State) Scale() float64 {
	return s.scale
}

// Dir 当前方向（-1、0 或 1）
func (s State) Dir() int {
	return int(s.dir)
}

// PrevScale 上一次静止时的进度
func (s State) PrevScale() float64 {
	return s.prevScale
}

// IsIdle 是否处于静止状态
func (s State) IsIdle() bool {
	return s.dir == 0
}
