package anim

import "time"

// Animator 固定间隔的 tick 驱动器
//
// 宿主循环（ebiten 的 Update 或终端的 time.Ticker）每帧调用 Advance
// 报告经过的时间，Animator 按 delay 切分出到期的 tick 数。
// Start/Stop 都是幂等的，重复调用不会产生叠加的计时器。
type Animator struct {
	delay   time.Duration
	running bool
	elapsed time.Duration // 距离上一个 tick 累积的时间
}

// NewAnimator 创建停止状态的驱动器
// delay 必须为正
func NewAnimator(delay time.Duration) *Animator {
	return &Animator{delay: delay}
}

// Start 启动驱动器
// 已在运行时为空操作，返回是否真正启动
func (a *Animator) Start() bool {
	if a.running {
		return false
	}
	a.running = true
	a.elapsed = 0
	return true
}

// Stop 停止驱动器
// 已停止时为空操作，返回是否真正停止
func (a *Animator) Stop() bool {
	if !a.running {
		return false
	}
	a.running = false
	a.elapsed = 0
	return true
}

// IsRunning 驱动器是否在运行
func (a *Animator) IsRunning() bool {
	return a.running
}

// Delay tick 间隔
func (a *Animator) Delay() time.Duration {
	return a.delay
}

// Advance 累积经过的时间，返回本次到期的 tick 数
// 停止状态下不累积，始终返回 0
func (a *Animator) Advance(dt time.Duration) int {
	if !a.running || dt <= 0 {
		return 0
	}
	a.elapsed += dt
	ticks := int(a.elapsed / a.delay)
	a.elapsed -= time.Duration(ticks) * a.delay
	return ticks
}
