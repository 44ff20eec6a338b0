package game

import (
	"log"
	"time"

	"github.com/decker502/linepuncher/pkg/anim"
	"github.com/decker502/linepuncher/pkg/chain"
	"github.com/decker502/linepuncher/pkg/config"
	"github.com/decker502/linepuncher/pkg/render"
)

// Snapshot 渲染器当前状态的只读快照
type Snapshot struct {
	Index    int     // 当前节点
	Scale    float64 // 当前节点进度
	NodeDir  int     // 当前节点方向（-1、0、1）
	SweepDir int     // 整体扫描方向（-1、1）
	Running  bool    // 驱动器是否在运行
}

// Renderer 组合节点链与 tick 驱动器
//
// 点击协议：HandleTap 在当前节点静止时开始一个周期并启动驱动器；
// 之后每个 tick 先重绘、再推进链；周期完成时停止驱动器并再重绘一次。
// 周期进行中的点击被忽略。
type Renderer struct {
	chain    *chain.Chain
	animator *anim.Animator
	onRedraw func()
}

// NewRenderer 根据配置创建渲染器
func NewRenderer(cfg *config.PuncherConfig) *Renderer {
	return &Renderer{
		chain:    chain.New(cfg),
		animator: anim.NewAnimator(cfg.Delay()),
	}
}

// Render 绘制当前帧
func (r *Renderer) Render(canvas render.Canvas, width, height float64) {
	r.chain.Draw(canvas, width, height)
}

// HandleTap 处理一次点击
//
// 参数：
//   - onRedraw: 每个 tick 以及周期结束时调用的重绘回调，可为 nil
//
// 返回：
//   - bool: 是否开始了新周期（进行中的点击返回 false）
func (r *Renderer) HandleTap(onRedraw func()) bool {
	if !r.chain.StartUpdating() {
		log.Printf("[Renderer] Tap ignored, node %d is still animating", r.chain.CurrentIndex())
		return false
	}

	r.onRedraw = onRedraw
	r.animator.Start()
	log.Printf("[Renderer] Cycle started on node %d (dir=%d)", r.chain.CurrentIndex(), r.chain.Current().Dir())
	return true
}

// Tick 执行一个 tick
//
// 驱动器未运行时返回 TickIdle 且不做任何事。
func (r *Renderer) Tick() chain.TickResult {
	if !r.animator.IsRunning() {
		return chain.TickResult{Status: chain.TickIdle, Index: r.chain.CurrentIndex(), NextIndex: r.chain.CurrentIndex()}
	}

	r.redraw()
	result := r.chain.Update()

	if result.Status == chain.TickCompleted {
		r.animator.Stop()
		r.redraw()
		log.Printf("[Renderer] Cycle completed on node %d, next=%d boundary=%v", result.Index, result.NextIndex, result.BoundaryHit)
	}
	return result
}

// Advance 向驱动器报告经过的时间，并执行所有到期的 tick
// 周期在中途完成时剩余的 tick 被丢弃
//
// 返回：
//   - int: 实际执行的 tick 数
func (r *Renderer) Advance(elapsed time.Duration) int {
	due := r.animator.Advance(elapsed)
	ran := 0
	for ran < due && r.animator.IsRunning() {
		r.Tick()
		ran++
	}
	return ran
}

// IsRunning 驱动器是否在运行
func (r *Renderer) IsRunning() bool {
	return r.animator.IsRunning()
}

// Status 返回当前状态快照
func (r *Renderer) Status() Snapshot {
	cur := r.chain.Current()
	return Snapshot{
		Index:    cur.Index(),
		Scale:    cur.Scale(),
		NodeDir:  cur.Dir(),
		SweepDir: r.chain.Dir(),
		Running:  r.animator.IsRunning(),
	}
}

func (r *Renderer) redraw() {
	if r.onRedraw != nil {
		r.onRedraw()
	}
}
