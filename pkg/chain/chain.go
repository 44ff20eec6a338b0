// Package chain 实现节点链的遍历状态机
//
// 链在启动时一次性构建为定长数组，节点间以下标互相引用。
// 任意时刻只有 current 指向的节点会被更新；该节点完成一个周期后，
// current 按整体方向移动到邻居，到达两端时原地反弹并翻转方向。
package chain

import (
	"fmt"
	"log"

	"github.com/decker502/linepuncher/pkg/anim"
	"github.com/decker502/linepuncher/pkg/config"
	"github.com/decker502/linepuncher/pkg/render"
)

// TickStatus 一次 Update 的结果类型
type TickStatus int

const (
	// TickIdle 当前节点静止，没有推进
	TickIdle TickStatus = iota
	// TickContinuing 当前节点推进了一步，周期未完成
	TickContinuing
	// TickCompleted 当前节点完成了一个周期，链已移动或反弹
	TickCompleted
)

// String 返回状态名称（用于日志）
func (s TickStatus) String() string {
	switch s {
	case TickIdle:
		return "idle"
	case TickContinuing:
		return "continuing"
	case TickCompleted:
		return "completed"
	default:
		return fmt.Sprintf("TickStatus(%d)", int(s))
	}
}

// TickResult 一次 Update 的结果
type TickResult struct {
	Status TickStatus

	// Index 本次被更新的节点
	Index int

	// NextIndex 完成后新的当前节点；未完成时等于 Index
	NextIndex int

	// BoundaryHit 完成时是否撞到链的一端（原地反弹）
	BoundaryHit bool
}

// Chain 节点链
type Chain struct {
	nodes   []Node
	current int
	dir     int // 整体扫描方向：1 向 next，-1 向 prev
	style   render.NodeStyle
}

// New 根据配置构建节点链
//
// 当前节点为 0，整体方向为 1。
// cfg.Nodes 必须为正，这是构造前置条件，违反时 panic。
func New(cfg *config.PuncherConfig) *Chain {
	if cfg.Nodes <= 0 {
		panic(fmt.Sprintf("chain: node count must be positive, got %d", cfg.Nodes))
	}

	gap := cfg.ScaleGap()
	nodes := make([]Node, cfg.Nodes)
	for i := range nodes {
		nodes[i] = Node{
			index: i,
			state: anim.NewState(gap),
			next:  noNeighbor,
			prev:  noNeighbor,
		}
		if i > 0 {
			nodes[i].prev = i - 1
		}
		if i < cfg.Nodes-1 {
			nodes[i].next = i + 1
		}
	}

	return &Chain{
		nodes:   nodes,
		current: 0,
		dir:     1,
		style:   render.NewNodeStyle(cfg),
	}
}

// Len 节点数量
func (c *Chain) Len() int {
	return len(c.nodes)
}

// Node 返回指定下标的节点
func (c *Chain) Node(i int) *Node {
	return &c.nodes[i]
}

// Current 当前节点
func (c *Chain) Current() *Node {
	return &c.nodes[c.current]
}

// CurrentIndex 当前节点下标
func (c *Chain) CurrentIndex() int {
	return c.current
}

// Dir 整体扫描方向（1 或 -1）
func (c *Chain) Dir() int {
	return c.dir
}

// IsActive 当前节点是否在运行周期
func (c *Chain) IsActive() bool {
	return !c.nodes[c.current].state.IsIdle()
}

// StartUpdating 在当前节点上开始一个周期
// 当前节点已在运行时返回 false
func (c *Chain) StartUpdating() bool {
	return c.nodes[c.current].StartUpdating()
}

// Update 推进当前节点一个 tick
//
// 当前节点完成周期时调用 Advance 选择下一个节点。
func (c *Chain) Update() TickResult {
	cur := &c.nodes[c.current]
	result := TickResult{Index: cur.index, NextIndex: cur.index}

	if cur.state.IsIdle() {
		result.Status = TickIdle
		return result
	}

	if !cur.Update() {
		result.Status = TickContinuing
		return result
	}

	result.Status = TickCompleted
	result.NextIndex, result.BoundaryHit = c.Advance()
	return result
}

// Advance 按整体方向移动到邻居
//
// 邻居存在时移动一步；位于端点时不移动，只翻转整体方向，
// 因此端点节点会被连续访问两次。
//
// 返回：
//   - int: 新的当前节点下标
//   - bool: 是否撞到端点
func (c *Chain) Advance() (int, bool) {
	cur := &c.nodes[c.current]

	var candidate int
	var ok bool
	if c.dir == 1 {
		candidate, ok = cur.Next()
	} else {
		candidate, ok = cur.Prev()
	}

	if !ok {
		c.dir = -c.dir
		log.Printf("[Chain] Bounce at node %d, sweep direction now %d", c.current, c.dir)
		return c.current, true
	}

	c.current = candidate
	return c.current, false
}

// Draw 只绘制当前节点
func (c *Chain) Draw(canvas render.Canvas, width, height float64) {
	cur := &c.nodes[c.current]
	render.DrawNode(canvas, c.style, cur.index, cur.Scale(), width, height)
}
