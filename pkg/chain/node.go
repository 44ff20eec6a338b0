package chain

import "github.com/decker502/linepuncher/pkg/anim"

// noNeighbor 链两端缺失的邻居
const noNeighbor = -1

// Node 链上的一个固定位置
//
// 每个节点独占一个 anim.State，邻居以数组下标表示，构建后不再改变。
type Node struct {
	index int
	state anim.State
	next  int
	prev  int
}

// Index 节点在链中的位置
func (n *Node) Index() int {
	return n.index
}

// Scale 节点当前的动画进度
func (n *Node) Scale() float64 {
	return n.state.Scale()
}

// Dir 节点当前的推进方向（-1、0、1）
func (n *Node) Dir() int {
	return n.state.Dir()
}

// State 节点的进度状态（只读访问）
func (n *Node) State() anim.State {
	return n.state
}

// Next 下一个节点的下标，不存在时 ok 为 false
func (n *Node) Next() (int, bool) {
	return n.next, n.next != noNeighbor
}

// Prev 上一个节点的下标，不存在时 ok 为 false
func (n *Node) Prev() (int, bool) {
	return n.prev, n.prev != noNeighbor
}

// Update 推进本节点一个 tick，返回周期是否完成
func (n *Node) Update() bool {
	return n.state.Update()
}

// StartUpdating 开始本节点的新周期，已在运行时返回 false
func (n *Node) StartUpdating() bool {
	return n.state.StartUpdating()
}
