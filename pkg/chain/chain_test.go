package chain

import (
	"testing"

	"github.com/decker502/linepuncher/pkg/config"
	"github.com/decker502/linepuncher/pkg/render"
)

func newTestChain(nodes int) *Chain {
	cfg := config.DefaultPuncherConfig()
	cfg.Nodes = nodes
	return New(cfg)
}

// completeCycle 在当前节点上开始并跑完一个周期
func completeCycle(t *testing.T, c *Chain) TickResult {
	t.Helper()
	if !c.StartUpdating() {
		t.Fatalf("StartUpdating on node %d did not start", c.CurrentIndex())
	}
	for i := 0; i < 1000; i++ {
		res := c.Update()
		if res.Status == TickCompleted {
			return res
		}
		if res.Status != TickContinuing {
			t.Fatalf("unexpected status %v mid-cycle", res.Status)
		}
	}
	t.Fatalf("cycle on node %d did not complete", c.CurrentIndex())
	return TickResult{}
}

// TestNewChainLinks 验证链接结构
func TestNewChainLinks(t *testing.T) {
	c := newTestChain(5)

	if c.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", c.Len())
	}
	if c.CurrentIndex() != 0 || c.Dir() != 1 {
		t.Errorf("initial current=%d dir=%d, want 0/1", c.CurrentIndex(), c.Dir())
	}

	for i := 0; i < c.Len(); i++ {
		n := c.Node(i)
		if n.Index() != i {
			t.Errorf("node %d has index %d", i, n.Index())
		}

		next, hasNext := n.Next()
		if i == c.Len()-1 {
			if hasNext {
				t.Errorf("last node should have no next, got %d", next)
			}
		} else if !hasNext || next != i+1 {
			t.Errorf("node %d next = %d/%v, want %d", i, next, hasNext, i+1)
		}

		prev, hasPrev := n.Prev()
		if i == 0 {
			if hasPrev {
				t.Errorf("first node should have no prev, got %d", prev)
			}
		} else if !hasPrev || prev != i-1 {
			t.Errorf("node %d prev = %d/%v, want %d", i, prev, hasPrev, i-1)
		}

		if !n.State().IsIdle() || n.Scale() != 0 {
			t.Errorf("node %d should start idle at 0", i)
		}
	}
}

// TestNewChainPanicsOnEmpty 非正节点数是构造前置条件
func TestNewChainPanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New with 0 nodes should panic")
		}
	}()
	newTestChain(0)
}

// TestSweepBounce 五个节点的扫描顺序：到达端点时原地反弹
func TestSweepBounce(t *testing.T) {
	c := newTestChain(5)

	// 每个周期开始时的当前节点
	wantVisited := []int{0, 1, 2, 3, 4, 4, 3, 2, 1, 0, 0, 1}
	wantBoundary := []bool{false, false, false, false, true, false, false, false, false, true, false, false}

	for i, want := range wantVisited {
		if c.CurrentIndex() != want {
			t.Fatalf("cycle %d: current = %d, want %d", i, c.CurrentIndex(), want)
		}
		res := completeCycle(t, c)
		if res.Index != want {
			t.Errorf("cycle %d: result index = %d, want %d", i, res.Index, want)
		}
		if res.BoundaryHit != wantBoundary[i] {
			t.Errorf("cycle %d: boundary = %v, want %v", i, res.BoundaryHit, wantBoundary[i])
		}
		if res.NextIndex != c.CurrentIndex() {
			t.Errorf("cycle %d: NextIndex %d != current %d", i, res.NextIndex, c.CurrentIndex())
		}
	}
}

// TestSweepDirectionFlips 整体方向只在端点翻转
func TestSweepDirectionFlips(t *testing.T) {
	c := newTestChain(3)

	wantDirAfter := []int{1, 1, -1, -1, -1, 1}
	for i, want := range wantDirAfter {
		completeCycle(t, c)
		if c.Dir() != want {
			t.Errorf("after cycle %d: dir = %d, want %d", i, c.Dir(), want)
		}
	}
}

// TestBoundaryNodeGrowsThenShrinks 端点节点连续两次访问：先展开后收回
func TestBoundaryNodeGrowsThenShrinks(t *testing.T) {
	c := newTestChain(2)

	completeCycle(t, c) // node 0 grows, move to 1
	completeCycle(t, c) // node 1 grows, bounce
	if c.CurrentIndex() != 1 {
		t.Fatalf("current = %d, want 1", c.CurrentIndex())
	}
	if c.Current().Scale() != 1 {
		t.Fatalf("node 1 scale = %v, want 1", c.Current().Scale())
	}

	c.StartUpdating()
	if c.Current().Dir() != -1 {
		t.Errorf("second visit dir = %d, want -1 (shrink)", c.Current().Dir())
	}
}

// TestSingleNodeAlwaysBounces 单节点链每次都反弹
func TestSingleNodeAlwaysBounces(t *testing.T) {
	c := newTestChain(1)

	for i := 0; i < 4; i++ {
		res := completeCycle(t, c)
		if !res.BoundaryHit || res.NextIndex != 0 {
			t.Errorf("cycle %d: result %+v, want bounce at 0", i, res)
		}
	}
}

// TestUpdateIdle 静止时 Update 返回 TickIdle
func TestUpdateIdle(t *testing.T) {
	c := newTestChain(5)

	res := c.Update()
	if res.Status != TickIdle {
		t.Errorf("Update on idle chain = %v, want idle", res.Status)
	}
	if c.CurrentIndex() != 0 || c.Current().Scale() != 0 {
		t.Error("idle Update should not change the chain")
	}
}

// TestStartUpdatingWhileActive 周期中重复开始被忽略
func TestStartUpdatingWhileActive(t *testing.T) {
	c := newTestChain(5)

	if !c.StartUpdating() {
		t.Fatal("first StartUpdating should start")
	}
	c.Update()
	scale := c.Current().Scale()

	if c.StartUpdating() {
		t.Error("StartUpdating while active should be ignored")
	}
	if c.Current().Scale() != scale || c.Current().Dir() != 1 {
		t.Error("ignored StartUpdating changed state")
	}
	if !c.IsActive() {
		t.Error("chain should still be active")
	}
}

// TestOnlyCurrentNodeUpdates 只有当前节点的进度会变化
func TestOnlyCurrentNodeUpdates(t *testing.T) {
	c := newTestChain(5)
	c.StartUpdating()
	for i := 0; i < 10; i++ {
		c.Update()
	}

	for i := 1; i < c.Len(); i++ {
		if c.Node(i).Scale() != 0 {
			t.Errorf("node %d scale = %v, want 0", i, c.Node(i).Scale())
		}
	}
}

// TestDrawCurrentOnly 只绘制当前节点
func TestDrawCurrentOnly(t *testing.T) {
	c := newTestChain(5)
	completeCycle(t, c) // current -> 1

	rec := render.NewRecorder()
	c.Draw(rec, 800, 600)

	// 4 条线段，全部位于节点 1 的行（y = 200 附近）
	if len(rec.Strokes) != 4 {
		t.Fatalf("got %d strokes, want 4", len(rec.Strokes))
	}
	if rec.Strokes[0].Y1 != 200 {
		t.Errorf("first stroke y = %v, want 200", rec.Strokes[0].Y1)
	}
}

// TestTickStatusString 状态名称
func TestTickStatusString(t *testing.T) {
	tests := []struct {
		status TickStatus
		want   string
	}{
		{TickIdle, "idle"},
		{TickContinuing, "continuing"},
		{TickCompleted, "completed"},
		{TickStatus(9), "TickStatus(9)"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", int(tt.status), got, tt.want)
		}
	}
}
