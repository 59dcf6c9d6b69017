package systems

import (
	"github.com/gonewx/burgerball/pkg/components"
	"github.com/gonewx/burgerball/pkg/ecs"
	"github.com/gonewx/burgerball/pkg/geom"
	"github.com/gonewx/burgerball/pkg/types"
)

// MovePathSystem 推进移动障碍物
//
// 每帧沿路径移动 Speed 的距离，越过路径点时剩余距离继续用于下一段。
// loop 模式走完最后一段回到第一个路径点，bounce 模式在两端反向。
type MovePathSystem struct {
	em *ecs.EntityManager
}

// NewMovePathSystem 创建移动路径系统
func NewMovePathSystem(em *ecs.EntityManager) *MovePathSystem {
	return &MovePathSystem{em: em}
}

// Update 按构建顺序推进所有移动障碍物一帧
func (s *MovePathSystem) Update() {
	movers := ecs.GetEntitiesWith2[*components.MoverComponent, *components.BodyComponent](s.em)
	for _, id := range movers {
		body, _ := ecs.GetComponent[*components.BodyComponent](s.em, id)
		mover, _ := ecs.GetComponent[*components.MoverComponent](s.em, id)
		from := body.Center()
		to := advanceMover(mover, from)
		mover.Velocity = to.Sub(from)
		body.Translate(mover.Velocity.X, mover.Velocity.Y)
	}
}

// advanceMover 从 pos 出发沿路径走 Speed 的距离，返回新位置并更新段状态
func advanceMover(m *components.MoverComponent, pos geom.Point) geom.Point {
	n := len(m.Waypoints)
	if n < 2 || m.Speed <= 0 {
		return pos
	}

	remaining := m.Speed
	// 所有路径点重合时每段长度为零，限制一帧内最多经过的段数
	for hops := 0; remaining > 0 && hops <= 2*n; hops++ {
		target := m.Waypoints[m.Next()]
		delta := target.Sub(pos)
		dist := delta.Len()
		if dist > remaining {
			pos = pos.Add(delta.Scale(remaining / dist))
			break
		}
		pos = target
		remaining -= dist
		m.Segment = m.Next()
		if m.Mode == types.PathBounce {
			if next := m.Segment + m.Direction; next < 0 || next >= n {
				m.Direction = -m.Direction
			}
		}
	}
	m.Progress = pos.Sub(m.Waypoints[m.Segment]).Len()
	return pos
}
