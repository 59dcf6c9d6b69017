package components

import (
	"github.com/gonewx/burgerball/pkg/geom"
	"github.com/gonewx/burgerball/pkg/types"
)

// ObstacleComponent 障碍物（含外墙和移动障碍物）的响应形状
type ObstacleComponent struct {
	Shape types.ObstacleShape
}

// MoverComponent 移动障碍物独占的路径状态
//
// 障碍物包围盒中心沿 Waypoints 移动：Segment 为当前段起点下标，
// Progress 为已走过的距离，Direction 为 +1 或 -1（仅 bounce 模式会变为 -1）。
type MoverComponent struct {
	Waypoints []geom.Point
	Mode      types.PathMode
	Speed     float32 // 每帧移动距离
	Segment   int
	Progress  float32
	Direction int
	Velocity  geom.Point // 本帧位移，碰撞响应时传递给球
}

// Next 当前段的终点下标
func (m *MoverComponent) Next() int {
	n := len(m.Waypoints)
	next := m.Segment + m.Direction
	if m.Mode == types.PathLoop {
		return ((next % n) + n) % n
	}
	return next
}
