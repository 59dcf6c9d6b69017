package entities

import (
	"fmt"

	"github.com/gonewx/burgerball/pkg/components"
	"github.com/gonewx/burgerball/pkg/ecs"
	"github.com/gonewx/burgerball/pkg/geom"
	"github.com/gonewx/burgerball/pkg/types"
)

// MovePath 移动障碍物的路径定义
type MovePath struct {
	Waypoints []geom.Point   // 包围盒中心依次经过的点
	Mode      types.PathMode // loop 或 bounce
	Speed     float32        // 每帧移动距离
}

// NewObstacle 创建静态障碍物
//
// 参数:
//   - em: 实体管理器
//   - points: 障碍物顶点
//   - shape: 碰撞响应形状
//   - texture: 墙体贴图
//
// 返回:
//   - ecs.EntityID: 障碍物实体ID
//   - error: 顶点为空时返回包装后的 geom.ErrInvalidGeometry
func NewObstacle(em *ecs.EntityManager, points []geom.Point, shape types.ObstacleShape, texture types.TextureHandle) (ecs.EntityID, error) {
	id, _, err := newShapedEntity(em, types.KindObstacle, points, texture, components.LayerObstacle, true)
	if err != nil {
		return 0, err
	}
	em.AddComponent(id, &components.ObstacleComponent{Shape: shape})
	return id, nil
}

// NewMovingObstacle 创建沿路径移动的障碍物
//
// 障碍物的形状取自 points，构建时整体平移到第一个路径点（包围盒中心对齐）。
//
// 参数:
//   - em: 实体管理器
//   - points: 障碍物顶点
//   - shape: 碰撞响应形状
//   - path: 独占的移动路径（至少两个路径点，速度为正）
//   - texture: 墙体贴图
func NewMovingObstacle(em *ecs.EntityManager, points []geom.Point, shape types.ObstacleShape,
	path MovePath, texture types.TextureHandle) (ecs.EntityID, error) {
	if len(path.Waypoints) < 2 {
		return 0, fmt.Errorf("move path needs at least 2 waypoints, got %d", len(path.Waypoints))
	}
	if path.Speed <= 0 {
		return 0, fmt.Errorf("move path speed must be positive, got %v", path.Speed)
	}

	id, body, err := newShapedEntity(em, types.KindMovingObstacle, points, texture, components.LayerObstacle, true)
	if err != nil {
		return 0, err
	}
	body.MoveCenterTo(path.Waypoints[0])

	waypoints := make([]geom.Point, len(path.Waypoints))
	copy(waypoints, path.Waypoints)

	em.AddComponent(id, &components.ObstacleComponent{Shape: shape})
	em.AddComponent(id, &components.MoverComponent{
		Waypoints: waypoints,
		Mode:      path.Mode,
		Speed:     path.Speed,
		Direction: 1,
	})
	return id, nil
}
