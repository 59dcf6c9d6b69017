// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import "fmt"

// EntityKind 实体变体标签
//
// 关卡内所有可交互实体共享同一个 BodyComponent（顶点 + 包围盒），
// 通过这个标签区分具体变体，代替原先的继承层次。
type EntityKind int

const (
	// KindUnknown 未知实体
	KindUnknown EntityKind = iota
	// KindBorder 外墙（每关固定四块）
	KindBorder
	// KindObstacle 静态障碍物
	KindObstacle
	// KindMovingObstacle 沿路径移动的障碍物
	KindMovingObstacle
	// KindTarget 目标
	KindTarget
	// KindBall 球
	KindBall
	// KindDecoration 只绘制不参与物理的界面元素
	KindDecoration
)

// String 返回实体类型的字符串表示
func (k EntityKind) String() string {
	switch k {
	case KindBorder:
		return "Border"
	case KindObstacle:
		return "Obstacle"
	case KindMovingObstacle:
		return "MovingObstacle"
	case KindTarget:
		return "Target"
	case KindBall:
		return "Ball"
	case KindDecoration:
		return "Decoration"
	default:
		return "Unknown"
	}
}

// IsSolid 是否为球会反弹的实体
func (k EntityKind) IsSolid() bool {
	return k == KindBorder || k == KindObstacle || k == KindMovingObstacle
}

// ObstacleShape 障碍物的碰撞响应形状
type ObstacleShape int

const (
	// ShapePolygon 多边形，响应时按包围盒近似
	ShapePolygon ObstacleShape = iota
	// ShapeBall 圆形，响应时按圆与圆计算
	ShapeBall
)

// String 返回形状的配置名
func (s ObstacleShape) String() string {
	switch s {
	case ShapeBall:
		return "ball"
	default:
		return "polygon"
	}
}

// ParseObstacleShape 解析配置中的形状名，空字符串视为 polygon
func ParseObstacleShape(name string) (ObstacleShape, error) {
	switch name {
	case "", "polygon":
		return ShapePolygon, nil
	case "ball":
		return ShapeBall, nil
	default:
		return ShapePolygon, fmt.Errorf("unknown obstacle shape %q (want polygon or ball)", name)
	}
}

// TextureHandle 纹理提供者返回的不透明句柄，核心逻辑不解释其含义
type TextureHandle uint32
