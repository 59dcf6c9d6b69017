package entities

import (
	"github.com/gonewx/burgerball/pkg/components"
	"github.com/gonewx/burgerball/pkg/config"
	"github.com/gonewx/burgerball/pkg/ecs"
	"github.com/gonewx/burgerball/pkg/geom"
	"github.com/gonewx/burgerball/pkg/types"
)

// BorderQuads 外墙的四个多边形：左墙、右墙、顶棚、地面
//
// 外墙几何与关卡无关，只由场地尺寸决定。
func BorderQuads(arena config.ArenaConfig) [][]geom.Point {
	w, h, bw := arena.Width, arena.Height, arena.BorderWidth
	return [][]geom.Point{
		geom.RectQuad(0, 0, bw, h),
		geom.RectQuad(w-bw, 0, w, h),
		geom.RectQuad(0, h-bw, w, h),
		geom.RectQuad(0, 0, w, bw),
	}
}

// NewBorders 创建四面外墙
//
// 参数:
//   - em: 实体管理器
//   - arena: 场地尺寸
//   - texture: 本章墙体贴图
//
// 返回:
//   - []ecs.EntityID: 四面墙的实体ID（顺序同 BorderQuads）
//   - error: 创建失败时返回错误
func NewBorders(em *ecs.EntityManager, arena config.ArenaConfig, texture types.TextureHandle) ([]ecs.EntityID, error) {
	quads := BorderQuads(arena)
	ids := make([]ecs.EntityID, 0, len(quads))
	for _, quad := range quads {
		id, _, err := newShapedEntity(em, types.KindBorder, quad, texture, components.LayerBorder, true)
		if err != nil {
			return nil, err
		}
		em.AddComponent(id, &components.ObstacleComponent{Shape: types.ShapePolygon})
		ids = append(ids, id)
	}
	return ids, nil
}
