package entities

import (
	"github.com/gonewx/burgerball/pkg/components"
	"github.com/gonewx/burgerball/pkg/ecs"
	"github.com/gonewx/burgerball/pkg/geom"
	"github.com/gonewx/burgerball/pkg/types"
)

// NewTarget 创建目标
// 目标的判定中心是顶点包围盒的中心，判定半径固定
//
// 参数:
//   - em: 实体管理器
//   - points: 目标顶点
//   - radius: 判定半径
//   - score: 收集得分
//   - texture: 目标贴图
func NewTarget(em *ecs.EntityManager, points []geom.Point, radius float32, score int, texture types.TextureHandle) (ecs.EntityID, error) {
	id, _, err := newShapedEntity(em, types.KindTarget, points, texture, components.LayerTarget, true)
	if err != nil {
		return 0, err
	}
	em.AddComponent(id, &components.TargetComponent{Radius: radius, Score: score})
	return id, nil
}
