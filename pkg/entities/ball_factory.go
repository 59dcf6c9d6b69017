package entities

import (
	"github.com/gonewx/burgerball/pkg/components"
	"github.com/gonewx/burgerball/pkg/ecs"
	"github.com/gonewx/burgerball/pkg/geom"
	"github.com/gonewx/burgerball/pkg/types"
)

// NewBall 创建一个球
//
// 所有球在关卡开始时一次创建，停放在发射点；
// 只有 Ready 状态的球可见，Waiting 的球等轮到时才显示。
//
// 参数:
//   - em: 实体管理器
//   - center: 发射点（球心）
//   - radius: 半径
//   - index: 球序号
//   - state: 初始状态（第一个球为 Ready，其余为 Waiting）
//   - texture: 本章球贴图
func NewBall(em *ecs.EntityManager, center geom.Point, radius float32, index int,
	state types.BallState, texture types.TextureHandle) (ecs.EntityID, error) {
	id, _, err := newShapedEntity(em, types.KindBall, geom.CircleQuad(center, radius), texture,
		components.LayerBall, state != types.BallWaiting)
	if err != nil {
		return 0, err
	}
	em.AddComponent(id, &components.BallComponent{
		Index:  index,
		Radius: radius,
		State:  state,
	})
	return id, nil
}
