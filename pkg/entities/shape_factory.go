package entities

import (
	"fmt"

	"github.com/gonewx/burgerball/pkg/components"
	"github.com/gonewx/burgerball/pkg/ecs"
	"github.com/gonewx/burgerball/pkg/geom"
	"github.com/gonewx/burgerball/pkg/types"
)

// newShapedEntity 创建带形状、类型标签和贴图的实体
//
// 先计算包围盒再创建实体，几何数据非法时不会留下半成品实体。
func newShapedEntity(em *ecs.EntityManager, kind types.EntityKind, points []geom.Point,
	texture types.TextureHandle, layer int, visible bool) (ecs.EntityID, *components.BodyComponent, error) {
	if em == nil {
		return 0, nil, fmt.Errorf("entity manager cannot be nil")
	}

	body, err := components.NewBodyComponent(points)
	if err != nil {
		return 0, nil, fmt.Errorf("%s: %w", kind, err)
	}

	id := em.CreateEntity()
	em.AddComponent(id, body)
	em.AddComponent(id, &components.EntityTypeComponent{Kind: kind})
	em.AddComponent(id, &components.SpriteComponent{
		Texture: texture,
		Layer:   layer,
		Visible: visible,
	})
	return id, body, nil
}
