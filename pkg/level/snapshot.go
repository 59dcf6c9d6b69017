package level

import (
	"github.com/gonewx/burgerball/pkg/components"
	"github.com/gonewx/burgerball/pkg/ecs"
	"github.com/gonewx/burgerball/pkg/geom"
	"github.com/gonewx/burgerball/pkg/types"
)

// DrawRecord 渲染层使用的只读快照
//
// 顶点是复制出来的，渲染层可以在别的 goroutine 中持有它而不影响物理状态。
type DrawRecord struct {
	ID       ecs.EntityID
	Kind     types.EntityKind
	Role     types.HUDRole       // 仅 Kind 为 KindDecoration 时有效
	Shape    types.ObstacleShape // 仅外墙和障碍物有效
	Vertices []geom.Point
	Bounds   geom.AABB
	Texture  types.TextureHandle
	Layer    int
	Visible  bool
}

// InteractableRecord 参与碰撞的实体快照
type InteractableRecord struct {
	ID     ecs.EntityID
	Kind   types.EntityKind
	Bounds geom.AABB
	Active bool // 未收集的目标、飞行中的球、所有障碍物为 true
}

// DrawRecords 按构建顺序返回所有可绘制实体的快照
func (l *Level) DrawRecords() []DrawRecord {
	em := l.EntityManager
	out := make([]DrawRecord, 0, len(l.Drawables))
	for _, id := range l.Drawables {
		body, ok := ecs.GetComponent[*components.BodyComponent](em, id)
		if !ok {
			continue
		}
		rec := DrawRecord{
			ID:       id,
			Vertices: append([]geom.Point(nil), body.Vertices...),
			Bounds:   body.Bounds,
		}
		if kind, ok := ecs.GetComponent[*components.EntityTypeComponent](em, id); ok {
			rec.Kind = kind.Kind
		}
		if hud, ok := ecs.GetComponent[*components.HUDComponent](em, id); ok {
			rec.Role = hud.Role
		}
		if obstacle, ok := ecs.GetComponent[*components.ObstacleComponent](em, id); ok {
			rec.Shape = obstacle.Shape
		}
		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, id); ok {
			rec.Texture = sprite.Texture
			rec.Layer = sprite.Layer
			rec.Visible = sprite.Visible
		}
		out = append(out, rec)
	}
	return out
}

// InteractableRecords 按构建顺序返回所有可交互实体的快照
func (l *Level) InteractableRecords() []InteractableRecord {
	em := l.EntityManager
	out := make([]InteractableRecord, 0, len(l.Interactables))
	for _, id := range l.Interactables {
		body, ok := ecs.GetComponent[*components.BodyComponent](em, id)
		if !ok {
			continue
		}
		kind, _ := ecs.GetComponent[*components.EntityTypeComponent](em, id)
		rec := InteractableRecord{ID: id, Bounds: body.Bounds, Active: true}
		if kind != nil {
			rec.Kind = kind.Kind
		}
		if t, ok := ecs.GetComponent[*components.TargetComponent](em, id); ok {
			rec.Active = !t.Collected
		}
		if b, ok := ecs.GetComponent[*components.BallComponent](em, id); ok {
			rec.Active = b.Active()
		}
		out = append(out, rec)
	}
	return out
}
