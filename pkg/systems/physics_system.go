package systems

import (
	"log"
	"math"

	"github.com/gonewx/burgerball/pkg/components"
	"github.com/gonewx/burgerball/pkg/config"
	"github.com/gonewx/burgerball/pkg/ecs"
	"github.com/gonewx/burgerball/pkg/geom"
	"github.com/gonewx/burgerball/pkg/level"
	"github.com/gonewx/burgerball/pkg/types"
)

// PhysicsSystem 球的运动与碰撞
//
// 每帧依次执行：
//  1. 积分：速度加重力并限幅
//  2. 移动障碍物前进一步
//  3. 球按速度分子步平移，每个子步后做宽阶段包围盒相交测试，
//     再按实体类型做窄阶段碰撞响应或目标收集
//  4. 停稳检测：离开场地或连续低速
//
// 子步在任一轴上的位移不超过球半径，球不会穿过任何墙体或障碍物。
// 球之间不发生碰撞。
type PhysicsSystem struct {
	em     *ecs.EntityManager
	cfg    *config.GameConfig
	lvl    *level.Level
	movers *MovePathSystem
	arena  geom.AABB
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - cfg: 游戏配置（重力、弹性、速度上限、停稳阈值）
//   - lvl: 当前关卡，物理系统只通过其中的ID访问实体
//
// 返回:
//   - *PhysicsSystem: 物理系统实例
func NewPhysicsSystem(cfg *config.GameConfig, lvl *level.Level) *PhysicsSystem {
	return &PhysicsSystem{
		em:     lvl.EntityManager,
		cfg:    cfg,
		lvl:    lvl,
		movers: NewMovePathSystem(lvl.EntityManager),
		arena:  geom.AABB{MinX: 0, MaxX: cfg.Arena.Width, MinY: 0, MaxY: cfg.Arena.Height},
	}
}

// flyingBall 飞行中的球的组件
type flyingBall struct {
	id   ecs.EntityID
	ball *components.BallComponent
	body *components.BodyComponent
}

// Update 推进一帧
func (ps *PhysicsSystem) Update() {
	flying := ps.flyingBalls()

	for _, fb := range flying {
		ps.integrate(fb)
	}

	ps.movers.Update()

	for _, fb := range flying {
		ps.advance(fb)
	}

	for _, fb := range flying {
		if fb.ball.State == types.BallInFlight {
			ps.settle(fb)
		}
	}
}

func (ps *PhysicsSystem) flyingBalls() []flyingBall {
	var out []flyingBall
	for _, id := range ps.lvl.Balls {
		ball, ok := ecs.GetComponent[*components.BallComponent](ps.em, id)
		if !ok || !ball.Active() {
			continue
		}
		body, ok := ecs.GetComponent[*components.BodyComponent](ps.em, id)
		if !ok {
			continue
		}
		out = append(out, flyingBall{id: id, ball: ball, body: body})
	}
	return out
}

func clamp(v, limit float32) float32 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}

func (ps *PhysicsSystem) integrate(fb flyingBall) {
	g := ps.cfg.Physics.Gravity.Geom()
	limit := ps.cfg.Physics.MaxVelocity
	v := fb.ball.Velocity.Add(g)
	v = geom.Pt(clamp(v.X, limit), clamp(v.Y, limit))
	fb.ball.Velocity = v
}

// advance 按子步平移球，每个子步后检测碰撞，球被目标消耗后停止
func (ps *PhysicsSystem) advance(fb flyingBall) {
	steps := substeps(fb.ball.Velocity, fb.ball.Radius)
	for i := 0; i < steps && fb.ball.State == types.BallInFlight; i++ {
		step := fb.ball.Velocity.Scale(1 / float32(steps))
		fb.body.Translate(step.X, step.Y)
		ps.collide(fb)
	}
}

// substeps 一帧位移需要拆成的子步数，每步在任一轴上不超过 radius
func substeps(v geom.Point, radius float32) int {
	m := math.Max(math.Abs(float64(v.X)), math.Abs(float64(v.Y)))
	if radius <= 0 || m <= float64(radius) {
		return 1
	}
	return int(math.Ceil(m / float64(radius)))
}

// collide 对一个球做宽阶段和窄阶段检测，球被目标消耗后立即停止
func (ps *PhysicsSystem) collide(fb flyingBall) {
	for _, id := range ps.lvl.Interactables {
		if id == fb.id {
			continue
		}
		kind, ok := ecs.GetComponent[*components.EntityTypeComponent](ps.em, id)
		if !ok || kind.Kind == types.KindBall {
			continue
		}
		other, ok := ecs.GetComponent[*components.BodyComponent](ps.em, id)
		if !ok || !fb.body.Bounds.Intersects(other.Bounds) {
			continue
		}

		switch {
		case kind.Kind == types.KindTarget:
			if ps.collectTarget(fb, id, other) {
				return
			}
		case kind.Kind.IsSolid():
			ps.bounce(fb, id, other)
		}
	}
}

// collectTarget 球心与目标中心距离不超过两半径之和时收集目标
//
// 返回:
//   - bool: 球是否被消耗
func (ps *PhysicsSystem) collectTarget(fb flyingBall, id ecs.EntityID, body *components.BodyComponent) bool {
	target, ok := ecs.GetComponent[*components.TargetComponent](ps.em, id)
	if !ok || target.Collected {
		return false
	}
	reach := fb.ball.Radius + target.Radius
	if fb.body.Center().Sub(body.Center()).Len() > reach {
		return false
	}

	target.Collected = true
	ps.lvl.Score += target.Score
	fb.ball.State = types.BallConsumed
	fb.ball.Velocity = geom.Point{}
	setVisible(ps.em, id, false)
	setVisible(ps.em, fb.id, false)
	log.Printf("[PhysicsSystem] Ball %d collected target %d (+%d, score %d)",
		fb.ball.Index, id, target.Score, ps.lvl.Score)
	return true
}

// bounce 把球推出障碍物，球正在靠近时按法线反射并乘以弹性系数
//
// 移动障碍物在其参考系中计算，再把障碍物本帧速度加回球上。
func (ps *PhysicsSystem) bounce(fb flyingBall, id ecs.EntityID, body *components.BodyComponent) {
	shape := types.ShapePolygon
	if obstacle, ok := ecs.GetComponent[*components.ObstacleComponent](ps.em, id); ok {
		shape = obstacle.Shape
	}

	var frame geom.Point
	if mover, ok := ecs.GetComponent[*components.MoverComponent](ps.em, id); ok {
		frame = mover.Velocity
	}

	var normal geom.Point
	var depth float32
	var hit bool
	if shape == types.ShapeBall {
		normal, depth, hit = circleContact(fb.body.Center(), fb.ball.Radius, body.Bounds)
	} else {
		normal, depth, hit = boxContact(fb.body.Bounds, body.Bounds, fb.ball.Velocity.Sub(frame))
	}
	if !hit {
		return
	}

	push := normal.Scale(depth)
	fb.body.Translate(push.X, push.Y)
	fb.ball.Velocity = reflectInFrame(fb.ball.Velocity, frame, normal, ps.cfg.Physics.Elasticity)
}

// reflectInFrame 在以 frame 速度运动的参考系中反射速度
func reflectInFrame(v, frame, normal geom.Point, elasticity float32) geom.Point {
	rel := v.Sub(frame)
	if rel.Dot(normal) >= 0 {
		return v
	}
	return rel.Reflect(normal).Scale(elasticity).Add(frame)
}

// boxContact 按包围盒近似：穿透最浅的一侧给出法线和深度
//
// 深度相同时取与相对速度 rel 最相对的法线。
func boxContact(ball, other geom.AABB, rel geom.Point) (geom.Point, float32, bool) {
	if !ball.Intersects(other) {
		return geom.Point{}, 0, false
	}
	candidates := []struct {
		depth  float32
		normal geom.Point
	}{
		{ball.MaxX - other.MinX, geom.Pt(-1, 0)},
		{other.MaxX - ball.MinX, geom.Pt(1, 0)},
		{ball.MaxY - other.MinY, geom.Pt(0, -1)},
		{other.MaxY - ball.MinY, geom.Pt(0, 1)},
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.depth < best.depth || (c.depth == best.depth && c.normal.Dot(rel) < best.normal.Dot(rel)) {
			best = c
		}
	}
	return best.normal, best.depth, true
}

// circleContact 球与球形障碍物（半径取包围盒短边的一半）的圆-圆接触
func circleContact(center geom.Point, radius float32, other geom.AABB) (geom.Point, float32, bool) {
	otherRadius := float32(math.Min(float64(other.Width()), float64(other.Height()))) / 2
	d := center.Sub(other.Center())
	dist := d.Len()
	reach := radius + otherRadius
	if dist > reach {
		return geom.Point{}, 0, false
	}
	if dist == 0 {
		return geom.Pt(0, 1), reach, true
	}
	return d.Scale(1 / dist), reach - dist, true
}

// settle 判断球是否停稳：球心离开场地，或连续 RestTicks 帧速度低于 RestSpeed
func (ps *PhysicsSystem) settle(fb flyingBall) {
	center := fb.body.Center()
	if !ps.arena.Contains(center) {
		fb.ball.State = types.BallSettled
		setVisible(ps.em, fb.id, false)
		log.Printf("[PhysicsSystem] Ball %d left the playfield at (%.1f, %.1f)", fb.ball.Index, center.X, center.Y)
		return
	}

	if fb.ball.Velocity.Len() >= ps.cfg.Physics.RestSpeed {
		fb.ball.RestTicks = 0
		return
	}
	fb.ball.RestTicks++
	if fb.ball.RestTicks >= ps.cfg.Physics.RestTicks {
		fb.ball.State = types.BallSettled
		fb.ball.Velocity = geom.Point{}
		log.Printf("[PhysicsSystem] Ball %d came to rest at (%.1f, %.1f)", fb.ball.Index, center.X, center.Y)
	}
}

func setVisible(em *ecs.EntityManager, id ecs.EntityID, visible bool) {
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, id); ok {
		sprite.Visible = visible
	}
}
