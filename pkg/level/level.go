// Package level 关卡装配与关卡状态查询
//
// Assemble 按固定顺序把关卡定义变成实体管理器中的实体，
// Level 保存各类实体的有序ID列表，供物理系统、界面系统和渲染层使用。
package level

import (
	"github.com/gonewx/burgerball/pkg/components"
	"github.com/gonewx/burgerball/pkg/ecs"
	"github.com/gonewx/burgerball/pkg/geom"
	"github.com/gonewx/burgerball/pkg/types"
)

// TextureProvider 把图片ID解析为不透明的贴图句柄
type TextureProvider interface {
	Texture(imageID string) (types.TextureHandle, error)
}

// HUDRefs 界面元素的实体ID
type HUDRefs struct {
	SelectionCircle ecs.EntityID
	GhostBall       ecs.EntityID
	VelocityArrow   ecs.EntityID
	BallIcons       []ecs.EntityID // 与 Balls 一一对应
	Digits          []ecs.EntityID // Digits[0] 为个位
	EndLevelSuccess ecs.EntityID
	EndLevelFail    ecs.EntityID
	FinalScore      ecs.EntityID
}

// Level 一次关卡尝试的全部状态
//
// 实体归 EntityManager 所有，这里只保存按构建顺序排列的ID。
// 重试或切换关卡时整个 Level 连同实体管理器一起丢弃。
type Level struct {
	ID      string
	Name    string
	Chapter int

	EntityManager *ecs.EntityManager

	Borders         []ecs.EntityID
	Obstacles       []ecs.EntityID
	MovingObstacles []ecs.EntityID
	Targets         []ecs.EntityID
	Balls           []ecs.EntityID

	// Interactables 参与碰撞检测的实体：外墙、障碍物、移动障碍物、目标、球
	Interactables []ecs.EntityID
	// Drawables 所有需要绘制的实体，是 Interactables 的超集
	Drawables []ecs.EntityID

	HUD HUDRefs

	BallStart geom.Point
	Score     int

	bonus int
}

// ball 查询球组件，ID 无效时返回 nil
func (l *Level) ball(id ecs.EntityID) *components.BallComponent {
	b, ok := ecs.GetComponent[*components.BallComponent](l.EntityManager, id)
	if !ok {
		return nil
	}
	return b
}

// ReadyBall 返回等待发射的球
func (l *Level) ReadyBall() (ecs.EntityID, bool) {
	for _, id := range l.Balls {
		if b := l.ball(id); b != nil && b.State == types.BallReady {
			return id, true
		}
	}
	return 0, false
}

// InFlightBall 返回正在飞行的球
func (l *Level) InFlightBall() (ecs.EntityID, bool) {
	for _, id := range l.Balls {
		if b := l.ball(id); b != nil && b.State == types.BallInFlight {
			return id, true
		}
	}
	return 0, false
}

// NextWaitingBall 返回序号最小的等待中的球
func (l *Level) NextWaitingBall() (ecs.EntityID, bool) {
	for _, id := range l.Balls {
		if b := l.ball(id); b != nil && b.State == types.BallWaiting {
			return id, true
		}
	}
	return 0, false
}

// RemainingBalls 仍可能命中目标的球数（等待、待发射、飞行中）
func (l *Level) RemainingBalls() int {
	n := 0
	for _, id := range l.Balls {
		if b := l.ball(id); b != nil && b.State.Remaining() {
			n++
		}
	}
	return n
}

// BallsInReserve 尚未发射的球数（等待、待发射）
func (l *Level) BallsInReserve() int {
	n := 0
	for _, id := range l.Balls {
		if b := l.ball(id); b != nil && (b.State == types.BallWaiting || b.State == types.BallReady) {
			n++
		}
	}
	return n
}

// TargetsLeft 未收集的目标数
func (l *Level) TargetsLeft() int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[*components.TargetComponent](l.EntityManager) {
		if t, _ := ecs.GetComponent[*components.TargetComponent](l.EntityManager, id); !t.Collected {
			n++
		}
	}
	return n
}

// FinalScore 结算分数：当前分数 + 未发射球数 × 奖励分
func (l *Level) FinalScore() int {
	return l.Score + l.BallsInReserve()*l.bonus
}

// EvaluateOutcome 判断关卡结果，只读查询
//
// 至少有一个目标且全部收集为成功；
// 目标未收集完且没有等待、待发射或飞行中的球为失败；其余情况为进行中。
func EvaluateOutcome(l *Level) types.Outcome {
	if len(l.Targets) > 0 && l.TargetsLeft() == 0 {
		return types.OutcomeSuccess
	}
	if l.RemainingBalls() == 0 {
		return types.OutcomeFailure
	}
	return types.OutcomePlaying
}
