// Package aim 拖拽瞄准的纯计算：拖拽向量 → 发射角度、力度、初速度
//
// 所有函数都是纯函数，坐标为竞技场坐标（y 轴向上）。
// 向下拖拽表示向上发射，水平方向与拖拽方向相反（弹弓手感）。
package aim

import (
	"math"

	"github.com/gonewx/burgerball/pkg/config"
	"github.com/gonewx/burgerball/pkg/geom"
)

// arrowHalfWidth 速度箭头的半宽
const arrowHalfWidth = 5

// dragDelta 返回 (xChange, yChange)，yChange 取反使得向下拖拽为正
func dragDelta(start, end geom.Point) (float64, float64) {
	return float64(end.X - start.X), float64(start.Y - end.Y)
}

// FiringAngle 发射仰角（弧度），范围 [-π/2, π/2]
//
// xChange 为零时按 yChange 的符号取 ±π/2，拖拽长度为零时取 π/2（竖直向上）。
func FiringAngle(start, end geom.Point) float64 {
	dx, dy := dragDelta(start, end)
	if dx == 0 {
		if dy < 0 {
			return -math.Pi / 2
		}
		return math.Pi / 2
	}
	return math.Atan(dy / math.Abs(dx))
}

// FiringPower 发射力度，拖拽长度除以响应半径，限制在 [MinPower, 1]
func FiringPower(cfg config.AimConfig, start, end geom.Point) float32 {
	dx, dy := dragDelta(start, end)
	power := float32(math.Hypot(dx, dy)) / cfg.ResponseRadius
	if power > 1 {
		return 1
	}
	if power < cfg.MinPower {
		return cfg.MinPower
	}
	return power
}

// MinLaunchSpeed 竖直方向的最小发射速度
func MinLaunchSpeed(cfg config.AimConfig) float32 {
	return cfg.MinPower * cfg.MaxInitialVelocityY
}

// CalculateVelocity 由拖拽起止点计算发射初速度
//
// 参数:
//   - cfg: 瞄准参数
//   - start: 拖拽起点
//   - end: 拖拽终点（松手位置）
//
// 返回:
//   - geom.Point: 初速度，两个分量分别按各自的满力度速度缩放，竖直分量不低于 MinLaunchSpeed
func CalculateVelocity(cfg config.AimConfig, start, end geom.Point) geom.Point {
	angle := FiringAngle(start, end)
	power := float64(FiringPower(cfg, start, end))

	vx := float32(math.Cos(angle) * power * float64(cfg.MaxInitialVelocityX))
	if end.X-start.X >= 0 {
		vx = -vx
	}
	vy := float32(math.Sin(angle) * power * float64(cfg.MaxInitialVelocityY))
	if floor := MinLaunchSpeed(cfg); vy < floor {
		vy = floor
	}
	return geom.Pt(vx, vy)
}

// ArrowQuad 速度箭头的四个顶点
//
// 箭头从球面延伸到 ResponseRadius*power，沿 velocity 方向旋转后放到 center。
// velocity 为零时箭头竖直向上。
//
// 参数:
//   - cfg: 游戏配置（响应半径、球半径）
//   - center: 发射点
//   - velocity: 将要发射的速度（只用其方向）
//   - power: 力度 [0, 1]
func ArrowQuad(cfg *config.GameConfig, center, velocity geom.Point, power float32) []geom.Point {
	rot := 0.0
	if !velocity.IsZero() {
		rot = math.Atan2(float64(velocity.Y), float64(velocity.X)) - math.Pi/2
	}
	cos, sin := float32(math.Cos(rot)), float32(math.Sin(rot))

	tip := cfg.Aim.ResponseRadius * power
	base := cfg.Ball.Radius
	quad := []geom.Point{
		{X: -arrowHalfWidth, Y: tip},
		{X: -arrowHalfWidth, Y: base},
		{X: arrowHalfWidth, Y: base},
		{X: arrowHalfWidth, Y: tip},
	}
	for i, p := range quad {
		quad[i] = geom.Pt(p.X*cos-p.Y*sin+center.X, p.Y*cos+p.X*sin+center.Y)
	}
	return quad
}
