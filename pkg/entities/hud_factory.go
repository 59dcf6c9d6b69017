package entities

import (
	"github.com/gonewx/burgerball/pkg/components"
	"github.com/gonewx/burgerball/pkg/config"
	"github.com/gonewx/burgerball/pkg/ecs"
	"github.com/gonewx/burgerball/pkg/geom"
	"github.com/gonewx/burgerball/pkg/types"
)

// 界面元素的布局只取决于场地常量，与物理无关。

// ResponseCenter 发射区域中心（选择圈圆心）
func ResponseCenter(cfg *config.GameConfig) geom.Point {
	return geom.Pt(cfg.Arena.Width/2, cfg.Arena.BorderWidth*4)
}

// BallsRemainingIconQuad 第 index 个剩余球图标，从右下角向左排列
func BallsRemainingIconQuad(arena config.ArenaConfig, index int) []geom.Point {
	box := arena.BorderWidth
	sep := float32(index) * 1.5
	right := arena.Width - box*sep
	return geom.RectQuad(right-box, 0, right, box)
}

// ScoreDigitQuad 记分牌第 place 位（0 为个位），从右上角向左排列
func ScoreDigitQuad(arena config.ArenaConfig, place int) []geom.Point {
	box := arena.BorderWidth * 2
	right := arena.Width - box*float32(place)
	return geom.RectQuad(right-box, arena.Height-box, right, arena.Height)
}

// BannerQuad 结算横幅区域
func BannerQuad(arena config.ArenaConfig, role types.HUDRole) []geom.Point {
	w, h := arena.Width, arena.Height
	switch role {
	case types.HUDEndLevelFail:
		return geom.RectQuad(0, h*0.034, w, h*0.7)
	case types.HUDFinalScore:
		return geom.RectQuad(0, h*0.2, w*0.3, h*0.4)
	default:
		return geom.RectQuad(0, h*0.4, w, h*0.7)
	}
}

// NewHUDElement 创建一个只绘制的界面元素
//
// 参数:
//   - em: 实体管理器
//   - role: 界面角色
//   - index: 角色内序号（记分牌位、剩余球图标序号），其他角色为 0
//   - points: 顶点
//   - texture: 贴图
//   - layer: 绘制层级
//   - visible: 初始是否可见
func NewHUDElement(em *ecs.EntityManager, role types.HUDRole, index int, points []geom.Point,
	texture types.TextureHandle, layer int, visible bool) (ecs.EntityID, error) {
	id, _, err := newShapedEntity(em, types.KindDecoration, points, texture, layer, visible)
	if err != nil {
		return 0, err
	}
	em.AddComponent(id, &components.HUDComponent{Role: role, Index: index})
	return id, nil
}

// NewScoreDigit 创建记分牌的一位数字，初始显示 0
func NewScoreDigit(em *ecs.EntityManager, arena config.ArenaConfig, place int, digits [10]types.TextureHandle) (ecs.EntityID, error) {
	id, err := NewHUDElement(em, types.HUDScoreDigit, place, ScoreDigitQuad(arena, place),
		digits[0], components.LayerHUD, true)
	if err != nil {
		return 0, err
	}
	em.AddComponent(id, &components.DigitComponent{Textures: digits})
	return id, nil
}
