package components

import "github.com/gonewx/burgerball/pkg/types"

// 绘制层级，数值越大越靠上
const (
	LayerBorder = iota
	LayerObstacle
	LayerTarget
	LayerBall
	LayerHUD
	LayerBanner
)

// SpriteComponent 存储实体的视觉表现
//
// Texture 是纹理提供者返回的不透明句柄，渲染层负责解释。
type SpriteComponent struct {
	Texture types.TextureHandle
	Layer   int
	Visible bool
}
