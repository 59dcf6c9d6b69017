package components

import "github.com/gonewx/burgerball/pkg/types"

// HUDComponent 界面元素的角色
type HUDComponent struct {
	Role  types.HUDRole
	Index int // 记分牌位（0 为个位）或剩余球图标序号
}

// DigitComponent 记分牌数字位可切换的贴图
type DigitComponent struct {
	Textures [10]types.TextureHandle
	Value    int
}
