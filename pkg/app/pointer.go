package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pointerState 当前帧的拖拽输入
// 统一处理鼠标和触摸，坐标为屏幕像素
type pointerState struct {
	JustPressed  bool
	Pressed      bool
	JustReleased bool
	X, Y         int
}

// pointer 跟踪一次拖拽使用的输入源
//
// 触摸优先：一根手指按下后一直跟踪它直到抬起，期间忽略鼠标。
type pointer struct {
	touchID      ebiten.TouchID
	touching     bool
	lastX, lastY int
}

// read 读取本帧输入状态
func (p *pointer) read() pointerState {
	if !p.touching {
		if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
			p.touchID = ids[0]
			p.touching = true
			p.lastX, p.lastY = ebiten.TouchPosition(p.touchID)
			return pointerState{JustPressed: true, Pressed: true, X: p.lastX, Y: p.lastY}
		}
	}

	if p.touching {
		// 抬起后 TouchPosition 返回 (0, 0)，用最后一次的位置
		if inpututil.IsTouchJustReleased(p.touchID) {
			p.touching = false
			return pointerState{JustReleased: true, X: p.lastX, Y: p.lastY}
		}
		p.lastX, p.lastY = ebiten.TouchPosition(p.touchID)
		return pointerState{Pressed: true, X: p.lastX, Y: p.lastY}
	}

	x, y := ebiten.CursorPosition()
	return pointerState{
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Pressed:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		X:            x,
		Y:            y,
	}
}
