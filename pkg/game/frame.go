package game

import (
	"sync"

	"github.com/gonewx/burgerball/pkg/level"
	"github.com/gonewx/burgerball/pkg/types"
)

// Frame 一帧的渲染快照
type Frame struct {
	LevelID    string
	LevelName  string
	Tick       int
	Outcome    types.Outcome
	Score      int
	FinalScore int
	BallsLeft  int
	Draws      []level.DrawRecord // 按构建顺序，渲染层按 Layer 稳定排序
}

// FrameBuffer 在模拟 goroutine 和渲染 goroutine 之间交换帧
//
// 写端 Publish 整帧替换，读端 Latest 拿到最近一次发布的帧和序号。
// Frame 里的切片是快照，发布后写端不再修改。
type FrameBuffer struct {
	mu    sync.Mutex
	front Frame
	seq   uint64
}

// NewFrameBuffer 创建帧缓冲
func NewFrameBuffer() *FrameBuffer {
	return &FrameBuffer{}
}

// Publish 发布新帧
func (b *FrameBuffer) Publish(f Frame) {
	b.mu.Lock()
	b.front = f
	b.seq++
	b.mu.Unlock()
}

// Latest 返回最近一帧及其序号，尚未发布过时序号为 0
func (b *FrameBuffer) Latest() (Frame, uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.front, b.seq
}
