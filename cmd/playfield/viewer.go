package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/burgerball/pkg/config"
	"github.com/gonewx/burgerball/pkg/entities"
	"github.com/gonewx/burgerball/pkg/game"
	"github.com/gonewx/burgerball/pkg/geom"
	"github.com/gonewx/burgerball/pkg/systems"
	"github.com/gonewx/burgerball/pkg/types"
)

// aimStep 每次按方向键拖拽向量变化的距离（竞技场单位）
const aimStep = 2

// command 输入转换出来的操作，交给模拟 goroutine 执行
type command int

const (
	cmdAimLeft command = iota
	cmdAimRight
	cmdAimUp
	cmdAimDown
	cmdLaunch
	cmdRetry
	cmdNext
)

// viewer 终端试玩界面
//
// 模拟在单独的 goroutine 里以 60 帧推进，只有它接触战役和实体；
// 绘制循环通过 FrameBuffer 拿到最新一帧。
type viewer struct {
	screen   tcell.Screen
	cfg      *config.GameConfig
	campaign *game.Campaign
	frames   *game.FrameBuffer
	commands chan command
	done     chan struct{}

	// 模拟 goroutine 独占
	start geom.Point // 拖拽起点（响应圆心）
	drag  geom.Point // 拖拽向量
}

func newViewer(cfg *config.GameConfig, campaign *game.Campaign) (*viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return &viewer{
		screen:   screen,
		cfg:      cfg,
		campaign: campaign,
		frames:   game.NewFrameBuffer(),
		commands: make(chan command, 16),
		done:     make(chan struct{}),
		start:    entities.ResponseCenter(cfg),
		drag:     geom.Pt(0, -cfg.Aim.ResponseRadius/2),
	}, nil
}

func (v *viewer) cleanup() {
	v.screen.Fini()
}

// simulate 模拟 goroutine
func (v *viewer) simulate() {
	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	for {
		select {
		case <-v.done:
			return
		case cmd := <-v.commands:
			if err := v.exec(cmd); err != nil {
				log.Printf("[Playfield] Command failed: %v", err)
			}
		case <-ticker.C:
			if _, err := v.campaign.Tick(); err != nil {
				log.Printf("[Playfield] Warning: %v", err)
			}
			if session, err := v.campaign.Session(); err == nil {
				v.frames.Publish(session.Frame())
			}
		}
	}
}

// exec 执行一条命令
//
// 没有可发射的球时瞄准和发射不算错误。
func (v *viewer) exec(cmd command) error {
	session, err := v.campaign.Session()
	if err != nil {
		return err
	}
	switch cmd {
	case cmdAimLeft:
		v.drag.X -= aimStep
	case cmdAimRight:
		v.drag.X += aimStep
	case cmdAimUp:
		v.drag.Y += aimStep
	case cmdAimDown:
		v.drag.Y -= aimStep
	case cmdLaunch:
		if _, err := session.Launch(v.start, v.start.Add(v.drag)); err != nil && !errors.Is(err, systems.ErrNoBallReady) {
			return fmt.Errorf("launch: %w", err)
		}
		return nil
	case cmdRetry:
		if err := v.campaign.Retry(); err != nil {
			return fmt.Errorf("retry: %w", err)
		}
		return nil
	case cmdNext:
		if session.Outcome() != types.OutcomeSuccess {
			return nil
		}
		if _, err := v.campaign.NextLevel(); err != nil {
			return fmt.Errorf("next level: %w", err)
		}
		return nil
	}
	if _, err := session.Aim(v.start, v.start.Add(v.drag)); err != nil && !errors.Is(err, systems.ErrNoBallReady) {
		return fmt.Errorf("aim: %w", err)
	}
	return nil
}

// run 事件和绘制循环，按 q 或 Esc 退出
func (v *viewer) run() {
	go v.simulate()
	defer close(v.done)

	ticker := time.NewTicker(time.Second / 30)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	var lastSeq uint64
	for {
		select {
		case ev := <-events:
			if !v.handleInput(ev) {
				return
			}
		case <-ticker.C:
			frame, seq := v.frames.Latest()
			if seq == lastSeq {
				continue
			}
			lastSeq = seq
			v.draw(frame)
		}
	}
}

func (v *viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			v.send(cmdAimLeft)
		case tcell.KeyRight:
			v.send(cmdAimRight)
		case tcell.KeyUp:
			v.send(cmdAimUp)
		case tcell.KeyDown:
			v.send(cmdAimDown)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				v.send(cmdLaunch)
			case 'r':
				v.send(cmdRetry)
			case 'n':
				v.send(cmdNext)
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

// send 模拟 goroutine 忙不过来时丢弃输入
func (v *viewer) send(cmd command) {
	select {
	case v.commands <- cmd:
	default:
	}
}

var glyphStyles = map[types.EntityKind]tcell.Style{
	types.KindBorder:         tcell.StyleDefault.Foreground(tcell.ColorGray),
	types.KindObstacle:       tcell.StyleDefault.Foreground(tcell.ColorOrange),
	types.KindMovingObstacle: tcell.StyleDefault.Foreground(tcell.ColorYellow),
	types.KindTarget:         tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	types.KindBall:           tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
	types.KindDecoration:     tcell.StyleDefault.Foreground(tcell.ColorAqua),
}

func (v *viewer) draw(f game.Frame) {
	v.screen.Clear()
	width, height := v.screen.Size()
	// 最后两行是状态栏
	gridRows := height - 2
	if width < 4 || gridRows < 4 {
		v.screen.Show()
		return
	}
	// 终端字符大约是 1:2，按竞技场宽高比保留列数
	gridCols := int(float32(gridRows) * 2 * v.cfg.Arena.Width / v.cfg.Arena.Height)
	if gridCols > width {
		gridCols = width
	}

	g := rasterize(f, v.cfg.Arena, gridCols, gridRows)
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			v.screen.SetContent(col, row, g.cells[row][col], nil, glyphStyles[g.kinds[row][col]])
		}
	}

	status := fmt.Sprintf("%s %s  score %d  balls %d  tick %d", f.LevelID, f.LevelName, f.Score, f.BallsLeft, f.Tick)
	switch f.Outcome {
	case types.OutcomeSuccess:
		status += fmt.Sprintf("  CLEAR final %d  [n]ext", f.FinalScore)
	case types.OutcomeFailure:
		status += "  FAILED"
	}
	v.drawText(0, gridRows, status, tcell.StyleDefault.Bold(true))
	v.drawText(0, gridRows+1, "arrows aim  space launch  r retry  q quit", tcell.StyleDefault.Dim(true))
	v.screen.Show()
}

func (v *viewer) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}
