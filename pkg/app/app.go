// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来：读取嵌入的配置和关卡、
// 打开进度存储、创建战役，并把鼠标拖拽转换成瞄准和发射。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/gonewx/burgerball/pkg/config"
	"github.com/gonewx/burgerball/pkg/embedded"
	"github.com/gonewx/burgerball/pkg/game"
	"github.com/gonewx/burgerball/pkg/geom"
	"github.com/gonewx/burgerball/pkg/systems"
	"github.com/gonewx/burgerball/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 嵌入数据路径
const (
	gameConfigPath = "data/game.yaml"
	levelsDir      = "data/levels"
)

// AppName gdata 存储使用的应用名
const AppName = "burgerball"

// DefaultScale 竞技场坐标到屏幕像素的默认缩放
const DefaultScale = 2

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Level 指定要加载的关卡（如 "1-2"），为空则从进度继续或从第一关开始
	Level string
	// Scale 屏幕缩放倍数，<= 0 时使用 DefaultScale
	Scale int
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	campaign  *game.Campaign
	resources *game.ResourceManager
	view      view

	pointer   pointer
	dragging  bool
	dragStart geom.Point

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入数据。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	data, err := embedded.ReadFile(gameConfigPath)
	if err != nil {
		return nil, fmt.Errorf("游戏配置读取失败: %w", err)
	}
	gameConfig, err := config.ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}

	fsys, err := embedded.FS()
	if err != nil {
		return nil, err
	}
	catalog, err := config.LoadLevelCatalog(fsys, levelsDir)
	if err != nil {
		return nil, fmt.Errorf("关卡目录加载失败: %w", err)
	}

	// 进度存储打不开时仍然可以游戏，只是不保存
	progress, err := game.OpenProgressManager(AppName)
	if err != nil {
		log.Printf("[App] Warning: %v (progress will not be saved)", err)
	}

	resources := game.NewResourceManager()
	campaign := game.NewCampaign(&gameConfig, catalog, resources, progress)
	if err := campaign.Start(cfg.Level); err != nil {
		return nil, fmt.Errorf("关卡启动失败: %w", err)
	}

	scale := cfg.Scale
	if scale <= 0 {
		scale = DefaultScale
	}
	log.Printf("[App] Started with %d levels, scale %d", catalog.Len(), scale)

	return &App{
		campaign:  campaign,
		resources: resources,
		view:      newView(gameConfig.Arena, float32(scale)),
	}, nil
}

// WindowSize 窗口初始尺寸
func (a *App) WindowSize() (int, int) {
	return a.view.screenSize()
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次），每次推进一帧物理
func (a *App) Update() error {
	a.updateWindow()

	session, err := a.campaign.Session()
	if err != nil {
		return err
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		a.dragging = false
		return a.campaign.Retry()
	case inpututil.IsKeyJustPressed(ebiten.KeyN) && session.Outcome() == types.OutcomeSuccess:
		a.dragging = false
		_, err := a.campaign.NextLevel()
		return err
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape) && a.dragging:
		a.dragging = false
		session.CancelAim()
	}

	if err := a.handleDrag(session); err != nil {
		return err
	}

	if _, err := a.campaign.Tick(); err != nil {
		// 进度保存失败不影响游戏
		log.Printf("[App] Warning: %v", err)
	}
	return nil
}

// handleDrag 按下开始拖拽，拖动时瞄准，松开时发射
//
// 结局确定后点一下：过关进入下一关（最后一关则重玩），失败重玩本关。
func (a *App) handleDrag(session *game.Session) error {
	input := a.pointer.read()
	cursor := a.view.toArena(input.X, input.Y)

	if input.JustPressed && session.Outcome() != types.OutcomePlaying {
		a.dragging = false
		if session.Outcome() == types.OutcomeSuccess {
			more, err := a.campaign.NextLevel()
			if err != nil || more {
				return err
			}
		}
		return a.campaign.Retry()
	}

	if input.JustPressed {
		if _, ok := session.Level().ReadyBall(); ok {
			a.dragging = true
			a.dragStart = cursor
		}
	}
	if !a.dragging {
		return nil
	}

	if input.JustReleased {
		a.dragging = false
		if _, err := session.Launch(a.dragStart, cursor); err != nil && !errors.Is(err, systems.ErrNoBallReady) {
			log.Printf("[App] Launch failed: %v", err)
		}
		return nil
	}
	if _, err := session.Aim(a.dragStart, cursor); err != nil {
		a.dragging = false
	}
	return nil
}

// updateWindow F11 切换全屏
func (a *App) updateWindow() {
	// 退出全屏后需要等待几帧才能正确设置窗口大小
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.WindowSize())
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 24, G: 24, B: 32, A: 255})

	session, err := a.campaign.Session()
	if err != nil {
		return
	}
	frame := session.Frame()
	for _, draw := range sortByLayer(frame.Draws) {
		if !draw.Visible {
			continue
		}
		img := a.resources.Image(draw.Texture)
		if img == nil {
			continue
		}
		vertices, indices := a.view.triangleFan(draw, img.Bounds().Dx(), img.Bounds().Dy())
		if len(indices) == 0 {
			continue
		}
		screen.DrawTriangles(vertices, indices, img, nil)
	}

	best, hasBest := a.campaign.BestScore()
	ebitenutil.DebugPrintAt(screen, statusLine(frame, best, hasBest), 4, 4)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.view.screenSize()
}

