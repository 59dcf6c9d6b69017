package level

import (
	"fmt"
	"log"

	"github.com/gonewx/burgerball/pkg/components"
	"github.com/gonewx/burgerball/pkg/config"
	"github.com/gonewx/burgerball/pkg/ecs"
	"github.com/gonewx/burgerball/pkg/entities"
	"github.com/gonewx/burgerball/pkg/geom"
	"github.com/gonewx/burgerball/pkg/types"
)

// textureSet 按图片ID缓存已解析的句柄，同一张图只向提供者请求一次
type textureSet struct {
	provider TextureProvider
	cache    map[string]types.TextureHandle
}

func (s *textureSet) get(imageID string) (types.TextureHandle, error) {
	if h, ok := s.cache[imageID]; ok {
		return h, nil
	}
	h, err := s.provider.Texture(imageID)
	if err != nil {
		return 0, fmt.Errorf("texture %q: %w", imageID, err)
	}
	s.cache[imageID] = h
	return h, nil
}

// Assemble 根据关卡定义构建一关的全部实体
//
// 构建顺序固定：外墙 → 静态障碍物 → 移动障碍物 → 目标 → 球 → 界面元素。
// 相同输入总是得到相同的实体顺序，碰撞检测和绘制层级都依赖这个顺序。
//
// 参数:
//   - em: 空的实体管理器，关卡实体全部归它所有
//   - cfg: 游戏配置
//   - def: 关卡定义
//   - textures: 贴图提供者
//
// 返回:
//   - *Level: 装配好的关卡
//   - error: 关卡数据非法（包装 config.ErrMalformedLevelData）、
//     顶点为空（包装 geom.ErrInvalidGeometry）或贴图解析失败
func Assemble(em *ecs.EntityManager, cfg *config.GameConfig, def *config.LevelConfig, textures TextureProvider) (*Level, error) {
	if em == nil || cfg == nil || textures == nil {
		return nil, fmt.Errorf("assemble: entity manager, game config and texture provider are required")
	}
	if def == nil {
		return nil, fmt.Errorf("assemble: level definition is nil: %w", config.ErrMalformedLevelData)
	}
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("level %s: %w", def.ID, err)
	}
	chapter, ok := cfg.ChapterTexturesFor(def.Chapter)
	if !ok {
		return nil, fmt.Errorf("level %s: unknown chapter %d: %w", def.ID, def.Chapter, config.ErrMalformedLevelData)
	}

	tex := &textureSet{provider: textures, cache: make(map[string]types.TextureHandle)}
	wallTex, err := tex.get(chapter.Wall)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", def.ID, err)
	}
	ballTex, err := tex.get(chapter.Ball)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", def.ID, err)
	}

	l := &Level{
		ID:            def.ID,
		Name:          def.Name,
		Chapter:       def.Chapter,
		EntityManager: em,
		BallStart:     cfg.DefaultBallStart().Geom(),
		bonus:         cfg.Scoring.RemainingBallBonus,
	}
	if def.BallStart != nil {
		l.BallStart = def.BallStart.Geom()
	}

	steps := []func() error{
		func() error { return l.addBorders(cfg, wallTex) },
		func() error { return l.addObstacles(def, wallTex) },
		func() error { return l.addMovingObstacles(cfg, def, wallTex) },
		func() error { return l.addTargets(cfg, def, tex) },
		func() error { return l.addBalls(cfg, def, ballTex) },
		func() error { return l.addHUD(cfg, def, tex, ballTex) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, fmt.Errorf("level %s: %w", def.ID, err)
		}
	}

	log.Printf("[Level] Assembled %s (%q, chapter %d): %d entities, %d obstacles, %d moving, %d targets, %d balls",
		l.ID, l.Name, l.Chapter, l.EntityManager.EntityCount(),
		len(l.Obstacles), len(l.MovingObstacles), len(l.Targets), len(l.Balls))
	return l, nil
}

// interactable 登记一个参与碰撞的实体，它同时也是可绘制实体
func (l *Level) interactable(id ecs.EntityID) {
	l.Interactables = append(l.Interactables, id)
	l.Drawables = append(l.Drawables, id)
}

func (l *Level) addBorders(cfg *config.GameConfig, wallTex types.TextureHandle) error {
	ids, err := entities.NewBorders(l.EntityManager, cfg.Arena, wallTex)
	if err != nil {
		return fmt.Errorf("borders: %w", err)
	}
	for _, id := range ids {
		l.interactable(id)
	}
	l.Borders = ids
	return nil
}

func (l *Level) addObstacles(def *config.LevelConfig, wallTex types.TextureHandle) error {
	for i, oc := range def.Obstacles {
		shape, err := types.ParseObstacleShape(oc.Shape)
		if err != nil {
			return fmt.Errorf("obstacle %d: %v: %w", i, err, config.ErrMalformedLevelData)
		}
		id, err := entities.NewObstacle(l.EntityManager, config.Points(oc.Points), shape, wallTex)
		if err != nil {
			return fmt.Errorf("obstacle %d: %w", i, err)
		}
		l.Obstacles = append(l.Obstacles, id)
		l.interactable(id)
	}
	return nil
}

func (l *Level) addMovingObstacles(cfg *config.GameConfig, def *config.LevelConfig, wallTex types.TextureHandle) error {
	if len(def.MovingObstacles) != len(def.MovePaths) {
		return fmt.Errorf("%d moving obstacles but %d move paths: %w",
			len(def.MovingObstacles), len(def.MovePaths), config.ErrMalformedLevelData)
	}
	for i, oc := range def.MovingObstacles {
		shape, err := types.ParseObstacleShape(oc.Shape)
		if err != nil {
			return fmt.Errorf("moving obstacle %d: %v: %w", i, err, config.ErrMalformedLevelData)
		}
		pc := def.MovePaths[i]
		mode, err := types.ParsePathMode(pc.Mode)
		if err != nil {
			return fmt.Errorf("move path %d: %v: %w", i, err, config.ErrMalformedLevelData)
		}
		if len(pc.Waypoints) < 2 {
			return fmt.Errorf("move path %d: needs at least 2 waypoints: %w", i, config.ErrMalformedLevelData)
		}
		speed := pc.Speed
		if speed == 0 {
			speed = cfg.MovingObstacle.DefaultSpeed
		}
		path := entities.MovePath{Waypoints: config.Points(pc.Waypoints), Mode: mode, Speed: speed}
		id, err := entities.NewMovingObstacle(l.EntityManager, config.Points(oc.Points), shape, path, wallTex)
		if err != nil {
			return fmt.Errorf("moving obstacle %d: %w", i, err)
		}
		l.MovingObstacles = append(l.MovingObstacles, id)
		l.interactable(id)
	}
	return nil
}

func (l *Level) addTargets(cfg *config.GameConfig, def *config.LevelConfig, tex *textureSet) error {
	if len(def.Targets) == 0 {
		return nil
	}
	targetTex, err := tex.get(cfg.Images.Target)
	if err != nil {
		return err
	}
	for i, tc := range def.Targets {
		id, err := entities.NewTarget(l.EntityManager, config.Points(tc.Points), cfg.Target.Radius, cfg.Target.Score, targetTex)
		if err != nil {
			return fmt.Errorf("target %d: %w", i, err)
		}
		l.Targets = append(l.Targets, id)
		l.interactable(id)
	}
	return nil
}

func (l *Level) addBalls(cfg *config.GameConfig, def *config.LevelConfig, ballTex types.TextureHandle) error {
	if def.Balls < 1 {
		return fmt.Errorf("ball count %d: %w", def.Balls, config.ErrMalformedLevelData)
	}
	for i := 0; i < def.Balls; i++ {
		state := types.BallWaiting
		if i == 0 {
			state = types.BallReady
		}
		id, err := entities.NewBall(l.EntityManager, l.BallStart, cfg.Ball.Radius, i, state, ballTex)
		if err != nil {
			return fmt.Errorf("ball %d: %w", i, err)
		}
		l.Balls = append(l.Balls, id)
		l.interactable(id)
	}
	return nil
}

// addHUD 创建只绘制的界面元素，布局只由场地常量决定
func (l *Level) addHUD(cfg *config.GameConfig, def *config.LevelConfig, tex *textureSet, ballTex types.TextureHandle) error {
	em := l.EntityManager
	arena := cfg.Arena

	add := func(role types.HUDRole, index int, points []geom.Point, imageID string, layer int, visible bool) (ecs.EntityID, error) {
		h, err := tex.get(imageID)
		if err != nil {
			return 0, err
		}
		id, err := entities.NewHUDElement(em, role, index, points, h, layer, visible)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", role, err)
		}
		l.Drawables = append(l.Drawables, id)
		return id, nil
	}

	var err error
	center := entities.ResponseCenter(cfg)
	if l.HUD.SelectionCircle, err = add(types.HUDSelectionCircle, 0,
		geom.CircleQuad(center, cfg.Aim.ResponseRadius), cfg.Images.SelectionCircle, components.LayerHUD, true); err != nil {
		return err
	}

	ghost, err := entities.NewHUDElement(em, types.HUDGhostBall, 0,
		geom.CircleQuad(l.BallStart, cfg.Ball.Radius), ballTex, components.LayerBall, false)
	if err != nil {
		return fmt.Errorf("%s: %w", types.HUDGhostBall, err)
	}
	l.HUD.GhostBall = ghost
	l.Drawables = append(l.Drawables, ghost)

	// 箭头初始为退化形状（长度为零），瞄准时由 LaunchSystem 更新
	arrow := geom.RectQuad(center.X, center.Y, center.X, center.Y)
	if l.HUD.VelocityArrow, err = add(types.HUDVelocityArrow, 0, arrow, cfg.Images.VelocityArrow, components.LayerHUD, false); err != nil {
		return err
	}

	for i := 0; i < def.Balls; i++ {
		icon, err := entities.NewHUDElement(em, types.HUDBallsRemaining, i,
			entities.BallsRemainingIconQuad(arena, i), ballTex, components.LayerHUD, true)
		if err != nil {
			return fmt.Errorf("%s %d: %w", types.HUDBallsRemaining, i, err)
		}
		l.HUD.BallIcons = append(l.HUD.BallIcons, icon)
		l.Drawables = append(l.Drawables, icon)
	}

	var digits [10]types.TextureHandle
	for d := range digits {
		if digits[d], err = tex.get(cfg.DigitImage(d)); err != nil {
			return err
		}
	}
	for place := 0; place < cfg.Scoring.ScoreDigits; place++ {
		id, err := entities.NewScoreDigit(em, arena, place, digits)
		if err != nil {
			return fmt.Errorf("%s %d: %w", types.HUDScoreDigit, place, err)
		}
		l.HUD.Digits = append(l.HUD.Digits, id)
		l.Drawables = append(l.Drawables, id)
	}

	banners := []struct {
		role    types.HUDRole
		imageID string
		dst     *ecs.EntityID
	}{
		{types.HUDEndLevelSuccess, cfg.Images.EndLevelSuccess, &l.HUD.EndLevelSuccess},
		{types.HUDEndLevelFail, cfg.Images.EndLevelFail, &l.HUD.EndLevelFail},
		{types.HUDFinalScore, cfg.Images.FinalScore, &l.HUD.FinalScore},
	}
	for _, b := range banners {
		if *b.dst, err = add(b.role, 0, entities.BannerQuad(arena, b.role), b.imageID, components.LayerBanner, false); err != nil {
			return err
		}
	}
	return nil
}
