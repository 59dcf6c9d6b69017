package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/gonewx/burgerball/pkg/config"
	"github.com/gonewx/burgerball/pkg/level"
	"github.com/gonewx/burgerball/pkg/types"
)

// ErrNoSession 还没有开始任何关卡
var ErrNoSession = errors.New("no active level session")

// Campaign 按关卡目录顺序游玩，负责重试、下一关和进度记录
type Campaign struct {
	cfg      *config.GameConfig
	catalog  *config.LevelCatalog
	textures level.TextureProvider
	progress *ProgressManager

	session  *Session
	recorded bool // 本次尝试的结局是否已写入进度
}

// NewCampaign 创建战役
//
// 参数:
//   - cfg: 游戏配置
//   - catalog: 关卡目录
//   - textures: 贴图提供者
//   - progress: 进度管理器，可为 nil（不记录进度）
func NewCampaign(cfg *config.GameConfig, catalog *config.LevelCatalog, textures level.TextureProvider, progress *ProgressManager) *Campaign {
	return &Campaign{cfg: cfg, catalog: catalog, textures: textures, progress: progress}
}

// Start 开始指定关卡
//
// levelID 为空时从进度中的最高关卡开始，没有进度则从第一关开始。
func (c *Campaign) Start(levelID string) error {
	if levelID == "" && c.progress != nil {
		levelID = c.progress.HighestLevel()
	}
	var def *config.LevelConfig
	if levelID != "" {
		lc, ok := c.catalog.Get(levelID)
		if !ok {
			return fmt.Errorf("level %q not found in catalog", levelID)
		}
		def = lc
	} else {
		def = c.catalog.First()
		if def == nil {
			return fmt.Errorf("level catalog is empty")
		}
	}

	session, err := NewSession(c.cfg, def, c.textures)
	if err != nil {
		return err
	}
	c.session = session
	c.recorded = false
	log.Printf("[Campaign] Started level %s", def.ID)
	return nil
}

// Session 当前会话
func (c *Campaign) Session() (*Session, error) {
	if c.session == nil {
		return nil, ErrNoSession
	}
	return c.session, nil
}

// Tick 推进当前会话一帧，过关时记录进度（每次尝试只记录一次）
func (c *Campaign) Tick() (types.Outcome, error) {
	if c.session == nil {
		return types.OutcomePlaying, ErrNoSession
	}
	outcome := c.session.Tick()
	if outcome == types.OutcomeSuccess && !c.recorded {
		c.recorded = true
		if err := c.recordSuccess(); err != nil {
			return outcome, err
		}
	}
	return outcome, nil
}

func (c *Campaign) recordSuccess() error {
	if c.progress == nil {
		return nil
	}
	id := c.session.Definition().ID
	score := c.session.Level().FinalScore()
	if c.progress.RecordScore(id, score) {
		log.Printf("[Campaign] New best score for %s: %d", id, score)
	}
	c.progress.Unlock(id)
	if next, ok := c.catalog.Next(id); ok {
		c.progress.Unlock(next.ID)
	}
	return c.progress.Save()
}

// BestScore 当前关卡的历史最高分，没有进度或尚未过关时 ok 为 false
func (c *Campaign) BestScore() (int, bool) {
	if c.session == nil || c.progress == nil {
		return 0, false
	}
	return c.progress.BestScore(c.session.Definition().ID)
}

// Retry 重新开始当前关卡
func (c *Campaign) Retry() error {
	if c.session == nil {
		return ErrNoSession
	}
	c.recorded = false
	return c.session.Retry()
}

// NextLevel 进入下一关
//
// 返回:
//   - bool: 是否还有下一关（最后一关时为 false，会话保持不变）
//   - error: 装配失败
func (c *Campaign) NextLevel() (bool, error) {
	if c.session == nil {
		return false, ErrNoSession
	}
	next, ok := c.catalog.Next(c.session.Definition().ID)
	if !ok {
		return false, nil
	}
	if err := c.Start(next.ID); err != nil {
		return false, err
	}
	return true, nil
}
