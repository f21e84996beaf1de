package service

import (
	"errors"
	"fmt"

	"stream-preview/internal/domain/model"
	"stream-preview/internal/domain/vo"
	"stream-preview/internal/repository"
	"stream-preview/pkg/config"
	"stream-preview/pkg/util"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

type ConfigService struct {
	config     *config.AppConfig
	configRepo *repository.ConfigRepository
}

func NewConfigService(cfg *config.AppConfig, configRepo *repository.ConfigRepository) *ConfigService {
	return &ConfigService{
		config:     cfg,
		configRepo: configRepo,
	}
}

func (c *ConfigService) AddConfig(addVO *vo.ConfigAddVO) error {
	if addVO == nil {
		return errors.New("config 为空")
	}
	if addVO.Key == "" {
		return errors.New("key 为空")
	}

	_, err := c.configRepo.GetConfigByKey(addVO.Key)
	if err == nil {
		return errors.New("key 已存在，请勿重复添加")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("查询配置失败: %w", err)
	}

	// 先校验，无效的值不入库
	if err := c.config.Check(addVO.Key, addVO.Value); err != nil {
		return err
	}

	id, err := util.NextID()
	if err != nil {
		return fmt.Errorf("生成 ID 失败: %w", err)
	}
	if err = c.configRepo.AddConfig(&model.Config{
		ID:          id,
		Key:         addVO.Key,
		Value:       addVO.Value,
		Description: addVO.Description,
	}); err != nil {
		return err
	}

	// 更新运行时配置并通知订阅者
	return c.config.OnUpdate(addVO.Key, addVO.Value)
}

func (c *ConfigService) ListConfigs() ([]vo.ConfigVO, error) {
	configs, err := c.configRepo.ListConfigs()
	if err != nil {
		return nil, err
	}

	return lo.Map(configs, func(cfg model.Config, _ int) vo.ConfigVO {
		return vo.ConfigVO{
			ID:          cfg.ID,
			Key:         cfg.Key,
			Value:       cfg.Value,
			Description: cfg.Description,
			CreateTime:  util.MillisToTime(cfg.CreateTime),
			UpdateTime:  util.MillisToTime(cfg.UpdateTime),
		}
	}), nil
}

func (c *ConfigService) UpdateConfig(updateVO *vo.ConfigUpdateVO) error {
	if updateVO == nil {
		return errors.New("cfg 为空")
	}
	if updateVO.ID == 0 {
		return errors.New("id 为空")
	}

	cfg, err := c.configRepo.GetConfigById(updateVO.ID)
	if err != nil {
		return err
	}
	if cfg == nil {
		return errors.New("配置不存在")
	}
	if cfg.Key != updateVO.Key {
		return errors.New("不允许修改配置 key")
	}

	if err = c.config.Check(cfg.Key, updateVO.Value); err != nil {
		return err
	}

	err = c.configRepo.UpdateConfig(&model.Config{
		ID:          updateVO.ID,
		Value:       updateVO.Value,
		Description: updateVO.Description,
	})
	if err != nil {
		return err
	}

	return c.config.OnUpdate(cfg.Key, updateVO.Value)
}

func (c *ConfigService) ListConfigMap() (map[string]string, error) {
	return c.configRepo.ListConfigsMap()
}
