package repository

import (
	"errors"
	"time"

	"stream-preview/internal/domain/model"

	"gorm.io/gorm"
)

type ConfigRepository struct {
	db *gorm.DB
}

func NewConfigRepository(db *gorm.DB) *ConfigRepository {
	return &ConfigRepository{db: db}
}

func (c *ConfigRepository) AddConfig(config *model.Config) error {
	if config == nil {
		return errors.New("config 为空")
	}
	return c.db.Create(config).Error
}

func (c *ConfigRepository) ListConfigs() ([]model.Config, error) {
	var configs []model.Config
	err := c.db.Order("key").Find(&configs).Error
	return configs, err
}

// ListConfigsMap key -> value，用于初始化 viper
func (c *ConfigRepository) ListConfigsMap() (map[string]string, error) {
	configs, err := c.ListConfigs()
	if err != nil {
		return nil, err
	}

	configMap := make(map[string]string, len(configs))
	for _, cfg := range configs {
		configMap[cfg.Key] = cfg.Value
	}
	return configMap, nil
}

// UpdateConfig 更新 value 和 description，允许更新为空字符串
func (c *ConfigRepository) UpdateConfig(config *model.Config) error {
	if config == nil {
		return errors.New("config 为空")
	}

	result := c.db.Model(&model.Config{}).Where("id = ?", config.ID).Updates(map[string]any{
		"value":       config.Value,
		"description": config.Description,
		"update_time": time.Now().UnixMilli(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("更新失败，未找到记录")
	}
	return nil
}

// GetConfigByKey 没查到时返回 gorm.ErrRecordNotFound
func (c *ConfigRepository) GetConfigByKey(key string) (*model.Config, error) {
	var config model.Config
	if err := c.db.Where("key = ?", key).First(&config).Error; err != nil {
		return nil, err
	}
	return &config, nil
}

// GetConfigById 没查到时返回 nil, nil
func (c *ConfigRepository) GetConfigById(id int64) (*model.Config, error) {
	var config model.Config
	err := c.db.First(&config, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &config, nil
}
