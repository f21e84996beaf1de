package db

import (
	"fmt"
	"os"
	"path/filepath"

	"stream-preview/internal/domain/model"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB 打开 sqlite 数据库并迁移表结构
func InitDB(path string) (*gorm.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("数据库路径为空")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("创建数据库目录失败: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("数据库连接失败: %w", err)
	}

	if err := db.AutoMigrate(&model.Recording{}, &model.Config{}); err != nil {
		return nil, fmt.Errorf("表迁移失败: %w", err)
	}

	log.Info().Str("path", path).Msg("[db] 数据库连接成功并已迁移")
	return db, nil
}
