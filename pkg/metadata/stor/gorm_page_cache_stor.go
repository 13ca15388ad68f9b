package stor

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/apex/log"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// CachedPage is one fetched catalog page.
type CachedPage struct {
	URL       string `gorm:"primaryKey"`
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type GormPageCacheStor struct {
	db *gorm.DB
}

func NewGormPageCacheStor(db *gorm.DB) *GormPageCacheStor {
	return &GormPageCacheStor{db: db}
}

// MustConnectToCache opens (creating if needed) the sqlite cache database
// at path and returns a stor backed by it.
func MustConnectToCache(path string) *GormPageCacheStor {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.Fatalf("Unable to create cache dir %s: %s", filepath.Dir(path), err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatalf("Unable to open cache database %s: %s", path, err)
	}

	if err := db.AutoMigrate(&CachedPage{}); err != nil {
		log.Fatalf("Unable to migrate cache database %s: %s", path, err)
	}

	return NewGormPageCacheStor(db)
}

func (s *GormPageCacheStor) GetPage(url string) (string, bool, error) {
	var page CachedPage
	err := s.db.Where("url = ?", url).First(&page).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return "", false, nil
	case err != nil:
		return "", false, err
	default:
		return page.Body, true, nil
	}
}

func (s *GormPageCacheStor) PutPage(url, body string) error {
	return WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{UpdateAll: true}).
			Create(&CachedPage{URL: url, Body: body}).Error
	})
}
