package gormstore

import (
	"time"

	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/tindahanph/bottleshop/internal/domain"
)

func nowUTC() time.Time {
	return time.Now().UTC()
}

// Bootstrap migrates the schema and seeds the catalog if the category
// table is empty. Safe to run on every process start.
func (s *GormStore) Bootstrap() error {
	if err := s.db.AutoMigrate(domain.Tables...); err != nil {
		return pkgerrors.Wrap(err, "migrate schema")
	}

	var count int64
	if err := s.db.Model(&domain.Category{}).Count(&count).Error; err != nil {
		return pkgerrors.Wrap(err, "check catalog seed")
	}
	if count > 0 {
		zap.L().Debug("catalog already seeded, skipping", zap.Int64("categories", count))
		return nil
	}

	categories := domain.SeedCategories()
	products := domain.SeedProducts()
	if err := s.db.Create(&categories).Error; err != nil {
		return pkgerrors.Wrap(err, "seed categories")
	}
	if err := s.db.Create(&products).Error; err != nil {
		return pkgerrors.Wrap(err, "seed products")
	}

	zap.L().Info("seeded catalog",
		zap.Int("categories", len(categories)),
		zap.Int("products", len(products)))
	return nil
}
