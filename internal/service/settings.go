package service

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/campuslib/lending-service/internal/model"
)

// settingsCache holds the whole settings bundle. Reads are served from
// memory until the TTL expires; every write or delete invalidates the
// bundle synchronously, so a read after a committed write never sees the
// old value.
type settingsCache struct {
	mu       sync.RWMutex
	values   map[string]string
	loadedAt time.Time
	ttl      time.Duration
}

func (s *Service) settingsBundle(ctx context.Context) map[string]string {
	s.settings.mu.RLock()
	if s.settings.values != nil && time.Since(s.settings.loadedAt) < s.settings.ttl {
		values := s.settings.values
		s.settings.mu.RUnlock()
		return values
	}
	s.settings.mu.RUnlock()

	s.settings.mu.Lock()
	defer s.settings.mu.Unlock()
	if s.settings.values != nil && time.Since(s.settings.loadedAt) < s.settings.ttl {
		return s.settings.values
	}
	items, err := s.repo.GetAllSettings(ctx)
	if err != nil {
		s.log.Error("settings load", zap.Error(err))
		return s.settings.values
	}
	values := make(map[string]string, len(items))
	for _, item := range items {
		values[item.Name] = item.Value
	}
	s.settings.values = values
	s.settings.loadedAt = time.Now()
	return values
}

func (s *Service) invalidateSettings() {
	s.settings.mu.Lock()
	s.settings.values = nil
	s.settings.loadedAt = time.Time{}
	s.settings.mu.Unlock()
}

// GetSettingInt returns the named setting parsed as int, or def when the
// setting is absent or malformed.
func (s *Service) GetSettingInt(ctx context.Context, name string, def int) int {
	raw, ok := s.settingsBundle(ctx)[name]
	if !ok {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		s.log.Warn("setting is not an int, using default",
			zap.String("name", name), zap.String("value", raw), zap.Int("default", def))
		return def
	}
	return v
}

func (s *Service) GetSettingDecimal(ctx context.Context, name string, def decimal.Decimal) decimal.Decimal {
	raw, ok := s.settingsBundle(ctx)[name]
	if !ok {
		return def
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		s.log.Warn("setting is not a decimal, using default",
			zap.String("name", name), zap.String("value", raw), zap.String("default", def.String()))
		return def
	}
	return v
}

func (s *Service) ListSettings(ctx context.Context) ([]model.Setting, error) {
	return s.repo.GetAllSettings(ctx)
}

func (s *Service) SetSetting(ctx context.Context, name, value string) error {
	if err := s.repo.SetSetting(ctx, name, value); err != nil {
		return err
	}
	s.invalidateSettings()
	return nil
}

func (s *Service) DeleteSetting(ctx context.Context, name string) error {
	if err := s.repo.DeleteSetting(ctx, name); err != nil {
		return err
	}
	s.invalidateSettings()
	return nil
}
