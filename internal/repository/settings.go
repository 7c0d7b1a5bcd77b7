package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/campuslib/lending-service/internal/model"
)

type SettingsRepository interface {
	GetAllSettings(ctx context.Context) ([]model.Setting, error)
	SetSetting(ctx context.Context, name, value string) error
	DeleteSetting(ctx context.Context, name string) error
}

func (r *repository) GetAllSettings(ctx context.Context) ([]model.Setting, error) {
	q, args, err := qb.Select("name", "value", "updated_at").
		From(settingsTableName).
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Setting
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) SetSetting(ctx context.Context, name, value string) error {
	q, args, err := qb.Insert(settingsTableName).
		Columns("name", "value").
		Values(name, value).
		Suffix("on conflict (name) do update set value = excluded.value, updated_at = now()").
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, q, args...)
	return err
}

func (r *repository) DeleteSetting(ctx context.Context, name string) error {
	q, args, err := qb.Delete(settingsTableName).
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, q, args...)
	return err
}
