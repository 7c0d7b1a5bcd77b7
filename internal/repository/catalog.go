package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/campuslib/lending-service/internal/errs"
	"github.com/campuslib/lending-service/internal/model"
)

// CatalogRepository is the read-only view of members and books; both are
// owned by external collaborators.
type CatalogRepository interface {
	GetMember(ctx context.Context, memberUID string) (model.Member, error)
	GetBook(ctx context.Context, bookUID string) (model.Book, error)
}

func (r *repository) GetMember(ctx context.Context, memberUID string) (model.Member, error) {
	q, args, err := qb.Select("id", "member_uid", "name", "email", "role", "created_at").
		From(membersTableName).
		Where(sq.Eq{"member_uid": memberUID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Member{}, err
	}
	var m model.Member
	if err := r.db.GetContext(ctx, &m, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Member{}, errs.ErrNotFound
		}
		return model.Member{}, err
	}
	return m, nil
}

func (r *repository) GetBook(ctx context.Context, bookUID string) (model.Book, error) {
	q, args, err := qb.Select("id", "book_uid", "isbn", "title", "author", "available", "created_at").
		From(booksTableName).
		Where(sq.Eq{"book_uid": bookUID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var b model.Book
	if err := r.db.GetContext(ctx, &b, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return b, nil
}
