package auth

import (
	"context"

	"github.com/pkg/errors"
)

const (
	XUserNameHeader = "X-User-Name"
	XUserRoleHeader = "X-User-Role"
)

// Role is a closed enumeration; identity is established upstream and
// forwarded via trusted headers.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleLibrarian Role = "librarian"
	RoleStudent   Role = "student"
	RoleStaff     Role = "staff"
)

var ErrUnknownRole = errors.New("unknown role")

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleLibrarian, RoleStudent, RoleStaff:
		return Role(s), nil
	default:
		return "", errors.Wrap(ErrUnknownRole, s)
	}
}

// CanManageLoans reports whether the role may process extensions, trigger
// sweeps and edit settings.
func (r Role) CanManageLoans() bool {
	switch r {
	case RoleAdmin, RoleLibrarian:
		return true
	case RoleStudent, RoleStaff:
		return false
	default:
		return false
	}
}

type ctxKey struct{}

type Identity struct {
	UserName string
	Role     Role
}

func SetAuthContext(ctx context.Context, userName string, role Role) context.Context {
	return context.WithValue(ctx, ctxKey{}, Identity{UserName: userName, Role: role})
}

func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	return id, ok
}
