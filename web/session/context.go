package session

import (
	"context"

	"github.com/sitetools/ops-core/web/login"
)

type userCtxKey struct{}

func WithUser(ctx context.Context, user *login.UserInfo) context.Context {
	return context.WithValue(ctx, userCtxKey{}, user)
}

func UserFromContext(ctx context.Context) (*login.UserInfo, bool) {
	user, ok := ctx.Value(userCtxKey{}).(*login.UserInfo)
	return user, ok
}
