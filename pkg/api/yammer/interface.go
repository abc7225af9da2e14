package yammer

import "context"

type IEndpoint interface {
	GetUser(ctx context.Context, userID string) (string, error)
}
