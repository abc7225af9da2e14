package facebook

import "context"

type IEndpoint interface {
	GetMe(ctx context.Context, code string, fields ...string) (string, error)
}
