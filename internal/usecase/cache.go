package usecase

import (
	"context"
	"time"
)

// ResultCache stores computed allocation results; a nil implementation or an
// unreachable backend must degrade to a miss, never an error the caller sees.
type ResultCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}
