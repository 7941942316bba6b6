package billing

import (
	"context"
	"time"
)

// contextWithDetachedTimeout bounds a fire-and-forget step that must outlive
// its originating request.
func contextWithDetachedTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}
