package obs

import (
	"context"
	"dhl-location-service/internal/logger"
	"time"

	"go.uber.org/zap"
)

// Time logs the duration of op once the returned func is called, along with
// the error it points to, if any.
//
//	defer obs.Time(ctx, "dhl.FindByAddress")(&err)
func Time(ctx context.Context, op string) func(errp *error) {
	start := time.Now()
	log := logger.FromContext(ctx)

	return func(errp *error) {
		fields := []zap.Field{
			zap.String("op", op),
			zap.Duration("dur", time.Since(start)),
		}

		if errp != nil && *errp != nil {
			log.Debug("op failed", append(fields, zap.Error(*errp))...)
			return
		}
		log.Debug("op done", fields...)
	}
}
