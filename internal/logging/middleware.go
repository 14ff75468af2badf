package logging

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
)

// NewMiddleware returns a huma middleware that attaches a LogData to every
// request context and logs handler start/completion with a request ID.
func NewMiddleware(logger *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		loggingName := ctx.Operation().OperationID

		logData := NewLogData(logger)
		if requestID, err := uuid.NewV4(); err == nil {
			logData.AddData("requestID", requestID.String())
		}
		logData.AddData("path", ctx.Operation().Path)

		logger.Infof("Handler.%v.Start", loggingName)

		endTimer := logData.AddTiming("duration")
		ctx = huma.WithContext(ctx, WithLogData(ctx.Context(), logData))
		next(ctx)
		endTimer()

		status := ctx.Status()
		logData.AddData("status", status)
		if status >= 500 {
			logData.Log().Errorf("Handler.%v.Error", loggingName)
			return
		}

		logData.Log().Infof("Handler.%v.Complete", loggingName)
	}
}
