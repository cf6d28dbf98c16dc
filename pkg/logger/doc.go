// Package logger builds *slog.Logger values with functional options and
// injects request-scoped attributes from context.Context.
//
// New picks a text or JSON handler and wraps it in LogHandlerDecorator,
// which runs every registered ContextExtractor on each log call:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.AppEnv, "notify"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.WarnContext(ctx, "best-effort step failed",
//		logger.Operation("store.upsert"),
//		logger.Error(err),
//	)
//
// Attribute helpers in attr.go keep key names uniform across packages.
package logger
