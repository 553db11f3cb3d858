// Package logger builds slog loggers and provides the attribute helpers used
// across the module, so records from the form lifecycle, the HTTP edge and the
// demo application share key names.
//
// New returns a *slog.Logger configured through options: output format, level,
// static attributes and ContextExtractor callbacks. Extractors run on every
// record, which is how request ids stored by the requestid middleware end up in
// the lifecycle logs:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "contactform"),
//		logger.WithContextExtractors(requestid.Extractor),
//	)
//	log.InfoContext(ctx, "form submission processed",
//		logger.FormType("contact"),
//		logger.Event(formhandler.EventSuccess),
//	)
//
// Error and Errors return empty attributes for nil errors, which slog drops, so
// they can be passed without a nil check.
package logger
