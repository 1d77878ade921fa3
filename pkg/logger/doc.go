// Package logger builds configured slog.Logger instances for binaries that
// embed the client. The library itself never logs unless a logger is passed
// to the transport; this package exists so tools like cmd/algolia get
// consistent output without repeating handler setup.
//
// Usage:
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithTextFormatter(),
//	)
//	d := transport.NewDispatcher(provider, transport.WithLogger(log))
package logger
