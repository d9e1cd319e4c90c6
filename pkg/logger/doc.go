// Package logger provides a small factory over log/slog for the passkit
// command-line tools.
//
// Logs go to stderr by default so generated passwords on stdout stay
// clean for piping. The text format is the default for terminals; JSON
// is available for scripting:
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithLevel(slog.LevelDebug),
//	)
//	log.Info("passwords saved", logger.File(path), logger.Count(5))
package logger
