// Package logging provides a minimal logging facade for the sharing schemes.
//
// The Logger interface wraps the subset of log/slog the schemes use, so
// applications can plug in their own implementation for testing, redaction or
// integration with an existing logging system.
//
// # Default Implementation
//
//	// slog.Default()
//	logger := logging.New(nil)
//
//	// custom handler
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	logger = logging.New(slog.New(handler))
//
// Schemes default to Discard() and stay silent unless a logger is passed with
// feldman.WithLogger or shamir.WithLogger.
//
// # Redaction
//
// Secrets, polynomial coefficients and share values are never logged. Call
// sites that would naturally mention them log a Redacted attribute instead:
//
//	logger.Debug(ctx, "split complete", logging.Redacted("secret"), "shares", n)
//	// secret="[redacted]"
//
// New also wraps the handler with NewRedactingHandler, which replaces values
// logged under the keys secret, coefficient, value and share_value, including
// inside groups and LogValuer results. The wrapper is a backstop; call sites
// should still log Redacted attributes.
package logging
