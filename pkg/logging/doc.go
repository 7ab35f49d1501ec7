// Package logging provides the structured logger used across gsetup.
//
// It is a thin layer over log/slog that tags every entry with a subsystem
// name and, once a flow has started, with the run identifier of that flow.
//
// # Usage
//
//	logging.InitForCLI(logging.LevelInfo, os.Stderr)
//	logging.SetRunID(uuid.NewString())
//
//	logging.Info("CallbackServer", "Listening on %s", addr)
//	logging.Error("CallbackServer", err, "Token exchange failed")
//
// Log output goes to the writer passed to InitForCLI. OpenFile returns a
// size-rotated file writer for the --log-file flag.
//
// Token values and client secrets must never be passed to this package.
package logging
