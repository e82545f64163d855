// Package logging provides structured logging for ptree.
//
// Diagnostics go to stderr, or to a file, so they never mix with the tree
// on stdout. Entries are text by default and JSON on request:
//
//	logger, err := logging.New(logging.Options{Level: "WARN"})
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.WithComponent("proc").WithPID(4242).Warn("skipped process", "error", err)
//
// A log file is appended to across runs. Rotation moves it aside to
// file.1, file.2 and so on once it reaches Rotation.MaxSizeMB.
package logging
