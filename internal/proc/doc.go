// Package proc reads a one-shot snapshot of the process table from a
// procfs-style directory tree.
//
// Each numeric directory under the root is one process. Its status file
// supplies the pid, parent pid, owner and state; its cmdline file supplies
// the NUL-separated argument vector.
//
// Failures are split in two:
//   - List returns an error only when the root itself cannot be listed.
//   - A process that cannot be read (it exited mid-scan, a field is missing,
//     a number does not parse) is left out of the snapshot and reported in
//     Snapshot.Warnings as an *errors.RecordError naming the pid.
//
// The filesystem is an afero.Fs so tests can build fake process tables in
// memory.
package proc
