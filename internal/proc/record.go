package proc

import "strings"

// Record is one process as read from the process table.
type Record struct {
	PID     uint32 `json:"pid" yaml:"pid"`
	PPID    uint32 `json:"ppid" yaml:"ppid"`
	UID     uint32 `json:"uid" yaml:"uid"`
	State   string `json:"state" yaml:"state"`
	Cmdline string `json:"cmdline" yaml:"cmdline"`
}

// Zombie reports whether the process has exited but not been reaped.
func (r Record) Zombie() bool {
	return strings.HasPrefix(r.State, "Z")
}

// Snapshot is the result of one scan.
type Snapshot struct {
	// Records maps pid to record. Pids are unique within a snapshot.
	Records map[uint32]Record
	// Warnings holds one *errors.RecordError per process that was skipped.
	Warnings []error
}
