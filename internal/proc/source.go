package proc

import (
	"path/filepath"
	"sort"
	"strconv"

	"github.com/spf13/afero"

	"github.com/Iron-Ham/ptree/internal/errors"
)

// DefaultRoot is the procfs mount point on Linux.
const DefaultRoot = "/proc"

// Source reads process records from a procfs-style directory.
type Source struct {
	fs   afero.Fs
	root string
}

// NewSource creates a Source reading from root on fs. An empty root means
// DefaultRoot.
func NewSource(fs afero.Fs, root string) *Source {
	if root == "" {
		root = DefaultRoot
	}
	return &Source{fs: fs, root: root}
}

// Root returns the directory the Source reads from.
func (s *Source) Root() string {
	return s.root
}

// List scans every process directory under the root.
//
// The returned error is non-nil only when the root cannot be listed; it is
// then an *errors.ScanError. Processes that cannot be read are omitted and
// reported in Snapshot.Warnings in ascending pid order.
func (s *Source) List() (*Snapshot, error) {
	entries, err := afero.ReadDir(s.fs, s.root)
	if err != nil {
		return nil, errors.NewScanError("list processes", err).WithPath(s.root)
	}

	snap := &Snapshot{Records: make(map[uint32]Record, len(entries))}
	var failed []*errors.RecordError

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		pid, ok := parsePID(entry.Name())
		if !ok {
			continue
		}

		rec, err := s.Read(pid)
		if err != nil {
			var recErr *errors.RecordError
			if !errors.As(err, &recErr) {
				recErr = errors.NewRecordError(pid, "read process", err)
			}
			failed = append(failed, recErr)
			continue
		}
		snap.Records[rec.PID] = rec
	}

	sort.Slice(failed, func(i, j int) bool { return failed[i].PID < failed[j].PID })
	for _, f := range failed {
		snap.Warnings = append(snap.Warnings, f)
	}
	return snap, nil
}

// Read loads the record of a single process. Errors are *errors.RecordError.
func (s *Source) Read(pid uint32) (Record, error) {
	dir := filepath.Join(s.root, strconv.FormatUint(uint64(pid), 10))

	data, err := afero.ReadFile(s.fs, filepath.Join(dir, "status"))
	if err != nil {
		return Record{}, errors.NewRecordError(pid, "read status", err)
	}
	fields := parseStatus(data)

	var rec Record
	if rec.PID, err = fields.number(pid, fieldPid, 0); err != nil {
		return Record{}, err
	}
	if rec.PPID, err = fields.number(pid, fieldPPid, 0); err != nil {
		return Record{}, err
	}
	// Real, effective, saved, filesystem: ownership follows the effective uid.
	if rec.UID, err = fields.number(pid, fieldUid, 1); err != nil {
		return Record{}, err
	}
	if rec.State, err = fields.str(pid, fieldState); err != nil {
		return Record{}, err
	}

	raw, err := afero.ReadFile(s.fs, filepath.Join(dir, "cmdline"))
	if err != nil {
		return Record{}, errors.NewRecordError(pid, "read cmdline", err)
	}
	rec.Cmdline = formatCmdline(raw)

	if rec.Cmdline == "" {
		name, err := fields.str(pid, fieldName)
		if err != nil {
			return Record{}, err
		}
		rec.Cmdline = "[" + name + "]"
	}
	if rec.Zombie() {
		rec.Cmdline += " zombie!"
	}

	return rec, nil
}

func parsePID(name string) (uint32, bool) {
	if name == "" {
		return 0, false
	}
	for _, c := range name {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseUint(name, 10, 32)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint32(n), true
}
