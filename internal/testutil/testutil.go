// Package testutil provides testing utilities for ptree tests.
package testutil

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

// ProcRoot is the root directory fake process tables are written under.
const ProcRoot = "/proc"

// FakeProc describes one process in a fake procfs tree.
type FakeProc struct {
	PID   uint32
	PPID  uint32
	UID   uint32
	Name  string
	State string   // defaults to "S (sleeping)"
	Args  []string // written NUL-separated to cmdline; nil means empty cmdline
}

// SetupProcFs creates an in-memory filesystem containing a procfs tree with
// the given processes under ProcRoot. A few non-process entries are added
// alongside, mirroring what a real /proc contains.
func SetupProcFs(t *testing.T, procs ...FakeProc) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll(filepath.Join(ProcRoot, "sys"), 0755); err != nil {
		t.Fatalf("failed to create proc root: %v", err)
	}
	WriteFile(t, fs, filepath.Join(ProcRoot, "uptime"), "12345.67 8910.11\n")
	for _, p := range procs {
		AddProc(t, fs, p)
	}
	return fs
}

// AddProc writes the status and cmdline files of p into fs.
func AddProc(t *testing.T, fs afero.Fs, p FakeProc) {
	t.Helper()

	dir := PidDir(p.PID)
	WriteFile(t, fs, filepath.Join(dir, "status"), StatusFile(p))
	WriteFile(t, fs, filepath.Join(dir, "cmdline"), CmdlineFile(p.Args))
}

// PidDir returns the directory of pid under ProcRoot.
func PidDir(pid uint32) string {
	return filepath.Join(ProcRoot, strconv.FormatUint(uint64(pid), 10))
}

// StatusFile renders the subset of /proc/<pid>/status that ptree reads.
func StatusFile(p FakeProc) string {
	state := p.State
	if state == "" {
		state = "S (sleeping)"
	}
	name := p.Name
	if name == "" && len(p.Args) > 0 {
		name = filepath.Base(p.Args[0])
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Name:\t%s\n", name)
	fmt.Fprintf(&sb, "Umask:\t0022\n")
	fmt.Fprintf(&sb, "State:\t%s\n", state)
	fmt.Fprintf(&sb, "Tgid:\t%d\n", p.PID)
	fmt.Fprintf(&sb, "Pid:\t%d\n", p.PID)
	fmt.Fprintf(&sb, "PPid:\t%d\n", p.PPID)
	fmt.Fprintf(&sb, "Uid:\t%d\t%d\t%d\t%d\n", p.UID, p.UID, p.UID, p.UID)
	fmt.Fprintf(&sb, "Gid:\t%d\t%d\t%d\t%d\n", p.UID, p.UID, p.UID, p.UID)
	return sb.String()
}

// CmdlineFile renders args the way the kernel exposes them: each argument
// followed by a NUL byte.
func CmdlineFile(args []string) string {
	var sb strings.Builder
	for _, a := range args {
		sb.WriteString(a)
		sb.WriteByte(0)
	}
	return sb.String()
}

// WriteFile writes content to path in fs, creating parent directories.
func WriteFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()

	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create %s: %v", filepath.Dir(path), err)
	}
	if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// RemoveFile deletes path from fs, simulating a process that exits mid-scan.
func RemoveFile(t *testing.T, fs afero.Fs, path string) {
	t.Helper()

	if err := fs.Remove(path); err != nil {
		t.Fatalf("failed to remove %s: %v", path, err)
	}
}
