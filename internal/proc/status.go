package proc

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/Iron-Ham/ptree/internal/errors"
)

// Status field names read from /proc/<pid>/status.
const (
	fieldName  = "Name"
	fieldState = "State"
	fieldPid   = "Pid"
	fieldPPid  = "PPid"
	fieldUid   = "Uid"
)

// statusFields holds the "Key:\tvalue" lines of a status file, keyed without
// the trailing colon. Values are trimmed of surrounding whitespace.
type statusFields map[string]string

func parseStatus(data []byte) statusFields {
	fields := make(statusFields)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), ":")
		if !ok {
			continue
		}
		fields[key] = strings.TrimSpace(value)
	}
	return fields
}

func (f statusFields) str(pid uint32, key string) (string, error) {
	v, ok := f[key]
	if !ok || v == "" {
		return "", errors.NewRecordError(pid, "parse status", errors.ErrMissingField).WithField(key)
	}
	return v, nil
}

// number parses the column-th whitespace-separated value of key. When the line
// has fewer columns the first one is used.
func (f statusFields) number(pid uint32, key string, column int) (uint32, error) {
	v, err := f.str(pid, key)
	if err != nil {
		return 0, err
	}
	cols := strings.Fields(v)
	if column >= len(cols) {
		column = 0
	}
	n, err := strconv.ParseUint(cols[column], 10, 32)
	if err != nil {
		return 0, errors.NewRecordError(pid, "parse status",
			fmt.Errorf("%w: %w", errors.ErrMalformedRecord, err)).WithField(key)
	}
	return uint32(n), nil
}

// formatCmdline joins a NUL-separated argument vector with single spaces.
// Arguments that contain a space are wrapped in double quotes.
func formatCmdline(raw []byte) string {
	s := strings.TrimRight(string(raw), "\x00")
	if s == "" {
		return ""
	}
	args := strings.Split(s, "\x00")
	for i, arg := range args {
		if strings.Contains(arg, " ") {
			args[i] = `"` + arg + `"`
		}
	}
	return strings.Join(args, " ")
}
