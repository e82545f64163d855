package filter

import (
	"testing"

	"github.com/Iron-Ham/ptree/internal/errors"
	"github.com/Iron-Ham/ptree/internal/tree"
)

func TestFilter_Match(t *testing.T) {
	vim := &tree.Node{PID: 3, UID: 1000, Cmdline: "vim file.go"}
	sshd := &tree.Node{PID: 2, UID: 0, Cmdline: "/usr/sbin/sshd -D"}

	tests := []struct {
		name string
		opts Options
		node *tree.Node
		want bool
	}{
		{"all users no pattern", Options{AllUsers: true}, sshd, true},
		{"owner matches", Options{UID: 1000}, vim, true},
		{"owner mismatch", Options{UID: 1000}, sshd, false},
		{"substring hit", Options{AllUsers: true, Pattern: "sshd"}, sshd, true},
		{"substring is case sensitive", Options{AllUsers: true, Pattern: "SSHD"}, sshd, false},
		{"owner and substring", Options{UID: 1000, Pattern: "vim"}, vim, true},
		{"substring ok but wrong owner", Options{UID: 0, Pattern: "vim"}, vim, false},
		{"glob whole line", Options{AllUsers: true, Mode: ModeGlob, Pattern: "vim *.go"}, vim, true},
		{"glob must cover whole line", Options{AllUsers: true, Mode: ModeGlob, Pattern: "vim"}, vim, false},
		{"glob with wildcard prefix", Options{AllUsers: true, Mode: ModeGlob, Pattern: "*sshd*"}, sshd, true},
		{"empty glob matches all", Options{AllUsers: true, Mode: ModeGlob}, vim, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New(tt.opts)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if got := f.Match(tt.node); got != tt.want {
				t.Errorf("Match() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name  string
		opts  Options
		field string
	}{
		{"unknown mode", Options{Mode: "regex"}, "filter.mode"},
		{"bad glob", Options{Mode: ModeGlob, Pattern: "[unclosed"}, "filter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts)
			if err == nil {
				t.Fatal("New() should fail")
			}
			var vErr *errors.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("error %T should be *errors.ValidationError", err)
			}
			if vErr.Field != tt.field {
				t.Errorf("Field = %q, want %q", vErr.Field, tt.field)
			}
		})
	}
}

func TestFilter_WithSearch(t *testing.T) {
	bash := &tree.Node{PID: 2, UID: 1000, Cmdline: "bash", Children: []*tree.Node{
		{PID: 3, UID: 1000, Cmdline: "vim file"},
	}}
	forest := tree.Forest{{PID: 1, UID: 0, Cmdline: "init", Children: []*tree.Node{bash}}}

	f, err := New(Options{UID: 1000})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	got := tree.Search(forest, f)
	if len(got) != 1 || got[0] != bash {
		t.Fatalf("Search() = %v, want [bash]", got)
	}
	if len(got[0].Children) != 1 || got[0].Children[0].PID != 3 {
		t.Error("bash should keep vim nested beneath it")
	}
}
