package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/ptree/internal/config"
	"github.com/Iron-Ham/ptree/internal/errors"
	"github.com/Iron-Ham/ptree/internal/filter"
	"github.com/Iron-Ham/ptree/internal/logging"
	"github.com/Iron-Ham/ptree/internal/proc"
	"github.com/Iron-Ham/ptree/internal/render"
	"github.com/Iron-Ham/ptree/internal/termsize"
	"github.com/Iron-Ham/ptree/internal/tree"
)

func runTree(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
		Writer: cmd.ErrOrStderr(),
		Rotation: logging.Rotation{
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
		},
	})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	policy, err := tree.ParseRootPolicy(cfg.Tree.RootPolicy)
	if err != nil {
		return err
	}

	var pattern string
	if len(args) == 1 {
		pattern = args[0]
	}
	matcher, err := filter.New(filter.Options{
		Pattern:  pattern,
		Mode:     cfg.Filter.Mode,
		AllUsers: cfg.Filter.AllUsers,
		UID:      currentUID(),
	})
	if err != nil {
		return err
	}

	src := proc.NewSource(procFs, cfg.Proc.Root)
	procLog := logger.WithComponent("proc")
	procLog.Debug("scanning process table", "root", src.Root())
	snap, err := src.List()
	if err != nil {
		return err
	}
	logWarnings(procLog, snap.Warnings)

	result := tree.Build(snap.Records, policy)
	logWarnings(logger.WithComponent("tree"), result.Warnings)

	matches := tree.Search(result.Forest, matcher)
	logger.Debug("scan complete",
		"processes", len(snap.Records),
		"trees", len(result.Forest),
		"matches", len(matches),
	)

	if err := write(cmd.OutOrStdout(), cfg.Render, matches); err != nil {
		if errors.IsBrokenPipe(err) {
			return nil
		}
		return err
	}
	return nil
}

// logWarnings reports skipped records at the level their severity rates.
func logWarnings(logger *logging.Logger, warnings []error) {
	for _, w := range warnings {
		l := logger
		var recErr *errors.RecordError
		if errors.As(w, &recErr) {
			l = l.WithPID(recErr.PID)
		}
		switch errors.GetSeverity(w) {
		case errors.SeverityDebug:
			l.Debug("skipped process", "error", w)
		case errors.SeverityInfo:
			l.Info("skipped process", "error", w)
		case errors.SeverityWarning:
			l.Warn("skipped process", "error", w)
		default:
			l.Error("skipped process", "error", w)
		}
	}
}

func write(w io.Writer, cfg config.RenderConfig, nodes []*tree.Node) error {
	if cfg.Output != "" && cfg.Output != render.OutputTree {
		return render.Encode(w, nodes, cfg.Output)
	}

	width := cfg.Width
	if width == 0 {
		width = termsize.Columns(terminal(w))
	}

	r := render.New(w, render.Options{
		Width:  width,
		NoWrap: !cfg.Wrap,
		Styles: render.NewStyles(w, cfg.Color),
	})
	return r.Render(nodes)
}

// terminal returns w as a file when it is one, so its size can be queried.
func terminal(w io.Writer) *os.File {
	if f, ok := w.(*os.File); ok {
		return f
	}
	return nil
}
