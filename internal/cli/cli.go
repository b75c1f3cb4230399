// Package cli runs fsutil commands against a resolved filesystem and renders
// their results for a terminal or a pipe.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/joe/fsutil/internal/config"
	fserrors "github.com/joe/fsutil/pkg/errors"
	"github.com/joe/fsutil/pkg/fileops"
	"github.com/joe/fsutil/pkg/filesystem"
	"github.com/joe/fsutil/pkg/hierarchy"
	"github.com/joe/fsutil/pkg/pathops"
	"github.com/joe/fsutil/pkg/pathutil"
	"github.com/joe/fsutil/pkg/walk"
)

// ListTimeFormat is the modification time layout of "ls --long".
const ListTimeFormat = "2006-01-02 15:04"

// App holds everything a command needs to run.
type App struct {
	// FS holds the command's paths (the destination for cp).
	FS filesystem.FileSystem
	// SourceFS holds the cp source; nil means FS.
	SourceFS filesystem.FileSystem

	Out    io.Writer
	Err    io.Writer
	Styles Styles
	Log    *Logger

	// ShowProgress draws a progress bar on Err while copying.
	ShowProgress bool
}

// Run executes the command selected in cfg.
func (a *App) Run(cfg *config.Config) error {
	a.Log.Logf("command: %s %s", cfg.Command(), strings.Join(cfg.Paths(), " "))

	switch cfg.Command() {
	case "ls":
		return a.runList(cfg.List)
	case "verify":
		return a.runVerify(cfg.Verify)
	case "mkdir":
		return a.runMkdir(cfg.Mkdir)
	case "empty":
		return a.runEmpty(cfg.Empty)
	case "cp":
		return a.runCopy(cfg.Copy)
	case "rel":
		return a.runRel(cfg.Rel)
	case "abs":
		return a.runAbs(cfg.Abs)
	default:
		return config.ErrNoCommand
	}
}

// ReportError prints err with its category-specific suggestions.
func (a *App) ReportError(err error) {
	if err == nil {
		return
	}

	a.Log.Logf("error: %v", err)

	enriched := fserrors.NewEnricher().Enrich(err, "")

	_, _ = fmt.Fprintln(a.Err, a.Styles.Error("Error: "+enriched.Error()))

	if suggestions := fserrors.FormatSuggestions(enriched); suggestions != "" {
		_, _ = fmt.Fprintln(a.Err, a.Styles.Label("Suggestions:"))
		_, _ = fmt.Fprintln(a.Err, a.Styles.Dim(suggestions))
	}
}

func (a *App) runAbs(cmd *config.AbsCmd) error {
	abs, err := pathutil.ConvertToAbsolutePath(cmd.Base, cmd.Rel)
	if err != nil {
		return err //nolint:wrapcheck // Already names both inputs
	}

	_, _ = fmt.Fprintln(a.Out, abs)

	return nil
}

func (a *App) runCopy(cmd *config.CopyCmd) error {
	opts := fileops.CopyOptions{
		ChunkSize: cmd.ChunkSize,
		Overwrite: cmd.Overwrite,
		SourceFS:  a.SourceFS,
		Verify:    cmd.Verify,
	}

	var printer *ProgressPrinter
	if a.ShowProgress {
		printer = NewProgressPrinter(a.Err, ProgressBarWidth, a.Styles.Enabled())
		opts.Progress = printer.Update
	}

	written, err := fileops.CopyFile(a.FS, cmd.Source, cmd.Dest, cmd.Name, opts)
	if printer != nil {
		printer.Finish()
	}

	if err != nil {
		return err //nolint:wrapcheck // Sentinel-wrapped by fileops
	}

	dest := pathutil.SanitizePath(cmd.Dest, false) + cmd.Name
	a.Log.Logf("copied %d bytes from %s to %s", written, cmd.Source, dest)

	_, _ = fmt.Fprintf(a.Out, "%s %s %s\n",
		a.Styles.Success("copied"), dest, a.Styles.Dim("("+FormatBytes(written)+")"))

	return nil
}

func (a *App) runEmpty(cmd *config.EmptyCmd) error {
	policy := pathops.BestEffort
	if cmd.AbortOnError {
		policy = pathops.AbortOnError
	}

	err := pathops.EmptyDir(a.FS, cmd.Path, policy)
	if err != nil {
		return err //nolint:wrapcheck // Sentinel-wrapped by pathops
	}

	_, _ = fmt.Fprintf(a.Out, "%s %s\n", a.Styles.Success("emptied"), a.Styles.Dir(cmd.Path))

	return nil
}

func (a *App) runList(cmd *config.ListCmd) error {
	var predicate hierarchy.Predicate
	if cmd.Pattern != "" {
		predicate = hierarchy.GlobPredicate(cmd.Path, cmd.Pattern)
	}

	entries, err := hierarchy.List(a.FS, cmd.Path, cmd.Kind.Filter(), cmd.CurrentOnly, predicate)
	if err != nil {
		return err //nolint:wrapcheck // Sentinel-wrapped by walk
	}

	files, dirs := 0, 0

	for _, entry := range entries {
		var line string

		if entry.Kind == walk.KindDir {
			dirs++
			line = a.Styles.Dir(entry.FullPath() + string(pathutil.Separator))
		} else {
			files++
			line = entry.FullPath() + " " + a.Styles.Dim(FormatBytes(entry.Size))
		}

		if cmd.Long {
			line += " " + a.Styles.Dim(entry.ModTime.Format(ListTimeFormat))
		}

		_, _ = fmt.Fprintln(a.Out, line)
	}

	a.Log.Logf("listed %d entries (%d files, %d directories) under %s", len(entries), files, dirs, cmd.Path)

	return nil
}

func (a *App) runMkdir(cmd *config.MkdirCmd) error {
	err := pathops.CreatePath(a.FS, cmd.Path)
	if err != nil {
		return err //nolint:wrapcheck // Sentinel-wrapped by pathops
	}

	_, _ = fmt.Fprintf(a.Out, "%s %s\n", a.Styles.Success("created"), a.Styles.Dir(cmd.Path))

	return nil
}

func (a *App) runRel(cmd *config.RelCmd) error {
	rel := pathutil.ConvertToRelativePath(cmd.From, cmd.To)
	if rel == "" {
		rel = "."
	}

	_, _ = fmt.Fprintln(a.Out, rel)

	return nil
}

func (a *App) runVerify(cmd *config.VerifyCmd) error {
	_, err := pathops.VerifyPath(a.FS, cmd.Path)
	if err != nil {
		return err //nolint:wrapcheck // Sentinel-wrapped by pathops
	}

	_, _ = fmt.Fprintf(a.Out, "%s %s\n", a.Styles.Success("ok"), a.Styles.Dir(cmd.Path))

	return nil
}
