//go:build integration

package integration_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/fsutil/internal/cli"
	"github.com/joe/fsutil/internal/config"
)

// runCommand parses args and runs them against the local disk the way main does.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cfg, err := config.Parse(args)
	if err != nil {
		t.Fatalf("failed to parse %v: %v", args, err)
	}

	fsys, sourceFS, closer, err := cli.Resolve(cfg)
	if err != nil {
		return "", err
	}
	defer closer()

	stdout := &bytes.Buffer{}
	app := &cli.App{
		FS:       fsys,
		SourceFS: sourceFS,
		Out:      stdout,
		Err:      &bytes.Buffer{},
		Styles:   cli.NewStyles(false),
	}

	err = app.Run(cfg)

	return stdout.String(), err
}

// TestIntegration_CreateCopyListEmpty drives every filesystem command against a real directory.
func TestIntegration_CreateCopyListEmpty(t *testing.T) {
	g := NewWithT(t)

	root := t.TempDir()
	source := filepath.Join(root, "report.csv")
	content := strings.Repeat("id,value\n", 1000)
	g.Expect(os.WriteFile(source, []byte(content), 0o600)).To(Succeed())

	target := filepath.Join(root, "archive", "2024", "q1")

	_, err := runCommand(t, "mkdir", target)
	g.Expect(err).NotTo(HaveOccurred())

	_, err = runCommand(t, "verify", target)
	g.Expect(err).NotTo(HaveOccurred())

	_, err = runCommand(t, "cp", "--chunk-size", "512", "--verify", source, target)
	g.Expect(err).NotTo(HaveOccurred())

	copied, err := os.ReadFile(filepath.Join(target, "report.csv"))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(string(copied)).To(Equal(content))

	_, err = runCommand(t, "cp", source, target)
	g.Expect(err).To(MatchError(HavePrefix("file exists")))

	listing, err := runCommand(t, "ls", "--kind", "files", "--pattern", "**/*.csv", root)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(strings.Split(strings.TrimSpace(listing), "\n")).To(HaveLen(2))

	_, err = runCommand(t, "empty", filepath.Join(root, "archive"))
	g.Expect(err).NotTo(HaveOccurred())

	remaining, err := os.ReadDir(filepath.Join(root, "archive"))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(remaining).To(BeEmpty())

	_, err = runCommand(t, "verify", target)
	g.Expect(err).To(MatchError(ContainSubstring("path does not exist")))
}
