//nolint:varnamelen // Test files use idiomatic short variable names (t, g, etc.)
package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/fsutil/internal/cli"
)

func TestLogger_FileAndMirror(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	logPath := filepath.Join(t.TempDir(), "fsutil.log")
	mirror := &bytes.Buffer{}

	logger, err := cli.NewLogger(logPath, mirror)
	g.Expect(err).NotTo(HaveOccurred())

	logger.Logf("copied %d bytes", 42)
	g.Expect(logger.Close()).To(Succeed())
	g.Expect(logger.Close()).To(Succeed())

	data, err := os.ReadFile(logPath)
	g.Expect(err).NotTo(HaveOccurred())

	content := string(data)
	g.Expect(content).To(HavePrefix("=== fsutil Log Started: "))
	g.Expect(content).To(MatchRegexp(`\[\d{2}:\d{2}:\d{2}\.\d{3}\] copied 42 bytes`))
	g.Expect(content).To(ContainSubstring("=== fsutil Log Ended: "))

	g.Expect(mirror.String()).To(MatchRegexp(`^\[[0-9:.]+\] copied 42 bytes\n$`))
}

func TestLogger_NilIsSilent(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var logger *cli.Logger

	logger.Logf("ignored")
	g.Expect(logger.Close()).To(Succeed())
}

func TestNewLogger_BadPath(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	_, err := cli.NewLogger(filepath.Join(t.TempDir(), "missing", "x.log"), nil)
	g.Expect(err).To(MatchError(ContainSubstring("failed to create log file")))
}
