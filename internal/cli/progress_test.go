//nolint:varnamelen // Test files use idiomatic short variable names (t, g, etc.)
package cli_test

import (
	"bytes"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/fsutil/internal/cli"
)

func TestRenderASCIIProgress(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		percent  float64
		width    int
		expected string
	}{
		{"empty", 0, 10, "[          ] 0%"},
		{"half", 0.5, 10, "[====>     ] 50%"},
		{"full", 1, 10, "[==========] 100%"},
		{"tiny", 0.1, 10, "[>         ] 10%"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			g.Expect(cli.RenderASCIIProgress(testCase.percent, testCase.width)).To(Equal(testCase.expected))
		})
	}
}

func TestRenderProgress_ColoredBarHasPercentage(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	model := cli.NewProgressModel(cli.ProgressBarWidth, true)

	g.Expect(cli.RenderProgress(model, 0.25, true)).To(ContainSubstring("25%"))
	g.Expect(cli.RenderProgress(model, 0.25, false)).To(HavePrefix("["))
}

func TestProgressPrinter(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	out := &bytes.Buffer{}
	printer := cli.NewProgressPrinter(out, 10, false)

	printer.Update(512, 1024, "a.bin")
	printer.Update(1024, 1024, "a.bin")
	printer.Finish()
	printer.Finish()

	g.Expect(out.String()).To(Equal(
		"\r[====>     ] 50% 512 B a.bin" +
			"\r[==========] 100% 1.0 KB a.bin\n"))
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(cli.FormatBytes(0)).To(Equal("0 B"))
	g.Expect(cli.FormatBytes(1023)).To(Equal("1023 B"))
	g.Expect(cli.FormatBytes(1536)).To(Equal("1.5 KB"))
	g.Expect(cli.FormatBytes(5 * 1024 * 1024)).To(Equal("5.0 MB"))
}
