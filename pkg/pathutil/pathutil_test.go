//nolint:varnamelen // Test files use idiomatic short variable names (t, g, etc.)
package pathutil_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"testing/quick"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	fserrors "github.com/joe/fsutil/pkg/errors"
	"github.com/joe/fsutil/pkg/pathutil"
)

// native converts a slash-separated literal to the host's separator.
func native(path string) string {
	return filepath.FromSlash(path)
}

func TestSanitizePath(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		isFile   bool
		expected string
	}{
		{"directory gains trailing separator", "/tmp/t", false, native("/tmp/t/")},
		{"directory keeps trailing separator", "/tmp/t/", false, native("/tmp/t/")},
		{"backslashes normalized", `\tmp\t`, false, native("/tmp/t/")},
		{"mixed separators", `/tmp\t/sub`, false, native("/tmp/t/sub/")},
		{"whitespace trimmed", "  /tmp/t  ", false, native("/tmp/t/")},
		{"file mode leaves no trailing separator", "/tmp/t/a.txt", true, native("/tmp/t/a.txt")},
		{"empty stays empty", "", false, ""},
		{"blank becomes empty", "   ", false, ""},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			g.Expect(pathutil.SanitizePath(testCase.input, testCase.isFile)).To(Equal(testCase.expected))
		})
	}
}

func TestSanitizePath_Properties(t *testing.T) {
	t.Parallel()

	other := "/"
	if pathutil.Separator == '/' {
		other = `\`
	}

	property := func(path string, isFile bool) bool {
		once := pathutil.SanitizePath(path, isFile)
		if pathutil.SanitizePath(once, isFile) != once {
			return false
		}
		if strings.Contains(once, other) {
			return false
		}
		if !isFile && once != "" && !strings.HasSuffix(once, string(pathutil.Separator)) {
			return false
		}

		return true
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

func TestGetFileName(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(pathutil.GetFileName("/tmp/t/a.txt")).To(Equal("a.txt"))
	g.Expect(pathutil.GetFileName(`C:\data\b.tar.gz`)).To(Equal("b.tar.gz"))
	g.Expect(pathutil.GetFileName("plain")).To(Equal("plain"))
	g.Expect(pathutil.GetFileName("/tmp/t/")).To(BeEmpty())
}

func TestGetFileExt(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(pathutil.GetFileExt("/tmp/t/a.txt")).To(Equal("txt"))
	g.Expect(pathutil.GetFileExt("/tmp/t/b.tar.gz")).To(Equal("gz"))
	g.Expect(pathutil.GetFileExt("/tmp/t.d/Makefile")).To(BeEmpty())
	g.Expect(pathutil.GetFileExt(".bashrc")).To(Equal("bashrc"))
	g.Expect(pathutil.GetFileExt("")).To(BeEmpty())
}

func TestConvertToRelativePath(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		from     string
		to       string
		expected string
	}{
		{"sibling", "/a/b", "/a/c", native("../c/")},
		{"descendant", "/a", "/a/b/c", native("b/c/")},
		{"ancestor", "/a/b/c", "/a", native("../../")},
		{"same directory", "/a/b", "/a/b/", ""},
		{"disjoint", "/x/y", "/a/b", native("../../a/b/")},
		{"case sensitive", "/a/B", "/a/b", native("../b/")},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			g.Expect(pathutil.ConvertToRelativePath(testCase.from, testCase.to)).To(Equal(testCase.expected))
		})
	}
}

func TestConvertToAbsolutePath(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		base     string
		rel      string
		expected string
	}{
		{"child", "/a/b", "c", native("/a/b/c/")},
		{"parent then child", "/a/b", "../c", native("/a/c/")},
		{"dot ignored", "/a/b", "./c/./d", native("/a/b/c/d/")},
		{"empty relative", "/a/b", "", native("/a/b/")},
		{"to root", "/a/b", "../..", native("/")},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			abs, err := pathutil.ConvertToAbsolutePath(testCase.base, testCase.rel)
			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(abs).To(Equal(testCase.expected))
		})
	}
}

func TestConvertToAbsolutePath_ClimbsAboveRoot(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	_, err := pathutil.ConvertToAbsolutePath("/a", "../../b")

	g.Expect(err).To(HaveOccurred())
	g.Expect(errors.Is(err, fserrors.ErrInvalidPath)).To(BeTrue())
}

func TestRelativeAbsoluteRoundTrip(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"/srv/backup/daily", "/srv/data/projects/x"},
		{"/srv", "/srv/a/b/c"},
		{"/srv/a/b/c", "/srv"},
		{"/home/user", "/home/user"},
		{"/a", "/b"},
		{"/", "/etc/hosts.d"},
	}

	for _, pair := range pairs {
		t.Run(pair[0]+"->"+pair[1], func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			from, to := native(pair[0]), native(pair[1])

			rel := pathutil.ConvertToRelativePath(from, to)
			abs, err := pathutil.ConvertToAbsolutePath(from, rel)

			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(abs).To(Equal(pathutil.SanitizePath(to, false)))
		})
	}
}
