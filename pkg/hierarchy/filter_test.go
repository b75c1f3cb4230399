//nolint:varnamelen // Test files use idiomatic short variable names (t, g, etc.)
package hierarchy_test

import (
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/fsutil/pkg/hierarchy"
	"github.com/joe/fsutil/pkg/walk"
)

func TestGlobFilter_InvalidPatternMatchesNothing(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	filter := hierarchy.NewGlobFilter("/srv", "[invalid")

	g.Expect(filter.Valid()).To(BeFalse())
	g.Expect(filter.MatchRelative("test.txt")).To(BeFalse())
}

func TestGlobFilter_MatchRelative(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		pattern     string
		path        string
		shouldMatch bool
	}{
		{"empty pattern matches all", "", "any/file.txt", true},
		{"extension", "*.go", "main.go", true},
		{"extension mismatch", "*.go", "main.rs", false},
		{"uppercase pattern", "*.GO", "main.go", true},
		{"uppercase path", "*.go", "MAIN.GO", true},
		{"double star nested", "**/*.go", "pkg/walk/walk.go", true},
		{"double star at root", "**/*.go", "main.go", true},
		{"double star in middle", "pkg/**/walk.go", "pkg/a/b/walk.go", true},
		{"brace expansion", "*.{md,txt}", "notes.txt", true},
		{"brace expansion mismatch", "*.{md,txt}", "notes.pdf", false},
		{"single star stays in directory", "docs/*.md", "docs/old/readme.md", false},
		{"question mark", "log?.txt", "log1.txt", true},
		{"character class", "v[0-9].tar", "va.tar", false},
		{"backslash path", "**/*.go", `pkg\walk\walk.go`, true},
		{"empty path", "*.go", "", false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			filter := hierarchy.NewGlobFilter("/srv", testCase.pattern)
			g.Expect(filter.MatchRelative(testCase.path)).To(Equal(testCase.shouldMatch),
				"pattern %q path %q", testCase.pattern, testCase.path)
		})
	}
}

func TestGlobFilter_MatchesEntriesRelativeToRoot(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	predicate := hierarchy.GlobPredicate("/srv/data", "reports/*.csv")

	g.Expect(predicate(walk.Entry{Path: "/srv/data/reports/", Name: "q1.CSV"})).To(BeTrue())
	g.Expect(predicate(walk.Entry{Path: "/srv/data/", Name: "q1.csv"})).To(BeFalse())
	g.Expect(predicate(walk.Entry{Path: "/srv/data/reports/2024/", Name: "q1.csv"})).To(BeFalse())
}
