//nolint:varnamelen // Test files use idiomatic short variable names (t, g, etc.)
package filesystem_test

import (
	"errors"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	fserrors "github.com/joe/fsutil/pkg/errors"
	"github.com/joe/fsutil/pkg/filesystem"
)

func TestParsePath_Local(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	result, err := filesystem.ParsePath("/local/path")

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(result.IsRemote).To(BeFalse())
	g.Expect(result.LocalPath).To(Equal("/local/path"))
	g.Expect(result.String()).To(Equal("/local/path"))
}

func TestParsePath_SFTP(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		wantUser string
		wantHost string
		wantPort int
		wantPath string
	}{
		{"relative to login directory", "sftp://user@host/path", "user", "host", 22, "path"},
		{"custom port", "sftp://user@host:2222/backups/daily", "user", "host", 2222, "backups/daily"},
		{"absolute path", "sftp://admin@10.0.0.5//srv/data", "admin", "10.0.0.5", 22, "/srv/data"},
		{"login directory", "sftp://user@host", "user", "host", 22, "."},
		{"login directory with slash", "sftp://user@host/", "user", "host", 22, "."},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			result, err := filesystem.ParsePath(testCase.input)
			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(result.IsRemote).To(BeTrue())
			g.Expect(result.User).To(Equal(testCase.wantUser))
			g.Expect(result.Host).To(Equal(testCase.wantHost))
			g.Expect(result.Port).To(Equal(testCase.wantPort))
			g.Expect(result.Path).To(Equal(testCase.wantPath))
		})
	}
}

func TestParsePath_SFTPErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		input  string
		errMsg string
	}{
		{"missing username", "sftp://host/path", "must include username"},
		{"missing host", "sftp://user@/path", "must include host"},
		{"port out of range", "sftp://user@host:70000/path", "invalid port number"},
		{"malformed", "sftp://user@host:port/path", "invalid"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			_, err := filesystem.ParsePath(testCase.input)
			g.Expect(err).To(MatchError(ContainSubstring(testCase.errMsg)))
			g.Expect(errors.Is(err, fserrors.ErrInvalidPath)).To(BeTrue())
		})
	}
}

func TestParsedPath_String(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	result, err := filesystem.ParsePath("sftp://backup@nas.local:2200//volume1")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(result.Address()).To(Equal("nas.local:2200"))
	g.Expect(result.String()).To(Equal("backup@nas.local:2200:/volume1"))
}
