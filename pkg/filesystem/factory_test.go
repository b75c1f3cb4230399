//nolint:varnamelen // Test files use idiomatic short variable names (t, g, etc.)
package filesystem_test

import (
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/fsutil/pkg/filesystem"
)

func TestCreateFileSystem_Local(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	dir := t.TempDir()

	mount, err := filesystem.CreateFileSystem(dir, filesystem.ConnectOptions{})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(mount.Path).To(Equal(dir))
	g.Expect(mount.Remote()).To(BeFalse())
	g.Expect(mount.FS).To(BeAssignableToTypeOf(&filesystem.RealFileSystem{}))

	g.Expect(mount.Close()).To(Succeed())
	g.Expect(mount.Close()).To(Succeed())
}

func TestCreateFileSystem_BadURL(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	_, err := filesystem.CreateFileSystem("sftp://host/path", filesystem.ConnectOptions{})

	g.Expect(err).To(MatchError(ContainSubstring("must include username")))
}

func TestCreateFileSystemPair_Local(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	source, dest, err := filesystem.CreateFileSystemPair("/src/a.txt", "/dst", filesystem.ConnectOptions{})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(source.Path).To(Equal("/src/a.txt"))
	g.Expect(dest.Path).To(Equal("/dst"))
}

func TestCreateFileSystemPair_BadDestination(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	_, _, err := filesystem.CreateFileSystemPair("/src/a.txt", "sftp://@host/x", filesystem.ConnectOptions{})

	g.Expect(err).To(MatchError(ContainSubstring("failed to create destination filesystem")))
}
