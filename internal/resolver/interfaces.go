package resolver

//go:generate mockgen -source=interfaces.go -destination=../mock/file_system_mock.go -package=mock

import (
	"io/fs"
	"os"
)

// FileSystem is the disk access the file loader needs: existence checks for
// working-directory resolution and whole-file reads.
type FileSystem interface {
	// ReadFile returns the full contents of name.
	ReadFile(name string) ([]byte, error)
	// Stat returns file info for name, or an error if it does not exist.
	Stat(name string) (fs.FileInfo, error)
}

// osFileSystem is the [FileSystem] backed by the os package.
type osFileSystem struct{}

func (osFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (osFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}
