package fs

import (
	"bytes"
	"io"
	"os"
	"strings"
	"time"
)

type MockFileInfo struct {
	IsDirValue bool
}

func (m MockFileInfo) IsDir() bool        { return m.IsDirValue }
func (m MockFileInfo) ModTime() time.Time { return time.Now() }
func (m MockFileInfo) Mode() os.FileMode  { return 0 }
func (m MockFileInfo) Name() string       { return "" }
func (m MockFileInfo) Size() int64        { return 1 }
func (m MockFileInfo) Sys() interface{}   { return nil }

// MockFS serves Files from memory and records everything written through
// Create in Written. Err, when set, is returned by every call.
type MockFS struct {
	Info    MockFileInfo
	Err     error
	Files   map[string]string
	Written map[string]*bytes.Buffer
}

func (fs MockFS) Open(name string) (io.ReadCloser, error) {
	if fs.Err != nil {
		return nil, fs.Err
	}
	content, ok := fs.Files[name]
	if !ok {
		return nil, os.ErrNotExist
	}

	return io.NopCloser(strings.NewReader(content)), nil
}

func (fs MockFS) Create(name string) (io.WriteCloser, error) {
	if fs.Err != nil {
		return nil, fs.Err
	}
	b := &bytes.Buffer{}
	if fs.Written != nil {
		fs.Written[name] = b
	}

	return nopWriteCloser{b}, nil
}

func (fs MockFS) Stat(name string) (os.FileInfo, error) {
	if fs.Err != nil {
		return nil, fs.Err
	}
	if fs.Files != nil {
		if _, ok := fs.Files[name]; !ok {
			return nil, os.ErrNotExist
		}
	}

	return fs.Info, nil
}

func (fs MockFS) Getwd() (string, error) { return "", fs.Err }

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
