package fs

import (
	"io"
	"os"
)

type Filesystem interface {
	Stat(string) (os.FileInfo, error)
	Open(string) (io.ReadCloser, error)
	Create(string) (io.WriteCloser, error)
	Getwd() (string, error)
}

type OS struct{}

func (OS) Open(name string) (io.ReadCloser, error)    { return os.Open(name) }
func (OS) Create(name string) (io.WriteCloser, error) { return os.Create(name) }
func (OS) Stat(name string) (os.FileInfo, error)      { return os.Stat(name) }
func (OS) Getwd() (string, error)                     { return os.Getwd() }
