package util

import (
	"bufio"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
)

// FileExist determines whether a file exists
func FileExist(filePath string) bool {
	_, err := os.Stat(filePath)
	if err != nil && os.IsNotExist(err) {
		return false
	}
	return true
}

// WithOpenFile opens a file, do something, and close it.
func WithOpenFile(name string, flag int, perm os.FileMode, fun func(*os.File) error) error {
	f, err := os.OpenFile(name, flag, perm)
	if err != nil {
		return errors.Wrapf(err, "open file %s failed", name)
	}

	defer f.Close()

	return fun(f)
}

// WithReadFile opens a file for read, and close it.
func WithReadFile(name string, fun func(*bufio.Reader) error) error {
	return WithOpenFile(name, os.O_RDONLY, 0, func(f *os.File) error {
		return fun(bufio.NewReader(f))
	})
}

// ReadAll returns the whole content of a file.
func ReadAll(name string) ([]byte, error) {
	var data []byte
	err := WithReadFile(name, func(reader *bufio.Reader) error {
		var err error
		data, err = ioutil.ReadAll(reader)
		return err
	})
	if err != nil {
		return nil, errors.Wrapf(err, "read file %s failed", name)
	}
	return data, nil
}
