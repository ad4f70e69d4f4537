// Package iolib provides I/O functions beyond goLang primitives
package iolib

import (
	"bufio"
	"io"
	"os"
	"strings"
)

/***************************************************************************************************************
****************************************************************************************************************
* I/O functions ************************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

// FileExists returns true if there is a file w/ that name
func FileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// CopyFileContents copies the contents of the file named src to the file named
// by dst. The file will be created if it does not already exist. If the
// destination file exists, all it's contents will be replaced by the contents
// of the source file.
func CopyFileContents(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return
	}
	defer func() {
		cerr := out.Close()
		if err == nil {
			err = cerr
		}
	}()
	if _, err = io.Copy(out, in); err != nil {
		return
	}
	err = out.Sync()
	return
}

// File2string reads a file into a string
func File2string(filename string) (string, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// EachLine calls fn for every line of r, without its line terminator. A last line
// lacking a newline is still passed. It returns the number of bytes consumed.
func EachLine(r io.Reader, fn func(line string)) (int64, error) {
	br := bufio.NewReader(r)
	var n int64
	for {
		line, err := br.ReadString('\n')
		n += int64(len(line))
		if len(line) > 0 {
			fn(strings.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
	}
}

// BufferedFile is a file opened for writing behind a bufio.Writer
type BufferedFile struct {
	*bufio.Writer
	f *os.File
}

// Create truncates or creates filename for buffered writing
func Create(filename string) (*BufferedFile, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, err
	}

	return &BufferedFile{Writer: bufio.NewWriter(f), f: f}, nil
}

// Close flushes pending data and closes the file, returning the first error
func (b *BufferedFile) Close() error {
	err := b.Flush()
	if cerr := b.f.Close(); err == nil {
		err = cerr
	}

	return err
}
