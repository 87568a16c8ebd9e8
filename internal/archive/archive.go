// Package archive bundles bot source files into a submission zip.
package archive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zip"
)

// ErrNoMembers is returned when Pack is asked to build an empty archive.
var ErrNoMembers = errors.New("archive: no members")

// Options describes one archive to build.
type Options struct {
	// Output is the archive path. Relative paths are not resolved against Dir.
	Output string
	// Dir is the directory member names are relative to. Empty means ".".
	Dir string
	// Members are stored under these names, in order.
	Members []string
	// Deflate compresses members; otherwise they are stored.
	Deflate bool
}

// Result summarizes a built archive.
type Result struct {
	Output  string
	Members int
	Bytes   int64
}

// Pack writes the archive described by opts. On failure the partial archive
// is removed.
func Pack(ctx context.Context, opts Options) (res Result, err error) {
	if len(opts.Members) == 0 {
		return Result{}, ErrNoMembers
	}
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	method := zip.Store
	if opts.Deflate {
		method = zip.Deflate
	}

	f, err := os.Create(opts.Output)
	if err != nil {
		return Result{}, fmt.Errorf("create archive: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close archive: %w", cerr)
		}
		if err != nil {
			os.Remove(opts.Output)
		}
	}()

	zw := zip.NewWriter(f)
	for _, name := range opts.Members {
		if err := ctx.Err(); err != nil {
			zw.Close()
			return Result{}, err
		}
		n, err := addMember(zw, filepath.Join(dir, name), name, method)
		if err != nil {
			zw.Close()
			return Result{}, err
		}
		res.Bytes += n
		res.Members++
	}
	if err := zw.Close(); err != nil {
		return Result{}, fmt.Errorf("finish archive: %w", err)
	}
	res.Output = opts.Output
	return res, nil
}

func addMember(zw *zip.Writer, path, name string, method uint16) (int64, error) {
	src, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("member %s: %w", name, err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return 0, fmt.Errorf("member %s: %w", name, err)
	}
	if info.IsDir() {
		return 0, fmt.Errorf("member %s: is a directory", name)
	}
	hdr, err := zip.FileInfoHeader(info)
	if err != nil {
		return 0, fmt.Errorf("member %s: %w", name, err)
	}
	hdr.Name = filepath.ToSlash(name)
	hdr.Method = method

	dst, err := zw.CreateHeader(hdr)
	if err != nil {
		return 0, fmt.Errorf("member %s: %w", name, err)
	}
	n, err := io.Copy(dst, src)
	if err != nil {
		return n, fmt.Errorf("member %s: %w", name, err)
	}
	return n, nil
}
