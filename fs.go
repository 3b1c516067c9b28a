package bake

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// CompareModTime compares the modification times of the two named files with
// nanosecond precision. It returns +1 when lhs is newer than rhs, -1 when lhs
// is older, and 0 when the timestamps are equal.
func CompareModTime(lhs, rhs string) (int, error) {
	li, err := os.Stat(lhs)
	if err != nil {
		return 0, err
	}
	ri, err := os.Stat(rhs)
	if err != nil {
		return 0, err
	}
	lt, rt := li.ModTime(), ri.ModTime()
	switch {
	case lt.After(rt):
		return 1, nil
	case lt.Before(rt):
		return -1, nil
	default:
		return 0, nil
	}
}

// Newer reports whether lhs was modified more recently than rhs.
func Newer(lhs, rhs string) (bool, error) {
	n, err := CompareModTime(lhs, rhs)
	return n > 0, err
}

// Older reports whether lhs was modified less recently than rhs.
func Older(lhs, rhs string) (bool, error) {
	n, err := CompareModTime(lhs, rhs)
	return n < 0, err
}

// Outdated reports whether the target needs rebuilding: it is missing, or at
// least one source was modified after it. Sources must exist.
func Outdated(target string, sources ...string) (bool, error) {
	ti, err := os.Stat(target)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	for _, src := range sources {
		si, err := os.Stat(src)
		if err != nil {
			return false, err
		}
		if si.ModTime().After(ti.ModTime()) {
			return true, nil
		}
	}
	return false, nil
}

// Exists reports whether a file exists at the given path. A false return may
// also mean the caller lacks permission to stat it.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// SwapExt returns path with its extension replaced by ext, which may be given
// with or without a leading dot. A path with no extension gets ext appended.
//
//	bake.SwapExt("main.c", "o") // "main.o"
func SwapExt(path, ext string) string {
	ext = strings.TrimPrefix(ext, ".")
	return strings.TrimSuffix(path, filepath.Ext(path)) + "." + ext
}
