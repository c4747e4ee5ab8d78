// Copyright mclaunch contributors
// SPDX-License-Identifier: Apache-2.0

// Package archive unpacks the archive formats published for versions: zip (jar) native bundles and lzma compressed
// runtime files.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/mholt/archiver/v3"
)

// Unzip extracts the zip (or jar) file "src" into the directory "dst", which is created if needed.
//
// When every entry is under the same top-level directory, that directory is stripped. Ex on "/natives/liblwjgl.so",
// "dst" will have "liblwjgl.so". Entries whose name starts with any of the "exclude" prefixes are skipped, ex
// "META-INF/". Existing files are overwritten.
func Unzip(dst, src string, exclude []string) error { // dst, src order like io.Copy
	if err := os.MkdirAll(dst, 0o750); err != nil {
		return err
	}

	z := archiver.NewZip()
	z.OverwriteExisting = true

	var names []string
	if err := z.Walk(src, func(f archiver.File) error {
		names = append(names, entryName(f))
		return nil
	}); err != nil {
		return err
	}
	root := sharedRoot(names)

	return z.Walk(src, func(f archiver.File) error {
		name := entryName(f)
		if excluded(name, exclude) {
			return nil
		}
		if root != "" {
			name = strings.TrimPrefix(name, root+"/")
		}
		name = strings.TrimSuffix(name, "/")
		if name == "" || name == root {
			return nil
		}

		dstPath, err := within(dst, name)
		if err != nil {
			return err
		}
		if f.IsDir() {
			return os.MkdirAll(dstPath, 0o750)
		}
		if err := os.MkdirAll(filepath.Dir(dstPath), 0o750); err != nil {
			return err
		}
		return extractFile(dstPath, f, f.Mode().Perm())
	})
}

// entryName returns the full slash-separated name of the entry, as f.Name() is only the base name.
func entryName(f archiver.File) string {
	if h, ok := f.Header.(zip.FileHeader); ok {
		return path.Clean("/" + h.Name)[1:] + trailingSlash(h.Name)
	}
	return f.Name()
}

func trailingSlash(name string) string {
	if strings.HasSuffix(name, "/") && name != "/" {
		return "/"
	}
	return ""
}

// sharedRoot returns the top-level directory all names are under, or "" if there is none.
func sharedRoot(names []string) string {
	root := ""
	for _, n := range names {
		slash := strings.Index(n, "/")
		if slash == -1 { // a top-level file
			return ""
		}
		if top := n[:slash]; root == "" {
			root = top
		} else if root != top {
			return ""
		}
	}
	return root
}

func excluded(name string, exclude []string) bool {
	for _, e := range exclude {
		if e != "" && strings.HasPrefix(name, e) {
			return true
		}
	}
	return false
}

// within joins name to dst, failing if the result would be outside dst.
func within(dst, name string) (string, error) {
	p := filepath.Join(dst, filepath.FromSlash(name))
	rel, err := filepath.Rel(dst, p)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("illegal file path %q", name)
	}
	return p, nil
}

func extractFile(dst string, src io.Reader, perm os.FileMode) error {
	if perm == 0 {
		perm = 0o644
	}
	file, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perm) //nolint:gosec
	if err != nil {
		return err
	}
	defer file.Close() //nolint
	_, err = io.Copy(file, src)
	return err
}
