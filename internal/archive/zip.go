package archive

// Package archive packages an application source directory into a zip
// suitable for run-from-package deployment. Entries are written in sorted
// order with a fixed timestamp so the same tree always produces the same
// bytes, which lets deploys skip the upload when nothing changed.

import (
	"archive/zip"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// fixedModTime is the timestamp stamped on every zip entry.
var fixedModTime = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// skipped names never enter the package.
var skipped = map[string]bool{
	".git":                true,
	".vscode":             true,
	"local.settings.json": true,
}

// Package zips the directory rooted at srcDir into outPath and returns the
// hex SHA-256 of the written archive.
func Package(srcDir, outPath string) (string, error) {
	info, err := os.Stat(srcDir)
	if err != nil {
		return "", fmt.Errorf("stat source dir: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("source %s is not a directory", srcDir)
	}

	files, err := collect(srcDir)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", fmt.Errorf("source dir %s contains no files", srcDir)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("create archive: %w", err)
	}
	defer out.Close()

	h := sha256.New()
	zw := zip.NewWriter(io.MultiWriter(out, h))
	for _, rel := range files {
		if err := addFile(zw, srcDir, rel); err != nil {
			zw.Close()
			return "", err
		}
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("finalize archive: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("close archive: %w", err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// collect returns the sorted slash-separated relative paths of all regular
// files under root, minus skipped entries.
func collect(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if skipped[d.Name()] {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk source dir: %w", err)
	}
	sort.Strings(files)
	return files, nil
}

func addFile(zw *zip.Writer, root, rel string) error {
	src, err := os.Open(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		return fmt.Errorf("open %s: %w", rel, err)
	}
	defer src.Close()

	hdr := &zip.FileHeader{
		Name:     rel,
		Method:   zip.Deflate,
		Modified: fixedModTime,
	}
	hdr.SetMode(0o644)
	w, err := zw.CreateHeader(hdr)
	if err != nil {
		return fmt.Errorf("add %s: %w", rel, err)
	}
	if _, err := io.Copy(w, src); err != nil {
		return fmt.Errorf("write %s: %w", rel, err)
	}
	return nil
}

// BlobName returns the package blob name for a content hash.
func BlobName(hash string) string {
	short := hash
	if len(short) > 16 {
		short = short[:16]
	}
	return fmt.Sprintf("package-%s.zip", strings.ToLower(short))
}
