// Package archive packages skill directories into distributable archives
// (tar.gz or zip) and extracts them again. Archives store paths relative to
// the skill directory and ship with a SHA-256 checksum file.
package archive

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"

	"github.com/skillkit/skillkit/pkg/logger"
	"github.com/skillkit/skillkit/pkg/skills"
)

// DefaultExcludes are glob patterns skipped when packing a skill.
var DefaultExcludes = []string{
	".git/**",
	"node_modules/**",
	"*.bak",
	".DS_Store",
}

// PackOptions configure archive creation.
type PackOptions struct {
	Output   string   // Destination path, defaults to <name>.skill.tar.gz next to the skill dir
	Excludes []string // Additional doublestar patterns relative to the skill dir
}

// PackResult reports the produced artifacts.
type PackResult struct {
	ArchivePath  string
	ChecksumPath string
	Checksum     string
	FileCount    int
}

// Pack archives a skill directory. The skill must carry a SKILL.md; entries
// are stored relative to the directory, in sorted order, with excluded
// patterns skipped. The format follows the output extension: .zip produces a
// zip archive, anything else a gzipped tarball.
func Pack(ctx context.Context, skillPath string, opts PackOptions) (*PackResult, error) {
	skillDir, err := filepath.Abs(skillPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve skill path")
	}

	if _, err := os.Stat(filepath.Join(skillDir, skills.SkillFileName)); err != nil {
		return nil, errors.Wrapf(err, "%s not found in %s", skills.SkillFileName, skillDir)
	}

	output := opts.Output
	if output == "" {
		output = filepath.Join(filepath.Dir(skillDir), filepath.Base(skillDir)+".skill.tar.gz")
	}

	excludes := append(append([]string{}, DefaultExcludes...), opts.Excludes...)

	files, err := collectFiles(skillDir, excludes)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.Errorf("nothing to pack in %s", skillDir)
	}

	if strings.HasSuffix(output, ".zip") {
		err = writeZip(skillDir, files, output)
	} else {
		err = writeTarGz(skillDir, files, output)
	}
	if err != nil {
		return nil, err
	}

	checksum, err := fileChecksum(output)
	if err != nil {
		return nil, err
	}

	checksumPath := output + ".sha256"
	checksumLine := fmt.Sprintf("%s  %s\n", checksum, filepath.Base(output))
	if err := os.WriteFile(checksumPath, []byte(checksumLine), 0o644); err != nil {
		return nil, errors.Wrap(err, "failed to write checksum file")
	}

	logger.G(ctx).WithFields(map[string]interface{}{
		"archive": output,
		"files":   len(files),
	}).Debug("Packed skill")

	return &PackResult{
		ArchivePath:  output,
		ChecksumPath: checksumPath,
		Checksum:     checksum,
		FileCount:    len(files),
	}, nil
}

// collectFiles walks the skill dir and returns the relative paths to archive,
// sorted for deterministic output.
func collectFiles(skillDir string, excludes []string) ([]string, error) {
	var files []string

	err := filepath.Walk(skillDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(skillDir, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		for _, pattern := range excludes {
			if ok, _ := doublestar.Match(pattern, relPath); ok {
				return nil
			}
		}

		files = append(files, relPath)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to walk skill directory")
	}

	sort.Strings(files)
	return files, nil
}

func writeTarGz(skillDir string, files []string, output string) error {
	out, err := os.Create(output)
	if err != nil {
		return errors.Wrap(err, "failed to create archive")
	}
	defer out.Close()

	gzw := gzip.NewWriter(out)
	defer gzw.Close()

	tw := tar.NewWriter(gzw)
	defer tw.Close()

	for _, relPath := range files {
		fullPath := filepath.Join(skillDir, filepath.FromSlash(relPath))
		info, err := os.Stat(fullPath)
		if err != nil {
			return errors.Wrapf(err, "failed to stat %s", relPath)
		}

		header, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return errors.Wrapf(err, "failed to build tar header for %s", relPath)
		}
		header.Name = relPath

		if err := tw.WriteHeader(header); err != nil {
			return errors.Wrapf(err, "failed to write tar header for %s", relPath)
		}

		if err := copyFileInto(tw, fullPath); err != nil {
			return errors.Wrapf(err, "failed to archive %s", relPath)
		}
	}

	return nil
}

func writeZip(skillDir string, files []string, output string) error {
	out, err := os.Create(output)
	if err != nil {
		return errors.Wrap(err, "failed to create archive")
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	defer zw.Close()

	for _, relPath := range files {
		fullPath := filepath.Join(skillDir, filepath.FromSlash(relPath))

		w, err := zw.Create(relPath)
		if err != nil {
			return errors.Wrapf(err, "failed to create zip entry for %s", relPath)
		}

		if err := copyFileInto(w, fullPath); err != nil {
			return errors.Wrapf(err, "failed to archive %s", relPath)
		}
	}

	return nil
}

func copyFileInto(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(w, f)
	return err
}

func fileChecksum(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap(err, "failed to open archive for checksum")
	}
	defer file.Close()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return "", errors.Wrap(err, "failed to hash archive")
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// Unpack extracts a skill archive into destDir. Both tar.gz and zip archives
// are supported; entries escaping the destination are rejected.
func Unpack(ctx context.Context, archivePath, destDir string) error {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return errors.Wrap(err, "failed to create destination directory")
	}

	var err error
	switch {
	case strings.HasSuffix(archivePath, ".zip"):
		err = unpackZip(archivePath, destDir)
	case strings.HasSuffix(archivePath, ".tar.gz"), strings.HasSuffix(archivePath, ".tgz"):
		err = unpackTarGz(archivePath, destDir)
	default:
		return errors.Errorf("unsupported archive format: %s", archivePath)
	}
	if err != nil {
		return err
	}

	logger.G(ctx).WithFields(map[string]interface{}{
		"archive": archivePath,
		"dest":    destDir,
	}).Debug("Unpacked skill")

	return nil
}

// safeDestPath joins name under destDir and rejects path traversal. A root
// entry like "./" resolves to destDir itself and is allowed.
func safeDestPath(destDir, name string) (string, error) {
	clean := filepath.Clean(destDir)
	dest := filepath.Join(destDir, filepath.FromSlash(name))
	if dest == clean {
		return dest, nil
	}
	if !strings.HasPrefix(dest, clean+string(os.PathSeparator)) {
		return "", errors.Errorf("archive entry escapes destination: %s", name)
	}
	return dest, nil
}

func unpackTarGz(archivePath, destDir string) error {
	file, err := os.Open(archivePath)
	if err != nil {
		return errors.Wrap(err, "failed to open archive")
	}
	defer file.Close()

	gzr, err := gzip.NewReader(file)
	if err != nil {
		return errors.Wrap(err, "failed to read gzip stream")
	}
	defer gzr.Close()

	tr := tar.NewReader(gzr)

	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(err, "failed to read tar entry")
		}

		dest, err := safeDestPath(destDir, header.Name)
		if err != nil {
			return err
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(dest, 0o755); err != nil {
				return errors.Wrapf(err, "failed to create directory %s", header.Name)
			}
		case tar.TypeReg:
			if err := writeEntry(dest, tr, os.FileMode(header.Mode)); err != nil {
				return errors.Wrapf(err, "failed to extract %s", header.Name)
			}
		}
	}

	return nil
}

func unpackZip(archivePath, destDir string) error {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return errors.Wrap(err, "failed to open archive")
	}
	defer r.Close()

	for _, f := range r.File {
		dest, err := safeDestPath(destDir, f.Name)
		if err != nil {
			return err
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(dest, 0o755); err != nil {
				return errors.Wrapf(err, "failed to create directory %s", f.Name)
			}
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return errors.Wrapf(err, "failed to open zip entry %s", f.Name)
		}

		err = writeEntry(dest, rc, f.Mode())
		rc.Close()
		if err != nil {
			return errors.Wrapf(err, "failed to extract %s", f.Name)
		}
	}

	return nil
}

func writeEntry(dest string, r io.Reader, mode os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm())
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, r)
	return err
}
