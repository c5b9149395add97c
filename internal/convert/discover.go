// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/pdiddy/deck2md/internal/logger"
)

// pptxPattern matches presentations directly inside a directory.
const pptxPattern = "*.{pptx,PPTX}"

// Discover expands the given paths into the list of presentations to
// convert. Directories contribute their top-level .pptx files in name order.
// Missing paths and files without a .pptx extension are logged and skipped.
func Discover(paths []string, log *logger.Logger) []string {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.SkippedPath(p, "path does not exist")
			} else {
				log.SkippedPath(p, "cannot access path: "+err.Error())
			}
			continue
		}

		if info.IsDir() {
			matches, err := doublestar.Glob(os.DirFS(p), pptxPattern, doublestar.WithFilesOnly())
			if err != nil {
				log.SkippedPath(p, "cannot list directory: "+err.Error())
				continue
			}
			sort.Strings(matches)
			for _, m := range matches {
				files = append(files, filepath.Join(p, filepath.FromSlash(m)))
			}
			continue
		}

		if !strings.EqualFold(filepath.Ext(p), ".pptx") {
			log.SkippedPath(p, "not a PPTX file")
			continue
		}
		files = append(files, p)
	}
	return files
}
