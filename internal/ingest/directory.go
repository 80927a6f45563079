package ingest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joseph-ayodele/scan-extractor/internal/common"
)

// ListPDFs returns the regular files directly under root whose name ends in
// .pdf (any case), sorted by name. Subfolders are not visited.
func ListPDFs(root string) ([]Candidate, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root_path is required")
	}
	st, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, DirStats{}, fmt.Errorf("%s: %w", root, common.ErrFolderNotFound)
		}
		return nil, DirStats{}, fmt.Errorf("stat folder: %w", err)
	}
	if !st.IsDir() {
		return nil, DirStats{}, fmt.Errorf("%s is not a directory: %w", root, common.ErrFolderNotFound)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, DirStats{}, fmt.Errorf("read folder: %w", err)
	}

	var out []Candidate
	var stats DirStats
	for _, d := range entries {
		stats.Scanned++
		if d.IsDir() || !AllowedExt(filepath.Ext(d.Name())) {
			continue
		}
		stats.Matched++
		out = append(out, Candidate{Name: d.Name(), Path: filepath.Join(root, d.Name())})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, stats, nil
}
