package pipeline

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joseph-ayodele/scan-extractor/internal/common"
	"github.com/joseph-ayodele/scan-extractor/internal/pipeline/parsefields"
)

// renameMedicalRecord renames job's file to emo_<dni>_<date><ext> in place.
// It returns the name the report should use and whether the file moved.
// On failure the original name is kept.
func (p *Processor) renameMedicalRecord(job Job, reply string) (string, bool) {
	fields := parsefields.ParseMedical(reply)
	newName := parsefields.MedicalFilename(fields, filepath.Ext(job.Name))

	if newName == job.Name {
		p.logger.Debug("pipeline.rename.noop", "file", job.Name)
		return job.Name, false
	}

	newPath := pathInFolder(job.Path, newName)
	if err := p.safeRename(job.Path, newPath); err != nil {
		p.logger.Error("pipeline.rename.failed", "file", job.Name, "target", newName, "error", err)
		p.printf("Error al renombrar %s: %v\n", job.Name, err)
		return job.Name, false
	}

	p.logger.Info("pipeline.rename.ok", "file", job.Name, "target", newName, "dni", fields.DNI, "date", fields.ExamDate)
	p.printf("Archivo renombrado a: %s\n", newName)
	return newName, true
}

// safeRename refuses to replace an existing different file; os.Rename would
// silently overwrite it on POSIX systems.
func (p *Processor) safeRename(oldPath, newPath string) error {
	dst, err := os.Stat(newPath)
	switch {
	case err == nil:
		src, serr := os.Stat(oldPath)
		if serr != nil {
			return serr
		}
		// case-insensitive filesystems report the source itself
		if !os.SameFile(src, dst) {
			return fmt.Errorf("%s: %w", filepath.Base(newPath), common.ErrRenameConflict)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}
	return p.rename(oldPath, newPath)
}

func pathInFolder(path, name string) string {
	return filepath.Join(filepath.Dir(path), name)
}
