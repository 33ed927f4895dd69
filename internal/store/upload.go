package store

import (
	"context"
	"os"
	"path/filepath"

	"github.com/dmorgan81/imagecreator/internal/log"
)

type UploadParams struct {
	Name        string
	Data        []byte
	ContentType string
}

type Uploader interface {
	Upload(context.Context, UploadParams) error
}

// FileUploader writes uploads into Dir. Used for local runs.
type FileUploader struct {
	Dir string
}

func (u *FileUploader) Upload(ctx context.Context, params UploadParams) error {
	path := filepath.Join(u.Dir, params.Name)
	log := log.FromContextOrDiscard(ctx).WithGroup("file")
	log.Info("writing", "file", path)
	return os.WriteFile(path, params.Data, 0600)
}
