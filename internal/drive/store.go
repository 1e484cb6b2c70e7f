package drive

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"

	"carf-backend/pkg/apperr"

	"go.uber.org/zap"
)

// DocumentStore manages the per-gencode folder hierarchy:
// root folder → gencode folder → document-type subfolders → files.
type DocumentStore struct {
	client       Client
	log          *zap.Logger
	RootFolderID string
}

func NewDocumentStore(client Client, log *zap.Logger, rootFolderID string) *DocumentStore {
	return &DocumentStore{client: client, log: log, RootFolderID: rootFolderID}
}

// FindOrCreateFolder looks a folder up by name under parentID, creating it
// when absent. Folder names are not unique in the backing store; multiple
// matches are logged and the lexicographically smallest file ID wins so
// repeated calls stay deterministic.
func (s *DocumentStore) FindOrCreateFolder(ctx context.Context, parentID, name string) (string, error) {
	matches, err := s.client.ListFolders(ctx, parentID, name)
	if err != nil {
		return "", err
	}

	if len(matches) > 0 {
		if len(matches) > 1 {
			s.log.Warn("duplicate folders found, picking smallest id",
				zap.String("name", name),
				zap.String("parent", parentID),
				zap.Int("count", len(matches)))
			sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
		}
		return matches[0].ID, nil
	}

	created, err := s.client.CreateFolder(ctx, parentID, name)
	if err != nil {
		return "", err
	}
	return created.ID, nil
}

// FindGencodeFolder resolves the gencode's folder without creating it.
func (s *DocumentStore) FindGencodeFolder(ctx context.Context, gencode string) (string, error) {
	matches, err := s.client.ListFolders(ctx, s.RootFolderID, gencode)
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", apperr.NotFound("gencode folder", gencode)
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches[0].ID, nil
}

// ListFiles lists the files directly under folderID.
func (s *DocumentStore) ListFiles(ctx context.Context, folderID string) ([]FileInfo, error) {
	return s.client.ListFiles(ctx, folderID)
}

// ListGencodeFiles returns the files of one document-type subfolder of the
// gencode folder.
func (s *DocumentStore) ListGencodeFiles(ctx context.Context, gencode, docType string) ([]FileInfo, error) {
	folderID, err := s.FindGencodeFolder(ctx, gencode)
	if err != nil {
		return nil, err
	}
	sub, err := s.client.ListFolders(ctx, folderID, docType)
	if err != nil {
		return nil, err
	}
	if len(sub) == 0 {
		return []FileInfo{}, nil
	}
	return s.client.ListFiles(ctx, sub[0].ID)
}

// StreamFile opens a file for download. The caller owns the reader.
func (s *DocumentStore) StreamFile(ctx context.Context, fileID string) (FileInfo, io.ReadCloser, error) {
	return s.client.Download(ctx, fileID)
}

// DeleteFile removes a file. Deleting an already-deleted file succeeds:
// the backing store's 404 is swallowed so retries converge.
func (s *DocumentStore) DeleteFile(ctx context.Context, fileID string) error {
	err := s.client.Delete(ctx, fileID)
	if apperr.IsNotFound(err) {
		s.log.Info("delete of missing file treated as success", zap.String("file_id", fileID))
		return nil
	}
	return err
}

// UploadFile describes one incoming attachment.
type UploadFile struct {
	Name     string
	MimeType string
	Content  io.Reader
}

// UploadFiles stores files under root → gencode → docType, sequentially.
// A mid-batch failure leaves the already-uploaded files in place; there is
// no multi-file transaction.
func (s *DocumentStore) UploadFiles(ctx context.Context, gencode, docType string, files []UploadFile) ([]FileInfo, error) {
	gencodeFolder, err := s.FindOrCreateFolder(ctx, s.RootFolderID, gencode)
	if err != nil {
		return nil, err
	}
	docFolder, err := s.FindOrCreateFolder(ctx, gencodeFolder, docType)
	if err != nil {
		return nil, err
	}

	uploaded := make([]FileInfo, 0, len(files))
	for _, f := range files {
		info, err := s.client.Upload(ctx, docFolder, f.Name, f.MimeType, f.Content)
		if err != nil {
			return uploaded, fmt.Errorf("upload %q: %w", f.Name, err)
		}
		uploaded = append(uploaded, info)
	}
	return uploaded, nil
}

// BundleGencode walks gencode folder → document-type subfolders → files and
// zips everything. Files are streamed into the archive one at a time so only
// the zip itself is buffered, and any single failed fetch aborts the whole
// bundle rather than producing a partial zip.
func (s *DocumentStore) BundleGencode(ctx context.Context, gencode string) (*bytes.Buffer, error) {
	folderID, err := s.FindGencodeFolder(ctx, gencode)
	if err != nil {
		return nil, err
	}

	subfolders, err := s.client.ListFolders(ctx, folderID, "")
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)

	for _, folder := range subfolders {
		files, err := s.client.ListFiles(ctx, folder.ID)
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			if err := s.addZipEntry(ctx, zw, folder.Name+"/"+file.Name, file.ID); err != nil {
				return nil, fmt.Errorf("bundle %s: %w", gencode, err)
			}
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize zip for %s: %w", gencode, err)
	}
	return buf, nil
}

func (s *DocumentStore) addZipEntry(ctx context.Context, zw *zip.Writer, path, fileID string) error {
	_, rc, err := s.client.Download(ctx, fileID)
	if err != nil {
		return err
	}
	defer rc.Close()

	w, err := zw.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, rc); err != nil {
		return fmt.Errorf("copy %s: %w", path, err)
	}
	return nil
}
