// Package drive manages per-gencode attachment folders in the cloud drive.
package drive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"carf-backend/pkg/apperr"

	driveapi "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const folderMimeType = "application/vnd.google-apps.folder"

// FileInfo describes one drive file or folder.
type FileInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
}

// Client is the minimal drive surface the document store needs. Missing
// files surface as apperr.NotFoundError so the store can decide which
// operations treat a miss as success.
type Client interface {
	// ListFolders returns the non-trashed subfolders of parentID, optionally
	// filtered by exact name.
	ListFolders(ctx context.Context, parentID, name string) ([]FileInfo, error)
	CreateFolder(ctx context.Context, parentID, name string) (FileInfo, error)
	// ListFiles returns the non-trashed, non-folder children of folderID.
	ListFiles(ctx context.Context, folderID string) ([]FileInfo, error)
	// Download returns the file metadata and a reader over its content.
	// The caller owns closing the reader.
	Download(ctx context.Context, fileID string) (FileInfo, io.ReadCloser, error)
	Upload(ctx context.Context, folderID, name, mimeType string, r io.Reader) (FileInfo, error)
	Delete(ctx context.Context, fileID string) error
}

type googleClient struct {
	svc *driveapi.Service
}

// NewGoogleClient builds a Client over the Drive API using service-account
// credentials JSON.
func NewGoogleClient(ctx context.Context, credentialsJSON []byte) (Client, error) {
	svc, err := driveapi.NewService(ctx,
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(driveapi.DriveScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}
	return &googleClient{svc: svc}, nil
}

func (c *googleClient) ListFolders(ctx context.Context, parentID, name string) ([]FileInfo, error) {
	q := fmt.Sprintf("'%s' in parents and mimeType='%s' and trashed=false", parentID, folderMimeType)
	if name != "" {
		q += fmt.Sprintf(" and name='%s'", escapeQuery(name))
	}
	return c.list(ctx, q)
}

func (c *googleClient) ListFiles(ctx context.Context, folderID string) ([]FileInfo, error) {
	q := fmt.Sprintf("'%s' in parents and mimeType!='%s' and trashed=false", folderID, folderMimeType)
	return c.list(ctx, q)
}

func (c *googleClient) list(ctx context.Context, query string) ([]FileInfo, error) {
	var out []FileInfo
	call := c.svc.Files.List().Q(query).Fields("nextPageToken, files(id,name,mimeType)")
	err := call.Pages(ctx, func(page *driveapi.FileList) error {
		for _, f := range page.Files {
			out = append(out, FileInfo{ID: f.Id, Name: f.Name, MimeType: f.MimeType})
		}
		return nil
	})
	if err != nil {
		return nil, mapDriveErr("list files", err)
	}
	return out, nil
}

func (c *googleClient) CreateFolder(ctx context.Context, parentID, name string) (FileInfo, error) {
	f, err := c.svc.Files.Create(&driveapi.File{
		Name:     name,
		MimeType: folderMimeType,
		Parents:  []string{parentID},
	}).Fields("id,name,mimeType").Context(ctx).Do()
	if err != nil {
		return FileInfo{}, mapDriveErr("create folder "+name, err)
	}
	return FileInfo{ID: f.Id, Name: f.Name, MimeType: f.MimeType}, nil
}

func (c *googleClient) Download(ctx context.Context, fileID string) (FileInfo, io.ReadCloser, error) {
	meta, err := c.svc.Files.Get(fileID).Fields("id,name,mimeType").Context(ctx).Do()
	if err != nil {
		return FileInfo{}, nil, mapDriveErr("get file "+fileID, err)
	}

	resp, err := c.svc.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return FileInfo{}, nil, mapDriveErr("download file "+fileID, err)
	}
	return FileInfo{ID: meta.Id, Name: meta.Name, MimeType: meta.MimeType}, resp.Body, nil
}

func (c *googleClient) Upload(ctx context.Context, folderID, name, mimeType string, r io.Reader) (FileInfo, error) {
	f, err := c.svc.Files.Create(&driveapi.File{
		Name:     name,
		MimeType: mimeType,
		Parents:  []string{folderID},
	}).Media(r).Fields("id,name,mimeType").Context(ctx).Do()
	if err != nil {
		return FileInfo{}, mapDriveErr("upload file "+name, err)
	}
	return FileInfo{ID: f.Id, Name: f.Name, MimeType: f.MimeType}, nil
}

func (c *googleClient) Delete(ctx context.Context, fileID string) error {
	if err := c.svc.Files.Delete(fileID).Context(ctx).Do(); err != nil {
		return mapDriveErr("delete file "+fileID, err)
	}
	return nil
}

func mapDriveErr(op string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Code == 404 {
		return apperr.NotFound("drive file", "")
	}
	return apperr.Upstream(op, err)
}

// escapeQuery escapes single quotes for drive query literals.
func escapeQuery(s string) string {
	return strings.ReplaceAll(s, "'", `\'`)
}
