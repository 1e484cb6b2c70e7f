package drive

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"carf-backend/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeFolder struct {
	info     FileInfo
	parentID string
}

type fakeFile struct {
	info     FileInfo
	parentID string
	content  string
}

type fakeClient struct {
	folders     []fakeFolder
	files       map[string]*fakeFile
	created     int
	downloadErr map[string]error
}

func newFakeClient() *fakeClient {
	return &fakeClient{files: map[string]*fakeFile{}, downloadErr: map[string]error{}}
}

func (f *fakeClient) addFolder(id, parentID, name string) {
	f.folders = append(f.folders, fakeFolder{
		info:     FileInfo{ID: id, Name: name, MimeType: folderMimeType},
		parentID: parentID,
	})
}

func (f *fakeClient) addFile(id, parentID, name, mime, content string) {
	f.files[id] = &fakeFile{
		info:     FileInfo{ID: id, Name: name, MimeType: mime},
		parentID: parentID,
		content:  content,
	}
}

func (f *fakeClient) ListFolders(_ context.Context, parentID, name string) ([]FileInfo, error) {
	var out []FileInfo
	for _, fo := range f.folders {
		if fo.parentID == parentID && (name == "" || fo.info.Name == name) {
			out = append(out, fo.info)
		}
	}
	return out, nil
}

func (f *fakeClient) CreateFolder(_ context.Context, parentID, name string) (FileInfo, error) {
	f.created++
	info := FileInfo{ID: "created-" + name, Name: name, MimeType: folderMimeType}
	f.folders = append(f.folders, fakeFolder{info: info, parentID: parentID})
	return info, nil
}

func (f *fakeClient) ListFiles(_ context.Context, folderID string) ([]FileInfo, error) {
	var out []FileInfo
	for _, fi := range f.files {
		if fi.parentID == folderID {
			out = append(out, fi.info)
		}
	}
	return out, nil
}

func (f *fakeClient) Download(_ context.Context, fileID string) (FileInfo, io.ReadCloser, error) {
	if err, ok := f.downloadErr[fileID]; ok {
		return FileInfo{}, nil, err
	}
	fi, ok := f.files[fileID]
	if !ok {
		return FileInfo{}, nil, apperr.NotFound("drive file", fileID)
	}
	return fi.info, io.NopCloser(strings.NewReader(fi.content)), nil
}

func (f *fakeClient) Upload(_ context.Context, folderID, name, mimeType string, r io.Reader) (FileInfo, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return FileInfo{}, err
	}
	id := "up-" + name
	f.addFile(id, folderID, name, mimeType, string(data))
	return f.files[id].info, nil
}

func (f *fakeClient) Delete(_ context.Context, fileID string) error {
	if _, ok := f.files[fileID]; !ok {
		return apperr.NotFound("drive file", fileID)
	}
	delete(f.files, fileID)
	return nil
}

func newTestStore(fc *fakeClient) *DocumentStore {
	return NewDocumentStore(fc, zap.NewNop(), "root")
}

func TestFindOrCreateFolder(t *testing.T) {
	fc := newFakeClient()
	fc.addFolder("f1", "root", "GC-001")
	store := newTestStore(fc)
	ctx := context.Background()

	id, err := store.FindOrCreateFolder(ctx, "root", "GC-001")
	require.NoError(t, err)
	assert.Equal(t, "f1", id)
	assert.Zero(t, fc.created, "existing folder is reused")

	id, err = store.FindOrCreateFolder(ctx, "root", "GC-002")
	require.NoError(t, err)
	assert.Equal(t, "created-GC-002", id)
	assert.Equal(t, 1, fc.created)
}

func TestFindOrCreateFolderDuplicateNames(t *testing.T) {
	fc := newFakeClient()
	fc.addFolder("zz", "root", "GC-001")
	fc.addFolder("aa", "root", "GC-001")
	store := newTestStore(fc)

	id, err := store.FindOrCreateFolder(context.Background(), "root", "GC-001")
	require.NoError(t, err)
	assert.Equal(t, "aa", id, "smallest file id wins deterministically")
}

func TestDeleteFileIdempotent(t *testing.T) {
	fc := newFakeClient()
	fc.addFile("f1", "folder", "doc.pdf", "application/pdf", "x")
	store := newTestStore(fc)
	ctx := context.Background()

	require.NoError(t, store.DeleteFile(ctx, "f1"))
	require.NoError(t, store.DeleteFile(ctx, "f1"), "second delete of same file is success")
}

func TestUploadFilesSequential(t *testing.T) {
	fc := newFakeClient()
	store := newTestStore(fc)

	uploaded, err := store.UploadFiles(context.Background(), "GC-001", "TIN", []UploadFile{
		{Name: "a.pdf", MimeType: "application/pdf", Content: strings.NewReader("aaa")},
		{Name: "b.jpg", MimeType: "image/jpeg", Content: strings.NewReader("bbb")},
	})
	require.NoError(t, err)
	assert.Len(t, uploaded, 2)

	files, err := store.ListGencodeFiles(context.Background(), "GC-001", "TIN")
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestBundleGencode(t *testing.T) {
	fc := newFakeClient()
	fc.addFolder("g", "root", "GC-001")
	fc.addFolder("sub1", "g", "TIN")
	fc.addFolder("sub2", "g", "PERMIT")
	fc.addFile("f1", "sub1", "tin.pdf", "application/pdf", "tin-content")
	fc.addFile("f2", "sub2", "permit.jpg", "image/jpeg", "permit-content")
	store := newTestStore(fc)

	buf, err := store.BundleGencode(context.Background(), "GC-001")
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	found := map[string]string{}
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		found[f.Name] = string(data)
	}
	assert.Equal(t, "tin-content", found["TIN/tin.pdf"])
	assert.Equal(t, "permit-content", found["PERMIT/permit.jpg"])
}

func TestBundleGencodeMissingFolder(t *testing.T) {
	store := newTestStore(newFakeClient())

	_, err := store.BundleGencode(context.Background(), "GC-404")
	assert.True(t, apperr.IsNotFound(err))
}

func TestBundleGencodeFailsWhole(t *testing.T) {
	fc := newFakeClient()
	fc.addFolder("g", "root", "GC-001")
	fc.addFolder("sub1", "g", "TIN")
	fc.addFile("f1", "sub1", "tin.pdf", "application/pdf", "tin-content")
	fc.downloadErr["f1"] = errors.New("transport reset")
	store := newTestStore(fc)

	_, err := store.BundleGencode(context.Background(), "GC-001")
	require.Error(t, err, "a single failed fetch aborts the bundle")
}
