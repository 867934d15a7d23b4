package upload

import (
	"context"
	"food-order-api/domain"
	"food-order-api/internal/testutil"
	"food-order-api/internal/utils/storage"
	"io"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecureFilename(t *testing.T) {
	tests := map[string]string{
		"photo.png":            "photo.png",
		"My Photo.JPG":         "My_Photo.JPG",
		"../../etc/passwd.png": "etc_passwd.png",
		`C:\Users\me\dish.gif`: "C_Users_me_dish.gif",
		"crème brûlée.jpeg":    "creme_brulee.jpeg",
		"  .hidden.png  ":      "hidden.png",
		"a$b%c.png":            "abc.png",
		"my..photo.png":        "my.photo.png",
		"a/../b.png":           "a_._b.png",
		"dish...final.gif":     "dish.final.gif",
	}
	for in, want := range tests {
		assert.Equal(t, want, SecureFilename(in), in)
	}
}

func TestExtension(t *testing.T) {
	assert.Equal(t, "png", Extension("a.b.PNG"))
	assert.Equal(t, "", Extension("noext"))
	assert.Equal(t, "", Extension("trailing."))
}

func newService(t *testing.T) (UploadService, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)
	return NewUploadService(store), dir
}

func TestUpload_StoresUniqueFile(t *testing.T) {
	ctx := context.Background()
	svc, dir := newService(t)

	fh := testutil.FileHeader(t, "Fried Rice.PNG", []byte("image"))
	res, err := svc.Upload(ctx, fh, "https", "food.example.com")
	require.NoError(t, err)

	pattern := regexp.MustCompile(`^https://food\.example\.com/api/uploads/[0-9a-f-]{36}_Fried_Rice\.PNG$`)
	assert.Regexp(t, pattern, res.URL)

	stored := strings.TrimPrefix(res.URL, "https://food.example.com"+PublicPath)
	data, err := os.ReadFile(dir + "/" + stored)
	require.NoError(t, err)
	assert.Equal(t, "image", string(data))

	again, err := svc.Upload(ctx, fh, "http", "food.example.com")
	require.NoError(t, err)
	assert.NotEqual(t, res.URL, again.URL)
	assert.True(t, strings.HasPrefix(again.URL, "http://"))

	rc, err := svc.Open(ctx, stored)
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "image", string(body))
}

func TestUpload_NamesWithDotRuns(t *testing.T) {
	ctx := context.Background()
	svc, dir := newService(t)

	for name, suffix := range map[string]string{
		"my..photo.png": "_my.photo.png",
		"a/../b.png":    "_a_._b.png",
	} {
		fh := testutil.FileHeader(t, "upload.png", []byte("img"))
		fh.Filename = name
		res, err := svc.Upload(ctx, fh, "http", "h")
		require.NoError(t, err, name)
		assert.True(t, strings.HasSuffix(res.URL, suffix), res.URL)

		stored := strings.TrimPrefix(res.URL, "http://h"+PublicPath)
		data, err := os.ReadFile(dir + "/" + stored)
		require.NoError(t, err, name)
		assert.Equal(t, "img", string(data))
	}
}

func TestUpload_Rejections(t *testing.T) {
	ctx := context.Background()
	svc, dir := newService(t)

	_, err := svc.Upload(ctx, nil, "http", "h")
	assert.ErrorIs(t, err, domain.ErrNoFile)

	empty := testutil.FileHeader(t, "x.png", []byte("x"))
	empty.Filename = ""
	_, err = svc.Upload(ctx, empty, "http", "h")
	assert.ErrorIs(t, err, domain.ErrNoFilename)

	for _, name := range []string{"a.exe", "noext", "image.png.sh", "b."} {
		_, err = svc.Upload(ctx, testutil.FileHeader(t, name, []byte("x")), "http", "h")
		assert.ErrorIs(t, err, domain.ErrDisallowedFileType, name)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "rejected uploads must not write anything")
}

func TestOpen_Unknown(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Open(context.Background(), "missing.png")
	assert.ErrorIs(t, err, domain.ErrUploadNotFound)

	_, err = svc.Open(context.Background(), "../secret.png")
	assert.ErrorIs(t, err, domain.ErrUploadNotFound)
}
