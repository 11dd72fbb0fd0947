package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartBody(t *testing.T, fieldName, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fieldName, fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func doUpload(t *testing.T, uploader *fakeUploader, fieldName, fileName string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	h := newUploadHandler(uploader)
	body, contentType := multipartBody(t, fieldName, fileName, content)

	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.upload().ServeHTTP(rec, req)
	return rec
}

func TestUploadSuccess(t *testing.T) {
	uploader := &fakeUploader{}
	rec := doUpload(t, uploader, "image", "cover.png", []byte("fake png bytes"))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp uploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Image uploaded successfully", resp.Msg)
	assert.Contains(t, resp.ImageURL, ".png")
	assert.NotEmpty(t, resp.PublicID)
	assert.Equal(t, int64(len("fake png bytes")), uploader.lastSize)
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	uploader := &fakeUploader{}
	rec := doUpload(t, uploader, "image", "big.png", make([]byte, 6<<20))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "size limit")
	assert.Empty(t, uploader.lastName, "oversized file must never reach the media host")
}

func TestUploadRejectsDisallowedFormat(t *testing.T) {
	uploader := &fakeUploader{}
	rec := doUpload(t, uploader, "image", "photo.bmp", []byte("bmp bytes"))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "File format not allowed")
	assert.Empty(t, uploader.lastName)
}

func TestUploadRejectsMissingFile(t *testing.T) {
	uploader := &fakeUploader{}
	rec := doUpload(t, uploader, "wrong_field", "cover.png", []byte("png"))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No file uploaded")
}

func TestUploadUpstreamFailure(t *testing.T) {
	uploader := &fakeUploader{err: assert.AnError}
	rec := doUpload(t, uploader, "image", "cover.jpg", []byte("jpg"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Server error during upload")
}
