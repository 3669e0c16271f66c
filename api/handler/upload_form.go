package handler

import (
	"errors"
	"net/http"

	"getexposure/internal/upload"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// uploadFromForm pulls the named file out of a multipart request. The caller
// must invoke the returned closer once the upload has been consumed.
func uploadFromForm(c echo.Context, field string) (upload.Upload, func(), error) {
	header, err := c.FormFile(field)
	if err != nil {
		return upload.Upload{}, nil, upload.ErrNoFile
	}
	file, err := header.Open()
	if err != nil {
		return upload.Upload{}, nil, err
	}
	up := upload.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Reader:      file,
	}
	return up, func() { file.Close() }, nil
}

func writeUploadError(c echo.Context, log *logrus.Logger, err error) error {
	switch {
	case errors.Is(err, upload.ErrNoFile),
		errors.Is(err, upload.ErrFileTooLarge),
		errors.Is(err, upload.ErrUnsupportedType):
		return writeError(c, http.StatusBadRequest, err)
	default:
		return writeInternalError(c, log, err)
	}
}
