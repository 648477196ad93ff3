package handler

import (
	"io"
	"net/http"
	"strings"

	"adresses/internal/domain/entity"
	"adresses/internal/errors"

	"github.com/labstack/echo/v4"
)

// readImage reads the multipart file in field. It returns nil without error when the field is absent.
func readImage(c echo.Context, field string) (*entity.Image, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}

		return nil, errors.Wrapf(err, "read form file %s", field)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, errors.Wrapf(err, "open form file %s", field)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read form file %s", field)
	}

	contentType := fh.Header.Get(echo.HeaderContentType)
	if contentType == "" || contentType == echo.MIMEOctetStream {
		contentType = http.DetectContentType(data)
	}

	return &entity.Image{Data: data, ContentType: contentType, Filename: fh.Filename}, nil
}

func isMultipart(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}
