package entity

import (
	"path"
	"strings"
)

// Image is a picked photo ready to be uploaded.
type Image struct {
	Data        []byte
	ContentType string
	Filename    string
}

var contentTypeExt = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/heic": "heic",
	"image/gif":  "gif",
}

// Ext returns the file extension to store the image under, without the dot.
// The content type wins over the filename; jpg is the fallback.
func (i *Image) Ext() string {
	ct := strings.ToLower(strings.TrimSpace(strings.SplitN(i.ContentType, ";", 2)[0]))
	if ext, ok := contentTypeExt[ct]; ok {
		return ext
	}

	ext := strings.TrimPrefix(strings.ToLower(path.Ext(i.Filename)), ".")
	switch ext {
	case "jpeg":
		return "jpg"
	case "jpg", "png", "webp", "heic", "gif":
		return ext
	default:
		return "jpg"
	}
}

// Empty reports whether no bytes were picked.
func (i *Image) Empty() bool {
	return i == nil || len(i.Data) == 0
}
