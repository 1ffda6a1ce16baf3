package http

import (
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ganadoboy/ganadoboy-api/internal/application/bovino"
	"github.com/ganadoboy/ganadoboy-api/internal/domain"
)

var (
	errFileType = &domain.Error{Kind: domain.KindValidation, Code: "INVALID_FILE_TYPE", Message: "Solo se permiten imágenes (jpg, jpeg, png)"}
	errFileSize = &domain.Error{Kind: domain.KindValidation, Code: "FILE_TOO_LARGE", Message: "El archivo excede el tamaño permitido"}
	errTooMany  = &domain.Error{Kind: domain.KindValidation, Code: "TOO_MANY_FILES", Message: "Se excedió el número máximo de archivos"}
)

var allowedImages = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// UploadLimits límites de subida de fotos.
type UploadLimits struct {
	MaxFiles     int
	MaxFileBytes int64
}

// openUploads valida los archivos de un campo multipart y los abre.
// El llamador debe invocar close aunque haya error.
func (l UploadLimits) openUploads(c *fiber.Ctx, field string, limit int) ([]bovino.PhotoUpload, func(), error) {
	var opened []multipart.File
	closeAll := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}
	form, err := c.MultipartForm()
	if err != nil {
		return nil, closeAll, domain.ErrSinFotos
	}
	headers := form.File[field]
	if len(headers) == 0 {
		return nil, closeAll, domain.ErrSinFotos
	}
	if len(headers) > limit {
		return nil, closeAll, errTooMany
	}
	for _, fh := range headers {
		if err := l.check(fh); err != nil {
			return nil, closeAll, err
		}
	}
	uploads := make([]bovino.PhotoUpload, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, closeAll, err
		}
		opened = append(opened, f)
		ext := strings.ToLower(filepath.Ext(fh.Filename))
		uploads = append(uploads, bovino.PhotoUpload{
			Filename:    fh.Filename,
			ContentType: allowedImages[ext],
			Size:        fh.Size,
			Body:        f,
		})
	}
	return uploads, closeAll, nil
}

func (l UploadLimits) check(fh *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	mime, allowed := allowedImages[ext]
	if !allowed {
		return errFileType
	}
	if ct := fh.Header.Get(fiber.HeaderContentType); ct != "" && !sameImageType(ct, mime) {
		return errFileType
	}
	if l.MaxFileBytes > 0 && fh.Size > l.MaxFileBytes {
		return errFileSize
	}
	return nil
}

func sameImageType(contentType, want string) bool {
	ct := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	return ct == want || (want == "image/jpeg" && ct == "image/jpg")
}
