package api

import (
	"net/http"
	"path/filepath"

	"carconnect/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// uploadImages stores every file of the multipart request sequentially
// and returns the URLs in part order. One failed file fails the whole
// batch: already stored blobs are removed best-effort so no partial URL
// set ever reaches listing creation.
func (s *Server) uploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart form is required"})
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one image file is required"})
		return
	}

	ctx := c.Request.Context()
	var urls []string
	var names []string

	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			s.rollbackUploads(c, names)
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded file"})
			return
		}

		name := uuid.NewString() + filepath.Ext(fh.Filename)
		url, err := s.blob.Save(ctx, name, f)
		f.Close()
		if err != nil {
			s.log.Error("image upload failed", logger.String("file", fh.Filename), logger.Error(err))
			s.rollbackUploads(c, names)
			c.JSON(http.StatusBadGateway, gin.H{"error": "image upload failed"})
			return
		}

		names = append(names, name)
		urls = append(urls, url)
	}

	c.JSON(http.StatusOK, gin.H{"imageUrls": urls})
}

func (s *Server) rollbackUploads(c *gin.Context, names []string) {
	for _, name := range names {
		if err := s.blob.Remove(c.Request.Context(), name); err != nil {
			s.log.Warning("failed to remove partial upload", logger.String("name", name), logger.Error(err))
		}
	}
}
