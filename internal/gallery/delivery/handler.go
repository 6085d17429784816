package delivery

import (
	"fmt"
	"net/http"

	"sellshot-backend/internal/gallery/usecase"
	"sellshot-backend/pkg/imagedata"

	"github.com/gin-gonic/gin"
)

type GalleryHandler struct {
	galleryUsecase usecase.GalleryUsecase
}

func NewGalleryHandler(galleryUsecase usecase.GalleryUsecase) *GalleryHandler {
	return &GalleryHandler{
		galleryUsecase: galleryUsecase,
	}
}

func (h *GalleryHandler) List(c *gin.Context) {
	userID := c.GetString("userID")

	items, err := h.galleryUsecase.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

func (h *GalleryHandler) Remove(c *gin.Context) {
	userID := c.GetString("userID")
	id := c.Param("id")

	if err := h.galleryUsecase.Remove(userID, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "item deleted"})
}

// Download streams an item's image bytes as a file attachment.
func (h *GalleryHandler) Download(c *gin.Context) {
	userID := c.GetString("userID")
	id := c.Param("id")

	item, err := h.galleryUsecase.Get(userID, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}

	mimeType, data, err := imagedata.Decode(item.Src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stored image is not downloadable"})
		return
	}

	filename := fmt.Sprintf("sellshot-%s%s", item.ID, imagedata.Ext(mimeType))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, mimeType, data)
}
