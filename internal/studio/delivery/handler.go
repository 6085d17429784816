package delivery

import (
	"errors"
	"net/http"

	creditdomain "sellshot-backend/internal/credits/domain"
	studiodomain "sellshot-backend/internal/studio/domain"
	studiodto "sellshot-backend/internal/studio/dto"
	"sellshot-backend/internal/studio/usecase"
	"sellshot-backend/pkg/ai"

	"github.com/gin-gonic/gin"
)

type StudioHandler struct {
	transformUsecase usecase.TransformUsecase
	generateUsecase  usecase.GenerateUsecase
}

func NewStudioHandler(transformUsecase usecase.TransformUsecase, generateUsecase usecase.GenerateUsecase) *StudioHandler {
	return &StudioHandler{
		transformUsecase: transformUsecase,
		generateUsecase:  generateUsecase,
	}
}

// respondError maps workflow errors onto HTTP codes. The insufficient-credits
// denial gets a machine-readable code so the client can raise the upgrade
// modal instead of an error banner.
func respondError(c *gin.Context, err error) {
	var svcErr *ai.ServiceError
	switch {
	case errors.Is(err, creditdomain.ErrInsufficientCredits):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error(), "code": "upgrade_required"})
	case errors.Is(err, studiodomain.ErrInvalidFileType),
		errors.Is(err, studiodomain.ErrFileRead),
		errors.Is(err, studiodomain.ErrEmptyPrompt),
		errors.Is(err, studiodomain.ErrNoImage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, studiodomain.ErrBusy), errors.Is(err, studiodomain.ErrWrongStep):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, studiodomain.ErrServiceUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	case errors.As(err, &svcErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": svcErr.Message})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (h *StudioHandler) Upload(c *gin.Context) {
	userID := c.GetString("userID")

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": studiodomain.ErrFileRead.Error()})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	state, err := h.transformUsecase.Upload(c.Request.Context(), userID, fileHeader.Filename, contentType, file)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

func (h *StudioHandler) Transform(c *gin.Context) {
	userID := c.GetString("userID")

	var req studiodto.TransformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.transformUsecase.Transform(c.Request.Context(), userID, req.Prompt)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

func (h *StudioHandler) RefineTransform(c *gin.Context) {
	userID := c.GetString("userID")

	var req studiodto.RefineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.transformUsecase.Refine(c.Request.Context(), userID, req.Prompt)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

func (h *StudioHandler) ResetTransform(c *gin.Context) {
	userID := c.GetString("userID")
	c.JSON(http.StatusOK, h.transformUsecase.Reset(userID))
}

func (h *StudioHandler) TransformState(c *gin.Context) {
	userID := c.GetString("userID")
	c.JSON(http.StatusOK, h.transformUsecase.State(userID))
}

func (h *StudioHandler) Generate(c *gin.Context) {
	userID := c.GetString("userID")

	var req studiodto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.generateUsecase.Generate(c.Request.Context(), userID, req.Prompt)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

func (h *StudioHandler) RefineGenerate(c *gin.Context) {
	userID := c.GetString("userID")

	var req studiodto.RefineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.generateUsecase.Refine(c.Request.Context(), userID, req.Prompt)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

func (h *StudioHandler) ResetGenerate(c *gin.Context) {
	userID := c.GetString("userID")
	c.JSON(http.StatusOK, h.generateUsecase.Reset(userID))
}

func (h *StudioHandler) GenerateState(c *gin.Context) {
	userID := c.GetString("userID")
	c.JSON(http.StatusOK, h.generateUsecase.State(userID))
}
