package delivery

import (
	"net/http"

	"sellshot-backend/internal/credits/usecase"

	"github.com/gin-gonic/gin"
)

type CreditHandler struct {
	creditGate usecase.CreditGate
}

func NewCreditHandler(creditGate usecase.CreditGate) *CreditHandler {
	return &CreditHandler{
		creditGate: creditGate,
	}
}

func (h *CreditHandler) GetBalance(c *gin.Context) {
	userID := c.GetString("userID")

	balance, err := h.creditGate.Balance(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, balance)
}

func (h *CreditHandler) Upgrade(c *gin.Context) {
	userID := c.GetString("userID")

	balance, err := h.creditGate.Upgrade(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, balance)
}
