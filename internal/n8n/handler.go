package n8n

import (
	"errors"
	"log"
	"medmoney/validation"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewN8nHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{
		InterfaceService,
	}
}

// ProcessPaymentHandler godoc
// @Summary Processar Pagamento via n8n
// @Description Encaminha os dados do usuário e plano para o n8n e devolve a URL de pagamento.
// @Tags Pagamentos
// @Accept json
// @Produce json
// @Success 200 {object} ProcessPaymentResponse "URL de pagamento"
// @Failure 400 {object} ErrorResponse "Dados incompletos"
// @Failure 404 {object} ErrorResponse "Plano não encontrado"
// @Failure 500 {object} ErrorResponse "Erro ao processar pagamento"
// @Router /api/process-payment/n8n [post]
func (p *Handler) ProcessPaymentHandler(c echo.Context) error {
	var request ProcessPaymentRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Success:   false,
			Message:   "Payload inválido",
			Timestamp: timestamp(),
		})
	}

	if err := validation.Validate(request); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Success:   false,
			Message:   "Dados incompletos. Todos os campos são obrigatórios.",
			Timestamp: timestamp(),
		})
	}

	result, err := p.InterfaceService.ProcessPaymentService(c.Request().Context(), request)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{
				Success:   false,
				Message:   "Plano não encontrado",
				Timestamp: timestamp(),
			})
		}
		log.Printf("Erro no processamento do pagamento via n8n: %s", err.Error())
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Success:   false,
			Message:   "Erro interno no servidor",
			Error:     err.Error(),
			Timestamp: timestamp(),
		})
	}

	if !result.Success {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Success:   false,
			Message:   result.Message,
			Timestamp: timestamp(),
		})
	}

	return c.JSON(http.StatusOK, ProcessPaymentResponse{
		Success:    true,
		PaymentUrl: *result.PaymentUrl,
		Data:       result.Data,
		Timestamp:  timestamp(),
	})
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
