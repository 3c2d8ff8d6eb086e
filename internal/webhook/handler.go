package webhook

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewWebhookHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{
		InterfaceService,
	}
}

// AsaasWebhookHandler godoc
// @Summary Processar Webhook do Asaas
// @Description Recebe e processa as notificações de pagamento e assinatura do Asaas.
// @Tags Webhooks
// @Accept json
// @Produce json
// @Success 200 {object} WebhookResponse "Webhook processado"
// @Failure 400 {object} ErrorResponse "Payload inválido"
// @Failure 500 {object} ErrorResponse "Erro Interno do Servidor"
// @Router /api/webhook/asaas [post]
func (p *Handler) AsaasWebhookHandler(c echo.Context) error {
	var event Event
	if err := c.Bind(&event); err != nil {
		log.Printf("Payload inválido: %s", err.Error())
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:     "Payload inválido",
			Timestamp: timestamp(),
		})
	}

	if event.Event == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:     "Payload inválido",
			Message:   "Campo event é obrigatório",
			Timestamp: timestamp(),
		})
	}

	handled, err := p.InterfaceService.ProcessAsaasEvent(c.Request().Context(), event)
	if err != nil {
		log.Printf("Erro ao processar webhook: %s", err.Error())
		if errors.Is(err, ErrOwnerNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{
				Error:     "Usuário não encontrado",
				Message:   err.Error(),
				Timestamp: timestamp(),
			})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:     "Erro ao processar webhook",
			Message:   err.Error(),
			Timestamp: timestamp(),
		})
	}

	return c.JSON(http.StatusOK, WebhookResponse{
		Success:   true,
		Message:   "Webhook processado com sucesso",
		EventType: event.Event,
		Handled:   handled,
		Timestamp: timestamp(),
	})
}
