package payment

import (
	"errors"
	"log"
	"medmoney/validation"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewPaymentHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{
		InterfaceService,
	}
}

// CreateCustomerHandler godoc
// @Summary Criar Cliente no Asaas
// @Description Cria um cliente no gateway de pagamento e vincula ao perfil do usuário.
// @Tags Pagamentos
// @Accept json
// @Produce json
// @Success 200 {object} CustomerResponse "Cliente criado"
// @Failure 400 {object} ErrorResponse "Dados incompletos"
// @Failure 500 {object} ErrorResponse "Erro Interno do Servidor"
// @Router /api/create-customer [post]
func (p *Handler) CreateCustomerHandler(c echo.Context) error {
	var request CreateCustomerRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:     "Payload inválido",
			Timestamp: timestamp(),
		})
	}

	if err := validation.Validate(request); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:     "Dados incompletos",
			Message:   "Nome, email e CPF/CNPJ são obrigatórios",
			Timestamp: timestamp(),
		})
	}

	if !validation.ValidateCpfCnpj(request.CpfCnpj) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:     "Dados inválidos",
			Message:   "CPF/CNPJ inválido",
			Timestamp: timestamp(),
		})
	}

	result, err := p.InterfaceService.CreateCustomerService(c.Request().Context(), request)
	if err != nil {
		log.Printf("Erro ao criar cliente no Asaas: %s", err.Error())
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:     "Erro ao criar cliente",
			Message:   err.Error(),
			Timestamp: timestamp(),
		})
	}

	return c.JSON(http.StatusOK, result)
}

// CreatePaymentHandler godoc
// @Summary Criar Cobrança no Asaas
// @Description Cria uma cobrança avulsa no gateway de pagamento.
// @Tags Pagamentos
// @Accept json
// @Produce json
// @Success 200 {object} PaymentResponse "Cobrança criada"
// @Failure 400 {object} ErrorResponse "Dados incompletos"
// @Failure 500 {object} ErrorResponse "Erro Interno do Servidor"
// @Router /api/create-payment [post]
func (p *Handler) CreatePaymentHandler(c echo.Context) error {
	var request CreatePaymentRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:     "Payload inválido",
			Timestamp: timestamp(),
		})
	}

	if err := validation.Validate(request); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:     "Dados incompletos",
			Message:   "ID do cliente, valor e tipo de cobrança são obrigatórios",
			Timestamp: timestamp(),
		})
	}

	result, err := p.InterfaceService.CreatePaymentService(c.Request().Context(), request)
	if err != nil {
		log.Printf("Erro ao criar pagamento no Asaas: %s", err.Error())
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:     "Erro ao criar pagamento",
			Message:   err.Error(),
			Timestamp: timestamp(),
		})
	}

	return c.JSON(http.StatusOK, result)
}

// CreateSubscriptionHandler godoc
// @Summary Criar Assinatura no Asaas
// @Description Cria uma assinatura recorrente no gateway de pagamento.
// @Tags Pagamentos
// @Accept json
// @Produce json
// @Success 200 {object} SubscriptionResponse "Assinatura criada"
// @Failure 400 {object} ErrorResponse "Dados incompletos"
// @Failure 500 {object} ErrorResponse "Erro Interno do Servidor"
// @Router /api/create-subscription [post]
func (p *Handler) CreateSubscriptionHandler(c echo.Context) error {
	var request CreateSubscriptionRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:     "Payload inválido",
			Timestamp: timestamp(),
		})
	}

	if err := validation.Validate(request); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:     "Dados incompletos",
			Message:   "ID do cliente, valor, ciclo e tipo de cobrança são obrigatórios",
			Timestamp: timestamp(),
		})
	}

	result, err := p.InterfaceService.CreateSubscriptionService(c.Request().Context(), request)
	if err != nil {
		log.Printf("Erro ao criar assinatura no Asaas: %s", err.Error())
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:     "Erro ao criar assinatura",
			Message:   err.Error(),
			Timestamp: timestamp(),
		})
	}

	return c.JSON(http.StatusOK, result)
}

// GetSubscriptionPixHandler godoc
// @Summary Obter QR Code PIX da Assinatura
// @Description Busca o QR Code PIX da próxima cobrança pendente da assinatura.
// @Tags Pagamentos
// @Accept json
// @Produce json
// @Param id path string true "ID da assinatura no Asaas"
// @Success 200 {object} PixResponse "QR Code PIX"
// @Failure 404 {object} ErrorResponse "QR Code PIX não encontrado"
// @Failure 500 {object} ErrorResponse "Erro Interno do Servidor"
// @Router /api/subscription/{id}/pix [get]
func (p *Handler) GetSubscriptionPixHandler(c echo.Context) error {
	subscriptionID := c.Param("id")

	result, err := p.InterfaceService.GetSubscriptionPixService(c.Request().Context(), subscriptionID)
	if err != nil {
		if errors.Is(err, ErrPixNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{
				Error:     "QR Code PIX não encontrado",
				Message:   "Não foi possível encontrar um QR Code PIX para esta assinatura",
				Timestamp: timestamp(),
			})
		}
		log.Printf("Erro ao obter QR Code PIX: %s", err.Error())
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:     "Erro ao obter QR Code PIX",
			Message:   err.Error(),
			Timestamp: timestamp(),
		})
	}

	return c.JSON(http.StatusOK, result)
}
