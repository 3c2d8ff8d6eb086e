package n8n

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	db "medmoney/db/sqlc"
	"net/http"
	"time"

	"github.com/sqlc-dev/pqtype"
)

var ErrPlanNotFound = errors.New("plano não encontrado")

type InterfaceService interface {
	ProcessPaymentService(ctx context.Context, data ProcessPaymentRequest) (ForwardResult, error)
}

type Service struct {
	InterfaceService InterfaceRepository
	webhookURL       string
	httpClient       *http.Client
}

func NewN8nService(InterfaceService InterfaceRepository, webhookURL string) *Service {
	return &Service{
		InterfaceService: InterfaceService,
		webhookURL:       webhookURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (s *Service) ProcessPaymentService(ctx context.Context, data ProcessPaymentRequest) (ForwardResult, error) {
	plan, err := s.InterfaceService.GetPlanById(ctx, data.PlanID)
	if errors.Is(err, sql.ErrNoRows) {
		return ForwardResult{}, ErrPlanNotFound
	}
	if err != nil {
		return ForwardResult{}, err
	}

	payload := ForwardPayload{
		User: UserPayload{
			ID:      data.UserID,
			Name:    data.Name,
			Email:   data.Email,
			CpfCnpj: data.CpfCnpj,
			Phone:   data.Phone,
		},
		Plan: PlanPayload{
			ID:    plan.ID,
			Name:  plan.Name,
			Value: plan.Value,
			Cycle: plan.Cycle,
		},
		BillingType: data.BillingType,
	}

	result := s.sendToN8nWebhook(ctx, payload)

	s.logAttempt(ctx, data.UserID, data.PlanID, payload, result)

	return result, nil
}

// sendToN8nWebhook nunca devolve erro: toda falha vira ForwardResult com
// success=false e paymentUrl nulo.
func (s *Service) sendToN8nWebhook(ctx context.Context, payload ForwardPayload) ForwardResult {
	if s.webhookURL == "" {
		log.Println("URL do webhook do n8n não configurada")
		return ForwardResult{
			Success: false,
			Message: "Configuração de webhook n8n ausente",
		}
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return ForwardResult{
			Success: false,
			Message: fmt.Sprintf("Erro ao processar pagamento: %s", err.Error()),
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return ForwardResult{
			Success: false,
			Message: fmt.Sprintf("Erro ao processar pagamento: %s", err.Error()),
		}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Printf("Erro ao enviar dados para webhook do n8n: %s", err.Error())
		return ForwardResult{
			Success: false,
			Message: fmt.Sprintf("Erro ao processar pagamento: %s", err.Error()),
		}
	}
	defer resp.Body.Close()

	var responseData map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&responseData); err != nil {
		return ForwardResult{
			Success: false,
			Message: fmt.Sprintf("Erro ao processar pagamento: %s", err.Error()),
		}
	}

	paymentUrl, _ := responseData["paymentUrl"].(string)
	if paymentUrl == "" {
		log.Printf("Resposta do n8n não contém URL de pagamento: %+v", responseData)
		return ForwardResult{
			Success: false,
			Message: "URL de pagamento não encontrada na resposta do n8n",
			Data:    responseData,
		}
	}

	return ForwardResult{
		Success:    true,
		PaymentUrl: &paymentUrl,
		Data:       responseData,
	}
}

// Toda tentativa fica registrada em n8n_logs; falha de escrita é apenas logada.
func (s *Service) logAttempt(ctx context.Context, userID string, planID int64, payload ForwardPayload, result ForwardResult) {
	requestData, _ := json.Marshal(payload)
	responseData, _ := json.Marshal(result)

	_, err := s.InterfaceService.CreateN8nLog(ctx, db.CreateN8nLogParams{
		UserID:       userID,
		PlanID:       planID,
		RequestData:  pqtype.NullRawMessage{RawMessage: requestData, Valid: true},
		ResponseData: pqtype.NullRawMessage{RawMessage: responseData, Valid: true},
		Success:      result.Success,
	})
	if err != nil {
		log.Printf("Erro ao registrar tentativa no n8n_logs: %s", err.Error())
	}
}
