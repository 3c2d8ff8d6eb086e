package payment

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	db "medmoney/db/sqlc"
	"medmoney/pkg/asaas"
	"time"

	"github.com/sqlc-dev/pqtype"
)

var ErrPixNotFound = errors.New("QR Code PIX não encontrado para esta assinatura")

type InterfaceService interface {
	CreateCustomerService(ctx context.Context, data CreateCustomerRequest) (CustomerResponse, error)
	CreatePaymentService(ctx context.Context, data CreatePaymentRequest) (PaymentResponse, error)
	CreateSubscriptionService(ctx context.Context, data CreateSubscriptionRequest) (SubscriptionResponse, error)
	GetSubscriptionPixService(ctx context.Context, subscriptionID string) (PixResponse, error)
}

type Service struct {
	InterfaceService InterfaceRepository
	client           asaas.InterfaceClient
	environment      string
	apiKey           string
}

func NewPaymentService(InterfaceService InterfaceRepository, client asaas.InterfaceClient, environment string, apiKey string) *Service {
	return &Service{InterfaceService, client, environment, apiKey}
}

// Sem credenciais do gateway (ou em desenvolvimento) as chamadas são simuladas.
func (p *Service) simulated() bool {
	return p.environment == "development" || p.apiKey == ""
}

func (p *Service) CreateCustomerService(ctx context.Context, data CreateCustomerRequest) (CustomerResponse, error) {
	if p.simulated() {
		log.Println("Ambiente de desenvolvimento. Retornando cliente simulado.")
		mock := asaas.Customer{
			ID:                "cus_" + syntheticID(),
			Name:              data.Name,
			Email:             data.Email,
			CpfCnpj:           data.CpfCnpj,
			Phone:             data.Phone,
			MobilePhone:       data.Phone,
			ExternalReference: data.UserID,
			DateCreated:       timestamp(),
		}
		if data.Address != nil {
			mock.Address = data.Address.Street
			mock.AddressNumber = data.Address.Number
			mock.Complement = data.Address.Complement
			mock.Province = data.Address.Neighborhood
			mock.PostalCode = data.Address.PostalCode
		}

		p.logEvent(ctx, "CUSTOMER_CREATED", mock)

		return CustomerResponse{Success: true, Customer: mock, Simulated: true, Timestamp: timestamp()}, nil
	}

	arg := asaas.CreateCustomerParams{
		Name:              data.Name,
		Email:             data.Email,
		CpfCnpj:           onlyDigits(data.CpfCnpj),
		Phone:             data.Phone,
		ExternalReference: data.UserID,
	}
	if data.Address != nil {
		arg.Address = data.Address.Street
		arg.AddressNumber = data.Address.Number
		arg.Complement = data.Address.Complement
		arg.Province = data.Address.Neighborhood
		arg.PostalCode = data.Address.PostalCode
	}

	customer, err := p.client.CreateCustomer(ctx, arg)
	if err != nil {
		return CustomerResponse{}, err
	}

	// Guardar o vínculo cliente Asaas -> perfil; falha aqui não derruba a resposta.
	if customer.ID != "" && data.UserID != "" {
		err := p.InterfaceService.UpdateProfileAsaasCustomerId(ctx, db.UpdateProfileAsaasCustomerIdParams{
			ID:              data.UserID,
			AsaasCustomerID: sql.NullString{String: customer.ID, Valid: true},
		})
		if err != nil {
			log.Printf("Erro ao atualizar perfil: %s", err.Error())
		}
	}

	p.logEvent(ctx, "CUSTOMER_CREATED", customer)

	return CustomerResponse{Success: true, Customer: customer, Timestamp: timestamp()}, nil
}

func (p *Service) CreatePaymentService(ctx context.Context, data CreatePaymentRequest) (PaymentResponse, error) {
	dueDate := defaultString(data.DueDate, todayDate())
	description := defaultString(data.Description, "Pagamento MedMoney")

	if p.simulated() {
		log.Println("Ambiente de desenvolvimento. Retornando pagamento simulado.")
		mock := asaas.Payment{
			ID:                "pay_" + syntheticID(),
			Customer:          data.CustomerID,
			Value:             data.Value,
			NetValue:          data.Value,
			BillingType:       data.BillingType,
			Status:            "PENDING",
			DueDate:           dueDate,
			Description:       description,
			ExternalReference: data.UserID,
			DateCreated:       timestamp(),
		}
		if data.BillingType == "PIX" || data.BillingType == "BOLETO" {
			mock.InvoiceUrl = "https://sandbox.asaas.com/i/" + syntheticID()
		}
		if data.BillingType == "PIX" {
			mock.Pix = mockPixQrCode()
		}

		p.logEvent(ctx, "PAYMENT_CREATED", mock)

		return PaymentResponse{Success: true, Payment: mock, Simulated: true, Timestamp: timestamp()}, nil
	}

	arg := asaas.CreatePaymentParams{
		Customer:          data.CustomerID,
		BillingType:       data.BillingType,
		Value:             data.Value,
		DueDate:           dueDate,
		Description:       description,
		ExternalReference: data.UserID,
	}
	if data.BillingType == "PIX" {
		arg.Discount = &asaas.Discount{}
		arg.Interest = &asaas.Interest{}
		arg.Fine = &asaas.Fine{}
	}

	payment, err := p.client.CreatePayment(ctx, arg)
	if err != nil {
		return PaymentResponse{}, err
	}

	if data.BillingType == "PIX" && payment.ID != "" {
		pix, err := p.client.GetPixQrCode(ctx, payment.ID)
		if err != nil {
			log.Printf("Erro ao obter QR code PIX: %s", err.Error())
		} else {
			payment.Pix = &pix
		}
	}

	p.logEvent(ctx, "PAYMENT_CREATED", payment)

	return PaymentResponse{Success: true, Payment: payment, Timestamp: timestamp()}, nil
}

func (p *Service) CreateSubscriptionService(ctx context.Context, data CreateSubscriptionRequest) (SubscriptionResponse, error) {
	description := defaultString(data.Description, "Assinatura MedMoney")
	nextDate := nextBillingDate(data.NextDueDate, data.Cycle)

	planType := "monthly"
	if data.Cycle == "YEARLY" {
		planType = "annual"
	}

	if p.simulated() {
		log.Println("Ambiente de desenvolvimento. Retornando assinatura simulada.")
		mock := asaas.Subscription{
			ID:                "sub_" + syntheticID(),
			Customer:          data.CustomerID,
			Value:             data.Value,
			NextDueDate:       nextDate.Format("2006-01-02"),
			BillingType:       data.BillingType,
			Cycle:             data.Cycle,
			Description:       description,
			Status:            "ACTIVE",
			ExternalReference: data.UserID,
			DateCreated:       timestamp(),
		}
		if data.BillingType == "PIX" || data.BillingType == "BOLETO" {
			mock.InvoiceUrl = "https://sandbox.asaas.com/i/" + syntheticID()
		}
		if data.BillingType == "PIX" {
			mock.Pix = mockPixQrCode()
		}

		p.logEvent(ctx, "SUBSCRIPTION_CREATED", mock)
		p.createSubscriptionRecord(ctx, mock.ID, data, description, planType, nextDate)

		// Assinatura PIX já nasce com a primeira cobrança simulada.
		if data.BillingType == "PIX" {
			firstPayment := asaas.Payment{
				ID:                "pay_" + syntheticID(),
				Subscription:      mock.ID,
				Customer:          data.CustomerID,
				Value:             data.Value,
				NetValue:          data.Value,
				BillingType:       data.BillingType,
				Status:            "PENDING",
				DueDate:           defaultString(data.NextDueDate, todayDate()),
				Description:       description,
				InvoiceUrl:        mock.InvoiceUrl,
				ExternalReference: data.UserID,
				DateCreated:       timestamp(),
				Pix:               mock.Pix,
			}
			p.logEvent(ctx, "PAYMENT_CREATED", firstPayment)
			mock.FirstPayment = &firstPayment
		}

		return SubscriptionResponse{Success: true, Subscription: mock, Simulated: true, Timestamp: timestamp()}, nil
	}

	arg := asaas.CreateSubscriptionParams{
		Customer:          data.CustomerID,
		BillingType:       data.BillingType,
		Value:             data.Value,
		NextDueDate:       defaultString(data.NextDueDate, todayDate()),
		Cycle:             data.Cycle,
		Description:       description,
		ExternalReference: data.UserID,
	}
	if data.BillingType == "PIX" || data.BillingType == "BOLETO" {
		arg.Discount = &asaas.Discount{}
		arg.Interest = &asaas.Interest{}
		arg.Fine = &asaas.Fine{}
	}

	subscription, err := p.client.CreateSubscription(ctx, arg)
	if err != nil {
		return SubscriptionResponse{}, err
	}

	// Para PIX, recuperar a primeira cobrança e o QR code dela.
	if data.BillingType == "PIX" && subscription.ID != "" {
		payments, err := p.client.GetSubscriptionPayments(ctx, subscription.ID)
		if err != nil {
			log.Printf("Erro ao buscar pagamentos da assinatura: %s", err.Error())
		} else if len(payments.Data) > 0 {
			firstPayment := payments.Data[0]
			pix, err := p.client.GetPixQrCode(ctx, firstPayment.ID)
			if err != nil {
				log.Printf("Erro ao buscar QR code PIX: %s", err.Error())
			} else {
				firstPayment.Pix = &pix
				subscription.FirstPayment = &firstPayment
			}
		}
	}

	p.logEvent(ctx, "SUBSCRIPTION_CREATED", subscription)
	p.createSubscriptionRecord(ctx, subscription.ID, data, description, planType, nextDate)

	return SubscriptionResponse{Success: true, Subscription: subscription, Timestamp: timestamp()}, nil
}

func (p *Service) GetSubscriptionPixService(ctx context.Context, subscriptionID string) (PixResponse, error) {
	if p.simulated() {
		log.Println("Ambiente de desenvolvimento. Retornando QR Code PIX simulado.")
		return PixResponse{
			Success:        true,
			PixQrCode:      *mockPixQrCode(),
			SubscriptionID: subscriptionID,
			PaymentID:      "pay_" + syntheticID(),
			Simulated:      true,
			Timestamp:      timestamp(),
		}, nil
	}

	subscription, err := p.client.GetSubscription(ctx, subscriptionID)
	if err != nil {
		return PixResponse{}, err
	}

	if subscription.NextPayment == "" {
		return PixResponse{}, ErrPixNotFound
	}

	pix, err := p.client.GetPixQrCode(ctx, subscription.NextPayment)
	if err != nil {
		return PixResponse{}, err
	}

	return PixResponse{
		Success:        true,
		PixQrCode:      pix,
		SubscriptionID: subscriptionID,
		PaymentID:      subscription.NextPayment,
		Timestamp:      timestamp(),
	}, nil
}

func (p *Service) createSubscriptionRecord(ctx context.Context, externalID string, data CreateSubscriptionRequest, planName string, planType string, nextDate time.Time) {
	_, err := p.InterfaceService.CreateSubscription(ctx, db.CreateSubscriptionParams{
		ExternalID:      externalID,
		UserID:          data.UserID,
		PlanID:          nullInt64(data.PlanID),
		PlanName:        planName,
		PlanType:        planType,
		Price:           data.Value,
		Status:          "pending",
		StartDate:       sql.NullTime{Time: time.Now(), Valid: true},
		NextBillingDate: sql.NullTime{Time: nextDate, Valid: true},
	})
	if err != nil {
		log.Printf("Erro ao criar assinatura no banco: %s", err.Error())
		return
	}
	log.Println("Assinatura criada no banco de dados com sucesso.")
}

// logEvent registra a resposta no log de webhooks; falha é apenas logada.
func (p *Service) logEvent(ctx context.Context, eventType string, data interface{}) {
	raw, err := json.Marshal(data)
	if err != nil {
		log.Printf("Erro ao serializar log de %s: %s", eventType, err.Error())
		return
	}

	_, err = p.InterfaceService.CreateAsaasLog(ctx, db.CreateAsaasLogParams{
		EventType:   eventType,
		WebhookData: pqtype.NullRawMessage{RawMessage: raw, Valid: true},
		Processed:   true,
	})
	if err != nil {
		log.Printf("Erro ao registrar log de %s: %s", eventType, err.Error())
	}
}
