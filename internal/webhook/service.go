package webhook

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	db "medmoney/db/sqlc"
	"time"

	"github.com/sqlc-dev/pqtype"
)

var ErrOwnerNotFound = errors.New("usuário não encontrado para o cliente Asaas")

type InterfaceService interface {
	ProcessAsaasEvent(ctx context.Context, event Event) (bool, error)
}

type Service struct {
	InterfaceService InterfaceRepository
}

func NewWebhookService(InterfaceService InterfaceRepository) *Service {
	return &Service{InterfaceService}
}

func (s *Service) ProcessAsaasEvent(ctx context.Context, event Event) (bool, error) {
	rawPayload, err := json.Marshal(event)
	if err != nil {
		return false, err
	}

	logEntry, err := s.InterfaceService.CreateAsaasLog(ctx, db.CreateAsaasLogParams{
		EventType:   event.Event,
		WebhookData: pqtype.NullRawMessage{RawMessage: rawPayload, Valid: true},
		Processed:   false,
	})
	if err != nil {
		return false, err
	}

	handled := true
	switch event.Event {
	case "PAYMENT_RECEIVED", "PAYMENT_CONFIRMED":
		err = s.processPaymentEvent(ctx, event.Payment, "confirmed", "active")
	case "PAYMENT_OVERDUE":
		err = s.processPaymentEvent(ctx, event.Payment, "overdue", "overdue")
	case "PAYMENT_DELETED", "PAYMENT_REFUNDED", "PAYMENT_CANCELED":
		err = s.processPaymentEvent(ctx, event.Payment, "canceled", "")
	case "SUBSCRIPTION_CREATED":
		err = s.upsertSubscription(ctx, event.Subscription, "pending")
	case "SUBSCRIPTION_RENEWED":
		err = s.upsertSubscription(ctx, event.Subscription, "active")
	case "SUBSCRIPTION_CANCELED":
		err = s.upsertSubscription(ctx, event.Subscription, "canceled")
	default:
		log.Printf("Evento não processado: %s", event.Event)
		handled = false
	}
	if err != nil {
		return handled, err
	}

	if handled {
		if err := s.InterfaceService.UpdateAsaasLogProcessed(ctx, logEntry.ID); err != nil {
			return handled, err
		}
	}

	return handled, nil
}

func (s *Service) processPaymentEvent(ctx context.Context, payment *PaymentPayload, status string, subscriptionStatus string) error {
	if payment == nil {
		return fmt.Errorf("evento de pagamento sem objeto payment")
	}

	if err := s.upsertPayment(ctx, payment, status); err != nil {
		return err
	}

	// Pagamento de assinatura também muda o status da assinatura.
	if payment.Subscription != "" && subscriptionStatus != "" {
		return s.cascadeSubscription(ctx, payment, subscriptionStatus)
	}

	return nil
}

func (s *Service) upsertPayment(ctx context.Context, payment *PaymentPayload, status string) error {
	_, err := s.InterfaceService.GetPaymentByExternalId(ctx, payment.ID)
	switch {
	case err == nil:
		_, err = s.InterfaceService.UpdatePaymentStatus(ctx, db.UpdatePaymentStatusParams{
			ExternalID:  payment.ID,
			Status:      status,
			PaymentDate: nullDate(payment.PaymentDate),
		})
		if err != nil {
			return err
		}
		log.Printf("Pagamento atualizado: %s (%s)", payment.ID, status)
		return nil
	case errors.Is(err, sql.ErrNoRows):
		profile, err := s.InterfaceService.GetProfileByAsaasCustomerId(ctx, nullString(payment.Customer))
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: %s", ErrOwnerNotFound, payment.Customer)
		}
		if err != nil {
			return err
		}

		_, err = s.InterfaceService.CreatePayment(ctx, db.CreatePaymentParams{
			ExternalID:     payment.ID,
			UserID:         profile.ID,
			CustomerID:     payment.Customer,
			SubscriptionID: nullString(payment.Subscription),
			Value:          payment.Value,
			NetValue:       payment.NetValue,
			BillingType:    payment.BillingType,
			Status:         status,
			DueDate:        nullDate(payment.DueDate),
			PaymentDate:    nullDate(payment.PaymentDate),
			InvoiceUrl:     nullString(payment.InvoiceUrl),
		})
		if err != nil {
			return err
		}
		log.Printf("Novo pagamento registrado: %s (%s)", payment.ID, status)
		return nil
	default:
		return err
	}
}

func (s *Service) cascadeSubscription(ctx context.Context, payment *PaymentPayload, status string) error {
	_, err := s.InterfaceService.UpdateSubscriptionFromPayment(ctx, db.UpdateSubscriptionFromPaymentParams{
		ExternalID:      payment.Subscription,
		Status:          status,
		LastPaymentDate: nullDate(payment.PaymentDate),
	})
	if errors.Is(err, sql.ErrNoRows) {
		log.Printf("Assinatura não encontrada: %s", payment.Subscription)
		return nil
	}
	if err != nil {
		return err
	}
	log.Printf("Assinatura %s atualizada para %s", payment.Subscription, status)
	return nil
}

func (s *Service) upsertSubscription(ctx context.Context, subscription *SubscriptionPayload, status string) error {
	if subscription == nil {
		return fmt.Errorf("evento de assinatura sem objeto subscription")
	}

	_, err := s.InterfaceService.GetSubscriptionByExternalId(ctx, subscription.ID)
	switch {
	case err == nil:
		_, err = s.InterfaceService.UpdateSubscriptionStatus(ctx, db.UpdateSubscriptionStatusParams{
			ExternalID:      subscription.ID,
			Status:          status,
			NextBillingDate: nullDate(subscription.NextDueDate),
		})
		if err != nil {
			return err
		}
		log.Printf("Assinatura %s atualizada para %s", subscription.ID, status)
		return nil
	case errors.Is(err, sql.ErrNoRows):
		profile, err := s.InterfaceService.GetProfileByAsaasCustomerId(ctx, nullString(subscription.Customer))
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: %s", ErrOwnerNotFound, subscription.Customer)
		}
		if err != nil {
			return err
		}

		planType := "monthly"
		if subscription.Cycle == "YEARLY" {
			planType = "annual"
		}

		_, err = s.InterfaceService.CreateSubscription(ctx, db.CreateSubscriptionParams{
			ExternalID:      subscription.ID,
			UserID:          profile.ID,
			PlanName:        subscription.Description,
			PlanType:        planType,
			Price:           subscription.Value,
			Status:          status,
			StartDate:       sql.NullTime{Time: time.Now(), Valid: true},
			NextBillingDate: nullDate(subscription.NextDueDate),
		})
		if err != nil {
			return err
		}
		log.Printf("Nova assinatura registrada: %s (%s)", subscription.ID, status)
		return nil
	default:
		return err
	}
}
