package webhook

import (
	"context"
	"database/sql"
	"testing"

	db "medmoney/db/sqlc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	payments      map[string]db.Payment
	subscriptions map[string]db.Subscription
	profiles      map[string]db.Profile

	logs          []db.AsaasLog
	processedLogs []int64

	createdPayments      []db.CreatePaymentParams
	updatedPayments      []db.UpdatePaymentStatusParams
	createdSubscriptions []db.CreateSubscriptionParams
	updatedSubscriptions []db.UpdateSubscriptionStatusParams
	cascadedPayments     []db.UpdateSubscriptionFromPaymentParams
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		payments:      map[string]db.Payment{},
		subscriptions: map[string]db.Subscription{},
		profiles:      map[string]db.Profile{},
	}
}

func (f *fakeRepository) CreateAsaasLog(_ context.Context, arg db.CreateAsaasLogParams) (db.AsaasLog, error) {
	entry := db.AsaasLog{
		ID:          int64(len(f.logs) + 1),
		EventType:   arg.EventType,
		WebhookData: arg.WebhookData,
		Processed:   arg.Processed,
	}
	f.logs = append(f.logs, entry)
	return entry, nil
}

func (f *fakeRepository) UpdateAsaasLogProcessed(_ context.Context, id int64) error {
	f.processedLogs = append(f.processedLogs, id)
	for i := range f.logs {
		if f.logs[i].ID == id {
			f.logs[i].Processed = true
		}
	}
	return nil
}

func (f *fakeRepository) GetPaymentByExternalId(_ context.Context, externalID string) (db.Payment, error) {
	if p, ok := f.payments[externalID]; ok {
		return p, nil
	}
	return db.Payment{}, sql.ErrNoRows
}

func (f *fakeRepository) CreatePayment(_ context.Context, arg db.CreatePaymentParams) (db.Payment, error) {
	f.createdPayments = append(f.createdPayments, arg)
	p := db.Payment{
		ExternalID: arg.ExternalID,
		UserID:     arg.UserID,
		CustomerID: arg.CustomerID,
		Status:     arg.Status,
	}
	f.payments[arg.ExternalID] = p
	return p, nil
}

func (f *fakeRepository) UpdatePaymentStatus(_ context.Context, arg db.UpdatePaymentStatusParams) (db.Payment, error) {
	f.updatedPayments = append(f.updatedPayments, arg)
	p := f.payments[arg.ExternalID]
	p.Status = arg.Status
	f.payments[arg.ExternalID] = p
	return p, nil
}

func (f *fakeRepository) GetSubscriptionByExternalId(_ context.Context, externalID string) (db.Subscription, error) {
	if s, ok := f.subscriptions[externalID]; ok {
		return s, nil
	}
	return db.Subscription{}, sql.ErrNoRows
}

func (f *fakeRepository) CreateSubscription(_ context.Context, arg db.CreateSubscriptionParams) (db.Subscription, error) {
	f.createdSubscriptions = append(f.createdSubscriptions, arg)
	s := db.Subscription{
		ExternalID: arg.ExternalID,
		UserID:     arg.UserID,
		PlanType:   arg.PlanType,
		Status:     arg.Status,
	}
	f.subscriptions[arg.ExternalID] = s
	return s, nil
}

func (f *fakeRepository) UpdateSubscriptionStatus(_ context.Context, arg db.UpdateSubscriptionStatusParams) (db.Subscription, error) {
	f.updatedSubscriptions = append(f.updatedSubscriptions, arg)
	s := f.subscriptions[arg.ExternalID]
	s.Status = arg.Status
	f.subscriptions[arg.ExternalID] = s
	return s, nil
}

func (f *fakeRepository) UpdateSubscriptionFromPayment(_ context.Context, arg db.UpdateSubscriptionFromPaymentParams) (db.Subscription, error) {
	s, ok := f.subscriptions[arg.ExternalID]
	if !ok {
		return db.Subscription{}, sql.ErrNoRows
	}
	f.cascadedPayments = append(f.cascadedPayments, arg)
	s.Status = arg.Status
	f.subscriptions[arg.ExternalID] = s
	return s, nil
}

func (f *fakeRepository) GetProfileByAsaasCustomerId(_ context.Context, asaasCustomerID sql.NullString) (db.Profile, error) {
	if p, ok := f.profiles[asaasCustomerID.String]; ok {
		return p, nil
	}
	return db.Profile{}, sql.ErrNoRows
}

func paymentEvent(eventType, paymentID, customer, subscription string) Event {
	return Event{
		Event: eventType,
		Payment: &PaymentPayload{
			ID:           paymentID,
			Customer:     customer,
			Subscription: subscription,
			Value:        149.90,
			NetValue:     145.00,
			BillingType:  "PIX",
			Status:       "RECEIVED",
			DueDate:      "2025-03-10",
			PaymentDate:  "2025-03-09",
		},
	}
}

func TestProcessAsaasEventPaymentReceivedCreatesPayment(t *testing.T) {
	repo := newFakeRepository()
	repo.profiles["cus_001"] = db.Profile{ID: "user-1"}
	service := NewWebhookService(repo)

	handled, err := service.ProcessAsaasEvent(context.Background(), paymentEvent("PAYMENT_RECEIVED", "pay_001", "cus_001", ""))

	require.NoError(t, err)
	assert.True(t, handled)
	require.Len(t, repo.createdPayments, 1)
	assert.Equal(t, "confirmed", repo.createdPayments[0].Status)
	assert.Equal(t, "user-1", repo.createdPayments[0].UserID)
	assert.Empty(t, repo.cascadedPayments)
	require.Len(t, repo.logs, 1)
	assert.True(t, repo.logs[0].Processed)
}

func TestProcessAsaasEventReplayUpdatesInsteadOfDuplicating(t *testing.T) {
	repo := newFakeRepository()
	repo.profiles["cus_001"] = db.Profile{ID: "user-1"}
	service := NewWebhookService(repo)
	event := paymentEvent("PAYMENT_CONFIRMED", "pay_001", "cus_001", "")

	_, err := service.ProcessAsaasEvent(context.Background(), event)
	require.NoError(t, err)
	_, err = service.ProcessAsaasEvent(context.Background(), event)
	require.NoError(t, err)

	assert.Len(t, repo.createdPayments, 1)
	require.Len(t, repo.updatedPayments, 1)
	assert.Equal(t, "confirmed", repo.updatedPayments[0].Status)
}

func TestProcessAsaasEventCascadesSubscriptionStatus(t *testing.T) {
	repo := newFakeRepository()
	repo.profiles["cus_001"] = db.Profile{ID: "user-1"}
	repo.subscriptions["sub_001"] = db.Subscription{ExternalID: "sub_001", Status: "overdue"}
	service := NewWebhookService(repo)

	handled, err := service.ProcessAsaasEvent(context.Background(), paymentEvent("PAYMENT_RECEIVED", "pay_001", "cus_001", "sub_001"))

	require.NoError(t, err)
	assert.True(t, handled)
	require.Len(t, repo.cascadedPayments, 1)
	assert.Equal(t, "active", repo.cascadedPayments[0].Status)
	assert.Equal(t, "active", repo.subscriptions["sub_001"].Status)
}

func TestProcessAsaasEventOverdueMarksPaymentAndSubscription(t *testing.T) {
	repo := newFakeRepository()
	repo.profiles["cus_001"] = db.Profile{ID: "user-1"}
	repo.subscriptions["sub_001"] = db.Subscription{ExternalID: "sub_001", Status: "active"}
	service := NewWebhookService(repo)

	_, err := service.ProcessAsaasEvent(context.Background(), paymentEvent("PAYMENT_OVERDUE", "pay_001", "cus_001", "sub_001"))

	require.NoError(t, err)
	require.Len(t, repo.createdPayments, 1)
	assert.Equal(t, "overdue", repo.createdPayments[0].Status)
	assert.Equal(t, "overdue", repo.subscriptions["sub_001"].Status)
}

func TestProcessAsaasEventCanceledDoesNotCascade(t *testing.T) {
	repo := newFakeRepository()
	repo.profiles["cus_001"] = db.Profile{ID: "user-1"}
	repo.subscriptions["sub_001"] = db.Subscription{ExternalID: "sub_001", Status: "active"}
	service := NewWebhookService(repo)

	for _, eventType := range []string{"PAYMENT_DELETED", "PAYMENT_REFUNDED", "PAYMENT_CANCELED"} {
		repo.createdPayments = nil
		repo.updatedPayments = nil
		delete(repo.payments, "pay_001")

		_, err := service.ProcessAsaasEvent(context.Background(), paymentEvent(eventType, "pay_001", "cus_001", "sub_001"))

		require.NoError(t, err)
		require.Len(t, repo.createdPayments, 1, eventType)
		assert.Equal(t, "canceled", repo.createdPayments[0].Status, eventType)
	}
	assert.Empty(t, repo.cascadedPayments)
	assert.Equal(t, "active", repo.subscriptions["sub_001"].Status)
}

func TestProcessAsaasEventUnknownOwnerAborts(t *testing.T) {
	repo := newFakeRepository()
	service := NewWebhookService(repo)

	handled, err := service.ProcessAsaasEvent(context.Background(), paymentEvent("PAYMENT_RECEIVED", "pay_001", "cus_missing", ""))

	require.ErrorIs(t, err, ErrOwnerNotFound)
	assert.True(t, handled)
	assert.Empty(t, repo.createdPayments)
	require.Len(t, repo.logs, 1)
	assert.False(t, repo.logs[0].Processed)
}

func TestProcessAsaasEventUnknownEventIsAcknowledged(t *testing.T) {
	repo := newFakeRepository()
	service := NewWebhookService(repo)

	handled, err := service.ProcessAsaasEvent(context.Background(), Event{Event: "PAYMENT_UPDATED"})

	require.NoError(t, err)
	assert.False(t, handled)
	require.Len(t, repo.logs, 1)
	assert.False(t, repo.logs[0].Processed)
	assert.Empty(t, repo.processedLogs)
}

func TestProcessAsaasEventPaymentWithoutPayloadFails(t *testing.T) {
	repo := newFakeRepository()
	service := NewWebhookService(repo)

	_, err := service.ProcessAsaasEvent(context.Background(), Event{Event: "PAYMENT_RECEIVED"})

	require.Error(t, err)
	assert.Empty(t, repo.processedLogs)
}

func TestProcessAsaasEventSubscriptionCreated(t *testing.T) {
	repo := newFakeRepository()
	repo.profiles["cus_001"] = db.Profile{ID: "user-1"}
	service := NewWebhookService(repo)

	handled, err := service.ProcessAsaasEvent(context.Background(), Event{
		Event: "SUBSCRIPTION_CREATED",
		Subscription: &SubscriptionPayload{
			ID:          "sub_001",
			Customer:    "cus_001",
			Value:       990.00,
			NextDueDate: "2025-04-01",
			Cycle:       "YEARLY",
			Description: "Plano Anual",
		},
	})

	require.NoError(t, err)
	assert.True(t, handled)
	require.Len(t, repo.createdSubscriptions, 1)
	assert.Equal(t, "pending", repo.createdSubscriptions[0].Status)
	assert.Equal(t, "annual", repo.createdSubscriptions[0].PlanType)
	assert.Equal(t, "user-1", repo.createdSubscriptions[0].UserID)
}

func TestProcessAsaasEventSubscriptionLifecycle(t *testing.T) {
	repo := newFakeRepository()
	repo.subscriptions["sub_001"] = db.Subscription{ExternalID: "sub_001", Status: "pending"}
	service := NewWebhookService(repo)

	subscription := &SubscriptionPayload{ID: "sub_001", Customer: "cus_001", Cycle: "MONTHLY"}

	_, err := service.ProcessAsaasEvent(context.Background(), Event{Event: "SUBSCRIPTION_RENEWED", Subscription: subscription})
	require.NoError(t, err)
	assert.Equal(t, "active", repo.subscriptions["sub_001"].Status)

	_, err = service.ProcessAsaasEvent(context.Background(), Event{Event: "SUBSCRIPTION_CANCELED", Subscription: subscription})
	require.NoError(t, err)
	assert.Equal(t, "canceled", repo.subscriptions["sub_001"].Status)
	assert.Empty(t, repo.createdSubscriptions)
}
