package webhook

import (
	"context"
	"database/sql"
	db "medmoney/db/sqlc"
)

type InterfaceRepository interface {
	CreateAsaasLog(ctx context.Context, arg db.CreateAsaasLogParams) (db.AsaasLog, error)
	UpdateAsaasLogProcessed(ctx context.Context, id int64) error
	GetPaymentByExternalId(ctx context.Context, externalID string) (db.Payment, error)
	CreatePayment(ctx context.Context, arg db.CreatePaymentParams) (db.Payment, error)
	UpdatePaymentStatus(ctx context.Context, arg db.UpdatePaymentStatusParams) (db.Payment, error)
	GetSubscriptionByExternalId(ctx context.Context, externalID string) (db.Subscription, error)
	CreateSubscription(ctx context.Context, arg db.CreateSubscriptionParams) (db.Subscription, error)
	UpdateSubscriptionStatus(ctx context.Context, arg db.UpdateSubscriptionStatusParams) (db.Subscription, error)
	UpdateSubscriptionFromPayment(ctx context.Context, arg db.UpdateSubscriptionFromPaymentParams) (db.Subscription, error)
	GetProfileByAsaasCustomerId(ctx context.Context, asaasCustomerID sql.NullString) (db.Profile, error)
}
type Repository struct {
	Conn    *sql.DB
	DBtx    db.DBTX
	Queries *db.Queries
	SqlConn *sql.DB
}

func NewWebhookRepository(Conn *sql.DB) *Repository {
	q := db.New(Conn)
	return &Repository{
		Conn:    Conn,
		DBtx:    Conn,
		Queries: q,
		SqlConn: Conn,
	}
}

func (r *Repository) CreateAsaasLog(ctx context.Context, arg db.CreateAsaasLogParams) (db.AsaasLog, error) {
	return r.Queries.CreateAsaasLog(ctx, arg)
}
func (r *Repository) UpdateAsaasLogProcessed(ctx context.Context, id int64) error {
	return r.Queries.UpdateAsaasLogProcessed(ctx, id)
}
func (r *Repository) GetPaymentByExternalId(ctx context.Context, externalID string) (db.Payment, error) {
	return r.Queries.GetPaymentByExternalId(ctx, externalID)
}
func (r *Repository) CreatePayment(ctx context.Context, arg db.CreatePaymentParams) (db.Payment, error) {
	return r.Queries.CreatePayment(ctx, arg)
}
func (r *Repository) UpdatePaymentStatus(ctx context.Context, arg db.UpdatePaymentStatusParams) (db.Payment, error) {
	return r.Queries.UpdatePaymentStatus(ctx, arg)
}
func (r *Repository) GetSubscriptionByExternalId(ctx context.Context, externalID string) (db.Subscription, error) {
	return r.Queries.GetSubscriptionByExternalId(ctx, externalID)
}
func (r *Repository) CreateSubscription(ctx context.Context, arg db.CreateSubscriptionParams) (db.Subscription, error) {
	return r.Queries.CreateSubscription(ctx, arg)
}
func (r *Repository) UpdateSubscriptionStatus(ctx context.Context, arg db.UpdateSubscriptionStatusParams) (db.Subscription, error) {
	return r.Queries.UpdateSubscriptionStatus(ctx, arg)
}
func (r *Repository) UpdateSubscriptionFromPayment(ctx context.Context, arg db.UpdateSubscriptionFromPaymentParams) (db.Subscription, error) {
	return r.Queries.UpdateSubscriptionFromPayment(ctx, arg)
}
func (r *Repository) GetProfileByAsaasCustomerId(ctx context.Context, asaasCustomerID sql.NullString) (db.Profile, error) {
	return r.Queries.GetProfileByAsaasCustomerId(ctx, asaasCustomerID)
}
