package payment

import (
	"context"
	"database/sql"
	db "medmoney/db/sqlc"
)

type InterfaceRepository interface {
	CreateAsaasLog(ctx context.Context, arg db.CreateAsaasLogParams) (db.AsaasLog, error)
	UpdateProfileAsaasCustomerId(ctx context.Context, arg db.UpdateProfileAsaasCustomerIdParams) error
	CreateSubscription(ctx context.Context, arg db.CreateSubscriptionParams) (db.Subscription, error)
}
type Repository struct {
	Conn    *sql.DB
	DBtx    db.DBTX
	Queries *db.Queries
	SqlConn *sql.DB
}

func NewPaymentRepository(Conn *sql.DB) *Repository {
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
func (r *Repository) UpdateProfileAsaasCustomerId(ctx context.Context, arg db.UpdateProfileAsaasCustomerIdParams) error {
	return r.Queries.UpdateProfileAsaasCustomerId(ctx, arg)
}
func (r *Repository) CreateSubscription(ctx context.Context, arg db.CreateSubscriptionParams) (db.Subscription, error) {
	return r.Queries.CreateSubscription(ctx, arg)
}
