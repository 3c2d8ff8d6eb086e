package health

import (
	"context"
	"database/sql"
	db "medmoney/db/sqlc"
)

type InterfaceRepository interface {
	CountAsaasLogs(ctx context.Context) (int64, error)
}
type Repository struct {
	Conn    *sql.DB
	DBtx    db.DBTX
	Queries *db.Queries
	SqlConn *sql.DB
}

func NewHealthRepository(Conn *sql.DB) *Repository {
	q := db.New(Conn)
	return &Repository{
		Conn:    Conn,
		DBtx:    Conn,
		Queries: q,
		SqlConn: Conn,
	}
}

func (r *Repository) CountAsaasLogs(ctx context.Context) (int64, error) {
	return r.Queries.CountAsaasLogs(ctx)
}
