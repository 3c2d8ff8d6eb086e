package n8n

import (
	"context"
	"database/sql"
	db "medmoney/db/sqlc"
)

type InterfaceRepository interface {
	GetPlanById(ctx context.Context, id int64) (db.Plan, error)
	CreateN8nLog(ctx context.Context, arg db.CreateN8nLogParams) (db.N8nLog, error)
}
type Repository struct {
	Conn    *sql.DB
	DBtx    db.DBTX
	Queries *db.Queries
	SqlConn *sql.DB
}

func NewN8nRepository(Conn *sql.DB) *Repository {
	q := db.New(Conn)
	return &Repository{
		Conn:    Conn,
		DBtx:    Conn,
		Queries: q,
		SqlConn: Conn,
	}
}

func (r *Repository) GetPlanById(ctx context.Context, id int64) (db.Plan, error) {
	return r.Queries.GetPlanById(ctx, id)
}
func (r *Repository) CreateN8nLog(ctx context.Context, arg db.CreateN8nLogParams) (db.N8nLog, error) {
	return r.Queries.CreateN8nLog(ctx, arg)
}
