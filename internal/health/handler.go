package health

import (
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type HealthResponse struct {
	Status    string `json:"status"`
	Supabase  string `json:"supabase"`
	Timestamp string `json:"timestamp"`
}

type Handler struct {
	InterfaceRepository InterfaceRepository
}

func NewHealthHandler(InterfaceRepository InterfaceRepository) *Handler {
	return &Handler{
		InterfaceRepository,
	}
}

// HealthHandler godoc
// @Summary Health Check
// @Description Verifica a disponibilidade do serviço e a conexão com o banco.
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse "Status do serviço"
// @Router /health [get]
func (p *Handler) HealthHandler(c echo.Context) error {
	status := "ok"
	supabase := "connected"

	// Leitura trivial só para provar a conectividade com o banco.
	if _, err := p.InterfaceRepository.CountAsaasLogs(c.Request().Context()); err != nil {
		log.Printf("Erro ao conectar com o banco: %s", err.Error())
		status = "error"
		supabase = "error"
	}

	return c.JSON(http.StatusOK, HealthResponse{
		Status:    status,
		Supabase:  supabase,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
