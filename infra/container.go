package infra

import (
	"database/sql"
	"medmoney/infra/database"
	"medmoney/infra/database/db_postgresql"
	"medmoney/internal/health"
	"medmoney/internal/n8n"
	"medmoney/internal/payment"
	"medmoney/internal/webhook"
	"medmoney/pkg/asaas"
)

type ContainerDI struct {
	Config            Config
	ConnDB            *sql.DB
	AsaasClient       asaas.InterfaceClient
	HandlerWebhook    *webhook.Handler
	ServiceWebhook    *webhook.Service
	RepositoryWebhook *webhook.Repository
	HandlerPayment    *payment.Handler
	ServicePayment    *payment.Service
	RepositoryPayment *payment.Repository
	HandlerN8n        *n8n.Handler
	ServiceN8n        *n8n.Service
	RepositoryN8n     *n8n.Repository
	HandlerHealth     *health.Handler
	RepositoryHealth  *health.Repository
}

func NewContainerDI(config Config) *ContainerDI {
	container := &ContainerDI{Config: config}
	container.db()
	container.buildPkg()
	container.buildRepository()
	container.buildService()
	container.buildHandler()
	return container
}

func (c *ContainerDI) db() {
	dbConfig := database.Config{
		Host:        c.Config.DBHost,
		Port:        c.Config.DBPort,
		User:        c.Config.DBUser,
		Password:    c.Config.DBPassword,
		Database:    c.Config.DBDatabase,
		SSLMode:     c.Config.DBSSLMode,
		Driver:      c.Config.DBDriver,
		Environment: c.Config.Environment,
	}
	c.ConnDB = db_postgresql.NewConnection(&dbConfig)
}

func (c *ContainerDI) buildPkg() {
	c.AsaasClient = asaas.NewClient(c.Config.AsaasApiUrl, c.Config.AsaasApiKey)
}

func (c *ContainerDI) buildRepository() {
	c.RepositoryWebhook = webhook.NewWebhookRepository(c.ConnDB)
	c.RepositoryPayment = payment.NewPaymentRepository(c.ConnDB)
	c.RepositoryN8n = n8n.NewN8nRepository(c.ConnDB)
	c.RepositoryHealth = health.NewHealthRepository(c.ConnDB)
}

func (c *ContainerDI) buildService() {
	c.ServiceWebhook = webhook.NewWebhookService(c.RepositoryWebhook)
	c.ServicePayment = payment.NewPaymentService(c.RepositoryPayment, c.AsaasClient, c.Config.Environment, c.Config.AsaasApiKey)
	c.ServiceN8n = n8n.NewN8nService(c.RepositoryN8n, c.Config.N8nWebhookUrl)
}

func (c *ContainerDI) buildHandler() {
	c.HandlerWebhook = webhook.NewWebhookHandler(c.ServiceWebhook)
	c.HandlerPayment = payment.NewPaymentHandler(c.ServicePayment)
	c.HandlerN8n = n8n.NewN8nHandler(c.ServiceN8n)
	c.HandlerHealth = health.NewHealthHandler(c.RepositoryHealth)
}
