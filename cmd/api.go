package cmd

import (
	"context"
	"medmoney/infra"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func StartAPI(ctx context.Context, container *infra.ContainerDI) {
	e := echo.New()

	go func() {
		for {
			select {
			case <-ctx.Done():
				if err := e.Shutdown(ctx); err != nil {
					panic(err)
				}
				return
			default:
				time.Sleep(1 * time.Second)
			}
		}
	}()

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowMethods: middleware.DefaultCORSConfig.AllowMethods,
	}))
	e.Use(middleware.Logger())

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.GET("/health", container.HandlerHealth.HealthHandler)

	e.POST("/api/webhook/asaas", container.HandlerWebhook.AsaasWebhookHandler)

	e.POST("/api/create-customer", container.HandlerPayment.CreateCustomerHandler)
	e.POST("/api/create-payment", container.HandlerPayment.CreatePaymentHandler)
	e.POST("/api/create-subscription", container.HandlerPayment.CreateSubscriptionHandler)
	e.GET("/api/subscription/:id/pix", container.HandlerPayment.GetSubscriptionPixHandler)

	e.POST("/api/process-payment/n8n", container.HandlerN8n.ProcessPaymentHandler)

	e.Logger.Fatal(e.Start(container.Config.ServerHost + ":" + container.Config.ServerPort))
}
