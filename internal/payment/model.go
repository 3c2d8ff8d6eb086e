package payment

import (
	"medmoney/pkg/asaas"
)

type AddressRequest struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	PostalCode   string `json:"postalCode"`
}

type CreateCustomerRequest struct {
	Name    string          `json:"name" validate:"required"`
	Email   string          `json:"email" validate:"required,email"`
	CpfCnpj string          `json:"cpfCnpj" validate:"required"`
	Phone   string          `json:"phone"`
	UserID  string          `json:"userId"`
	Address *AddressRequest `json:"address"`
}

type CreatePaymentRequest struct {
	CustomerID  string  `json:"customerId" validate:"required"`
	Value       float64 `json:"value" validate:"required"`
	BillingType string  `json:"billingType" validate:"required"`
	Description string  `json:"description"`
	DueDate     string  `json:"dueDate"`
	UserID      string  `json:"userId"`
}

type CreateSubscriptionRequest struct {
	CustomerID  string  `json:"customerId" validate:"required"`
	Value       float64 `json:"value" validate:"required"`
	BillingType string  `json:"billingType" validate:"required"`
	Cycle       string  `json:"cycle" validate:"required"`
	Description string  `json:"description"`
	NextDueDate string  `json:"nextDueDate"`
	UserID      string  `json:"userId"`
	PlanID      int64   `json:"planId"`
}

type CustomerResponse struct {
	Success   bool           `json:"success"`
	Customer  asaas.Customer `json:"customer"`
	Simulated bool           `json:"simulated,omitempty"`
	Timestamp string         `json:"timestamp"`
}

type PaymentResponse struct {
	Success   bool          `json:"success"`
	Payment   asaas.Payment `json:"payment"`
	Simulated bool          `json:"simulated,omitempty"`
	Timestamp string        `json:"timestamp"`
}

type SubscriptionResponse struct {
	Success      bool               `json:"success"`
	Subscription asaas.Subscription `json:"subscription"`
	Simulated    bool               `json:"simulated,omitempty"`
	Timestamp    string             `json:"timestamp"`
}

type PixResponse struct {
	Success        bool            `json:"success"`
	PixQrCode      asaas.PixQrCode `json:"pixQrCode"`
	SubscriptionID string          `json:"subscription_id"`
	PaymentID      string          `json:"payment_id"`
	Simulated      bool            `json:"simulated,omitempty"`
	Timestamp      string          `json:"timestamp"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message,omitempty"`
	Timestamp string `json:"timestamp"`
}
