package n8n

type ProcessPaymentRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	CpfCnpj     string `json:"cpfCnpj" validate:"required"`
	Phone       string `json:"phone"`
	PlanID      int64  `json:"planId" validate:"required"`
	UserID      string `json:"userId" validate:"required"`
	BillingType string `json:"billingType" validate:"required"`
}

type UserPayload struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	CpfCnpj string `json:"cpfCnpj"`
	Phone   string `json:"phone"`
}

type PlanPayload struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Cycle string  `json:"cycle"`
}

type ForwardPayload struct {
	User        UserPayload `json:"user"`
	Plan        PlanPayload `json:"plan"`
	BillingType string      `json:"billingType"`
}

// ForwardResult é o contrato de falha esperada do encaminhamento:
// nunca propaga erro, sempre devolve success/message/paymentUrl.
type ForwardResult struct {
	Success    bool                   `json:"success"`
	Message    string                 `json:"message,omitempty"`
	PaymentUrl *string                `json:"paymentUrl"`
	Data       map[string]interface{} `json:"data,omitempty"`
}

type ProcessPaymentResponse struct {
	Success    bool                   `json:"success"`
	PaymentUrl string                 `json:"paymentUrl"`
	Data       map[string]interface{} `json:"data,omitempty"`
	Timestamp  string                 `json:"timestamp"`
}

type ErrorResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp"`
}
