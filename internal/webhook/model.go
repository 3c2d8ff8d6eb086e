package webhook

type Event struct {
	Event        string               `json:"event"`
	Payment      *PaymentPayload      `json:"payment,omitempty"`
	Subscription *SubscriptionPayload `json:"subscription,omitempty"`
}

type PaymentPayload struct {
	ID                string  `json:"id"`
	Customer          string  `json:"customer"`
	Subscription      string  `json:"subscription,omitempty"`
	Value             float64 `json:"value"`
	NetValue          float64 `json:"netValue"`
	BillingType       string  `json:"billingType"`
	Status            string  `json:"status"`
	DueDate           string  `json:"dueDate"`
	PaymentDate       string  `json:"paymentDate,omitempty"`
	InvoiceUrl        string  `json:"invoiceUrl,omitempty"`
	ExternalReference string  `json:"externalReference,omitempty"`
	Deleted           bool    `json:"deleted"`
}

type SubscriptionPayload struct {
	ID          string  `json:"id"`
	Customer    string  `json:"customer"`
	Value       float64 `json:"value"`
	NextDueDate string  `json:"nextDueDate"`
	BillingType string  `json:"billingType"`
	Cycle       string  `json:"cycle"`
	Status      string  `json:"status"`
	Description string  `json:"description,omitempty"`
}

type WebhookResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	EventType string `json:"event_type"`
	Handled   bool   `json:"handled"`
	Timestamp string `json:"timestamp"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message,omitempty"`
	Timestamp string `json:"timestamp"`
}
