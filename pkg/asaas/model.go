package asaas

type Address struct {
	Street       string `json:"street,omitempty"`
	Number       string `json:"number,omitempty"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	PostalCode   string `json:"postalCode,omitempty"`
}

type CreateCustomerParams struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	CpfCnpj              string `json:"cpfCnpj"`
	Phone                string `json:"phone,omitempty"`
	Address              string `json:"address,omitempty"`
	AddressNumber        string `json:"addressNumber,omitempty"`
	Complement           string `json:"complement,omitempty"`
	Province             string `json:"province,omitempty"`
	PostalCode           string `json:"postalCode,omitempty"`
	ExternalReference    string `json:"externalReference,omitempty"`
	NotificationDisabled bool   `json:"notificationDisabled"`
}

type Customer struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Email                string `json:"email"`
	CpfCnpj              string `json:"cpfCnpj"`
	Phone                string `json:"phone,omitempty"`
	MobilePhone          string `json:"mobilePhone,omitempty"`
	Address              string `json:"address,omitempty"`
	AddressNumber        string `json:"addressNumber,omitempty"`
	Complement           string `json:"complement,omitempty"`
	Province             string `json:"province,omitempty"`
	PostalCode           string `json:"postalCode,omitempty"`
	ExternalReference    string `json:"externalReference,omitempty"`
	NotificationDisabled bool   `json:"notificationDisabled"`
	DateCreated          string `json:"dateCreated,omitempty"`
}

type Discount struct {
	Value            float64 `json:"value"`
	DueDateLimitDays int     `json:"dueDateLimitDays"`
}

type Interest struct {
	Value float64 `json:"value"`
}

type Fine struct {
	Value float64 `json:"value"`
}

type CreatePaymentParams struct {
	Customer          string    `json:"customer"`
	BillingType       string    `json:"billingType"`
	Value             float64   `json:"value"`
	DueDate           string    `json:"dueDate"`
	Description       string    `json:"description,omitempty"`
	ExternalReference string    `json:"externalReference,omitempty"`
	Discount          *Discount `json:"discount,omitempty"`
	Interest          *Interest `json:"interest,omitempty"`
	Fine              *Fine     `json:"fine,omitempty"`
	PostalService     bool      `json:"postalService"`
}

type Payment struct {
	ID                string     `json:"id"`
	Customer          string     `json:"customer"`
	Subscription      string     `json:"subscription,omitempty"`
	Value             float64    `json:"value"`
	NetValue          float64    `json:"netValue"`
	BillingType       string     `json:"billingType"`
	Status            string     `json:"status"`
	DueDate           string     `json:"dueDate"`
	PaymentDate       string     `json:"paymentDate,omitempty"`
	Description       string     `json:"description,omitempty"`
	InvoiceUrl        string     `json:"invoiceUrl,omitempty"`
	InvoiceNumber     string     `json:"invoiceNumber,omitempty"`
	ExternalReference string     `json:"externalReference,omitempty"`
	Deleted           bool       `json:"deleted"`
	PostalService     bool       `json:"postalService"`
	DateCreated       string     `json:"dateCreated,omitempty"`
	Pix               *PixQrCode `json:"pix,omitempty"`
}

type PaymentList struct {
	Data []Payment `json:"data"`
}

type CreateSubscriptionParams struct {
	Customer          string    `json:"customer"`
	BillingType       string    `json:"billingType"`
	Value             float64   `json:"value"`
	NextDueDate       string    `json:"nextDueDate"`
	Cycle             string    `json:"cycle"`
	Description       string    `json:"description,omitempty"`
	ExternalReference string    `json:"externalReference,omitempty"`
	Discount          *Discount `json:"discount,omitempty"`
	Interest          *Interest `json:"interest,omitempty"`
	Fine              *Fine     `json:"fine,omitempty"`
}

type Subscription struct {
	ID                string     `json:"id"`
	Customer          string     `json:"customer"`
	Value             float64    `json:"value"`
	NextDueDate       string     `json:"nextDueDate"`
	BillingType       string     `json:"billingType"`
	Cycle             string     `json:"cycle"`
	Description       string     `json:"description,omitempty"`
	Status            string     `json:"status"`
	ExternalReference string     `json:"externalReference,omitempty"`
	NextPayment       string     `json:"nextPayment,omitempty"`
	InvoiceUrl        string     `json:"invoiceUrl,omitempty"`
	DateCreated       string     `json:"dateCreated,omitempty"`
	Pix               *PixQrCode `json:"pix,omitempty"`
	FirstPayment      *Payment   `json:"firstPayment,omitempty"`
}

type PixQrCode struct {
	EncodedImage   string `json:"encodedImage"`
	Payload        string `json:"payload"`
	ExpirationDate string `json:"expirationDate"`
}

type errorResponse struct {
	Errors []struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"errors"`
}
