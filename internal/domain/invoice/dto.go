// internal/domain/invoice/dto.go
package invoice

import "time"

type CreateInvoiceRequest struct {
	JobID         *int64              `json:"job_id"`
	CustomerID    int64               `json:"customer_id"`
	InvoiceNumber string              `json:"invoice_number"`
	Status        string              `json:"status"`
	Tax           string              `json:"tax"`
	DueDate       *time.Time          `json:"due_date"`
	Items         []CreateItemRequest `json:"items"`
}

type CreateItemRequest struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
}

type UpdateInvoiceRequest struct {
	Status   *string    `json:"status"`
	DueDate  *time.Time `json:"due_date"`
	PaidDate *time.Time `json:"paid_date"`
}
