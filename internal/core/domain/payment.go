package domain

import "errors"

var ErrPaymentNotFound = errors.New("payment not found")

type PaymentStatus string

const (
	PaymentStatusPending           PaymentStatus = "pending"
	PaymentStatusWaitingForCapture PaymentStatus = "waiting_for_capture"
	PaymentStatusSucceeded         PaymentStatus = "succeeded"
	PaymentStatusCanceled          PaymentStatus = "canceled"
)

type PaymentAmount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

type Payment struct {
	ID              string        `json:"id"`
	Status          PaymentStatus `json:"status"`
	Amount          PaymentAmount `json:"amount"`
	Description     string        `json:"description,omitempty"`
	ConfirmationURL string        `json:"confirmation_url,omitempty"`
}
