package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/adubrov/boiler-parts/internal/core/domain"
)

const defaultBaseURL = "https://api.yookassa.ru/v3"

// YooKassaGateway talks to the YooKassa payments API. Every create request
// carries a fresh Idempotence-Key, so a retried HTTP call cannot charge twice.
type YooKassaGateway struct {
	baseURL   string
	shopID    string
	secretKey string
	returnURL string
	client    *http.Client
}

func NewYooKassaGateway(baseURL, shopID, secretKey, returnURL string) *YooKassaGateway {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &YooKassaGateway{
		baseURL:   baseURL,
		shopID:    shopID,
		secretKey: secretKey,
		returnURL: returnURL,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

type createPaymentRequest struct {
	Amount       domain.PaymentAmount `json:"amount"`
	Capture      bool                 `json:"capture"`
	Confirmation confirmation         `json:"confirmation"`
	Description  string               `json:"description,omitempty"`
}

type confirmation struct {
	Type      string `json:"type"`
	ReturnURL string `json:"return_url,omitempty"`
}

type paymentResponse struct {
	ID           string               `json:"id"`
	Status       string               `json:"status"`
	Amount       domain.PaymentAmount `json:"amount"`
	Description  string               `json:"description"`
	Confirmation struct {
		ConfirmationURL string `json:"confirmation_url"`
	} `json:"confirmation"`
}

func (g *YooKassaGateway) CreatePayment(ctx context.Context, amount float64, description string) (*domain.Payment, error) {
	body, err := json.Marshal(createPaymentRequest{
		Amount: domain.PaymentAmount{
			Value:    fmt.Sprintf("%.2f", amount),
			Currency: "RUB",
		},
		Capture:      true,
		Confirmation: confirmation{Type: "redirect", ReturnURL: g.returnURL},
		Description:  description,
	})
	if err != nil {
		return nil, errors.Wrap(err, "marshal payment request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/payments", bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "build payment request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotence-Key", uuid.NewString())
	req.SetBasicAuth(g.shopID, g.secretKey)

	return g.do(req)
}

func (g *YooKassaGateway) GetPayment(ctx context.Context, paymentID string) (*domain.Payment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/payments/"+paymentID, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build payment request")
	}
	req.SetBasicAuth(g.shopID, g.secretKey)

	return g.do(req)
}

func (g *YooKassaGateway) do(req *http.Request) (*domain.Payment, error) {
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "call payment provider")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrPaymentNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("payment provider returned status %d", resp.StatusCode)
	}

	var body paymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "decode payment response")
	}

	return &domain.Payment{
		ID:              body.ID,
		Status:          domain.PaymentStatus(body.Status),
		Amount:          body.Amount,
		Description:     body.Description,
		ConfirmationURL: body.Confirmation.ConfirmationURL,
	}, nil
}
