package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nrattyp233/moneybuddy/internal/pkg/circuitbreaker"
	"github.com/nrattyp233/moneybuddy/internal/pkg/logger"
	"github.com/nrattyp233/moneybuddy/internal/pkg/models"
)

const defaultProcessorTimeout = 10 * time.Second

// ProcessorClient is the HTTP client for the external payment processor. All
// calls run behind a circuit breaker so a degraded processor fails fast
// instead of tying up request workers.
type ProcessorClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	breaker    *circuitbreaker.CircuitBreaker
}

// NewProcessorClient creates a new processor HTTP client
func NewProcessorClient(cfg models.ProcessorConfig, l *logger.ZapLogger) *ProcessorClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultProcessorTimeout
	}

	return &ProcessorClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		breaker: circuitbreaker.New(circuitbreaker.DefaultConfig("payment-processor"), l),
	}
}

// payoutRequest is the processor's payout creation payload.
type payoutRequest struct {
	Reference string `json:"reference"`
	AccountID string `json:"account_id"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
}

// payoutResponse is the processor's payout status payload.
type payoutResponse struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
}

// Payout forwards a pending external withdrawal to the processor. The
// transaction's processor reference doubles as the processor-side idempotency
// key, so a retried call cannot double-pay.
func (g *TransferGW) Payout(ctx context.Context, txn *models.Transaction) (models.ProcessorOutcome, error) {
	var outcome models.ProcessorOutcome

	err := g.processor.breaker.Execute(ctx, func(ctx context.Context) error {
		var execErr error
		outcome, execErr = g.processor.createPayout(ctx, txn)
		return execErr
	})
	if err != nil {
		return "", err
	}

	return outcome, nil
}

func (c *ProcessorClient) createPayout(ctx context.Context, txn *models.Transaction) (models.ProcessorOutcome, error) {
	payload, err := json.Marshal(payoutRequest{
		Reference: txn.ProcessorRef,
		AccountID: txn.AccountID.String(),
		Amount:    txn.Amount,
		Currency:  txn.Currency,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal payout request: %w", err)
	}

	url := c.baseURL + "/v1/payouts"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create payout request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Idempotency-Key", txn.ProcessorRef)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("payout call failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read payout response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("processor returned status %d: %s", resp.StatusCode, string(body))
	}

	var result payoutResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode payout response: %w", err)
	}

	switch models.ProcessorOutcome(result.Status) {
	case models.ProcessorOutcomeSuccess, models.ProcessorOutcomePending, models.ProcessorOutcomeFailed:
		return models.ProcessorOutcome(result.Status), nil
	default:
		return "", fmt.Errorf("processor returned unknown status %q", result.Status)
	}
}
