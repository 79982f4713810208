package workers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ChainClient is the pass-through to the external contract-invocation
// service. It hands the service a destination address and a reward amount
// and treats the returned transaction hash as an opaque string. No retry,
// no queueing — a failed mint surfaces to the caller and is otherwise lost.
type ChainClient struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

func NewChainClient(baseURL, token string) *ChainClient {
	return &ChainClient{
		BaseURL: baseURL,
		Token:   token,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Mint asks the chain service to mint a reward to the destination address
// and returns the transaction hash.
func (c *ChainClient) Mint(ctx context.Context, address string, amount float64) (string, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"address": address,
		"amount":  amount,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode mint request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST",
		fmt.Sprintf("%s/api/v1/public/mints", c.BaseURL), bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Service-Token", c.Token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call chain service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("chain service returned status %d: %s", resp.StatusCode, string(body))
	}

	var response struct {
		TxHash string `json:"tx_hash"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode chain service response: %w", err)
	}
	if response.TxHash == "" {
		return "", fmt.Errorf("chain service returned an empty tx hash")
	}

	return response.TxHash, nil
}
