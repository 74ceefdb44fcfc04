package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-expense-manager/internal/logger"
)

const defaultFast2SMSBaseURL = "https://www.fast2sms.com"

// Fast2SMSFacade sends OTP text messages through Fast2SMS.
type Fast2SMSFacade struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewFast2SMSFacade creates the facade. An empty baseURL uses the public API.
func NewFast2SMSFacade(baseURL, apiKey string) *Fast2SMSFacade {
	if baseURL == "" {
		baseURL = defaultFast2SMSBaseURL
	}
	return &Fast2SMSFacade{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

type fast2smsRequest struct {
	Route           string `json:"route"`
	VariablesValues string `json:"variables_values"`
	Numbers         string `json:"numbers"`
}

type fast2smsResponse struct {
	Return  bool `json:"return"`
	Message any  `json:"message"`
}

// SendOTP texts code to phone using the OTP route.
func (f *Fast2SMSFacade) SendOTP(ctx context.Context, phone, code string) error {
	body, err := json.Marshal(fast2smsRequest{Route: "otp", VariablesValues: code, Numbers: phone})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+"/dev/bulkV2", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("authorization", f.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("fast2sms request failed", "phone", phone, "error", err)
		return err
	}
	defer resp.Body.Close()

	var out fast2smsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		logger.Log.Errorw("fast2sms response unreadable", "phone", phone, "status", resp.StatusCode, "error", err)
		return fmt.Errorf("fast2sms: %w", err)
	}
	if resp.StatusCode != http.StatusOK || !out.Return {
		logger.Log.Errorw("fast2sms rejected sms", "phone", phone, "status", resp.StatusCode, "message", out.Message)
		return fmt.Errorf("fast2sms: sms rejected with status %d", resp.StatusCode)
	}

	logger.Log.Infow("sms sent", "phone", phone)
	return nil
}
