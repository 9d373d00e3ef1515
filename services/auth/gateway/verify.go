package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/freshcart/freshcart/internal/pkg/logger"
	"github.com/freshcart/freshcart/internal/pkg/models"
	"github.com/freshcart/freshcart/services/auth"
)

const (
	channelSMS  = "sms"
	channelCall = "call"

	// provider code meaning SMS is unavailable for the destination
	codeSMSChannelUnavailable = 60410
)

// fixed provider code tables for user-facing messages
var sendErrorTable = map[int]*auth.VerifyError{
	20003: {ProviderCode: 20003, Message: "Verification service authentication failed", Status: http.StatusInternalServerError},
	60200: {ProviderCode: 60200, Message: "Invalid phone number format", Status: http.StatusBadRequest},
	20404: {ProviderCode: 20404, Message: "Verification service not found", Status: http.StatusBadRequest},
	20429: {ProviderCode: 20429, Message: "Too many requests, please try again later", Status: http.StatusTooManyRequests},
	60203: {ProviderCode: 60203, Message: "Maximum send attempts reached, please wait before retrying", Status: http.StatusTooManyRequests},
}

var checkErrorTable = map[int]*auth.VerifyError{
	20003: {ProviderCode: 20003, Message: "Verification service authentication failed", Status: http.StatusInternalServerError},
	60200: {ProviderCode: 60200, Message: "Invalid phone number format", Status: http.StatusBadRequest},
	20404: {ProviderCode: 20404, Message: "Verification service not found", Status: http.StatusBadRequest},
	60202: {ProviderCode: 60202, Message: "Verification not found or expired, request a new code", Status: http.StatusBadRequest},
	60203: {ProviderCode: 60203, Message: "Invalid or expired code", Status: http.StatusBadRequest},
}

// VerifyClient calls the Twilio Verify v2 REST API
type VerifyClient struct {
	cfg    models.TwilioConfig
	client *http.Client
}

// NewVerifyClient creates a verification provider gateway
func NewVerifyClient(cfg models.TwilioConfig) *VerifyClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &VerifyClient{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

type verificationResponse struct {
	SID     string `json:"sid"`
	Status  string `json:"status"`
	Channel string `json:"channel"`
}

type providerErrorBody struct {
	Code     int    `json:"code"`
	Message  string `json:"message"`
	MoreInfo string `json:"more_info"`
}

// StartVerification asks the provider to deliver an OTP. SMS first; on the
// SMS-unavailable code exactly one voice-call fallback is attempted.
func (g *VerifyClient) StartVerification(ctx context.Context, phone string) (*models.SendCodeResponse, error) {
	resp, err := g.sendOnChannel(ctx, phone, channelSMS)
	if err == nil {
		return resp, nil
	}

	var verr *auth.VerifyError
	if errors.As(err, &verr) && verr.ProviderCode == codeSMSChannelUnavailable {
		logger.Warn("SMS channel unavailable, falling back to voice call",
			logger.String("phone", phone))

		resp, callErr := g.sendOnChannel(ctx, phone, channelCall)
		if callErr == nil {
			return resp, nil
		}

		return nil, &auth.VerifyError{
			ProviderCode: codeSMSChannelUnavailable,
			Message:      "Verification is unavailable for this phone number",
			Details:      "both sms and call channels failed",
			Status:       http.StatusForbidden,
		}
	}

	return nil, err
}

func (g *VerifyClient) sendOnChannel(ctx context.Context, phone, channel string) (*models.SendCodeResponse, error) {
	form := url.Values{}
	form.Set("To", phone)
	form.Set("Channel", channel)

	path := fmt.Sprintf("/v2/Services/%s/Verifications", g.cfg.VerifyServiceSID)
	body, err := g.post(ctx, path, form, sendErrorTable)
	if err != nil {
		return nil, err
	}

	return &models.SendCodeResponse{
		Channel:    body.Channel,
		ServiceSID: g.cfg.VerifyServiceSID,
	}, nil
}

// CheckVerification submits a code against a previously started challenge.
// The caller-provided service reference wins over the configured one.
func (g *VerifyClient) CheckVerification(ctx context.Context, phone, code, serviceSID string) (bool, error) {
	if serviceSID == "" {
		serviceSID = g.cfg.VerifyServiceSID
	}

	form := url.Values{}
	form.Set("To", phone)
	form.Set("Code", code)

	path := fmt.Sprintf("/v2/Services/%s/VerificationCheck", serviceSID)
	body, err := g.post(ctx, path, form, checkErrorTable)
	if err != nil {
		return false, err
	}

	return body.Status == "approved", nil
}

func (g *VerifyClient) post(ctx context.Context, path string, form url.Values, table map[int]*auth.VerifyError) (*verificationResponse, error) {
	baseURL := g.cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://verify.twilio.com"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create verify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(g.cfg.AccountSID, g.cfg.AuthToken)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("verify request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		var perr providerErrorBody
		if err := json.NewDecoder(resp.Body).Decode(&perr); err != nil {
			return nil, &auth.VerifyError{
				Message: "Verification service returned an unreadable error",
				Details: fmt.Sprintf("http status %d", resp.StatusCode),
				Status:  http.StatusInternalServerError,
			}
		}
		return nil, mapProviderError(&perr, table)
	}

	var body verificationResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode verify response: %w", err)
	}

	return &body, nil
}

func mapProviderError(perr *providerErrorBody, table map[int]*auth.VerifyError) error {
	if mapped, ok := table[perr.Code]; ok {
		return &auth.VerifyError{
			ProviderCode: mapped.ProviderCode,
			Message:      mapped.Message,
			Details:      perr.Message,
			Status:       mapped.Status,
		}
	}

	// the SMS-unavailable code is not user-facing, StartVerification
	// intercepts it before it can escape
	if perr.Code == codeSMSChannelUnavailable {
		return &auth.VerifyError{
			ProviderCode: perr.Code,
			Message:      "SMS delivery unavailable for this phone number",
			Details:      perr.Message,
			Status:       http.StatusForbidden,
		}
	}

	return &auth.VerifyError{
		ProviderCode: perr.Code,
		Message:      "Verification service error",
		Details:      perr.Message,
		Status:       http.StatusInternalServerError,
	}
}
