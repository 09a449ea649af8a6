package convo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// HTTPOutbound pushes replies through the transport's REST send API.
// Messaging providers throttle aggressively, so every send waits on a
// token bucket first.
type HTTPOutbound struct {
	baseURL string
	token   string
	client  *http.Client
	limiter *rate.Limiter
	log     *zap.Logger
}

func NewHTTPOutbound(baseURL, token string, log *zap.Logger) *HTTPOutbound {
	return &HTTPOutbound{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: 10 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(5), 10),
		log:     log.Named("outbound"),
	}
}

func (o *HTTPOutbound) SendText(ctx context.Context, conversationID, text string) error {
	if err := o.limiter.Wait(ctx); err != nil {
		return err
	}

	body, err := json.Marshal(map[string]string{
		"to":   conversationID,
		"text": text,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/messages", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.token)

	resp, err := o.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return errors.New("send api error: " + resp.Status + " body=" + string(respBody))
	}

	o.log.Debug("sent", zap.String("to", conversationID))
	return nil
}
