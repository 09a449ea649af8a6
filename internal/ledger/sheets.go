package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"
)

// SheetLedger talks to a spreadsheet webhook (an Apps Script style
// endpoint): POST appends one row, GET lists the phone column. The sheet
// is schema-less, so AppendRow sends values in the fixed Row order.
type SheetLedger struct {
	url    string
	client *http.Client
}

func NewSheetLedger(url string) *SheetLedger {
	return &SheetLedger{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (l *SheetLedger) AppendRow(ctx context.Context, row Row) error {
	body, err := json.Marshal(map[string]any{
		"values": []string{
			row.Name, row.City, row.Address, row.Phone,
			row.Product, row.Price, row.Timestamp,
		},
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return errors.New("sheet webhook error: " + resp.Status + " body=" + string(respBody))
	}
	return nil
}

func (l *SheetLedger) ListPhones(ctx context.Context) (map[string]struct{}, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url+"?field=phone", nil)
	if err != nil {
		return nil, err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, errors.New("sheet webhook error: " + resp.Status + " body=" + string(respBody))
	}

	var payload struct {
		Phones []string `json:"phones"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	out := make(map[string]struct{}, len(payload.Phones))
	for _, p := range payload.Phones {
		out[p] = struct{}{}
	}
	return out, nil
}
