package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/yeremiapane/restofood-client/models"
	"github.com/yeremiapane/restofood-client/utils"
)

// Client membungkus seluruh panggilan HTTP keluar: base URL bersama, header
// Authorization dari token sesi, dan klasifikasi kegagalan tiga arah
// (ErrAuthExpired / ServerError / TransportError). Tidak ada retry dan tidak
// ada timeout tambahan di atas default transport.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// Do mengirim satu request JSON dan men-decode respons sukses ke out (boleh
// nil jika payload tidak dibutuhkan). Token kosong berarti request anonim.
func (c *Client) Do(ctx context.Context, method, path string, body, out any, token string) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return &TransportError{Err: err}
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &TransportError{Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		utils.ErrorLogger.Printf("%s %s: %v", method, path, err)
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: err}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		utils.InfoLogger.Printf("%s %s: auth rejected", method, path)
		return ErrAuthExpired
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody models.ErrorBody
		if json.Unmarshal(raw, &errBody) == nil && errBody.Text() != "" {
			return &ServerError{StatusCode: resp.StatusCode, Message: errBody.Text()}
		}
		return &TransportError{Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	return decodeBody(raw, out)
}

// decodeBody menerima payload telanjang maupun yang dibungkus envelope
// {status, message, data}; kalau ada field data, itu yang dipakai.
func decodeBody(raw []byte, out any) error {
	var env models.Envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err == nil {
			return nil
		}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &TransportError{Err: err}
	}
	return nil
}
