package dispatch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// Gateway submits a generated slip PDF for a booking to an external
// messaging service. Implementations report plain success/failure; callers
// surface failures as a one-line message and never crash on them.
type Gateway interface {
	SendSlip(ctx context.Context, bookingNo string, pdf []byte) error
}

// WhatsAppGateway posts the slip to a WhatsApp message gateway as a
// multipart document upload.
type WhatsAppGateway struct {
	URL    string
	Token  string
	Client *http.Client
}

func NewWhatsAppGateway(url, token string) *WhatsAppGateway {
	return &WhatsAppGateway{
		URL:    url,
		Token:  token,
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (g *WhatsAppGateway) SendSlip(ctx context.Context, bookingNo string, pdf []byte) error {
	if g.URL == "" {
		return fmt.Errorf("message gateway not configured")
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	if err := mw.WriteField("booking_no", bookingNo); err != nil {
		return err
	}
	part, err := mw.CreateFormFile("document", "slip.pdf")
	if err != nil {
		return err
	}
	if _, err := part.Write(pdf); err != nil {
		return err
	}
	if err := mw.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.URL, &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if g.Token != "" {
		req.Header.Set("Authorization", "Bearer "+g.Token)
	}

	resp, err := g.Client.Do(req)
	if err != nil {
		return fmt.Errorf("gateway unreachable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("gateway rejected slip for %s: %s", bookingNo, strings.TrimSpace(string(msg)))
	}
	return nil
}
