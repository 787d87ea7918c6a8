package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"parcel-ledger/internal/core/config"
	"parcel-ledger/internal/core/httpclient"
	"parcel-ledger/internal/core/logger"
	"parcel-ledger/internal/core/proxy"
	"parcel-ledger/internal/features/enrichment/domain"

	"go.uber.org/zap"
)

const (
	trackPath   = "/trackBookedPacket/format/json/"
	paymentPath = "/getPaymentDetails/format/json/"
)

// LeopardAdapter implements ports.TrackingProvider and ports.PaymentProvider
// against the Leopards Courier merchant API.
type LeopardAdapter struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// config holds the API base URL and credentials.
	config config.LeopardConfig
	logger *zap.Logger
}

// NewLeopardAdapter creates a new instance of LeopardAdapter.
func NewLeopardAdapter(cfg config.LeopardConfig, proxySettings proxy.Settings) *LeopardAdapter {
	return &LeopardAdapter{
		client: httpclient.NewClient(cfg.Timeout, proxySettings),
		config: cfg,
		logger: logger.Named("leopard"),
	}
}

// apiStatus accepts the status flag as a number or a quoted number.
type apiStatus int

func (s *apiStatus) UnmarshalJSON(b []byte) error {
	*s = 0
	if strings.Trim(string(bytes.TrimSpace(b)), `"`) == "1" {
		*s = 1
	}
	return nil
}

// trackResponse represents the JSON returned by trackBookedPacket.
type trackResponse struct {
	Status     apiStatus `json:"status"`
	Error      any       `json:"error"`
	PacketList []struct {
		BookedPacketStatus string `json:"booked_packet_status"`
		BookingDate        string `json:"booking_date"`
		TrackingDetail     []struct {
			Status string `json:"Status"`
		} `json:"Tracking Detail"`
	} `json:"packet_list"`
}

// paymentResponse represents the JSON returned by getPaymentDetails.
type paymentResponse struct {
	Status      apiStatus `json:"status"`
	Error       any       `json:"error"`
	PaymentList []struct {
		BookedPacketCN    string  `json:"booked_packet_cn"`
		Status            *string `json:"status"`
		InvoiceChequeDate string  `json:"invoice_cheque_date"`
	} `json:"payment_list"`
}

// TrackOne returns the latest status, checkpoint and booking date of a parcel.
// An unknown parcel yields an empty result.
func (a *LeopardAdapter) TrackOne(ctx context.Context, trackingID string) (domain.TrackingResult, error) {
	var resp trackResponse
	if err := a.get(ctx, trackPath, "track_numbers", trackingID, &resp); err != nil {
		return domain.TrackingResult{}, err
	}

	if resp.Status != 1 || len(resp.PacketList) == 0 {
		a.logger.Debug("No tracking data",
			zap.String("tracking_id", trackingID),
			zap.Any("error", resp.Error),
		)
		return domain.TrackingResult{}, nil
	}

	packet := resp.PacketList[0]
	result := domain.TrackingResult{
		Status:      strings.TrimSpace(packet.BookedPacketStatus),
		BookingDate: strings.TrimSpace(packet.BookingDate),
	}
	if n := len(packet.TrackingDetail); n > 0 {
		result.Checkpoint = strings.TrimSpace(packet.TrackingDetail[n-1].Status)
	}
	return result, nil
}

// TrackBatch returns payment records for the comma-separated ids.
func (a *LeopardAdapter) TrackBatch(ctx context.Context, trackingIDs string) (map[string]domain.PaymentResult, error) {
	var resp paymentResponse
	if err := a.get(ctx, paymentPath, "cn_numbers", trackingIDs, &resp); err != nil {
		return nil, err
	}

	results := make(map[string]domain.PaymentResult, len(resp.PaymentList))
	if resp.Status != 1 {
		a.logger.Debug("No payment data", zap.Any("error", resp.Error))
		return results, nil
	}

	for _, p := range resp.PaymentList {
		id := strings.TrimSpace(p.BookedPacketCN)
		if id == "" {
			continue
		}
		results[id] = domain.PaymentResult{
			Status: p.Status,
			Date:   strings.TrimSpace(p.InvoiceChequeDate),
		}
	}
	return results, nil
}

func (a *LeopardAdapter) get(ctx context.Context, path, idParam, ids string, out any) error {
	endpoint, err := url.Parse(strings.TrimRight(a.config.BaseURL, "/") + path)
	if err != nil {
		return fmt.Errorf("invalid leopard base url: %w", err)
	}
	q := endpoint.Query()
	q.Set("api_key", a.config.APIKey)
	q.Set("api_password", a.config.APIPassword)
	q.Set(idParam, ids)
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("leopard API returned status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
