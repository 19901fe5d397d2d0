// Package sms sends clearance milestone messages through a Twilio-compatible
// SMS gateway.
package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"customs/internal/adapters/out/httpclient"
	"customs/internal/core/domain/model/shipment"
	"customs/internal/core/ports"

	"go.uber.org/zap"
)

// Config holds gateway credentials. BaseURL is the API root, e.g.
// "https://api.twilio.com/2010-04-01".
type Config struct {
	BaseURL    string
	AccountSID string
	AuthToken  string
}

func (c Config) configured() bool {
	return c.BaseURL != "" && c.AccountSID != "" && c.AuthToken != ""
}

// Notifier implements ports.Notifier.
type Notifier struct {
	cfg       Config
	client    *httpclient.Client
	importers ports.ImporterRepository
	logger    *zap.Logger
}

func NewNotifier(cfg Config, client *httpclient.Client, importers ports.ImporterRepository, logger *zap.Logger) *Notifier {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Notifier{
		cfg:       cfg,
		client:    client,
		importers: importers,
		logger:    logger.With(zap.String("component", "sms_notifier")),
	}
}

type messageResponse struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

// Send delivers the message for the given notification type. It returns
// ports.ErrSideEffectSkipped when the gateway is not configured, the importer
// has SMS disabled or the notification type carries no message.
func (n *Notifier) Send(ctx context.Context, pkg shipment.Snapshot, notification shipment.NotificationType) error {
	if notification.IsNone() {
		return fmt.Errorf("%w: nothing to notify", ports.ErrSideEffectSkipped)
	}
	if !n.cfg.configured() {
		return fmt.Errorf("%w: sms gateway is not configured", ports.ErrSideEffectSkipped)
	}

	imp, err := n.importers.Get(ctx, pkg.ImporterID)
	if err != nil {
		return fmt.Errorf("load importer: %w", err)
	}
	if !imp.CanNotify() {
		return fmt.Errorf("%w: sms is disabled for importer %s", ports.ErrSideEffectSkipped, imp.ID())
	}

	phone := pkg.Details.Customer.Phone()
	if phone == "" {
		return fmt.Errorf("%w: package has no phone number", ports.ErrSideEffectSkipped)
	}

	form := url.Values{}
	form.Set("To", phone)
	form.Set("From", imp.SMS().Sender)
	form.Set("Body", MessageFor(pkg, notification))
	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", n.cfg.BaseURL, url.PathEscape(n.cfg.AccountSID))

	resp, err := n.client.Do(ctx, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.SetBasicAuth(n.cfg.AccountSID, n.cfg.AuthToken)
		return req, nil
	})
	if err != nil {
		return fmt.Errorf("send sms: %w", err)
	}
	defer resp.Body.Close()

	var msg messageResponse
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
		// The gateway accepted the message; an unreadable receipt is not a failure.
		n.logger.Warn("unreadable sms receipt", zap.String("package_id", pkg.ID.String()), zap.Error(err))
		return nil
	}

	n.logger.Info("sms sent",
		zap.String("package_id", pkg.ID.String()),
		zap.String("notification", notification.String()),
		zap.String("message_sid", msg.SID),
		zap.String("message_status", msg.Status),
	)
	return nil
}
