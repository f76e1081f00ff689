package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// WebhookAction is the "action" field of a Mercado Pago notification.
type WebhookAction string

const (
	WebhookActionPaymentCreated                WebhookAction = "payment.created"
	WebhookActionPaymentUpdated                WebhookAction = "payment.updated"
	WebhookActionApplicationDeauthorized       WebhookAction = "mp-connect.application_deauthorized"
	WebhookActionSubscriptionPreapprovalCreate WebhookAction = "subscription_preapproval.created"
	WebhookActionSubscriptionPreapprovalUpdate WebhookAction = "subscription_preapproval.updated"
)

// FlexibleID accepts both JSON numbers and strings. The processor sends the
// event id as a number and data.id as a string, but not consistently.
type FlexibleID string

func (id *FlexibleID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = FlexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("invalid id %s: %w", string(b), err)
	}
	*id = FlexibleID(n.String())
	return nil
}

func (id FlexibleID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id FlexibleID) String() string { return string(id) }

type WebhookEventData struct {
	ID FlexibleID `json:"id"`
}

// WebhookEvent is an inbound processor notification. Only its identity is
// retained after processing.
type WebhookEvent struct {
	ID          FlexibleID       `json:"id"`
	LiveMode    bool             `json:"live_mode"`
	Type        string           `json:"type"`
	DateCreated string           `json:"date_created,omitempty"`
	UserID      FlexibleID       `json:"user_id,omitempty"`
	APIVersion  string           `json:"api_version,omitempty"`
	Action      WebhookAction    `json:"action"`
	Data        WebhookEventData `json:"data"`
}

// DedupKey is the processed-event marker: "{id}-{action}".
func (e WebhookEvent) DedupKey() string {
	return fmt.Sprintf("%s-%s", e.ID, e.Action)
}

// WebhookNotification is one inbound webhook call: the decoded event plus the
// transport details needed to verify its signature.
type WebhookNotification struct {
	Event     WebhookEvent
	RawBody   []byte
	Signature string
	RequestID string
	// QueryDataID is the "data.id" query parameter, which is what the
	// processor signs.
	QueryDataID string
}

// WebhookResult is what the receiver acknowledges back to the processor.
type WebhookResult struct {
	Key       string `json:"-"`
	Received  bool   `json:"received"`
	Duplicate bool   `json:"-"`
}
