package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"

	"nexuspay/internal/domain/entities"
	"nexuspay/internal/usecase/interfaces"
)

var (
	ErrMalformedSignature = errors.New("malformed x-signature header")
	ErrSignatureMismatch  = errors.New("signature mismatch")
)

// MercadoPagoSignatureVerifier checks the x-signature header Mercado Pago
// sends with every notification:
//
//	x-signature: ts=1704908010,v1=618c85345248dd820d5fd456117c2ab2ef8eda45a0282ff693eac24131a5e839
//
// v1 is hex(HMAC-SHA256(secret, "id:<data.id>;request-id:<x-request-id>;ts:<ts>;")).
type MercadoPagoSignatureVerifier struct {
	secret []byte
}

var _ interfaces.ISignatureVerifier = (*MercadoPagoSignatureVerifier)(nil)

func NewMercadoPagoSignatureVerifier(secret string) *MercadoPagoSignatureVerifier {
	return &MercadoPagoSignatureVerifier{secret: []byte(secret)}
}

func (v *MercadoPagoSignatureVerifier) Verify(n entities.WebhookNotification) error {
	ts, sig, err := parseSignatureHeader(n.Signature)
	if err != nil {
		return err
	}
	got, err := hex.DecodeString(sig)
	if err != nil {
		return ErrMalformedSignature
	}

	dataID := strings.TrimSpace(n.QueryDataID)
	if dataID == "" {
		dataID = n.Event.Data.ID.String()
	}
	manifest := SignatureManifest(dataID, n.RequestID, ts)

	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(manifest))
	if !hmac.Equal(mac.Sum(nil), got) {
		return ErrSignatureMismatch
	}
	return nil
}

// Sign returns the v1 value for a manifest. Used by tooling that replays
// notifications against a local receiver.
func (v *MercadoPagoSignatureVerifier) Sign(dataID, requestID, ts string) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(SignatureManifest(dataID, requestID, ts)))
	return hex.EncodeToString(mac.Sum(nil))
}

// SignatureManifest builds the signed template. Parts without a value are left
// out, and alphanumeric data ids are lower-cased.
func SignatureManifest(dataID, requestID, ts string) string {
	var b strings.Builder
	if dataID = strings.TrimSpace(dataID); dataID != "" {
		b.WriteString("id:" + strings.ToLower(dataID) + ";")
	}
	if requestID = strings.TrimSpace(requestID); requestID != "" {
		b.WriteString("request-id:" + requestID + ";")
	}
	if ts = strings.TrimSpace(ts); ts != "" {
		b.WriteString("ts:" + ts + ";")
	}
	return b.String()
}

func parseSignatureHeader(h string) (ts, v1 string, err error) {
	for _, part := range strings.Split(h, ",") {
		k, val, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch strings.TrimSpace(k) {
		case "ts":
			ts = strings.TrimSpace(val)
		case "v1":
			v1 = strings.TrimSpace(val)
		}
	}
	if ts == "" || v1 == "" {
		return "", "", ErrMalformedSignature
	}
	return ts, v1, nil
}
