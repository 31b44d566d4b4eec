package payments

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"unicode"
)

// VerifyWebhookSignature checks a Mercado Pago webhook delivery against the
// shared secret, per the gateway's signed-notification scheme.
//
// The x-signature header carries comma-separated key=value pairs and must
// include ts and v1 (the received HMAC). The signed manifest is built from
// the pieces that are present, each segment ending in ';':
//
//	id:{data.id};request-id:{x-request-id};ts:{ts};
//
// data.id is lower-cased when it contains letters (gateway convention for
// alphanumeric ids); absent pieces are skipped entirely, not replaced by
// empty placeholders. The expected HMAC-SHA256 of the manifest is compared
// against v1 in constant time. Any missing piece fails closed.
func VerifyWebhookSignature(signatureHeader, requestID string, body []byte, secret string) bool {
	if signatureHeader == "" {
		return false
	}

	parts := parseSignatureHeader(signatureHeader)
	ts := parts["ts"]
	receivedHash := parts["v1"]
	if ts == "" || receivedHash == "" {
		return false
	}

	manifest := buildManifest(extractDataID(body), requestID, ts)
	if manifest == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(manifest))
	expected := mac.Sum(nil)

	received, err := hex.DecodeString(receivedHash)
	if err != nil {
		return false
	}
	return hmac.Equal(received, expected)
}

func parseSignatureHeader(header string) map[string]string {
	parts := make(map[string]string)
	for _, pair := range strings.Split(header, ",") {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			continue
		}
		parts[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return parts
}

func buildManifest(dataID, requestID, ts string) string {
	var manifest strings.Builder
	if dataID != "" {
		manifest.WriteString("id:" + dataID + ";")
	}
	if requestID != "" {
		manifest.WriteString("request-id:" + requestID + ";")
	}
	if ts != "" {
		manifest.WriteString("ts:" + ts + ";")
	}
	return manifest.String()
}

// extractDataID pulls data.id out of the notification body. The id may be
// a JSON string or number; ids containing letters are lower-cased before
// signing.
func extractDataID(body []byte) string {
	var probe struct {
		Data struct {
			ID any `json:"id"`
		} `json:"data"`
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&probe); err != nil {
		return ""
	}

	var dataID string
	switch v := probe.Data.ID.(type) {
	case string:
		dataID = v
	case json.Number:
		dataID = v.String()
	default:
		return ""
	}

	if containsAlpha(dataID) {
		dataID = strings.ToLower(dataID)
	}
	return dataID
}

func containsAlpha(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
