package shopify

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// Signature computes the base64 HMAC-SHA256 digest Shopify sends in the
// X-Shopify-Hmac-Sha256 header for the given raw body.
func Signature(body, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// VerifyWebhook checks a header-supplied signature against the raw request
// body. The body must be the exact wire bytes; re-serializing a parsed body
// breaks the signature whenever key order or whitespace differs.
func VerifyWebhook(body []byte, headerSig string, secret []byte) bool {
	if headerSig == "" || len(secret) == 0 {
		return false
	}
	want := Signature(body, secret)
	return hmac.Equal([]byte(want), []byte(headerSig))
}
