// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root                 = "/"
	Home                 = "/home"
	Success              = "/success"
	Failed               = "/failed"
	Pay                  = "/pay"
	Account              = "/account"
	AccountPrefix        = "/account/"
	AccountSignUp        = "/account/signup"
	AccountForgot        = "/account/forgot-password"
	AccountSignOut       = "/account/sign-out"
	AccountProfile       = "/account/profile"
	AccountPayments      = "/account/payments"
	DonatePrefix         = "/donate/"
	DonateQR             = "/donate/qr.png"
	DonateCreatorPattern = DonatePrefix + "{creatorID}"
	StaticPrefix         = "/static/"
)

// Donate returns the public donation page route for a creator.
func Donate(creatorID string) string {
	return DonatePrefix + escapeSegment(creatorID)
}

// DonateQRImage returns the QR image route for a deposit address.
func DonateQRImage(address string) string {
	return DonateQR + "?data=" + url.QueryEscape(strings.TrimSpace(address))
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
