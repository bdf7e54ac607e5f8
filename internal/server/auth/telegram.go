// Package auth validates Telegram WebApp init data.
//
// The payload is a URL query string signed by Telegram with a key derived
// from the bot token:
//
//	secret = HMAC_SHA256(key="WebAppData", msg=botToken)
//	hash   = hex(HMAC_SHA256(key=secret, msg=dataCheckString))
//
// where dataCheckString is every "key=value" pair except hash, sorted by key
// and joined with '\n'.
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidInitData = errors.New("invalid init data")
	ErrExpiredInitData = errors.New("init data expired")
)

// TelegramUser is the "user" field of the init data.
type TelegramUser struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	PhotoURL  string `json:"photo_url"`
}

// IDString returns the Telegram id in decimal.
func (u *TelegramUser) IDString() string {
	return strconv.FormatInt(u.ID, 10)
}

type Validator struct {
	secret []byte
	maxAge time.Duration
	now    func() time.Time
}

// NewValidator returns a Validator for botToken. A positive maxAge rejects
// payloads whose auth_date is older than that.
func NewValidator(botToken string, maxAge time.Duration) *Validator {
	return &Validator{secret: secretKey(botToken), maxAge: maxAge, now: time.Now}
}

func secretKey(botToken string) []byte {
	mac := hmac.New(sha256.New, []byte("WebAppData"))
	mac.Write([]byte(botToken))
	return mac.Sum(nil)
}

func dataCheckString(values url.Values) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		if k != "hash" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + values.Get(k)
	}
	return strings.Join(pairs, "\n")
}

func sign(secret []byte, values url.Values) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(dataCheckString(values)))
	return hex.EncodeToString(mac.Sum(nil))
}

// Validate checks the signature of initData and returns its user.
func (v *Validator) Validate(initData string) (*TelegramUser, error) {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInitData, err)
	}

	got := values.Get("hash")
	if got == "" {
		return nil, fmt.Errorf("%w: missing hash", ErrInvalidInitData)
	}
	want := sign(v.secret, values)
	if !hmac.Equal([]byte(got), []byte(want)) {
		return nil, fmt.Errorf("%w: hash mismatch", ErrInvalidInitData)
	}

	if v.maxAge > 0 {
		ts, err := strconv.ParseInt(values.Get("auth_date"), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad auth_date", ErrInvalidInitData)
		}
		if v.now().Sub(time.Unix(ts, 0)) > v.maxAge {
			return nil, ErrExpiredInitData
		}
	}

	raw := values.Get("user")
	if raw == "" {
		return nil, fmt.Errorf("%w: missing user", ErrInvalidInitData)
	}
	var u TelegramUser
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, fmt.Errorf("%w: bad user: %v", ErrInvalidInitData, err)
	}
	if u.ID == 0 {
		return nil, fmt.Errorf("%w: missing user id", ErrInvalidInitData)
	}
	return &u, nil
}

// Sign returns values encoded as init data signed for botToken. It is the
// inverse of Validate and serves local tooling and tests.
func Sign(botToken string, values url.Values) string {
	signed := url.Values{}
	for k, vs := range values {
		if k != "hash" {
			signed[k] = vs
		}
	}
	signed.Set("hash", sign(secretKey(botToken), signed))
	return signed.Encode()
}
