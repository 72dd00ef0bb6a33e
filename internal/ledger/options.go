package ledger

import "time"

const (
	defaultCurrency    = "$"
	defaultAccountType = "Savings"
)

type options struct {
	now         func() time.Time
	currency    string
	accountType string
}

// Option 調整 Account 與 Ledger 的外部協作者（時鐘、幣別符號、預設帳戶類型）。
type Option func(*options)

// WithClock 注入時鐘；測試時用固定時間取得可重現的輸出。
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithCurrency 設定金額前綴符號，預設為 "$"。
func WithCurrency(symbol string) Option {
	return func(o *options) { o.currency = symbol }
}

// WithDefaultAccountType 設定未指定類型時使用的帳戶類型，預設為 "Savings"。
func WithDefaultAccountType(accountType string) Option {
	return func(o *options) {
		if accountType != "" {
			o.accountType = accountType
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now, currency: defaultCurrency, accountType: defaultAccountType}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
