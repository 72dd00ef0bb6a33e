package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02 15:04:05"
)

// rule 為列表與交易紀錄共用的分隔線（30 個 '-'）。
var rule = strings.Repeat("-", 30)

// banner 產生「分隔線 / 標題 / 分隔線」區塊，每行以換行結尾。
func banner(title string) string {
	return rule + "\n" + title + "\n" + rule + "\n"
}

// signedFixed 以兩位小數輸出並帶正負號，例如 "+50.00"、"-150.00"。
// 正負號依四捨五入後的值決定，因此 0.004 與 -0.004 都輸出 "0.00"。
func signedFixed(d decimal.Decimal) string {
	r := d.Round(2)
	s := r.StringFixed(2)
	if r.IsPositive() {
		return "+" + s
	}
	return s
}
