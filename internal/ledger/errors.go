// internal/ledger/errors.go
//
// 本檔集中定義帳戶層 (Account tier) 的領域錯誤。
// 三種錯誤皆為可恢復的本地狀況，回傳前不會改動任何狀態；
// Ledger 層會在邊界將它們轉成文字結果，不再往外拋。

package ledger

import "errors"

var (
	// ErrInvalidArgumentType 代表輸入不是數值（例如 "abc"、空字串）。
	ErrInvalidArgumentType = errors.New("invalid argument type")

	// ErrInvalidArgumentValue 代表數值超出合法範圍（負的初始餘額、<=0 的存提款金額）。
	ErrInvalidArgumentValue = errors.New("invalid argument value")

	// ErrInsufficientFunds 代表提款金額大於目前餘額。
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// opError 將錯誤種類與給人看的訊息綁在一起：
// Error() 回傳訊息本身，Unwrap() 回傳種類，呼叫端以 errors.Is 分支。
type opError struct {
	kind error
	msg  string
}

func (e *opError) Error() string { return e.msg }

func (e *opError) Unwrap() error { return e.kind }

func newError(kind error, msg string) error {
	return &opError{kind: kind, msg: msg}
}
