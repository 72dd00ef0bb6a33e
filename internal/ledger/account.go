// internal/ledger/account.go

// Package ledger 定義記憶體內帳本的核心：帳戶 (Account) 與其擁有者 Ledger。
// 本檔負責單一帳戶的餘額規則與只增不減的交易紀錄，不含任何輸入介面或儲存細節。
// 金額一律以 decimal.Decimal 表示，避免浮點誤差。
package ledger

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind 為交易種類。
type Kind string

const (
	KindDeposit    Kind = "Deposit"
	KindWithdrawal Kind = "Withdrawal"
)

// Transaction represents one immutable balance mutation.
// 存款金額為正、提款金額為負，整份紀錄即為帶號現金流。
type Transaction struct {
	Time   time.Time
	Kind   Kind
	Amount decimal.Decimal
}

// Account 持有單一帳戶的餘額與交易紀錄。
// - mu：餘額更新與紀錄追加在同一個臨界區內完成，外部看不到只做了一半的狀態。
// - opening：建立時的初始餘額；balance 恆等於 opening 加上所有 Amount 的總和。
type Account struct {
	mu           sync.Mutex
	id           string
	holderName   string
	accountType  string
	opening      decimal.Decimal
	balance      decimal.Decimal
	createdOn    time.Time
	transactions []Transaction

	now      func() time.Time
	currency string
}

// 金額可接受的位數範圍：整數最多 15 位、小數最多 8 位。
const (
	maxIntegerDigits  = 15
	maxFractionDigits = 8
)

// ParseAmount 將原始文字轉成金額；非數值時回傳 ErrInvalidArgumentType，
// 超出位數範圍（例如 "1e900000000"）時回傳 ErrInvalidArgumentValue。
// field 用於錯誤訊息，例如 "Deposit amount"。
func ParseAmount(field, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, newError(ErrInvalidArgumentType, field+" must be a number.")
	}
	// 只看指數與係數位數，檢查前不做任何需要對齊指數的運算
	exp := int(d.Exponent())
	if exp < -maxFractionDigits || exp > maxIntegerDigits || d.NumDigits()+exp > maxIntegerDigits {
		return decimal.Zero, newError(ErrInvalidArgumentValue, field+" is out of range.")
	}
	return d, nil
}

// NewAccount 建立帳戶：初始餘額不得為負；accountType 為空時使用預設類型。
// 成功時產生新的 uuid、以時鐘蓋上建立日期，交易紀錄為空。
func NewAccount(holderName string, initialBalance decimal.Decimal, accountType string, opts ...Option) (*Account, error) {
	if initialBalance.IsNegative() {
		return nil, newError(ErrInvalidArgumentValue, "Initial balance cannot be negative.")
	}
	o := buildOptions(opts)
	if accountType == "" {
		accountType = o.accountType
	}
	return &Account{
		id:          uuid.NewString(),
		holderName:  holderName,
		accountType: accountType,
		opening:     initialBalance,
		balance:     initialBalance,
		createdOn:   o.now(),
		now:         o.now,
		currency:    o.currency,
	}, nil
}

// ID 回傳帳號（不透明字串）。
func (a *Account) ID() string { return a.id }

// HolderName 回傳持有人名稱。
func (a *Account) HolderName() string { return a.holderName }

// Type 回傳帳戶類型，僅供顯示。
func (a *Account) Type() string { return a.accountType }

// CreatedOn 回傳建立時間；輸出時只取日期。
func (a *Account) CreatedOn() time.Time { return a.createdOn }

// OpeningBalance 回傳建立時的初始餘額。
func (a *Account) OpeningBalance() decimal.Decimal { return a.opening }

// Balance 回傳目前餘額。
func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Transactions 回傳交易紀錄的拷貝，避免外部改寫內部切片。
func (a *Account) Transactions() []Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Transaction, len(a.transactions))
	copy(out, a.transactions)
	return out
}

// Deposit 存款：金額需 > 0。
func (a *Account) Deposit(amount decimal.Decimal) (string, error) {
	if !amount.IsPositive() {
		return "", newError(ErrInvalidArgumentValue, "Deposit amount must be positive.")
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.apply(KindDeposit, amount)
	return fmt.Sprintf("Deposited %s 💰. New balance: %s", a.money(amount), a.money(a.balance)), nil
}

// Withdraw 提款：金額需 > 0 且不得超過餘額；剛好等於餘額是合法的。
func (a *Account) Withdraw(amount decimal.Decimal) (string, error) {
	if !amount.IsPositive() {
		return "", newError(ErrInvalidArgumentValue, "Withdrawal amount must be positive.")
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if amount.GreaterThan(a.balance) {
		return "", newError(ErrInsufficientFunds, "Insufficient funds.")
	}
	a.apply(KindWithdrawal, amount.Neg())
	return fmt.Sprintf("Withdrew %s 💸. New balance: %s", a.money(amount), a.money(a.balance)), nil
}

// apply 必須在持有 mu 時呼叫；signed 已帶正負號。
func (a *Account) apply(kind Kind, signed decimal.Decimal) {
	a.balance = a.balance.Add(signed)
	a.transactions = append(a.transactions, Transaction{Time: a.now(), Kind: kind, Amount: signed})
}

// FormatBalance 回傳兩位小數的目前餘額。
func (a *Account) FormatBalance() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return fmt.Sprintf("Current balance: %s ⚖️", a.money(a.balance))
}

// Details 依固定順序輸出帳號、持有人、類型、餘額與建立日期。
func (a *Account) Details() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	var sb strings.Builder
	fmt.Fprintf(&sb, "Account Number: %s\n", a.id)
	fmt.Fprintf(&sb, "Account Holder: %s\n", a.holderName)
	fmt.Fprintf(&sb, "Account Type: %s\n", a.accountType)
	fmt.Fprintf(&sb, "Balance: %s\n", a.money(a.balance))
	fmt.Fprintf(&sb, "Creation Date: %s\n", a.createdOn.Format(dateLayout))
	return sb.String()
}

// History 依追加順序列出所有交易；沒有交易時回傳獨立的提示訊息。
func (a *Account) History() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.transactions) == 0 {
		return "No transactions yet."
	}
	var sb strings.Builder
	sb.WriteString(banner("Transaction History 📜:"))
	for _, t := range a.transactions {
		fmt.Fprintf(&sb, "%s - %-10s: %s%8s\n",
			t.Time.Format(timestampLayout), t.Kind, a.currency, signedFixed(t.Amount))
	}
	sb.WriteString(rule)
	return sb.String()
}

func (a *Account) money(d decimal.Decimal) string {
	return a.currency + d.StringFixed(2)
}
