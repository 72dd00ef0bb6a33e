// internal/ledger/ledger.go

package ledger

import (
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

// notFound 為委派操作找不到帳戶時的結果文字。
const notFound = "Account not found."

// Ledger 為帳戶登記表：擁有全部帳戶並以帳號為 key。
// - mu：序列化 map 的新增、刪除與走訪。
// - order：依建立順序保存帳號，列表時以此順序輸出。
// 所有餘額邏輯委派給 Account；本層是對外邊界，從不回傳 error，失敗一律轉為文字結果。
type Ledger struct {
	mu    sync.RWMutex
	accts map[string]*Account
	order []string
	opts  []Option
}

// New 建立空白帳本；opts 會一併套用到之後建立的每個帳戶。
func New(opts ...Option) *Ledger {
	return &Ledger{
		accts: make(map[string]*Account),
		opts:  opts,
	}
}

// CreateAccount 解析初始餘額並建立帳戶；失敗時回傳包含錯誤訊息的文字。
func (l *Ledger) CreateAccount(holderName, initialBalance, accountType string) string {
	a, err := l.open(holderName, initialBalance, accountType)
	if err != nil {
		return "Account creation failed: " + err.Error()
	}
	return "Account created successfully 🏦. Account number: " + a.ID()
}

func (l *Ledger) open(holderName, initialBalance, accountType string) (*Account, error) {
	bal, err := ParseAmount("Initial balance", initialBalance)
	if err != nil {
		return nil, err
	}
	a, err := NewAccount(holderName, bal, accountType, l.opts...)
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.accts[a.ID()] = a
	l.order = append(l.order, a.ID())
	return a, nil
}

// GetAccount 依帳號取得帳戶；不存在時 ok 為 false（此層不視為錯誤）。
func (l *Ledger) GetAccount(id string) (*Account, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	a, ok := l.accts[id]
	return a, ok
}

// DeleteAccount 無條件移除帳戶；餘額不為零也允許。
func (l *Ledger) DeleteAccount(id string) string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.accts[id]; !ok {
		return fmt.Sprintf("Account %s not found.", id)
	}
	delete(l.accts, id)
	for i, v := range l.order {
		if v == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	return fmt.Sprintf("Account %s deleted successfully 🗑️.", id)
}

// ListAllAccounts 依建立順序串接每個帳戶的 Details，並以分隔線隔開。
func (l *Ledger) ListAllAccounts() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if len(l.order) == 0 {
		return "No accounts in the system."
	}
	var sb strings.Builder
	sb.WriteString(banner("List of All Accounts 🧾:"))
	for _, id := range l.order {
		sb.WriteString(l.accts[id].Details())
		sb.WriteString(rule + "\n")
	}
	return sb.String()
}

// Len 回傳目前帳戶數量。
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.accts)
}

// Deposit 解析金額後委派給帳戶；任何錯誤都轉為文字。
func (l *Ledger) Deposit(id, amount string) string {
	return l.mutate(id, "Deposit amount", amount, (*Account).Deposit)
}

// Withdraw 解析金額後委派給帳戶；任何錯誤都轉為文字。
func (l *Ledger) Withdraw(id, amount string) string {
	return l.mutate(id, "Withdrawal amount", amount, (*Account).Withdraw)
}

func (l *Ledger) mutate(id, field, raw string, op func(*Account, decimal.Decimal) (string, error)) string {
	a, ok := l.GetAccount(id)
	if !ok {
		return notFound
	}
	amt, err := ParseAmount(field, raw)
	if err != nil {
		return err.Error()
	}
	msg, err := op(a, amt)
	if err != nil {
		return err.Error()
	}
	return msg
}

// Balance 回傳帳戶的格式化餘額。
func (l *Ledger) Balance(id string) string {
	return l.read(id, (*Account).FormatBalance)
}

// Details 回傳帳戶明細。
func (l *Ledger) Details(id string) string {
	return l.read(id, (*Account).Details)
}

// History 回傳帳戶交易紀錄。
func (l *Ledger) History(id string) string {
	return l.read(id, (*Account).History)
}

func (l *Ledger) read(id string, view func(*Account) string) string {
	a, ok := l.GetAccount(id)
	if !ok {
		return notFound
	}
	return view(a)
}
