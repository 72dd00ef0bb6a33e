// internal/ledger/account_test.go
//
// 單一帳戶的單元測試：建構、存提款、錯誤種類、餘額與紀錄的一致性，以及文字輸出格式。
// 以固定時鐘注入時間，確保時間戳可重現。

package ledger

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// stepClock 回傳從 start 開始、每呼叫一次前進一秒的時鐘。
func stepClock(start time.Time) func() time.Time {
	cur := start
	return func() time.Time {
		t := cur
		cur = cur.Add(time.Second)
		return t
	}
}

var t0 = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newTestAccount(t *testing.T, initial string) *Account {
	t.Helper()
	a, err := NewAccount("Alice", dec(initial), "Savings", WithClock(stepClock(t0)))
	if err != nil {
		t.Fatalf("NewAccount err=%v", err)
	}
	return a
}

// checkInvariant 驗證 balance == opening + Σ Amount。
func checkInvariant(t *testing.T, a *Account) {
	t.Helper()
	sum := a.OpeningBalance()
	for _, tx := range a.Transactions() {
		sum = sum.Add(tx.Amount)
	}
	if !sum.Equal(a.Balance()) {
		t.Fatalf("balance=%s but opening+log=%s", a.Balance(), sum)
	}
	if a.Balance().IsNegative() {
		t.Fatalf("negative balance %s", a.Balance())
	}
}

func TestNewAccount(t *testing.T) {
	a := newTestAccount(t, "100")
	if !a.Balance().Equal(dec("100")) {
		t.Fatalf("balance=%s want=100", a.Balance())
	}
	if len(a.Transactions()) != 0 {
		t.Fatalf("new account should have empty log")
	}
	if a.ID() == "" || a.HolderName() != "Alice" || a.Type() != "Savings" {
		t.Fatalf("unexpected account fields: id=%q name=%q type=%q", a.ID(), a.HolderName(), a.Type())
	}
	if !a.CreatedOn().Equal(t0) {
		t.Fatalf("createdOn=%v want=%v", a.CreatedOn(), t0)
	}
}

func TestNewAccountDefaultsType(t *testing.T) {
	a, err := NewAccount("Bob", decimal.Zero, "")
	if err != nil {
		t.Fatal(err)
	}
	if a.Type() != "Savings" {
		t.Fatalf("type=%q want Savings", a.Type())
	}
	b, _ := NewAccount("Bob", decimal.Zero, "", WithDefaultAccountType("Checking"))
	if b.Type() != "Checking" {
		t.Fatalf("type=%q want Checking", b.Type())
	}
}

func TestNewAccountNegativeBalance(t *testing.T) {
	_, err := NewAccount("A", dec("-0.01"), "Savings")
	if !errors.Is(err, ErrInvalidArgumentValue) {
		t.Fatalf("want ErrInvalidArgumentValue, got %v", err)
	}
	if err.Error() != "Initial balance cannot be negative." {
		t.Fatalf("msg=%q", err.Error())
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		kind error
		msg  string
	}{
		{"50", "50", nil, ""},
		{" 12.345 ", "12.345", nil, ""},
		{"-3", "-3", nil, ""},
		{"999999999999999.99999999", "999999999999999.99999999", nil, ""},
		{"1e3", "1000", nil, ""},
		{"", "", ErrInvalidArgumentType, "Deposit amount must be a number."},
		{"abc", "", ErrInvalidArgumentType, "Deposit amount must be a number."},
		{"1,000", "", ErrInvalidArgumentType, "Deposit amount must be a number."},
		// 極端指數與超出位數
		{"1e900000000", "", ErrInvalidArgumentValue, "Deposit amount is out of range."},
		{"1e-900000000", "", ErrInvalidArgumentValue, "Deposit amount is out of range."},
		{"1000000000000000", "", ErrInvalidArgumentValue, "Deposit amount is out of range."},
		{"0.000000001", "", ErrInvalidArgumentValue, "Deposit amount is out of range."},
	}
	for _, tt := range tests {
		got, err := ParseAmount("Deposit amount", tt.raw)
		if tt.kind != nil {
			if !errors.Is(err, tt.kind) {
				t.Fatalf("raw=%q want %v, got %v", tt.raw, tt.kind, err)
			}
			if err.Error() != tt.msg {
				t.Fatalf("raw=%q msg=%q want=%q", tt.raw, err.Error(), tt.msg)
			}
			continue
		}
		if err != nil || !got.Equal(dec(tt.want)) {
			t.Fatalf("raw=%q got=%s err=%v want=%s", tt.raw, got, err, tt.want)
		}
	}
}

func TestSignedFixed(t *testing.T) {
	tests := []struct{ in, want string }{
		{"50", "+50.00"},
		{"-150", "-150.00"},
		{"0.004", "0.00"},
		{"-0.004", "0.00"},
		{"0.005", "+0.01"},
		{"-0.005", "-0.01"},
	}
	for _, tt := range tests {
		if got := signedFixed(dec(tt.in)); got != tt.want {
			t.Fatalf("signedFixed(%s)=%q want=%q", tt.in, got, tt.want)
		}
	}
}

func TestDepositWithdraw(t *testing.T) {
	a := newTestAccount(t, "100")

	msg, err := a.Deposit(dec("50"))
	if err != nil {
		t.Fatal(err)
	}
	if msg != "Deposited $50.00 💰. New balance: $150.00" {
		t.Fatalf("deposit msg=%q", msg)
	}
	checkInvariant(t, a)

	msg, err = a.Withdraw(dec("30.5"))
	if err != nil {
		t.Fatal(err)
	}
	if msg != "Withdrew $30.50 💸. New balance: $119.50" {
		t.Fatalf("withdraw msg=%q", msg)
	}
	checkInvariant(t, a)

	txs := a.Transactions()
	if len(txs) != 2 {
		t.Fatalf("log len=%d want=2", len(txs))
	}
	if txs[0].Kind != KindDeposit || !txs[0].Amount.Equal(dec("50")) {
		t.Fatalf("txs[0] unexpected: %+v", txs[0])
	}
	if txs[1].Kind != KindWithdrawal || !txs[1].Amount.Equal(dec("-30.5")) {
		t.Fatalf("txs[1] unexpected: %+v", txs[1])
	}
}

func TestInvalidAmountsLeaveStateUnchanged(t *testing.T) {
	a := newTestAccount(t, "100")
	for _, amt := range []string{"0", "-5"} {
		if _, err := a.Deposit(dec(amt)); !errors.Is(err, ErrInvalidArgumentValue) {
			t.Fatalf("deposit %s: want ErrInvalidArgumentValue, got %v", amt, err)
		}
		if _, err := a.Withdraw(dec(amt)); !errors.Is(err, ErrInvalidArgumentValue) {
			t.Fatalf("withdraw %s: want ErrInvalidArgumentValue, got %v", amt, err)
		}
	}
	if !a.Balance().Equal(dec("100")) || len(a.Transactions()) != 0 {
		t.Fatalf("state changed: balance=%s log=%d", a.Balance(), len(a.Transactions()))
	}
}

func TestWithdrawInsufficientFunds(t *testing.T) {
	a := newTestAccount(t, "10")
	_, err := a.Withdraw(dec("10.01"))
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("want ErrInsufficientFunds, got %v", err)
	}
	if err.Error() != "Insufficient funds." {
		t.Fatalf("msg=%q", err.Error())
	}
	if !a.Balance().Equal(dec("10")) || len(a.Transactions()) != 0 {
		t.Fatalf("state changed after failed withdraw")
	}

	// 提領剛好等於餘額是合法的
	if _, err := a.Withdraw(dec("10")); err != nil {
		t.Fatalf("withdraw full balance: %v", err)
	}
	if !a.Balance().IsZero() {
		t.Fatalf("balance=%s want=0", a.Balance())
	}
}

func TestDepositThenWithdrawRoundTrip(t *testing.T) {
	for _, x := range []string{"0.01", "1", "99.99", "12345.67"} {
		a := newTestAccount(t, "25")
		if _, err := a.Deposit(dec(x)); err != nil {
			t.Fatal(err)
		}
		if _, err := a.Withdraw(dec(x)); err != nil {
			t.Fatal(err)
		}
		if !a.Balance().Equal(dec("25")) {
			t.Fatalf("x=%s balance=%s want=25", x, a.Balance())
		}
		txs := a.Transactions()
		if len(txs) != 2 || !txs[0].Amount.Add(txs[1].Amount).IsZero() {
			t.Fatalf("x=%s log unexpected: %+v", x, txs)
		}
	}
}

func TestTransactionsReturnsCopy(t *testing.T) {
	a := newTestAccount(t, "0")
	_, _ = a.Deposit(dec("5"))
	txs := a.Transactions()
	txs[0].Amount = dec("1000")
	if !a.Transactions()[0].Amount.Equal(dec("5")) {
		t.Fatalf("internal log was modified through the returned slice")
	}
}

func TestFormatBalanceAndDetails(t *testing.T) {
	a := newTestAccount(t, "100")
	if got := a.FormatBalance(); got != "Current balance: $100.00 ⚖️" {
		t.Fatalf("FormatBalance=%q", got)
	}
	want := "Account Number: " + a.ID() + "\n" +
		"Account Holder: Alice\n" +
		"Account Type: Savings\n" +
		"Balance: $100.00\n" +
		"Creation Date: 2024-03-01\n"
	if got := a.Details(); got != want {
		t.Fatalf("Details=\n%s\nwant=\n%s", got, want)
	}
}

func TestCurrencyOption(t *testing.T) {
	a, _ := NewAccount("A", dec("7.5"), "Checking", WithCurrency("€"))
	if got := a.FormatBalance(); got != "Current balance: €7.50 ⚖️" {
		t.Fatalf("FormatBalance=%q", got)
	}
}

func TestHistory(t *testing.T) {
	a := newTestAccount(t, "100")
	if got := a.History(); got != "No transactions yet." {
		t.Fatalf("empty history=%q", got)
	}
	_, _ = a.Deposit(dec("50"))
	_, _ = a.Withdraw(dec("150"))

	rule := strings.Repeat("-", 30)
	want := rule + "\n" +
		"Transaction History 📜:\n" +
		rule + "\n" +
		"2024-03-01 09:00:01 - Deposit   : $  +50.00\n" +
		"2024-03-01 09:00:02 - Withdrawal: $ -150.00\n" +
		rule
	if got := a.History(); got != want {
		t.Fatalf("History=\n%s\nwant=\n%s", got, want)
	}
}

// TestAliceScenario 走一遍完整情境：建立、存款、餘額不足、全額提款。
func TestAliceScenario(t *testing.T) {
	a := newTestAccount(t, "100.00")

	if _, err := a.Deposit(dec("50.00")); err != nil {
		t.Fatal(err)
	}
	if !a.Balance().Equal(dec("150")) || len(a.Transactions()) != 1 {
		t.Fatalf("after deposit: balance=%s log=%d", a.Balance(), len(a.Transactions()))
	}

	if _, err := a.Withdraw(dec("200.00")); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("want ErrInsufficientFunds, got %v", err)
	}
	if !a.Balance().Equal(dec("150")) {
		t.Fatalf("balance=%s want=150", a.Balance())
	}

	if _, err := a.Withdraw(dec("150.00")); err != nil {
		t.Fatal(err)
	}
	txs := a.Transactions()
	if !a.Balance().IsZero() || len(txs) != 2 {
		t.Fatalf("after withdraw: balance=%s log=%d", a.Balance(), len(txs))
	}
	if txs[1].Kind != KindWithdrawal || signedFixed(txs[1].Amount) != "-150.00" {
		t.Fatalf("txs[1] unexpected: %+v", txs[1])
	}
	checkInvariant(t, a)
}

// TestConcurrentDepositWithdraw 驗證併發存提款下餘額與紀錄仍一致且不為負。
func TestConcurrentDepositWithdraw(t *testing.T) {
	a, _ := NewAccount("A", dec("50"), "Savings")

	const workers = 100
	var wg sync.WaitGroup
	wg.Add(2 * workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if _, err := a.Deposit(dec("1")); err != nil {
				t.Errorf("deposit err: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			_, err := a.Withdraw(dec("2"))
			if err != nil && !errors.Is(err, ErrInsufficientFunds) {
				t.Errorf("withdraw err: %v", err)
			}
		}()
	}
	wg.Wait()
	checkInvariant(t, a)
}
