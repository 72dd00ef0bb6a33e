// internal/console/handler.go
//
// Package console
// ─────────────────────────────────────────────
// 提供互動式文字介面，作為 ledger 模組的呈現層。
// 每個 handler 僅負責：
//  1. 逐行詢問並收集原始文字輸入
//  2. 呼叫 ledger 層對應的操作
//  3. 將回傳字串原樣輸出
//
// 數值解析與驗證全部留給 ledger；本層不解讀帳號，也不做任何金額計算。
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"ledger/internal/config"
	"ledger/internal/ledger"
)

// errInputClosed 代表輸入在詢問途中結束。
var errInputClosed = errors.New("input closed")

// Console 為呈現層核心結構：
// - Ledger：注入帳本（整個程序只有一份，由 main 建立）。
// - cfg：提示字串、帳戶類型選項與預設值。
// - logger：記錄執行的指令；與 out 分開，讓 out 只包含結果。
type Console struct {
	Ledger *ledger.Ledger
	cfg    *config.Config
	out    io.Writer
	logger *log.Logger
	in     *bufio.Scanner
	routes map[string]route
}

// NewConsole 建立新的互動介面。logger 可為 nil，此時不記錄。
func NewConsole(l *ledger.Ledger, cfg *config.Config, out io.Writer, logger *log.Logger) *Console {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	c := &Console{Ledger: l, cfg: cfg, out: out, logger: logger}
	c.routes = c.router()
	return c
}

// Run 逐行讀取指令直到 quit/exit、輸入結束或 ctx 取消。
// 輸入正常結束時回傳 nil。
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	c.in = bufio.NewScanner(in)
	c.writeResult("Simple Banking System 🏦 (type \"help\" for commands)")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := c.ask("")
		if err != nil {
			return c.scanErr()
		}
		cmd := strings.ToLower(strings.TrimSpace(line))
		switch cmd {
		case "":
			continue
		case "quit", "exit":
			c.writeResult("Bye.")
			return nil
		}
		r, ok := c.routes[cmd]
		if !ok {
			c.logger.Printf("unknown command %q", cmd)
			c.writeErr(fmt.Errorf("unknown command %q, type \"help\" for commands", cmd))
			continue
		}
		c.logger.Printf("command=%s", cmd)
		if err := r.handle(); err != nil {
			if errors.Is(err, errInputClosed) {
				return c.scanErr()
			}
			c.writeErr(err)
		}
	}
}

func (c *Console) scanErr() error {
	return c.in.Err()
}

// ask 輸出提示並讀取一行；label 為空時只輸出提示字串。
func (c *Console) ask(label string) (string, error) {
	if label != "" {
		fmt.Fprintf(c.out, "%s: ", label)
	} else {
		fmt.Fprint(c.out, c.cfg.Prompt)
	}
	if !c.in.Scan() {
		return "", errInputClosed
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// askDefault 與 ask 相同，但空白輸入時回傳 def。
func (c *Console) askDefault(label, def string) (string, error) {
	v, err := c.ask(fmt.Sprintf("%s [%s]", label, def))
	if err != nil {
		return "", err
	}
	if v == "" {
		return def, nil
	}
	return v, nil
}

// create 對應「Create Account」：持有人、初始餘額（預設 0）、帳戶類型。
func (c *Console) create() error {
	name, err := c.ask("Account Holder Name")
	if err != nil {
		return err
	}
	bal, err := c.askDefault("Initial Balance", "0")
	if err != nil {
		return err
	}
	typ, err := c.askDefault("Account Type ("+strings.Join(c.cfg.AccountTypes, "/")+")", c.cfg.DefaultAccountType)
	if err != nil {
		return err
	}
	c.writeResult(c.Ledger.CreateAccount(name, bal, typ))
	return nil
}

func (c *Console) deposit() error {
	return c.withAmount("Deposit Amount", c.Ledger.Deposit)
}

func (c *Console) withdraw() error {
	return c.withAmount("Withdraw Amount", c.Ledger.Withdraw)
}

func (c *Console) withAmount(label string, op func(id, amount string) string) error {
	id, err := c.ask("Account Number")
	if err != nil {
		return err
	}
	amt, err := c.ask(label)
	if err != nil {
		return err
	}
	c.writeResult(op(id, amt))
	return nil
}

func (c *Console) balance() error { return c.withID("Account Number", c.Ledger.Balance) }
func (c *Console) details() error { return c.withID("Account Number", c.Ledger.Details) }
func (c *Console) history() error { return c.withID("Account Number", c.Ledger.History) }

func (c *Console) remove() error {
	return c.withID("Account Number to Delete", c.Ledger.DeleteAccount)
}

func (c *Console) withID(label string, op func(id string) string) error {
	id, err := c.ask(label)
	if err != nil {
		return err
	}
	c.writeResult(op(id))
	return nil
}

func (c *Console) list() error {
	c.writeResult(c.Ledger.ListAllAccounts())
	return nil
}

func (c *Console) help() error {
	var sb strings.Builder
	sb.WriteString("Commands:\n")
	for _, name := range commandOrder {
		fmt.Fprintf(&sb, "  %-9s %s\n", name, c.routes[name].desc)
	}
	sb.WriteString("  quit      leave the program")
	c.writeResult(sb.String())
	return nil
}
