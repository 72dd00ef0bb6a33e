// internal/console/router.go
//
// 本檔負責指令註冊：handler.go 定義「如何處理指令」，這裡定義「指令如何被導向」。
// 採明確註冊（非反射式），新增指令只需在此加一行。
package console

type route struct {
	handle func() error
	desc   string
}

// commandOrder 決定 help 的列出順序，與原本表單的分頁順序一致。
var commandOrder = []string{
	"create", "deposit", "withdraw", "balance", "details", "history", "list", "delete", "help",
}

func (c *Console) router() map[string]route {
	return map[string]route{
		"create":   {c.create, "create a new account"},
		"deposit":  {c.deposit, "deposit into an account"},
		"withdraw": {c.withdraw, "withdraw from an account"},
		"balance":  {c.balance, "show the current balance"},
		"details":  {c.details, "show account details"},
		"history":  {c.history, "show the transaction history"},
		"list":     {c.list, "list all accounts"},
		"delete":   {c.remove, "delete an account"},
		"help":     {c.help, "show this help"},
	}
}
