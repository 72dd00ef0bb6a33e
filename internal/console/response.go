// internal/console/response.go
//
// 統一輸出格式：結果字串原樣輸出並補上換行；錯誤一律加上 "Error: " 前綴。
package console

import "fmt"

// writeResult 原樣輸出 ledger 回傳的文字。
func (c *Console) writeResult(s string) {
	fmt.Fprintln(c.out, s)
}

// writeErr 輸出介面層自己的錯誤（例如未知指令）。
func (c *Console) writeErr(err error) {
	fmt.Fprintf(c.out, "Error: %v\n", err)
}
