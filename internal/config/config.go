// internal/config/config.go
//
// 讀取執行期設定：先嘗試載入 .env，再以環境變數覆蓋預設值，最後以 validator 檢查。

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	// 金額前綴符號
	Currency string `validate:"required,max=4"`
	// 建立帳戶時未指定類型所用的預設值
	DefaultAccountType string `validate:"required"`
	// 提示給使用者的帳戶類型選項；類型本身為開放集合，不限於此
	AccountTypes []string `validate:"required,min=1,dive,required"`
	// 互動介面的提示字串
	Prompt string
}

var validate = validator.New()

// Load 載入 envFile（可為空字串表示略過）並回傳驗證過的設定。
// 檔案不存在只記錄警告，改用系統環境變數。
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("load %s: %w", envFile, err)
			}
			log.Printf("Warning: could not load %s, using system environment variables", envFile)
		}
	}

	cfg := &Config{
		Currency:           getEnv("LEDGER_CURRENCY", "$"),
		DefaultAccountType: getEnv("LEDGER_DEFAULT_ACCOUNT_TYPE", "Savings"),
		AccountTypes:       getEnvAsList("LEDGER_ACCOUNT_TYPES", []string{"Savings", "Checking"}),
		Prompt:             getEnv("LEDGER_PROMPT", "> "),
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, v := range strings.Split(value, ",") {
		out = append(out, strings.TrimSpace(v))
	}
	return out
}
