// cmd/ledger/main.go

// 本程式提供記憶體內帳本的互動式文字介面：建立帳戶、存提款、查詢餘額與交易紀錄。
// 此檔案負責初始化模組（config, ledger, console），
// 並在標準輸入/輸出上執行介面；資料只存在於程序生命週期內。

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ledger/internal/config"
	"ledger/internal/console"
	"ledger/internal/ledger"
)

func main() {
	envFile := flag.String("env", ".env", "path to an optional .env file")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// 整個程序只建立一份帳本，明確傳給介面層
	l := ledger.New(
		ledger.WithCurrency(cfg.Currency),
		ledger.WithDefaultAccountType(cfg.DefaultAccountType),
	)

	logger := log.New(os.Stderr, "ledger: ", log.LstdFlags)
	c := console.NewConsole(l, cfg, os.Stdout, logger)

	// 收到 SIGINT/SIGTERM 時取消 ctx；若仍卡在讀取輸入則直接結束
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		logger.Println("shutting down")
		cancel()
		os.Exit(0)
	}()

	logger.Println("ledger console ready")
	if err := c.Run(ctx, os.Stdin); err != nil {
		log.Fatal(err)
	}
}
