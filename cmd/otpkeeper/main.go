package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/otpkeeper/internal/buildinfo"
	"github.com/dmitrijs2005/otpkeeper/internal/client/cli"
	"github.com/dmitrijs2005/otpkeeper/internal/client/config"
	"github.com/dmitrijs2005/otpkeeper/internal/common"
	"github.com/dmitrijs2005/otpkeeper/internal/logging"
	"github.com/dmitrijs2005/otpkeeper/internal/repositories/accounts"
	"github.com/dmitrijs2005/otpkeeper/internal/services"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	buildinfo.PrintBuildData(stdout)

	cfg, err := config.LoadConfig(args)
	if err != nil {
		fmt.Fprintln(stderr, "config:", err)
		return 2
	}

	logger := logging.NewTextLogger(stderr, cfg.LogLevel)
	reader := bufio.NewReader(stdin)

	password, err := cli.GetPassword(reader, stdin, stdout)
	if err != nil {
		fmt.Fprintln(stderr, "read password:", err)
		return 1
	}
	repo := accounts.NewVaultRepository(cfg.VaultPath, password)
	common.WipeByteArray(password)

	svc := services.NewAccountService(repo, logger)
	defer svc.Close()

	if _, err := svc.List(ctx); err != nil {
		if errors.Is(err, common.ErrVaultUnreadable) {
			fmt.Fprintln(stderr, "Invalid password or corrupted database")
		} else {
			fmt.Fprintln(stderr, "Error:", err)
		}
		return 1
	}
	logger.Info(ctx, "vault opened", "path", cfg.VaultPath)

	cli.NewApp(cfg, svc, logger, reader, stdout).Run(ctx)
	return 0
}
