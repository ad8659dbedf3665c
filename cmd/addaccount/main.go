// Command addaccount creates an account from the terminal, for seeding a
// fresh install without going through the web form.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"expensehero/internal/cli"
	"expensehero/internal/core"
	"expensehero/internal/services"
	"expensehero/internal/storage"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cli.LoadEnvFile()

	fs := flag.NewFlagSet("addaccount", flag.ContinueOnError)
	fs.SetOutput(stderr)

	email := fs.String("email", "", "Account email")
	passwordFlag := fs.String("password", "", "Password (optional, will prompt if omitted)")
	currency := fs.String("currency", string(core.DefaultCurrency), "Display currency symbol")
	dbPath := fs.String("db", "./data/expensehero.db", "Path to database file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *email == "" {
		fmt.Fprintln(stdout, "Usage: addaccount -email <email> [-password <password>] [-currency <symbol>] [-db <db_path>]")
		fs.PrintDefaults()
		return fmt.Errorf("missing required flag: email")
	}

	password := *passwordFlag
	if password == "" {
		fmt.Fprint(stdout, "Password: ")
		var err error
		password, err = readPassword(stdin)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Fprintln(stdout)
	}

	if strings.TrimSpace(password) == "" {
		return fmt.Errorf("password cannot be empty")
	}

	cur, err := core.ParseCurrency(*currency)
	if err != nil {
		return fmt.Errorf("currency %q: %w", *currency, err)
	}

	// Honor the same env var the server uses, unless -db was set explicitly.
	if path := os.Getenv("SQLITE_DB_PATH"); path != "" && *dbPath == "./data/expensehero.db" {
		*dbPath = path
	}

	repo, err := storage.NewSQLiteRepository(*dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer repo.Close()

	ctx := context.Background()
	accounts := services.NewAccountService(repo)

	acc, err := accounts.Register(ctx, *email, password)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	if cur != core.DefaultCurrency {
		if _, err := accounts.SetCurrency(ctx, acc.Email, string(cur)); err != nil {
			return fmt.Errorf("failed to set currency: %w", err)
		}
	}

	fmt.Fprintf(stdout, "Account %s created with currency %s\n", acc.Email, cur)
	return nil
}

func readPassword(stdin io.Reader) (string, error) {
	// Hidden input when attached to a terminal
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		bytePassword, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(bytePassword), nil
	}

	// Fallback for non-terminal (e.g. tests, pipes)
	scanner := bufio.NewScanner(stdin)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
