// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package admin implements the weather-admin command line, which manages
// accounts directly against the store:
//
//	available -u <username>
//	create    -u <username> [-p <secret>]
//	enable    -u <username>
//	disable   -u <username>
//	delete    -u <username>
//	rotate    -u <username> -p <current> -n <new>
//
// When create is given no -p, the secret is read from the first line of the
// input so it stays out of shell history.
package admin

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-weather-keeper/internal/logger"
	"github.com/MKhiriev/go-weather-keeper/internal/service"
	"github.com/MKhiriev/go-weather-keeper/models"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("invalid usage")
	ErrUsernameTaken  = errors.New("username is already taken")
)

// Command dispatches one administrative action per Run.
type Command struct {
	accounts service.AccountService

	in  io.Reader
	out io.Writer

	logger *logger.Logger
}

func NewCommand(accounts service.AccountService, in io.Reader, out io.Writer, logger *logger.Logger) *Command {
	return &Command{accounts: accounts, in: in, out: out, logger: logger}
}

type options struct {
	username string
	secret   string
	next     string
}

// Run executes the action named by args[0].
func (c *Command) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given", ErrUsage)
	}

	name := args[0]
	opts, err := parseOptions(name, args[1:])
	if err != nil {
		return err
	}

	log := c.logger.With().Str("command", name).Str("username", opts.username).Logger()

	switch name {
	case "available":
		ok, err := c.accounts.UsernameAvailable(ctx, opts.username)
		if err != nil {
			return err
		}
		if ok {
			fmt.Fprintln(c.out, "available")
		} else {
			fmt.Fprintln(c.out, "taken")
		}
		return nil
	case "create":
		return c.create(ctx, opts)
	case "enable":
		return c.printAccount(c.accounts.EnableAccount(ctx, opts.username))
	case "disable":
		return c.printAccount(c.accounts.DisableAccount(ctx, opts.username))
	case "delete":
		if err = c.accounts.DeleteAccount(ctx, opts.username); err != nil {
			return err
		}
		log.Info().Msg("account deleted")
		fmt.Fprintf(c.out, "deleted %s\n", opts.username)
		return nil
	case "rotate":
		if opts.secret == "" || opts.next == "" {
			return fmt.Errorf("%w: rotate needs -p and -n", ErrUsage)
		}
		return c.printAccount(c.accounts.RotateSecret(ctx, opts.username, opts.secret, opts.next))
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
}

func (c *Command) create(ctx context.Context, opts options) error {
	if opts.secret == "" {
		secret, err := readLine(c.in)
		if err != nil {
			return fmt.Errorf("read secret: %w", err)
		}
		opts.secret = secret
	}

	account, created, err := c.accounts.CreateAccount(ctx, opts.username, opts.secret)
	if err != nil {
		return err
	}
	if !created {
		return fmt.Errorf("%w: %s", ErrUsernameTaken, opts.username)
	}

	return c.printAccount(account, nil)
}

func (c *Command) printAccount(account models.Account, err error) error {
	if err != nil {
		return err
	}

	state := "disabled"
	if account.Enabled {
		state = "enabled"
	}
	_, err = fmt.Fprintf(c.out, "%s %s\n", account, state)
	return err
}

func parseOptions(name string, args []string) (options, error) {
	var opts options

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&opts.username, "u", "", "Account username")
	fs.StringVar(&opts.secret, "p", "", "Account secret")
	fs.StringVar(&opts.next, "n", "", "New secret (rotate)")
	if err := fs.Parse(args); err != nil {
		return opts, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	if opts.username == "" {
		return opts, fmt.Errorf("%w: -u is required", ErrUsage)
	}
	return opts, nil
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
