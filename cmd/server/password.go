package main

import (
	"bufio"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"zoo/internal/auth"
	"zoo/internal/auth/revocation"
	authstore "zoo/internal/auth/store"
	eventmemory "zoo/internal/eventlog/store/memory"
	"zoo/internal/platform/postgres"
	id "zoo/pkg/domain"
)

func newSetPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-password EMPLOYEE_ID",
		Short: "Set an employee's login password, read from the first line of stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			employee, err := id.ParseEmployeeID(args[0])
			if err != nil {
				return err
			}
			password, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && password == "" {
				return errors.New("password expected on stdin")
			}
			password = strings.TrimRight(password, "\r\n")

			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			pool, err := postgres.Open(ctx, cfg.Postgres)
			if err != nil {
				return err
			}
			defer pool.Close()

			// Only the employee store is touched; sessions are not issued here.
			svc, err := auth.New(
				authstore.NewPostgres(pool),
				revocation.NewInMemoryTRL(),
				eventmemory.NewInMemoryStore(),
				auth.NewTokenIssuer(cfg.Auth.JWTSigningKey, cfg.Auth.Issuer),
				auth.WithLogger(log),
			)
			if err != nil {
				return err
			}
			if err := svc.SetPassword(ctx, employee, password); err != nil {
				return err
			}
			log.InfoContext(ctx, "password updated", "employee_id", employee)
			return nil
		},
	}
}
