// Package main содержит утилиту посева базы данных fun app.
//
// Утилита:
//   - читает конфиг сервера (DSN, параметры argon2);
//   - очищает таблицы users и cities;
//   - сеет фиксированный набор городов (включая Cairo) — и египетских,
//     и нет, чтобы у geo-гейта были и позитивные, и негативные кейсы;
//   - создаёт администратора с паролем, введённым со скрытым вводом.
//
// Без хотя бы одного посеянного города разрешённой страны
// регистрация не пройдёт никогда.
package main

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/IvanChernomyrdin/go-funapp/internal/server/config"
	"github.com/IvanChernomyrdin/go-funapp/internal/server/crypto"
)

// города для посева: пять египетских и два заведомо чужих
var seedCities = []struct {
	Name      string
	Country   string
	Latitude  float64
	Longitude float64
}{
	{"Cairo", "Egypt", 30.0444, 31.2357},
	{"Alexandria", "Egypt", 31.2001, 29.9187},
	{"Giza", "Egypt", 30.0131, 31.2089},
	{"Luxor", "Egypt", 25.6872, 32.6396},
	{"Aswan", "Egypt", 24.0889, 32.8998},
	{"New York", "USA", 40.7128, -74.006},
	{"London", "UK", 51.5074, -0.1278},
}

func main() {
	if err := newSeedCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newSeedCmd создаёт CLI-команду посева базы.
//
// Пример использования:
//
//	seed --config ./configs/server.yaml --admin-email admin@funapp.dev --admin-name Admin
func newSeedCmd() *cobra.Command {
	var (
		cfgPath    string
		adminEmail string
		adminName  string
		pwStdin    bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Посев городов и администратора в базу данных",
		Long: `Посев базы данных fun app.

Очищает users и cities, сеет фиксированный набор городов и создаёт
администратора. Пароль администратора запрашивается со скрытым вводом
(или читается из stdin с флагом --password-stdin).

Пример:
  seed --config ./configs/server.yaml --admin-email admin@funapp.dev --admin-name Admin
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "no .env file loaded: %v\n", err)
			}

			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			password, err := readAdminPassword(cmd, pwStdin)
			if err != nil {
				return err
			}

			db, err := config.OpenDB(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := runSeed(cmd.Context(), db, cfg, adminEmail, adminName, password); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "seeding completed")
			return nil
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "./configs/server.yaml", "path to server config")
	cmd.Flags().StringVar(&adminEmail, "admin-email", "", "email of the admin user")
	cmd.Flags().StringVar(&adminName, "admin-name", "Admin", "name of the admin user")
	cmd.Flags().BoolVar(&pwStdin, "password-stdin", false, "read admin password from stdin")
	cmd.MarkFlagRequired("admin-email")

	return cmd
}

// runSeed очищает таблицы и сеет данные одной транзакцией.
func runSeed(ctx context.Context, db *sql.DB, cfg *config.Config, adminEmail, adminName, password string) error {
	params := crypto.Argon2Params{
		Time:      cfg.Password.Argon2.Time,
		MemoryKiB: cfg.Password.Argon2.MemoryKiB,
		Threads:   cfg.Password.Argon2.Threads,
		KeyLen:    cfg.Password.Argon2.KeyLen,
		SaltLen:   cfg.Password.Argon2.SaltLen,
	}

	hash, err := crypto.HashPassword(password, params)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// как в оригинальном сидере: начинаем с чистого состояния
	if _, err := tx.ExecContext(ctx, `TRUNCATE users, cities`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	for _, c := range seedCities {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO cities (name, country, latitude, longitude)
			 VALUES ($1,$2,$3,$4)`,
			c.Name, c.Country, c.Latitude, c.Longitude,
		)
		if err != nil {
			return fmt.Errorf("insert city %s: %w", c.Name, err)
		}
	}

	// администратор живёт в первом посеянном городе разрешённой страны
	adminCity := seedCities[0].Name

	_, err = tx.ExecContext(ctx,
		`INSERT INTO users (name, email, password_hash, city)
		 VALUES ($1,$2,$3,$4)`,
		adminName, strings.ToLower(strings.TrimSpace(adminEmail)), hash, adminCity,
	)
	if err != nil {
		return fmt.Errorf("insert admin user: %w", err)
	}

	return tx.Commit()
}

// readAdminPassword читает пароль администратора.
//
// Режимы:
//   - fromStdin=true: читает пароль из STDIN полностью (удобно для скриптов/CI);
//   - fromStdin=false: читает пароль интерактивно из терминала со скрытым вводом.
func readAdminPassword(cmd *cobra.Command, fromStdin bool) (string, error) {
	if fromStdin {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read admin password from stdin: %w", err)
		}
		pw := bytes.TrimRight(b, "\r\n")
		if len(pw) == 0 {
			return "", errors.New("empty admin password on stdin")
		}
		return string(pw), nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("stdin is not a terminal; use --password-stdin")
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Admin password: ")
	pwBytes, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("read admin password: %w", err)
	}

	pw := strings.TrimSpace(string(pwBytes))
	if pw == "" {
		return "", errors.New("empty admin password")
	}
	return pw, nil
}
