// CLI-команды настроек профиля: смена имени и смена пароля
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewProfileCmd создаёт группу CLI-команд настроек профиля.
func NewProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Настройки профиля",
	}

	cmd.AddCommand(
		newProfileUsernameCmd(app),
		newProfilePasswordCmd(app),
	)

	return cmd
}

func newProfileUsernameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "username <new-username>",
		Short: "Сменить публичное имя пользователя",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken(app)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			resp, err := c.UpdateUsername(args[0], token)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "username changed to %q\n", resp.Username)
			return nil
		},
	}
}

func newProfilePasswordCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "password",
		Short: "Сменить пароль (текущий и новый запрашиваются интерактивно)",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken(app)
			if err != nil {
				return err
			}

			current, err := ReadPassword(cmd, "Current password: ")
			if err != nil {
				return err
			}
			next, err := ReadPassword(cmd, "New password: ")
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			if err := c.UpdatePassword(current, next, token); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "password updated")
			return nil
		},
	}
}

// readPassword читает пароль со скрытым вводом, если stdin — терминал.
// Иначе читает одну строку из stdin (скрипты, тесты).
// Пустой пароль считается ошибкой.
func readPassword(cmd *cobra.Command, prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		r := bufio.NewReader(cmd.InOrStdin())
		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("read password: %w", err)
		}
		pw := strings.TrimRight(line, "\r\n")
		if pw == "" {
			return "", errors.New("empty password")
		}
		return pw, nil
	}

	fmt.Fprint(cmd.ErrOrStderr(), prompt)
	pwBytes, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	pw := strings.TrimSpace(string(pwBytes))
	if pw == "" {
		return "", errors.New("empty password")
	}
	return pw, nil
}
