package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRegisterCmd создаёт CLI-команду для регистрации нового пользователя.
//
// Команда отправляет username/email/password на сервер linkbuzz.
// Пароль должен проходить политику сложности (минимум 8 символов,
// строчная и заглавная буквы, цифра, символ из @$!%*?&).
//
// Пример использования:
//
//	linkbuzz register --username gopher --email test@example.com --password 'Valid123!'
func NewRegisterCmd(app *App) *cobra.Command {
	var username, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Регистрация нового пользователя",
		Long: `Регистрация нового пользователя.

Пример:
  linkbuzz register --username gopher --email test@example.com --password 'Valid123!'
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewAPIClient(app.ServerURL)

			resp, err := c.Signup(username, email, password)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "registered: %s (%s)\n", resp.Username, resp.UserID)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "имя пользователя (строка публичной страницы)")
	cmd.Flags().StringVar(&email, "email", "", "email пользователя")
	cmd.Flags().StringVar(&password, "password", "", "пароль")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
