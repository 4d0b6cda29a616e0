package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/linkbuzz/internal/agent/config"
)

// NewLogoutCmd создаёт CLI-команду выхода.
//
// Команда удаляет токен из локального конфига. Отзыва токена на сервере нет:
// выданный токен остаётся валидным до истечения 24 часов.
func NewLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Удалить локальный токен сессии",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Creds.AccessToken = ""
			if err := config.Save(app.CredsPath, app.Creds); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "logout ok (token removed)")
			return nil
		},
	}
}
