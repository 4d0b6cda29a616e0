// Package cli реализует командный интерфейс (CLI) клиентского приложения linkbuzz.
//
// Пакет отвечает за:
//   - определение root-команды и набора подкоманд;
//   - разбор аргументов и флагов командной строки;
//   - загрузку локального токена сессии из конфигурационного файла;
//   - выполнение команд и вывод результата пользователю.
//
// Точка входа пакета — функция Execute.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/linkbuzz/internal/agent/config"
)

// App содержит состояние CLI-приложения, разделяемое между командами.
//
// В структуре хранятся параметры подключения к серверу и загруженный токен.
// Экземпляр App создаётся при построении root-команды и передаётся в подкоманды.
type App struct {
	// ServerURL — базовый URL сервера linkbuzz (например, "http://127.0.0.1:8080").
	ServerURL string

	// CredsPath — путь к файлу с сохранённым токеном сессии.
	CredsPath string
	// Creds — загруженные учётные данные из файла конфигурации.
	// Может быть nil, если загрузка не выполнялась или завершилась ошибкой.
	Creds *config.Credentials
}

// NewRootCmd создаёт root-команду CLI и регистрирует подкоманды.
//
// buildVersion и buildDate используются для вывода информации о сборке (команда version).
// В PersistentPreRunE выполняется инициализация состояния приложения:
// определяется путь к файлу токена и загружается сохранённый токен.
func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{
		ServerURL: "http://127.0.0.1:8080",
	}

	cmd := &cobra.Command{
		Use:   "linkbuzz",
		Short: "linkbuzz CLI — управление ссылками публичной страницы",
		Long: `linkbuzz CLI.

Команды:
  register  Регистрация нового пользователя
  login     Логин (получить токен сессии)
  logout    Удалить локальный токен
  link      Управление ссылками (add/list/update/rm)
  profile   Сменить username или пароль
  version   Версия и дата сборки

Примеры:

Регистрация:
  linkbuzz register --username gopher --email test@example.com --password 'Valid123!'

Логин:
  linkbuzz login --email test@example.com --password 'Valid123!'
  (сохраняет токен сессии в локальном конфиге)

Ссылки:
  linkbuzz link add --title "My blog" --url https://example.com
  linkbuzz link list
`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			p, err := config.DefaultPath()
			if err != nil {
				return err
			}
			app.CredsPath = p

			creds, err := config.Load(app.CredsPath)
			if err != nil {
				return err
			}
			app.Creds = creds
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&app.ServerURL, "server", app.ServerURL, "базовый URL сервера linkbuzz")

	cmd.AddCommand(
		NewRegisterCmd(app),
		NewLoginCmd(app),
		NewLogoutCmd(app),
		NewLinkCmd(app),
		NewProfileCmd(app),
		NewVersionCmd(buildVersion, buildDate),
	)

	return cmd
}

// Execute запускает root-команду CLI.
//
// В случае ошибки выводит её в stderr и завершает процесс с кодом 1.
func Execute(buildVersion, buildDate string) {
	if err := NewRootCmd(buildVersion, buildDate).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
