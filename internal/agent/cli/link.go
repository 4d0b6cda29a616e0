// CLI-команды управления ссылками: add / list / update / rm
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// requireToken проверяет, что пользователь залогинен.
func requireToken(app *App) (string, error) {
	if app.Creds == nil || app.Creds.AccessToken == "" {
		return "", errors.New("not logged in (run: linkbuzz login)")
	}
	return app.Creds.AccessToken, nil
}

// NewLinkCmd создаёт группу CLI-команд для работы со ссылками.
func NewLinkCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Управление ссылками публичной страницы",
	}

	cmd.AddCommand(
		newLinkAddCmd(app),
		newLinkListCmd(app),
		newLinkUpdateCmd(app),
		newLinkRmCmd(app),
	)

	return cmd
}

func newLinkAddCmd(app *App) *cobra.Command {
	var title, url string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Добавить ссылку",
		Long: `Добавить ссылку.

Пример:
  linkbuzz link add --title "My blog" --url https://example.com
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken(app)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			link, err := c.CreateLink(title, url, token)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created: %s  %s -> %s\n", link.ID, link.Title, link.URL)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "заголовок ссылки")
	cmd.Flags().StringVar(&url, "url", "", "абсолютный http(s) адрес")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("url")

	return cmd
}

func newLinkListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Показать все свои ссылки",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken(app)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			resp, err := c.ListLinks(token)
			if err != nil {
				return err
			}

			if len(resp.Links) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no links yet")
				return nil
			}
			for _, l := range resp.Links {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s -> %s\n", l.ID, l.Title, l.URL)
			}
			return nil
		},
	}
}

func newLinkUpdateCmd(app *App) *cobra.Command {
	var title, url string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Обновить ссылку (полная замена title и url)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken(app)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			link, err := c.UpdateLink(args[0], title, url, token)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "updated: %s  %s -> %s\n", link.ID, link.Title, link.URL)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "новый заголовок")
	cmd.Flags().StringVar(&url, "url", "", "новый адрес")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("url")

	return cmd
}

func newLinkRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Удалить ссылку",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := requireToken(app)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			if err := c.DeleteLink(args[0], token); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "deleted")
			return nil
		},
	}
}
