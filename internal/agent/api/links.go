// Методы клиента для CRUD ссылок и публичного профиля
package api

import "github.com/IvanChernomyrdin/linkbuzz/internal/shared/models"

// CreateLink создаёт новую ссылку текущего пользователя.
func (c *Client) CreateLink(title, url, authToken string) (models.Link, error) {
	var resp models.Link
	err := c.PostJSON("/links", models.CreateLinkRequest{Title: title, URL: url}, &resp, authToken)
	return resp, err
}

// ListLinks возвращает все ссылки текущего пользователя.
func (c *Client) ListLinks(authToken string) (models.LinksResponse, error) {
	var resp models.LinksResponse
	err := c.GetJSON("/links", &resp, authToken)
	return resp, err
}

// UpdateLink полностью заменяет title и url ссылки.
func (c *Client) UpdateLink(id, title, url, authToken string) (models.Link, error) {
	var resp models.Link
	err := c.PutJSON("/links/"+id, models.UpdateLinkRequest{Title: title, URL: url}, &resp, authToken)
	return resp, err
}

// DeleteLink удаляет ссылку по id.
func (c *Client) DeleteLink(id, authToken string) error {
	return c.DeleteJSON("/links/"+id, nil, authToken)
}

// PublicProfile возвращает публичную страницу пользователя (без авторизации).
func (c *Client) PublicProfile(username string) (models.PublicProfileResponse, error) {
	var resp models.PublicProfileResponse
	err := c.GetJSON("/"+username, &resp, "")
	return resp, err
}
