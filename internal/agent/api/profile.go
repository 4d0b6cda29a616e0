// Методы клиента для профиля: смена username и пароля
package api

// UpdateProfileRequest описывает тело запроса PUT /profile.
//
// Заполняется либо Username, либо пара CurrentPassword/NewPassword.
type UpdateProfileRequest struct {
	Username        *string `json:"username,omitempty"`
	CurrentPassword *string `json:"currentPassword,omitempty"`
	NewPassword     *string `json:"newPassword,omitempty"`
}

// UpdateProfileResponse описывает успешный ответ смены username.
type UpdateProfileResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UpdateUsername меняет имя пользователя.
func (c *Client) UpdateUsername(username, authToken string) (UpdateProfileResponse, error) {
	var resp UpdateProfileResponse
	err := c.PutJSON("/profile", UpdateProfileRequest{Username: &username}, &resp, authToken)
	return resp, err
}

// UpdatePassword меняет пароль пользователя.
func (c *Client) UpdatePassword(currentPassword, newPassword, authToken string) error {
	req := UpdateProfileRequest{
		CurrentPassword: &currentPassword,
		NewPassword:     &newPassword,
	}
	return c.PutJSON("/profile", req, nil, authToken)
}
