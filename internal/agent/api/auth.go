// В этом файле описаны методы клиента для работы
// с эндпоинтами аутентификации: регистрация и вход.
package api

// SignupRequest описывает тело запроса регистрации пользователя.
//
// Username, Email и Password передаются в JSON формате в эндпоинт /signup.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupResponse описывает ответ сервера при успешной регистрации.
type SignupResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// LoginRequest описывает тело запроса входа пользователя.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse описывает ответ сервера при успешном входе.
//
// AccessToken сохраняется в локальном конфиге и дальше уходит на сервер
// сессионной кукой auth_token.
type LoginResponse struct {
	UserID      string `json:"user_id"`
	AccessToken string `json:"access_token"`
}

// Signup выполняет регистрацию пользователя на сервере.
//
// Метод отправляет POST запрос на /signup и возвращает SignupResponse.
// В случае ошибки возвращает непустую ошибку и пустой ответ.
func (c *Client) Signup(username, email, password string) (SignupResponse, error) {
	var resp SignupResponse
	err := c.PostJSON("/signup", SignupRequest{Username: username, Email: email, Password: password}, &resp, "")
	return resp, err
}

// Login выполняет вход пользователя и получает токен сессии.
//
// Метод отправляет POST запрос на /login и возвращает LoginResponse
// с AccessToken. В случае ошибки возвращает непустую ошибку и пустой ответ.
func (c *Client) Login(email, password string) (LoginResponse, error) {
	var resp LoginResponse
	err := c.PostJSON("/login", LoginRequest{Email: email, Password: password}, &resp, "")
	return resp, err
}
