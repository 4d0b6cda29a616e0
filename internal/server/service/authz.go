package service

import (
	"github.com/google/uuid"

	serr "github.com/IvanChernomyrdin/linkbuzz/internal/shared/errors"
)

// Authorize — проверка владения ресурсом перед мутацией.
//
// Чистая функция без побочных эффектов: сравнивает subject токена
// с владельцем ресурса. Отсутствующий/невалидный токен отсекается раньше,
// в middleware (401), сюда доходит только аутентифицированный userID.
//
// Возвращает:
//   - nil          — userID владеет ресурсом, можно мутировать
//   - ErrForbidden — токен валиден, но ресурс принадлежит другому
func Authorize(userID, ownerID uuid.UUID) error {
	if userID != ownerID {
		return serr.ErrForbidden
	}
	return nil
}
