// Политика сложности паролей и правила для username
package crypto

import (
	"fmt"
	"strings"
)

// PasswordSymbols — фиксированный набор спецсимволов, один из которых
// обязан присутствовать в пароле.
const PasswordSymbols = "@$!%*?&"

// MinPasswordLen — минимальная длина пароля.
const MinPasswordLen = 8

// PolicyViolation перечисляет невыполненные правила политики пароля.
//
// Реализует error, чтобы её можно было прокинуть через service слой
// и показать пользователю списком.
type PolicyViolation struct {
	Rules []string
}

func (v *PolicyViolation) Error() string {
	return "password policy: " + strings.Join(v.Rules, "; ")
}

// CheckPasswordPolicy проверяет пароль против политики:
//   - длина >= 8 символов
//   - хотя бы одна строчная буква
//   - хотя бы одна заглавная буква
//   - хотя бы одна цифра
//   - хотя бы один символ из набора @$!%*?&
//   - никаких символов вне латиницы, цифр и набора @$!%*?&
//     (пробелы и юникод делают пароль невалидным целиком)
//
// Возвращает nil если все правила выполнены, иначе *PolicyViolation
// со списком ВСЕХ нарушенных правил (не только первого).
func CheckPasswordPolicy(password string) error {
	var hasLower, hasUpper, hasDigit, hasSymbol bool
	onlyAllowed := true

	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(PasswordSymbols, r):
			hasSymbol = true
		default:
			onlyAllowed = false
		}
	}

	var rules []string
	if len(password) < MinPasswordLen {
		rules = append(rules, fmt.Sprintf("at least %d characters", MinPasswordLen))
	}
	if !onlyAllowed {
		rules = append(rules, "only latin letters, digits and symbols "+PasswordSymbols)
	}
	if !hasLower {
		rules = append(rules, "at least one lowercase letter")
	}
	if !hasUpper {
		rules = append(rules, "at least one uppercase letter")
	}
	if !hasDigit {
		rules = append(rules, "at least one digit")
	}
	if !hasSymbol {
		rules = append(rules, "at least one symbol from "+PasswordSymbols)
	}

	if len(rules) > 0 {
		return &PolicyViolation{Rules: rules}
	}
	return nil
}

// ValidUsername проверяет имя пользователя:
// минимум 3 символа, только латинские буквы, цифры, дефис и подчёркивание.
func ValidUsername(username string) bool {
	if len(username) < 3 {
		return false
	}
	for _, r := range username {
		ok := (r >= 'a' && r <= 'z') ||
			(r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') ||
			r == '-' || r == '_'
		if !ok {
			return false
		}
	}
	return true
}
