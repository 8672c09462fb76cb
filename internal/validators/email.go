package validators

import "strings"

// NormalizeEmail remove espaços e padroniza em minúsculas
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
