package utils

import (
	"strings"
	"unicode"
)

// CamelToSnake converts a camelCase JSON key to its snake_case column name.
// Consecutive uppercase runs are treated as a single word boundary so
// "proxyIp" becomes "proxy_ip" and "cardUUID" becomes "card_uuid".
func CamelToSnake(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (!unicode.IsUpper(runes[i-1]) || (i+1 < len(runes) && !unicode.IsUpper(runes[i+1]))) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
