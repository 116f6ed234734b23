// Package command provides CLI command definitions for the Bullhorn CLI.
package command

import (
	"fmt"
	"strings"

	"github.com/bullhorn-tools/bh-cli/internal/core/domain"
)

// ParseFields converts key=value arguments into a request body. The
// split happens on the first '=' only, so values may contain '='. One
// pair of surrounding double quotes is stripped from the value.
func ParseFields(args []string) (map[string]any, error) {
	if len(args) == 0 {
		return nil, domain.ErrNoFields
	}

	body := make(map[string]any, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, domain.ErrInvalidField.WithDetails(fmt.Sprintf("got %q", arg))
		}
		body[key] = unquote(value)
	}

	return body, nil
}

// unquote strips one pair of surrounding double quotes, left there by
// shells that do not consume them.
func unquote(value string) string {
	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		return value[1 : len(value)-1]
	}
	return value
}
