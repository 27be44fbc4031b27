package toolconfig

import (
	"regexp"
	"strings"
)

var fmtRegex = regexp.MustCompile(`\$\{([a-zA-Z0-9_:(), ]+)}`)

// formatString substitutes ${var} and ${var:fmt1:fmt2(arg)} references.
// Unknown variables are left untouched.
func formatString(s string, dictionary map[string]string) (string, error) {
	var firstErr error
	out := fmtRegex.ReplaceAllStringFunc(s, func(match string) string {
		split := strings.Split(fmtRegex.FindStringSubmatch(match)[1], ":")
		value, ok := dictionary[split[0]]
		if !ok {
			return match
		}
		formatted, err := formatWithFormatters(value, split[1:])
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return match
		}
		return formatted
	})
	if firstErr != nil {
		return "", firstErr
	}
	return out, nil
}

func formatParams(params map[string]string, dictionary map[string]string) (map[string]string, error) {
	if params == nil {
		return nil, nil
	}
	formatted := make(map[string]string, len(params))
	for k, v := range params {
		var err error
		formatted[k], err = formatString(v, dictionary)
		if err != nil {
			return nil, err
		}
	}
	return formatted, nil
}
