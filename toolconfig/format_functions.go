package toolconfig

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type FormatterType string

const (
	formatterTypeTitle    FormatterType = "title"
	formatterTypeUpper    FormatterType = "upper"
	formatterTypeLower    FormatterType = "lower"
	formatterTypeTrim     FormatterType = "trim"
	formatterTypeLeftPad  FormatterType = "leftpad"
	formatterTypeRightPad FormatterType = "rightpad"
)

type formatter interface {
	Format(val string, args []string) (string, error)
	Type() FormatterType
}

type FormatterTitle struct{}

func (f FormatterTitle) Format(val string, args []string) (string, error) {
	return strings.Title(val), nil
}

func (f FormatterTitle) Type() FormatterType {
	return formatterTypeTitle
}

type FormatterUpper struct{}

func (f FormatterUpper) Format(val string, args []string) (string, error) {
	return strings.ToUpper(val), nil
}

func (f FormatterUpper) Type() FormatterType {
	return formatterTypeUpper
}

type FormatterLower struct{}

func (f FormatterLower) Format(val string, args []string) (string, error) {
	return strings.ToLower(val), nil
}

func (f FormatterLower) Type() FormatterType {
	return formatterTypeLower
}

type FormatterTrim struct{}

func (f FormatterTrim) Format(val string, args []string) (string, error) {
	return strings.TrimSpace(val), nil
}

func (f FormatterTrim) Type() FormatterType {
	return formatterTypeTrim
}

func readAnIntFromArgsOrReturnError(args []string) (int, error) {
	if len(args) == 0 {
		return 0, errors.New("no padding length provided")
	}

	return strconv.Atoi(strings.TrimSpace(args[0]))
}

type FormatterLeftPad struct{}

func (f FormatterLeftPad) Format(val string, args []string) (string, error) {
	cnt, err := readAnIntFromArgsOrReturnError(args)
	if err != nil {
		return "", err
	}
	if pad := cnt - len(val); pad > 0 {
		val = strings.Repeat(" ", pad) + val
	}
	return val, nil
}

func (f FormatterLeftPad) Type() FormatterType {
	return formatterTypeLeftPad
}

type FormatterRightPad struct{}

func (f FormatterRightPad) Format(val string, args []string) (string, error) {
	cnt, err := readAnIntFromArgsOrReturnError(args)
	if err != nil {
		return "", err
	}
	if pad := cnt - len(val); pad > 0 {
		val += strings.Repeat(" ", pad)
	}
	return val, nil
}

func (f FormatterRightPad) Type() FormatterType {
	return formatterTypeRightPad
}

var formatters = map[FormatterType]formatter{}

func init() {
	for _, f := range []formatter{
		FormatterTitle{},
		FormatterUpper{},
		FormatterLower{},
		FormatterTrim{},
		FormatterLeftPad{},
		FormatterRightPad{},
	} {
		formatters[f.Type()] = f
	}
}

// formatWithFormatters applies each formatter in order. A formatter may take
// arguments in parentheses, like leftpad(5).
func formatWithFormatters(val string, names []string) (string, error) {
	var err error
	for _, formatterName := range names {
		var args []string
		if start := strings.Index(formatterName, "("); start >= 0 {
			end := strings.LastIndex(formatterName, ")")
			if end < start {
				return "", fmt.Errorf("unterminated formatter arguments: %s", formatterName)
			}
			args = strings.Split(formatterName[start+1:end], ",")
			formatterName = formatterName[:start]
		}

		f, ok := formatters[FormatterType(formatterName)]
		if !ok {
			return "", fmt.Errorf("unknown formatter: %s", formatterName)
		}
		val, err = f.Format(val, args)
		if err != nil {
			return "", err
		}
	}

	return val, nil
}
