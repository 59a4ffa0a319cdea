package huhforms

import (
	"errors"
	"strconv"
	"strings"

	"charm.land/huh/v2"

	"github.com/thenoetrevino/adflow/internal/models"
)

func required(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(label + " is required")
		}
		return nil
	}
}

func date(optional bool) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" && optional {
			return nil
		}
		if !models.ValidDate(s) {
			return errors.New("use YYYY-MM-DD")
		}
		return nil
	}
}

func amount(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v, err := ParseAmount(s)
	if err != nil {
		return errors.New("enter a number")
	}
	if v < 0 {
		return errors.New("must not be negative")
	}
	return nil
}

// ParseAmount reads a money field; blank is zero and thousands commas are ignored.
func ParseAmount(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// FormatAmount is the inverse of ParseAmount for prefilling edit forms.
func FormatAmount(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func options(values []string) []huh.Option[string] {
	return huh.NewOptions(values...)
}
