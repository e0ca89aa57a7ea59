// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/store-analytics/errs"
	"github.com/danielhkuo/store-analytics/models"
)

var dateRe = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)

// ParseDate converts a date filter value into a Date. Failures are storage
// errors: the value reached the data layer unchecked.
func ParseDate(s string) (models.Date, error) {
	m := dateRe.FindStringSubmatch(s)
	if m == nil {
		return models.Date{}, errs.StorageMessage("parse_date", messageList(
			fmt.Sprintf("“%s” value has an invalid date format. It must be in YYYY-MM-DD format.", s)))
	}

	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if year < 1 || t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return models.Date{}, errs.StorageMessage("parse_date", messageList(
			fmt.Sprintf("“%s” value has the correct format (YYYY-MM-DD) but it is an invalid date.", s)))
	}

	return models.DateOf(t), nil
}

// ToCount coerces a decoded JSON value into the unique_visitors integer.
// Integers pass through, floats truncate toward zero, booleans become 1 or 0
// and strings must hold a base-10 integer.
func ToCount(v any) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			break
		}
		if math.Abs(n) > math.MaxInt32 {
			return 0, errs.StorageMessage("coerce_count", "integer out of range")
		}
		return int64(math.Trunc(n)), nil
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	case string:
		if i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64); err == nil {
			return i, nil
		}
	}
	return 0, errs.StorageMessage("coerce_count",
		fmt.Sprintf("Field 'unique_visitors' expected a number but got %s.", describe(v)))
}

func describe(v any) string {
	switch x := v.(type) {
	case nil:
		return "None"
	case string:
		return QuoteText(x)
	}
	if b, err := json.Marshal(v); err == nil {
		return string(b)
	}
	return fmt.Sprintf("%v", v)
}
