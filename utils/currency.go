package utils

import (
	"fmt"
	"strings"
)

// FormatRupees renders an amount in paise as rupees with two decimal places
// and Indian digit grouping, e.g. 123456789 -> "12,34,567.89".
func FormatRupees(paise int64) string {
	negative := paise < 0
	if negative {
		paise = -paise
	}
	rupees := paise / 100
	fraction := paise % 100

	grouped := groupIndian(fmt.Sprintf("%d", rupees))
	out := fmt.Sprintf("%s.%02d", grouped, fraction)
	if negative {
		return "-" + out
	}
	return out
}

// groupIndian inserts separators in the Indian style: the last three digits
// form one group, every two digits before that form another.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(append(groups, tail), ",")
}

// RupeesToPaise converts an amount expressed in major units to paise,
// rounding to the nearest paisa.
func RupeesToPaise(rupees float64) int64 {
	if rupees >= 0 {
		return int64(rupees*100 + 0.5)
	}
	return -int64(-rupees*100 + 0.5)
}
