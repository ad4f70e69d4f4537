// Package stringlib provides string functions beyond goLang primitives
package stringlib

import (
	"regexp"
	"strconv"
	"strings"
)

/***************************************************************************************************************
****************************************************************************************************************
* String functions *********************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

var reNewLines = regexp.MustCompile(`[\r\n]+`)

// RmNewLines removes any newline found on the input string
func RmNewLines(t string) string {
	return reNewLines.ReplaceAllString(t, "")
}

// IsNumeric tells whether input is a number or not
func IsNumeric(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// SplitList turns a multi-line, `|` separated YAML value such as
//
//	the|a|an
//	|of|to
//
// into its non-empty, trimmed items
func SplitList(t string) []string {
	var items []string
	for _, item := range strings.Split(RmNewLines(t), "|") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	return items
}
