// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package convert reads loosely typed query values. A malformed flag reads as
// "not set" instead of failing the request.
package convert

import (
	"strconv"
	"strings"
)

// ToBool accepts what [strconv.ParseBool] accepts, ignoring surrounding
// spaces. Anything else, including "", is false.
func ToBool(s string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && v
}
