// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import "os"

// ResolveDataDir returns the first candidate that is an existing directory.
// When none exists the first candidate is returned so that loading reports
// it as the missing data source.
func ResolveDataDir(candidates []string) string {
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
	}
	if len(candidates) == 0 {
		return ""
	}
	return candidates[0]
}
