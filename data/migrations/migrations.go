// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package migrations embeds the PostgreSQL schema so the API binary can
// migrate without the source tree next to it.
package migrations

import "embed"

// FS holds the numbered golang-migrate files of this directory.
//
//go:embed *.sql
var FS embed.FS
