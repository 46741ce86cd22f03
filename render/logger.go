// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"log/slog"

	"github.com/gogpu/line"
)

// logger returns the logger configured with line.SetLogger.
// All logging in render goes through this function.
func logger() *slog.Logger { return line.Logger() }
