// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const licenseHeader = "// Copyright 2026 The gogpu Authors\n// SPDX-License-Identifier: BSD-3-Clause\n"

func TestSourceFilesCarryLicenseHeader(t *testing.T) {
	files, err := filepath.Glob("*.go")
	if err != nil {
		t.Fatalf("Glob() error = %v", err)
	}
	if len(files) == 0 {
		t.Fatal("no Go files found")
	}
	for _, name := range files {
		data, err := os.ReadFile(name)
		if err != nil {
			t.Fatalf("ReadFile(%s) error = %v", name, err)
		}
		if !strings.HasPrefix(string(data), licenseHeader) {
			t.Errorf("%s does not start with the BSD-3-Clause header", name)
		}
	}
}
