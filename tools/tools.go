//go:build tools

// Package tools pins the versions of development tools in go.mod.
package tools

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
)
