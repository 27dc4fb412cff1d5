//go:build tools

//go:generate go run ./scripts/genversion/genversion.go

package tools

import (
	_ "github.com/inovacc/genversioninfo"
)
