package model

import (
	"fmt"
	"strconv"
	"strings"
)

const VARIANT_DUAL_PRINTER = "dual-printer"

// PackageKey identifies a print package: the postcard quantity it provisions and
// an optional variant tag such as a second printer.
type PackageKey struct {
	Size    int    `json:"size"`
	Variant string `json:"variant,omitempty"`
}

// ParsePackageKey parses "800" or "800/dual-printer".
func ParsePackageKey(value string) (PackageKey, error) {
	sizePart, variant, _ := strings.Cut(strings.TrimSpace(value), "/")
	size, err := strconv.Atoi(strings.TrimSpace(sizePart))
	if err != nil {
		return PackageKey{}, fmt.Errorf("invalid package value %q: %w", value, err)
	}
	if size <= 0 {
		return PackageKey{}, fmt.Errorf("invalid package value %q: size must be positive", value)
	}
	return PackageKey{Size: size, Variant: strings.TrimSpace(variant)}, nil
}

func (k PackageKey) String() string {
	if k.Variant == "" {
		return strconv.Itoa(k.Size)
	}
	return fmt.Sprintf("%d/%s", k.Size, k.Variant)
}
