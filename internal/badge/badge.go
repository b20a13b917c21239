// Package badge issues QR badge tokens and renders them as images.
package badge

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"rsc.io/qr"
)

var ErrEmptyToken = errors.New("empty badge token")

// NewToken builds an opaque token of the form EMP-<badge>-<8 hex>.
func NewToken(badge string) string {
	badge = strings.ToUpper(strings.Join(strings.Fields(badge), ""))
	if badge == "" {
		badge = "X"
	}
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("EMP-%s-%s", badge, suffix)
}

// PNG encodes token as a QR symbol. scale is the pixel size of one module.
func PNG(token string, scale int) ([]byte, error) {
	if token == "" {
		return nil, ErrEmptyToken
	}
	code, err := qr.Encode(token, qr.M)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	if scale > 0 {
		code.Scale = scale
	}
	return code.PNG(), nil
}
