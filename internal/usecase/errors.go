package usecase

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingPixQRCode means the gateway accepted the Pix payment but
	// returned no QR payload; without it the client cannot pay, so the
	// whole call fails.
	ErrMissingPixQRCode = errors.New("pix payment response missing qr code data")

	ErrAnalysisRecordNotFound = errors.New("analysis record not found")
)

// ValidationError reports every required field the caller omitted, in a
// stable order, so the client can render one complete message.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("dados obrigatórios ausentes: %s", strings.Join(e.Fields, ", "))
}
