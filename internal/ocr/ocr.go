// Package ocr reads amounts and store names from images of receipts.
package ocr

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	ErrNoAmount    = errors.New("no valid amount found on the receipt")
	ErrRecognition = errors.New("the image could not be processed")
)

// Recognizer turns an image into text.
type Recognizer interface {
	Recognize(ctx context.Context, image io.Reader) (string, error)
}

// Tesseract runs the tesseract command line tool.
type Tesseract struct {
	// Path to the binary. Defaults to "tesseract" in $PATH.
	Path string

	// Language passed with -l. Defaults to "deu".
	Language string
}

// Recognize pipes the image through tesseract and returns the text.
func (t Tesseract) Recognize(ctx context.Context, image io.Reader) (string, error) {
	path := t.Path
	if path == "" {
		path = "tesseract"
	}

	lang := t.Language
	if lang == "" {
		lang = "deu"
	}

	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, path, "stdin", "stdout", "-l", lang)
	cmd.Stdin = image
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	if err := cmd.Run(); err != nil {
		log.Error().Err(err).Str("stderr", strings.TrimSpace(stderr.String())).Msg("tesseract failed")
		return "", fmt.Errorf("%w: %w", ErrRecognition, err)
	}

	log.Debug().Dur("duration", time.Since(start)).Int("length", stdout.Len()).Msg("tesseract finished")
	return stdout.String(), nil
}

// Result is what could be read from a receipt.
type Result struct {
	Amount    decimal.Decimal
	StoreName string
}

// Scanner extracts the result from receipt images.
type Scanner struct {
	Recognizer Recognizer
}

// NewScanner returns a Scanner using the Recognizer.
func NewScanner(r Recognizer) *Scanner {
	return &Scanner{Recognizer: r}
}

// Scan reads the amount and the store name from the image.
//
// If no amount can be found, ErrNoAmount is returned.
func (s *Scanner) Scan(ctx context.Context, image io.Reader) (Result, error) {
	text, err := s.Recognizer.Recognize(ctx, image)
	if err != nil {
		if errors.Is(err, ErrRecognition) {
			return Result{}, err
		}
		return Result{}, fmt.Errorf("%w: %w", ErrRecognition, err)
	}

	amount, ok := ExtractAmount(text)
	if !ok {
		return Result{}, ErrNoAmount
	}

	return Result{
		Amount:    amount,
		StoreName: ExtractStoreName(text),
	}, nil
}
