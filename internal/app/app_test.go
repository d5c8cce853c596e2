package app

import (
	"bytes"
	"strings"
	"testing"

	apperrors "github.com/Kronuz/base-x-go/internal/errors"
)

func TestNewParsesFlags(t *testing.T) {
	var errBuf bytes.Buffer
	application, err := New([]string{"basex", "-op", "decode", "-alphabet", "base16"}, &errBuf)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if application.Config.Operation != "decode" {
		t.Errorf("Operation = %q, want decode", application.Config.Operation)
	}
	if application.Config.Alphabet != "base16" {
		t.Errorf("Alphabet = %q, want base16", application.Config.Alphabet)
	}
}

func TestNewHelpError(t *testing.T) {
	var errBuf bytes.Buffer
	_, err := New([]string{"basex", "-help"}, &errBuf)
	if err == nil {
		t.Fatal("expected an error for -help")
	}
	if !IsHelpError(err) {
		t.Errorf("IsHelpError(%v) = false, want true", err)
	}
}

func TestRunEncodeDecodeRoundTrip(t *testing.T) {
	var errBuf, out bytes.Buffer
	encodeApp, err := New([]string{"basex", "-op", "encode", "-alphabet", "base58-bitcoin", "-input", "hello", "-quiet"}, &errBuf)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if code := encodeApp.Run(&out); code != apperrors.ExitSuccess {
		t.Fatalf("Run returned %d, stderr=%s", code, errBuf.String())
	}
	encoded := strings.TrimSpace(out.String())
	if encoded == "" {
		t.Fatal("expected a non-empty encoded result")
	}

	errBuf.Reset()
	out.Reset()
	decodeApp, err := New([]string{"basex", "-op", "decode", "-alphabet", "base58-bitcoin", "-input", encoded, "-quiet"}, &errBuf)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if code := decodeApp.Run(&out); code != apperrors.ExitSuccess {
		t.Fatalf("Run returned %d, stderr=%s", code, errBuf.String())
	}
	if got := strings.TrimSpace(out.String()); got != "hello" {
		t.Errorf("decoded = %q, want %q", got, "hello")
	}
}

func TestRunArithAdd(t *testing.T) {
	var errBuf, out bytes.Buffer
	application, err := New([]string{"basex", "-op", "add", "-input", "12,30", "-quiet"}, &errBuf)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if code := application.Run(&out); code != apperrors.ExitSuccess {
		t.Fatalf("Run returned %d, stderr=%s", code, errBuf.String())
	}
	if got := strings.TrimSpace(out.String()); got != "42" {
		t.Errorf("result = %q, want %q", got, "42")
	}
}

func TestRunArithDivisionByZero(t *testing.T) {
	var errBuf, out bytes.Buffer
	application, err := New([]string{"basex", "-op", "div", "-input", "10,0", "-quiet"}, &errBuf)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if code := application.Run(&out); code == apperrors.ExitSuccess {
		t.Fatal("expected a non-zero exit code for division by zero")
	}
}

func TestRunUnknownOperation(t *testing.T) {
	var errBuf, out bytes.Buffer
	application, err := New([]string{"basex", "-op", "frobnicate"}, &errBuf)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if code := application.Run(&out); code == apperrors.ExitSuccess {
		t.Fatal("expected a non-zero exit code for an unknown operation")
	}
}

func TestRunUnknownAlphabet(t *testing.T) {
	var errBuf, out bytes.Buffer
	application, err := New([]string{"basex", "-op", "encode", "-alphabet", "not-a-real-alphabet", "-input", "x"}, &errBuf)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if code := application.Run(&out); code == apperrors.ExitSuccess {
		t.Fatal("expected a non-zero exit code for an unknown alphabet")
	}
}
