package cloak

import (
	"errors"
	"math"
	"math/big"
	"testing"
)

type accountID int64

type label string

func TestConsistentMaskHash_String(t *testing.T) {
	got, err := ConsistentMaskHash("Hello, World!")
	if err != nil {
		t.Fatalf("ConsistentMaskHash() error: %v", err)
	}
	if got != "Fyzdg, Ygphm!" {
		t.Errorf("ConsistentMaskHash(%q) = %q, want %q", "Hello, World!", got, "Fyzdg, Ygphm!")
	}
}

func TestConsistentMaskHash_Int(t *testing.T) {
	tests := []struct {
		input int64
		want  int64
	}{
		{0, 2},
		{7, 3},
		{42, 2}, // masked text "02"
		{-5, 0}, // masked text "-0"
		{1234567890, 8622436472},
		{-9876543210, -2387614057},
		{math.MaxInt64, 4071434251722459369},
	}

	for _, tt := range tests {
		got, err := ConsistentMaskHash(tt.input)
		if err != nil {
			t.Errorf("ConsistentMaskHash(%d) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ConsistentMaskHash(%d) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestConsistentMaskHash_IntKinds(t *testing.T) {
	if got, err := ConsistentMaskHash(42); err != nil || got != 2 {
		t.Errorf("ConsistentMaskHash(int 42) = %d, %v; want 2, nil", got, err)
	}
	if got, err := ConsistentMaskHash(uint32(1234567890)); err == nil {
		t.Errorf("ConsistentMaskHash(uint32 1234567890) = %d, want overflow error", got)
	}
	if got, err := ConsistentMaskHash(uint64(1234567890)); err != nil || got != 8622436472 {
		t.Errorf("ConsistentMaskHash(uint64 1234567890) = %d, %v; want 8622436472, nil", got, err)
	}
	if got, err := ConsistentMaskHash(int16(7)); err != nil || got != 3 {
		t.Errorf("ConsistentMaskHash(int16 7) = %d, %v; want 3, nil", got, err)
	}
}

func TestConsistentMaskHash_NamedTypes(t *testing.T) {
	id, err := ConsistentMaskHash(accountID(1234567890))
	if err != nil {
		t.Fatalf("ConsistentMaskHash(accountID) error: %v", err)
	}
	if id != accountID(8622436472) {
		t.Errorf("ConsistentMaskHash(accountID) = %d, want 8622436472", id)
	}

	l, err := ConsistentMaskHash(label("a1B"))
	if err != nil {
		t.Fatalf("ConsistentMaskHash(label) error: %v", err)
	}
	if l != label("h4X") {
		t.Errorf("ConsistentMaskHash(label) = %q, want %q", l, "h4X")
	}
}

func TestConsistentMaskHash_Overflow(t *testing.T) {
	tests := []struct {
		name   string
		mask   func() error
		masked string
	}{
		{"int8", func() error { _, err := ConsistentMaskHash(int8(101)); return err }, "446"},
		{"int8 negative", func() error { _, err := ConsistentMaskHash(int8(-128)); return err }, "-169"},
		{"uint8", func() error { _, err := ConsistentMaskHash(uint8(200)); return err }, "270"},
		{"int64", func() error { _, err := ConsistentMaskHash(int64(9223372036854775726)); return err }, "9969189515653299232"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mask()
			if err == nil {
				t.Fatal("expected overflow error")
			}
			if !errors.Is(err, ErrEncoding) {
				t.Errorf("error should be ErrEncoding, got %v", err)
			}
			var encErr *EncodingError
			if !errors.As(err, &encErr) {
				t.Fatalf("error should be *EncodingError, got %T", err)
			}
			if encErr.Masked != tt.masked {
				t.Errorf("Masked = %q, want %q", encErr.Masked, tt.masked)
			}
			if encErr.Mode != ModeHash {
				t.Errorf("Mode = %q, want %q", encErr.Mode, ModeHash)
			}
		})
	}
}

func TestConsistentMaskHash_OverflowReturnsZero(t *testing.T) {
	got, err := ConsistentMaskHash(int8(101))
	if err == nil {
		t.Fatal("expected error")
	}
	if got != 0 {
		t.Errorf("ConsistentMaskHash(int8(101)) = %d on error, want 0", got)
	}
}

func TestConsistentMask_Int(t *testing.T) {
	first, err := ConsistentMask(int64(1234567890))
	if err != nil {
		t.Fatalf("ConsistentMask() error: %v", err)
	}
	again, err := ConsistentMask(int64(1234567890))
	if err != nil {
		t.Fatalf("ConsistentMask() error: %v", err)
	}
	if first != again {
		t.Errorf("ConsistentMask(1234567890) = %d then %d", first, again)
	}
	if first < 0 || first > 9999999999 {
		t.Errorf("ConsistentMask(1234567890) = %d, want at most 10 digits", first)
	}
}

func TestConsistentMask_String(t *testing.T) {
	got, err := ConsistentMask("a1B")
	if err != nil {
		t.Fatalf("ConsistentMask() error: %v", err)
	}
	if got != SeededMasker().Mask("a1B") {
		t.Errorf("ConsistentMask(%q) = %q, want SeededMasker result", "a1B", got)
	}
}

func TestMask_Dispatch(t *testing.T) {
	got, err := Mask(ModeHash, "a1B")
	if err != nil || got != "h4X" {
		t.Errorf("Mask(hash, %q) = %q, %v; want %q, nil", "a1B", got, err, "h4X")
	}

	got, err = Mask(ModeSeeded, "a1B")
	if err != nil || got != MaskString("a1B") {
		t.Errorf("Mask(seeded, %q) = %q, %v", "a1B", got, err)
	}

	if _, err := Mask(Mode("rot13"), "a1B"); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("Mask(unknown) error = %v, want ErrInvalidMode", err)
	}
}

func TestMaskBigHash(t *testing.T) {
	in := new(big.Int).Lsh(big.NewInt(1), 70)
	got, err := MaskBigHash(in)
	if err != nil {
		t.Fatalf("MaskBigHash() error: %v", err)
	}
	if got.String() != "7131814643946076684024" {
		t.Errorf("MaskBigHash(2^70) = %s, want 7131814643946076684024", got)
	}
	if in.String() != "1180591620717411303424" {
		t.Errorf("MaskBigHash modified its input: %s", in)
	}

	neg := new(big.Int).Neg(in)
	got, err = MaskBigHash(neg)
	if err != nil {
		t.Fatalf("MaskBigHash() error: %v", err)
	}
	if got.String() != "-9812731236761093452592" {
		t.Errorf("MaskBigHash(-2^70) = %s, want -9812731236761093452592", got)
	}
}

func TestMaskBigHash_MatchesInt64(t *testing.T) {
	small, err := ConsistentMaskHash(int64(-9876543210))
	if err != nil {
		t.Fatalf("ConsistentMaskHash() error: %v", err)
	}
	wide, err := MaskBigHash(new(big.Int).SetInt64(-9876543210))
	if err != nil {
		t.Fatalf("MaskBigHash() error: %v", err)
	}
	if wide.Int64() != small {
		t.Errorf("MaskBigHash = %s, ConsistentMaskHash = %d", wide, small)
	}
}

func TestMaskBig_Nil(t *testing.T) {
	if _, err := MaskBig(nil); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("MaskBig(nil) error = %v, want ErrUnsupportedType", err)
	}
}

func TestConsistentMaskHashAny(t *testing.T) {
	tests := []struct {
		input any
		want  any
	}{
		{"a1B", "h4X"},
		{int64(42), int64(2)},
		{42, 2},
		{uint(7), uint(3)},
		{label("a1B"), label("h4X")},
	}

	for _, tt := range tests {
		got, err := ConsistentMaskHashAny(tt.input)
		if err != nil {
			t.Errorf("ConsistentMaskHashAny(%v) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ConsistentMaskHashAny(%#v) = %#v, want %#v", tt.input, got, tt.want)
		}
	}
}

func TestConsistentMaskHashAny_Big(t *testing.T) {
	got, err := ConsistentMaskHashAny(big.NewInt(1234567890))
	if err != nil {
		t.Fatalf("ConsistentMaskHashAny(*big.Int) error: %v", err)
	}
	n, ok := got.(*big.Int)
	if !ok {
		t.Fatalf("ConsistentMaskHashAny(*big.Int) returned %T", got)
	}
	if n.String() != "8622436472" {
		t.Errorf("ConsistentMaskHashAny(*big.Int) = %s, want 8622436472", n)
	}
}

func TestConsistentMaskHashAny_Unsupported(t *testing.T) {
	inputs := []any{nil, 3.14, true, []byte("a1B"), struct{}{}, (*big.Int)(nil)}

	for _, in := range inputs {
		got, err := ConsistentMaskHashAny(in)
		if !errors.Is(err, ErrUnsupportedType) {
			t.Errorf("ConsistentMaskHashAny(%#v) error = %v, want ErrUnsupportedType", in, err)
		}
		if got != nil {
			t.Errorf("ConsistentMaskHashAny(%#v) = %#v on error, want nil", in, got)
		}
	}
}

func TestConsistentMaskAny(t *testing.T) {
	got, err := ConsistentMaskAny("Hello, World!")
	if err != nil {
		t.Fatalf("ConsistentMaskAny() error: %v", err)
	}
	if got != MaskString("Hello, World!") {
		t.Errorf("ConsistentMaskAny() = %v, want SeededMasker result", got)
	}
}

func TestMaskAny_InvalidMode(t *testing.T) {
	var cfgErr *ConfigError
	if _, err := MaskAny("", "a1B"); !errors.As(err, &cfgErr) {
		t.Errorf("MaskAny(empty mode) error = %v, want *ConfigError", err)
	}
}

func TestEncodingError_DoesNotLeakInput(t *testing.T) {
	_, err := ConsistentMaskHash(int8(101))
	if err == nil {
		t.Fatal("expected error")
	}
	var encErr *EncodingError
	if !errors.As(err, &encErr) {
		t.Fatalf("error should be *EncodingError, got %T", err)
	}
	if encErr.Type != "int8" {
		t.Errorf("Type = %q, want %q", encErr.Type, "int8")
	}
	msg := err.Error()
	if containsWord(msg, "101") {
		t.Errorf("error message leaks input: %s", msg)
	}
}

func containsWord(s, w string) bool {
	for i := 0; i+len(w) <= len(s); i++ {
		if s[i:i+len(w)] != w {
			continue
		}
		before := i == 0 || s[i-1] < '0' || s[i-1] > '9'
		after := i+len(w) == len(s) || s[i+len(w)] < '0' || s[i+len(w)] > '9'
		if before && after {
			return true
		}
	}
	return false
}
