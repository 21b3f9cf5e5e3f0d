package rules

import "testing"

func TestQuotedStringsRequiredFlagsUnquoted(t *testing.T) {
	src := "a: hello\n"
	opts := Options{
		"required": true, "quote-type": "any",
		"extra-required": []string{}, "extra-allowed": []string{},
		"allow-quoted-quotes": false, "check-keys": false,
	}
	r := &QuotedStringsRule{}
	diags := r.Check(inputFor(t, src), opts)
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", len(diags), diags)
	}
}

func TestQuotedStringsOnlyWhenNeededAllowsPlainWord(t *testing.T) {
	src := "a: hello\n"
	opts := Options{
		"required": "only-when-needed", "quote-type": "any",
		"extra-required": []string{}, "extra-allowed": []string{},
		"allow-quoted-quotes": false, "check-keys": false,
	}
	r := &QuotedStringsRule{}
	diags := r.Check(inputFor(t, src), opts)
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diags)
	}
}

func TestQuotedStringsOnlyWhenNeededFlagsRedundantQuotes(t *testing.T) {
	src := "a: \"hello\"\n"
	opts := Options{
		"required": "only-when-needed", "quote-type": "any",
		"extra-required": []string{}, "extra-allowed": []string{},
		"allow-quoted-quotes": false, "check-keys": false,
	}
	r := &QuotedStringsRule{}
	diags := r.Check(inputFor(t, src), opts)
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", len(diags), diags)
	}
}

func TestQuotedStringsQuoteTypeSingleFlagsDouble(t *testing.T) {
	src := "a: \"hello\"\n"
	opts := Options{
		"required": false, "quote-type": "single",
		"extra-required": []string{}, "extra-allowed": []string{},
		"allow-quoted-quotes": false, "check-keys": false,
	}
	r := &QuotedStringsRule{}
	diags := r.Check(inputFor(t, src), opts)
	// required=false also reports the quotes themselves as redundant, so the
	// wrong quote type is the second of two diagnostics on the same scalar.
	if len(diags) != 2 {
		t.Fatalf("expected 2 diagnostics (redundant quotes, wrong quote type), got %d: %v", len(diags), diags)
	}
	if diags[1].Message != "string value uses double quotation marks instead of single" {
		t.Fatalf("expected a wrong-quote-type diagnostic, got %q", diags[1].Message)
	}
}
