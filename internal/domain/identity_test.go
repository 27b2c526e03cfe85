package domain

import "testing"

func TestShortSubject(t *testing.T) {
	cases := map[string]string{
		"ÔN TẬP MÔN TOÁN":  "TOÁN",
		"ÔN TẬP TIẾNG VIỆT": "TIẾNG VIỆT",
		"ÔN TẬP TIẾNG ANH":  "TIẾNG ANH",
		"LỊCH SỬ":           "LỊCH SỬ",
	}
	for label, want := range cases {
		if got := ShortSubject(label); got != want {
			t.Errorf("ShortSubject(%q) = %q, want %q", label, got, want)
		}
	}
}

func TestQuizIDRoundTrip(t *testing.T) {
	id := NewQuizID("ÔN TẬP MÔN TOÁN", "LỚP 3", "Vòng 2: Vượt chướng ngại vật")
	name := id.String()
	if name != "TOÁN - LỚP 3 - Vòng 2: Vượt chướng ngại vật" {
		t.Fatalf("unexpected quiz name %q", name)
	}

	parsed, err := ParseQuizID(name)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed != id {
		t.Fatalf("round trip mismatch: %+v vs %+v", parsed, id)
	}
}

func TestParseQuizIDRejectsMalformedNames(t *testing.T) {
	for _, name := range []string{"", "TOÁN", "TOÁN - LỚP 1", "TOÁN -  - Vòng 1"} {
		if _, err := ParseQuizID(name); err == nil {
			t.Errorf("expected error for %q", name)
		}
	}
}

func TestBankLookupResolvesShortSubject(t *testing.T) {
	bank := Bank{
		"ÔN TẬP MÔN TOÁN": {
			"LỚP 1": {{Text: "2 + 7 = ?", Options: []string{"8", "9"}, CorrectIndex: 1}},
		},
	}
	if got := bank.Lookup("TOÁN", "LỚP 1"); len(got) != 1 {
		t.Fatalf("expected 1 question, got %d", len(got))
	}
	if got := bank.Lookup("TIẾNG ANH", "LỚP 1"); got != nil {
		t.Fatalf("expected nil for unknown subject, got %v", got)
	}
	if got := bank.Lookup("TOÁN", "LỚP 9"); got != nil {
		t.Fatalf("expected nil for unknown class, got %v", got)
	}
}

func TestMergeBanksOverrideWins(t *testing.T) {
	base := Bank{
		"ÔN TẬP MÔN TOÁN":  {"LỚP 1": {{Text: "old"}}},
		"ÔN TẬP TIẾNG ANH": {"LỚP 1": {{Text: "kept"}}},
	}
	override := Bank{
		"ÔN TẬP MÔN TOÁN": {"LỚP 2": {{Text: "new"}}},
	}

	merged := MergeBanks(base, override)
	if _, ok := merged["ÔN TẬP MÔN TOÁN"]["LỚP 1"]; ok {
		t.Fatalf("expected override to replace subject wholesale")
	}
	if len(merged["ÔN TẬP MÔN TOÁN"]["LỚP 2"]) != 1 {
		t.Fatalf("expected override questions present")
	}
	if len(merged["ÔN TẬP TIẾNG ANH"]["LỚP 1"]) != 1 {
		t.Fatalf("expected untouched subject to survive")
	}
}
