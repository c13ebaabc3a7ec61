package i18n

import "testing"

func TestT(t *testing.T) {
	if got := T("en", "dashboard"); got != "Dashboard" {
		t.Fatalf("T(en, dashboard) = %q", got)
	}
	if got := T("fr", "settings"); got != "Paramètres" {
		t.Fatalf("T(fr, settings) = %q", got)
	}
	if got := T("ar", "income"); got != "دخل" {
		t.Fatalf("T(ar, income) = %q", got)
	}
}

func TestTFallsBackToEnglish(t *testing.T) {
	if got := T("xx", "dashboard"); got != "Dashboard" {
		t.Fatalf("unsupported language must fall back to English, got %q", got)
	}
}

func TestTReturnsKeyVerbatim(t *testing.T) {
	if got := T("en", "doesNotExist"); got != "doesNotExist" {
		t.Fatalf("unknown key must be returned verbatim, got %q", got)
	}
	if got := T("xx", "alsoMissing"); got != "alsoMissing" {
		t.Fatalf("unknown key in unknown language must be returned verbatim, got %q", got)
	}
}

func TestResolve(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"en", "en"},
		{"en-GB", "en"},
		{"fr", "fr"},
		{"ar", "ar"},
		{"de", "en"},
		{"", "en"},
		{"not a tag", "en"},
	}
	for i, tc := range cases {
		if got := Resolve(tc.in); got != tc.want {
			t.Fatalf("case %d: Resolve(%q) = %q, want %q", i, tc.in, got, tc.want)
		}
	}
}

func TestDirection(t *testing.T) {
	if Direction("ar") != "rtl" {
		t.Fatal("Arabic must be rtl")
	}
	if Direction("en") != "ltr" || Direction("fr") != "ltr" {
		t.Fatal("en and fr must be ltr")
	}
}
