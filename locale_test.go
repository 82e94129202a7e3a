package money

import (
	"testing"

	"golang.org/x/text/language"
)

// stubLookup knows two currencies. The US Dollar is "$" in the United States
// and "US$" everywhere else.
type stubLookup struct{}

func (stubLookup) CurrencyName(code string, _ language.Tag) (string, bool) {
	switch code {
	case "USD":
		return "US Dollar", true
	case "EUR":
		return "Euro", true
	}
	return "", false
}

func (stubLookup) CurrencySymbol(code string, tag language.Tag) (string, bool) {
	switch code {
	case "USD":
		if r, _ := tag.Region(); r.String() == "US" {
			return "$", true
		}
		return "US$", true
	case "EUR":
		return "€", true
	}
	return "", false
}

func TestCurrency_Symbol(t *testing.T) {
	tests := []struct {
		curr   Currency
		locale string
		want   string
	}{
		{USD, "en-US", "$"},
		{USD, "en", "$"},
		{USD, "en-CA", "US$"},
		{USD, "fr-CA", "US$"},
		{EUR, "de-DE", "€"},
		{NewCurr("XXX"), "en-US", "XXX"},
		{NewCurr("ABC"), "en-US", "ABC"},
		{Unknown, "en-US", ""},
	}
	for _, tt := range tests {
		l := MustParseLocale(tt.locale, WithLookup(stubLookup{}))
		got := tt.curr.Symbol(l)
		if got != tt.want {
			t.Errorf("%q.Symbol(%v) = %q, want %q", tt.curr, tt.locale, got, tt.want)
		}
	}
}

func TestCurrency_LocalizedName(t *testing.T) {
	tests := []struct {
		curr Currency
		want string
	}{
		{USD, "US Dollar"},
		{EUR, "Euro"},
		{NewCurr("XXX"), "XXX"},
		{GBP, "GBP"},
		{Unknown, ""},
	}
	for _, tt := range tests {
		l := MustParseLocale("en-US", WithLookup(stubLookup{}))
		got := tt.curr.LocalizedName(l)
		if got != tt.want {
			t.Errorf("%q.LocalizedName(en-US) = %q, want %q", tt.curr, got, tt.want)
		}
	}
}

func TestCLDR_CurrencySymbol(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			code string
			tag  language.Tag
			want string
		}{
			{"USD", language.AmericanEnglish, "$"},
			{"EUR", language.AmericanEnglish, "€"},
			{"GBP", language.BritishEnglish, "£"},
			{"EUR", language.German, "€"},
		}
		for _, tt := range tests {
			got, ok := CLDR{}.CurrencySymbol(tt.code, tt.tag)
			if !ok {
				t.Errorf("CLDR{}.CurrencySymbol(%q, %v) failed", tt.code, tt.tag)
				continue
			}
			if got != tt.want {
				t.Errorf("CLDR{}.CurrencySymbol(%q, %v) = %q, want %q", tt.code, tt.tag, got, tt.want)
			}
		}
	})

	t.Run("missing", func(t *testing.T) {
		tests := []string{"", "XXX", "ZZZ", "TOOLONG"}
		for _, code := range tests {
			got, ok := CLDR{}.CurrencySymbol(code, language.AmericanEnglish)
			if ok {
				t.Errorf("CLDR{}.CurrencySymbol(%q) = %q, want no symbol", code, got)
			}
		}
	})
}

func TestCLDR_CurrencyName(t *testing.T) {
	tests := []struct {
		code   string
		want   string
		wantOK bool
	}{
		{"EUR", "Euro", true},
		{"USD", "US Dollar", true},
		{"JPY", "Japanese Yen", true},
		{"ABC", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := CLDR{}.CurrencyName(tt.code, language.French)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("CLDR{}.CurrencyName(%q) = %q, %v, want %q, %v", tt.code, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestLocale_Region(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{"en-US", "US"},
		{"en", "US"},
		{"en-CA", "CA"},
		{"de", "DE"},
		{"pt-BR", "BR"},
	}
	for _, tt := range tests {
		l := MustParseLocale(tt.locale)
		got := l.Region().String()
		if got != tt.want {
			t.Errorf("MustParseLocale(%q).Region() = %v, want %v", tt.locale, got, tt.want)
		}
	}
}

func TestMustParseLocale(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		l := MustParseLocale("en-CA")
		if got, want := l.Tag().String(), "en-CA"; got != want {
			t.Errorf("MustParseLocale(\"en-CA\").Tag() = %v, want %v", got, want)
		}
	})

	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseLocale(\"not a tag!\") did not panic")
			}
		}()
		MustParseLocale("not a tag!")
	})
}

func TestCLDRSeparators(t *testing.T) {
	tests := []struct {
		tag              language.Tag
		wantDec, wantGrp string
	}{
		{language.AmericanEnglish, ".", ","},
		{language.BritishEnglish, ".", ","},
		{language.German, ",", "."},
		{language.Italian, ",", "."},
	}
	for _, tt := range tests {
		dec, grp := cldrSeparators(tt.tag)
		if dec != tt.wantDec || grp != tt.wantGrp {
			t.Errorf("cldrSeparators(%v) = %q, %q, want %q, %q", tt.tag, dec, grp, tt.wantDec, tt.wantGrp)
		}
	}
}

func TestPlacementOf(t *testing.T) {
	tests := []struct {
		locale string
		want   SymbolPlacement
	}{
		{"en-US", SymbolBefore},
		{"en-GB", SymbolBefore},
		{"ja-JP", SymbolBefore},
		{"de-DE", SymbolAfter},
		{"fr-FR", SymbolAfter},
		{"es-ES", SymbolAfter},
		{"es-MX", SymbolBefore},
		{"de-AT", SymbolBeforeSpaced},
		{"nl-NL", SymbolBeforeSpaced},
		{"pt-BR", SymbolBeforeSpaced},
		{"pt-PT", SymbolAfter},
	}
	for _, tt := range tests {
		got := placementOf(language.MustParse(tt.locale))
		if got != tt.want {
			t.Errorf("placementOf(%v) = %v, want %v", tt.locale, got, tt.want)
		}
	}
}

func TestLocale_Options(t *testing.T) {
	l := MustParseLocale("en-US",
		WithLookup(stubLookup{}),
		WithSeparators(",", " "),
		WithSymbolPlacement(SymbolAfter),
	)
	if _, ok := l.lookup().(stubLookup); !ok {
		t.Errorf("WithLookup did not replace the lookup, got %T", l.lookup())
	}
	if dec, grp := l.separators(); dec != "," || grp != " " {
		t.Errorf("WithSeparators(\",\", \" \") = %q, %q", dec, grp)
	}
	if l.placement != SymbolAfter {
		t.Errorf("WithSymbolPlacement(SymbolAfter) = %v", l.placement)
	}

	var zero Locale
	if _, ok := zero.lookup().(CLDR); !ok {
		t.Errorf("Locale{}.lookup() = %T, want CLDR", zero.lookup())
	}
	if dec, grp := zero.separators(); dec != "." || grp != "," {
		t.Errorf("Locale{}.separators() = %q, %q, want \".\", \",\"", dec, grp)
	}
}
