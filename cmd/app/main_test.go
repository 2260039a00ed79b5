package main

import (
	"testing"

	"github.com/akyairhashvil/nusui/internal/locale"
)

func TestDetectLocale(t *testing.T) {
	cases := []struct {
		name      string
		nusuiLang string
		lang      string
		want      locale.Locale
	}{
		{"explicit spanish", "es", "en_US.UTF-8", locale.ES},
		{"system spanish", "", "es_MX.UTF-8", locale.ES},
		{"system english", "", "en_US.UTF-8", locale.EN},
		{"override wins", "en", "es_MX.UTF-8", locale.EN},
		{"unset", "", "", locale.EN},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("NUSUI_LANG", tc.nusuiLang)
			t.Setenv("LANG", tc.lang)
			if got := detectLocale(); got != tc.want {
				t.Fatalf("detectLocale() = %q, want %q", got, tc.want)
			}
		})
	}
}
