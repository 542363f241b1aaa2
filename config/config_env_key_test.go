package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"sqlite": map[string]any{
			"busyTimeout": "5s",
		},
		"newsletter": map[string]any{
			"defaultGreeting": "",
			"maxRecipeSuggestions": 3,
		},
		"qrcode": map[string]any{
			"baseUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "SQLITE_BUSYTIMEOUT", want: "sqlite.busyTimeout"},
		{envKey: "NEWSLETTER_DEFAULTGREETING", want: "newsletter.defaultGreeting"},
		{envKey: "NEWSLETTER_MAXRECIPESUGGESTIONS", want: "newsletter.maxRecipeSuggestions"},
		{envKey: "QRCODE_BASEURL", want: "qrcode.baseUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
