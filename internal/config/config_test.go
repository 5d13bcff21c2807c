package config

import (
	"testing"
	"time"
)

func TestSecureCookies(t *testing.T) {
	dev := &Config{AppEnv: "development"}
	if dev.SecureCookies() {
		t.Error("SecureCookies() = true in development, want false")
	}
	prod := &Config{AppEnv: "production"}
	if !prod.SecureCookies() {
		t.Error("SecureCookies() = false in production, want true")
	}
}

func TestParseDurationFallback(t *testing.T) {
	if got := parseDuration("36h"); got != 36*time.Hour {
		t.Errorf("parseDuration(36h) = %v, want 36h", got)
	}
	if got := parseDuration("not-a-duration"); got != 7*24*time.Hour {
		t.Errorf("parseDuration(garbage) = %v, want the 7 day default", got)
	}
}
