package utils_test

import (
	"testing"

	"main/utils"
)

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		password string
		valid    bool
	}{
		{"password1", true},
		{"1234abcd", true},
		{"pass1", false},           // too short
		{"justletters", false},     // no number
		{"12345678", false},        // no letter
		{"", false},                // empty
		{"P@ssw0rd", true},         // symbols allowed
		{"пароль12", true},         // non-ASCII letters count
	}

	for _, tc := range cases {
		if got := utils.ValidatePassword(tc.password); got != tc.valid {
			t.Errorf("ValidatePassword(%q) = %v, want %v", tc.password, got, tc.valid)
		}
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_BAD_INT", "not-a-number")
	t.Setenv("TEST_DURATION", "90s")
	t.Setenv("TEST_BOOL", "true")
	t.Setenv("TEST_STRING", "hello")

	if got := utils.GetEnvAsInt("TEST_INT", 1); got != 42 {
		t.Errorf("GetEnvAsInt = %d, want 42", got)
	}
	if got := utils.GetEnvAsInt("TEST_BAD_INT", 7); got != 7 {
		t.Errorf("GetEnvAsInt with bad value = %d, want default 7", got)
	}
	if got := utils.GetEnvAsInt("TEST_UNSET", 7); got != 7 {
		t.Errorf("GetEnvAsInt unset = %d, want default 7", got)
	}
	if got := utils.GetEnvAsDuration("TEST_DURATION", 0); got.Seconds() != 90 {
		t.Errorf("GetEnvAsDuration = %v, want 90s", got)
	}
	if got := utils.GetEnvAsBool("TEST_BOOL", false); !got {
		t.Error("GetEnvAsBool = false, want true")
	}
	if got := utils.GetEnvAsString("TEST_STRING", "fallback"); got != "hello" {
		t.Errorf("GetEnvAsString = %q, want hello", got)
	}
	if got := utils.GetEnvAsString("TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("GetEnvAsString unset = %q, want fallback", got)
	}
}
