package util

import "testing"

func TestSecretPrefix_ShortValue(t *testing.T) {
	if got := SecretPrefix("tok", 10); got != "tok" {
		t.Errorf("SecretPrefix() should keep short values intact, got %q", got)
	}
}

func TestSecretPrefix_LongValue(t *testing.T) {
	if got := SecretPrefix("act.1234567890abcdef", 10); got != "act.123456..." {
		t.Errorf("SecretPrefix() = %q, want \"act.123456...\"", got)
	}
}

func TestSecretPrefix_ExactLimit(t *testing.T) {
	if got := SecretPrefix("1234567890", 10); got != "1234567890" {
		t.Errorf("SecretPrefix() should not truncate at exact limit, got %q", got)
	}
}

func TestTruncateLog_ShortString(t *testing.T) {
	input := "short log"
	if got := TruncateLog(input, DefaultLogMaxLen); got != input {
		t.Errorf("TruncateLog() should not truncate short strings, got %q", got)
	}
}

func TestTruncateLog_LongString(t *testing.T) {
	input := "1234567890abcdefghij" // 20 chars
	if got := TruncateLog(input, 10); got != "1234567890... [truncated, 20 bytes total]" {
		t.Errorf("TruncateLog() = %q, want \"1234567890... [truncated, 20 bytes total]\"", got)
	}
}

func TestTruncateLog_EmptyString(t *testing.T) {
	if got := TruncateLog("", 10); got != "" {
		t.Errorf("TruncateLog() should return empty for empty input, got %q", got)
	}
}
