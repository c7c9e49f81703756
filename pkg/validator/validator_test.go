package validator

import "testing"

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"jane@example.com", true},
		{"jane.doe+tag@sub.example.co", true},
		{"jane@example", false},
		{"@example.com", false},
		{"jane example.com", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidateEmail(tt.email); got != tt.want {
			t.Errorf("ValidateEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"secret1", true},
		{"P@ssw0rd!", true},
		{"short", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidatePassword(tt.password); got != tt.want {
			t.Errorf("ValidatePassword(%q) = %v, want %v", tt.password, got, tt.want)
		}
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Jane Doe", true},
		{"O'Brien", true},
		{"Anne-Marie", true},
		{"Dr. Smith", true},
		{"J", false},
		{"Jane123", false},
	}

	for _, tt := range tests {
		if got := ValidateName(tt.name); got != tt.want {
			t.Errorf("ValidateName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFormatName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"jane doe", "Jane Doe"},
		{"JANE", "Jane"},
		{"anne-marie smith", "Anne-Marie Smith"},
		{"  jane   doe  ", "Jane Doe"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := FormatName(tt.in); got != tt.want {
			t.Errorf("FormatName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSanitizeString(t *testing.T) {
	if got := SanitizeString(`<script>alert("x");</script>`); got != "scriptalert(x)/script" {
		t.Errorf("unexpected sanitized value: %q", got)
	}
	if got := SanitizeString("plain text"); got != "plain text" {
		t.Errorf("plain text should pass through, got %q", got)
	}
}
