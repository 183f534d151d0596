package language

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Language
		wantErr bool
	}{
		{input: "c", want: C},
		{input: "C", want: C},
		{input: " c ", want: C},
		{input: "cpp", want: Cpp},
		{input: "c++", want: Cpp},
		{input: "go", want: Go},
		{input: "golang", want: Go},
		{input: "python", want: Python},
		{input: "shell", want: Shell},
		{input: "bash", want: Shell},
		{input: "rust", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Parse(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNative(t *testing.T) {
	if !C.Native() {
		t.Error("C should be the native compiled marker")
	}
	for _, lang := range []Language{Unknown, Cpp, Go, Python, Shell} {
		if lang.Native() {
			t.Errorf("%v should not be native", lang)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, name := range Names() {
		lang, err := Parse(name)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", name, err)
		}
		if lang.String() != name {
			t.Errorf("String() = %q, want %q", lang.String(), name)
		}
	}
}

func TestShellTemplates(t *testing.T) {
	if !strings.HasPrefix(ShellHeader(), "#!/bin/bash\n") {
		t.Error("plain header must start with the bash shebang")
	}
	if !strings.HasPrefix(ShellHeaderWithLicense(), "#!/bin/bash\n") {
		t.Error("license header must start with the bash shebang")
	}
	if !strings.Contains(ShellHeaderWithLicense(), "%s") {
		t.Errorf("license header must carry the %%s insertion slot")
	}
	if strings.Contains(ShellHeader(), "%s") {
		t.Error("plain header must not carry an insertion slot")
	}
	if !strings.Contains(ShellTail(), "exit 0") {
		t.Error("tail must end scripts with exit 0")
	}
}
