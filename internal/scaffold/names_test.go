package scaffold

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSanitizeName(t *testing.T) {
	tests := map[string]string{
		"":                DefaultName,
		"   ":             DefaultName,
		"!!!@@@":          DefaultName,
		"my@project!":     "myproject",
		"test#$%name":     "testname",
		"my project":      "my_project",
		"hello   world":   "hello_world",
		"my-project":      "my-project",
		"my_project":      "my_project",
		"../escape":       "escape",
		"..\\escape":      "escape",
		"/root/path":      "rootpath",
		"\\windows\\path": "windowspath",
		"  myproject  ":   "myproject",
	}
	for in, want := range tests {
		if got := SanitizeName(in); got != want {
			t.Errorf("SanitizeName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseKeywords(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"python,react,docker", []string{"python", "react", "docker"}},
		{"python react docker", []string{"python", "react", "docker"}},
		{"python, react  docker,go", []string{"python", "react", "docker", "go"}},
		{"PYTHON React DoCkEr", []string{"python", "react", "docker"}},
		{"  python ,  react  ", []string{"python", "react"}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, ParseKeywords(tt.in)); diff != "" {
			t.Errorf("ParseKeywords(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestMergeStack(t *testing.T) {
	got := MergeStack([]string{"python", "Docker"}, []string{"docker", "node"}, nil)
	if diff := cmp.Diff([]string{"docker", "node", "python"}, got); diff != "" {
		t.Errorf("MergeStack mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"linux"}, MergeStack(nil, []string{})); diff != "" {
		t.Errorf("empty MergeStack mismatch (-want +got):\n%s", diff)
	}
}

func TestHasOS(t *testing.T) {
	if HasOS([]string{"python"}) {
		t.Error("python is not an OS")
	}
	if !HasOS([]string{"python", "macos"}) {
		t.Error("macos should count as an OS")
	}
}
