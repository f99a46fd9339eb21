package inputval

import "testing"

func TestValidate(t *testing.T) {
	type testInput struct {
		Title string `validate:"required,max=10" label:"Title"`
		Type  string `validate:"required,oneof=lecture assignment reference" label:"Type"`
	}

	tests := []struct {
		name       string
		input      testInput
		wantErrors bool
		wantFirst  string
	}{
		{
			name:  "valid input",
			input: testInput{Title: "Notes", Type: "lecture"},
		},
		{
			name:       "missing title",
			input:      testInput{Type: "lecture"},
			wantErrors: true,
			wantFirst:  "Title is required.",
		},
		{
			name:       "whitespace-only title",
			input:      testInput{Title: "   ", Type: "lecture"},
			wantErrors: true,
			wantFirst:  "Title is required.",
		},
		{
			name:       "title too long",
			input:      testInput{Title: "a very long title", Type: "lecture"},
			wantErrors: true,
			wantFirst:  "Title must be at most 10 characters.",
		},
		{
			name:       "type not in enum",
			input:      testInput{Title: "Notes", Type: "video"},
			wantErrors: true,
			wantFirst:  "Type is invalid.",
		},
		{
			name:       "first failure reported first",
			input:      testInput{Title: "", Type: "video"},
			wantErrors: true,
			wantFirst:  "Title is required.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(tt.input)
			if res.HasErrors() != tt.wantErrors {
				t.Fatalf("HasErrors() = %v, want %v (errs: %v)", res.HasErrors(), tt.wantErrors, res.All())
			}
			if res.First() != tt.wantFirst {
				t.Errorf("First() = %q, want %q", res.First(), tt.wantFirst)
			}
		})
	}
}

func TestValidate_Pointer(t *testing.T) {
	type in struct {
		Name string `validate:"required" label:"Name"`
	}
	if res := Validate(&in{Name: "x"}); res.HasErrors() {
		t.Errorf("unexpected errors for pointer input: %v", res.All())
	}
	if res := Validate(&in{}); !res.HasErrors() {
		t.Error("expected error for empty required field via pointer")
	}
}

func TestIsValidResourceType(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"lecture", true},
		{"assignment", true},
		{"reference", true},
		{"  lecture  ", true},
		{"", false},
		{"Lecture", false},
		{"video", false},
	}
	for _, tt := range tests {
		if got := IsValidResourceType(tt.in); got != tt.want {
			t.Errorf("IsValidResourceType(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
