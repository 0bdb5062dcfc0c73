package resumes

import "testing"

func TestEntryCompleteness(t *testing.T) {
	cases := []struct {
		name string
		got  bool
		want bool
	}{
		{"experience with both fields", Experience{Company: "Acme", Role: "Engineer"}.Complete(), true},
		{"experience missing role", Experience{Company: "Acme"}.Complete(), false},
		{"education with both fields", Education{Institution: "MIT", Degree: "BSc"}.Complete(), true},
		{"education missing degree", Education{Institution: "MIT"}.Complete(), false},
		{"skill with name", Skill{Name: "Go"}.Complete(), true},
		{"skill without name", Skill{}.Complete(), false},
		{"project with title", Project{Title: "CLI"}.Complete(), true},
		{"project without title", Project{}.Complete(), false},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, c.got, c.want)
		}
	}
}

// Fields of only spaces count as missing, so a blank entry never renders.
func TestWhitespaceOnlyFieldsAreIncomplete(t *testing.T) {
	if (Experience{Company: "  ", Role: "Engineer"}).Complete() {
		t.Error("whitespace-only company should be incomplete")
	}
	if (Education{Institution: "MIT", Degree: " "}).Complete() {
		t.Error("whitespace-only degree should be incomplete")
	}
	if (Skill{Name: "\t"}).Complete() {
		t.Error("whitespace-only skill name should be incomplete")
	}
	if (Project{Title: "   "}).Complete() {
		t.Error("whitespace-only project title should be incomplete")
	}
}
