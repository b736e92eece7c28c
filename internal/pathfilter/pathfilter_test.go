package pathfilter

import "testing"

func TestIsContentFile(t *testing.T) {
	f := New()

	tests := []struct {
		path string
		want bool
	}{
		{"notes.md", true},
		{"NOTES.MD", true},
		{"ideas.Markdown", true},
		{"draft.mdown", true},
		{"/abs/path/to/readme.md", true},
		{"journal.markdown", true},
		{"notes.txt", false},
		{"main.rs", false},
		{"Makefile", false},
		{"archive.md.bak", false},
		{".gitignore", false},
		{"trailing.", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := f.IsContentFile(tt.path); got != tt.want {
				t.Errorf("IsContentFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsExcludedEntry(t *testing.T) {
	f := New()

	tests := []struct {
		name string
		want bool
	}{
		{".git", true},
		{".cache", true},
		{".hidden-note.md", true},
		{"node_modules", true},
		{"target", true},
		{"targets", false},
		{"src", false},
		{"notes", false},
		{"my.node_modules", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.IsExcludedEntry(tt.name); got != tt.want {
				t.Errorf("IsExcludedEntry(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
