package frontmatter

import "testing"

func TestSplit(t *testing.T) {
	t.Run("document with frontmatter", func(t *testing.T) {
		fields, body := Split("---\ntitle: Hello\ntags:\n  - a\n  - b\n---\n# Heading\n")
		if fields["title"] != "Hello" {
			t.Errorf("title = %v, want Hello", fields["title"])
		}
		tags, ok := fields["tags"].([]any)
		if !ok || len(tags) != 2 {
			t.Errorf("tags = %v, want two entries", fields["tags"])
		}
		if body != "# Heading\n" {
			t.Errorf("body = %q, want heading only", body)
		}
	})

	t.Run("document without frontmatter", func(t *testing.T) {
		content := "# Just a note\n"
		fields, body := Split(content)
		if fields != nil {
			t.Errorf("fields = %v, want nil", fields)
		}
		if body != content {
			t.Errorf("body = %q, want unchanged content", body)
		}
	})

	t.Run("frontmatter closing at end of file", func(t *testing.T) {
		fields, body := Split("---\ntitle: Solo\n---")
		if fields["title"] != "Solo" {
			t.Errorf("title = %v, want Solo", fields["title"])
		}
		if body != "" {
			t.Errorf("body = %q, want empty", body)
		}
	})

	t.Run("unterminated block is treated as content", func(t *testing.T) {
		content := "---\ntitle: Broken\nno closing delimiter"
		fields, body := Split(content)
		if fields != nil || body != content {
			t.Errorf("Split() = (%v, %q), want (nil, original)", fields, body)
		}
	})

	t.Run("invalid yaml is treated as content", func(t *testing.T) {
		content := "---\n\t- tabs are not yaml\n---\nbody"
		fields, body := Split(content)
		if fields != nil || body != content {
			t.Errorf("Split() = (%v, %q), want (nil, original)", fields, body)
		}
	})
}

func TestCompose(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		out, err := Compose(map[string]any{"title": "Hello"}, "# Body\n")
		if err != nil {
			t.Fatalf("Compose() error = %v", err)
		}
		fields, body := Split(out)
		if fields["title"] != "Hello" {
			t.Errorf("title = %v, want Hello", fields["title"])
		}
		if body != "# Body\n" {
			t.Errorf("body = %q, want original body", body)
		}
	})

	t.Run("empty fields return body unchanged", func(t *testing.T) {
		out, err := Compose(nil, "plain")
		if err != nil {
			t.Fatalf("Compose() error = %v", err)
		}
		if out != "plain" {
			t.Errorf("Compose() = %q, want plain", out)
		}
	})
}
