package mdtty

import (
	"strings"
	"testing"
)

func TestBasicText(t *testing.T) {
	got := Convert("Hello world")
	if !strings.Contains(got, "Hello world") {
		t.Errorf("Convert() = %q, want it to contain %q", got, "Hello world")
	}
}

func TestEmphasisKeepsContent(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Hello **world**", "world"},
		{"Hello *world*", "world"},
		{"Hello ~~world~~", "world"},
		{"Hello `code`", "code"},
	}
	for _, tt := range tests {
		got := Convert(tt.in)
		if !strings.Contains(got, tt.want) {
			t.Errorf("Convert(%q) = %q, want it to contain %q", tt.in, got, tt.want)
		}
	}
}

func TestHeadings(t *testing.T) {
	for _, in := range []string{"# Title", "## Title", "### Title"} {
		got := Convert(in)
		if !strings.Contains(got, "Title") {
			t.Errorf("Convert(%q) = %q, want heading text preserved", in, got)
		}
	}
}

func TestUnorderedList(t *testing.T) {
	got := Convert("- one\n- two")
	if !strings.Contains(got, "• one") || !strings.Contains(got, "• two") {
		t.Errorf("Convert() = %q, want bulleted items", got)
	}
}

func TestOrderedList(t *testing.T) {
	got := Convert("1. first\n2. second")
	if !strings.Contains(got, "1. first") || !strings.Contains(got, "2. second") {
		t.Errorf("Convert() = %q, want numbered items", got)
	}
}

func TestNestedList(t *testing.T) {
	got := Convert("- outer\n  - inner")
	if !strings.Contains(got, "• outer") || !strings.Contains(got, "  • inner") {
		t.Errorf("Convert() = %q, want indented nested item", got)
	}
}

func TestLink(t *testing.T) {
	got := Convert("[docs](https://example.com)")
	if !strings.Contains(got, "docs") || !strings.Contains(got, "(https://example.com)") {
		t.Errorf("Convert() = %q, want label and url", got)
	}
}

func TestCodeBlockIndented(t *testing.T) {
	got := Convert("```\nfmt.Println(1)\n```")
	if !strings.Contains(got, "    ") || !strings.Contains(got, "fmt.Println(1)") {
		t.Errorf("Convert() = %q, want indented code", got)
	}
}

func TestThematicBreak(t *testing.T) {
	got := Convert("---")
	if !strings.Contains(got, "──────────") {
		t.Errorf("Convert() = %q, want rule line", got)
	}
}

func TestTaskList(t *testing.T) {
	got := Convert("- [x] done\n- [ ] todo")
	if !strings.Contains(got, "[x] done") || !strings.Contains(got, "[ ] todo") {
		t.Errorf("Convert() = %q, want task boxes", got)
	}
}

func TestBlockquote(t *testing.T) {
	got := Convert("> quoted text")
	if !strings.Contains(got, "│ quoted text") {
		t.Errorf("Convert() = %q, want quote marker", got)
	}
}

func TestTableAsListBlocks(t *testing.T) {
	md := "| Name | Role |\n| --- | --- |\n| Ada | Engineer |\n| Grace | Admiral |"
	got := Convert(md)

	for _, want := range []string{"1.", "2.", "Name", "Ada", "Role", "Admiral"} {
		if !strings.Contains(got, want) {
			t.Errorf("Convert() = %q, want it to contain %q", got, want)
		}
	}
}

func TestHeaderOnlyTableKeepsShellRow(t *testing.T) {
	got := Convert("| Name | Role |\n| --- | --- |")

	for _, want := range []string{"1.", "Name", "Role"} {
		if !strings.Contains(got, want) {
			t.Errorf("Convert() = %q, want it to contain %q", got, want)
		}
	}
}

func TestTrailingWhitespaceTrimmed(t *testing.T) {
	got := Convert("Hello\n\n\n")
	if strings.HasSuffix(got, "\n") {
		t.Errorf("Convert() = %q, want trailing newlines trimmed", got)
	}
}
