package service

import (
	"strings"
	"testing"
)

func TestBuildUnlockEmailHTML(t *testing.T) {
	body := buildUnlockEmailHTML("Mia", []string{"Color Match", "Shape Hunt"})

	if !strings.Contains(body, "<li>Color Match</li>") {
		t.Errorf("body missing first title list item:\n%s", body)
	}
	if !strings.Contains(body, "<li>Shape Hunt</li>") {
		t.Errorf("body missing second title list item:\n%s", body)
	}
	if !strings.Contains(body, "Mia can now play") {
		t.Errorf("body missing child name:\n%s", body)
	}
}

func TestBuildUnlockEmailHTMLEscapesInput(t *testing.T) {
	body := buildUnlockEmailHTML("<b>Mia</b>", []string{`Shapes <script>alert("x")</script>`})

	if strings.Contains(body, "<script>") {
		t.Errorf("title markup should be escaped:\n%s", body)
	}
	if !strings.Contains(body, "&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt;") {
		t.Errorf("escaped title missing:\n%s", body)
	}
	if strings.Contains(body, "<b>Mia</b>") {
		t.Errorf("child name markup should be escaped:\n%s", body)
	}
	if !strings.Contains(body, "&lt;b&gt;Mia&lt;/b&gt; can now play") {
		t.Errorf("escaped child name missing:\n%s", body)
	}
}
