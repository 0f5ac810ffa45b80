package transform

import (
	"regexp"
	"testing"
)

func TestSanitizeHTML(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain text", "Just text", "Just text"},
		{"keeps allowed tags and attributes", `<p class="lead">Hello <span style="color:red">world</span></p>`, `<p class="lead">Hello <span style="color:red">world</span></p>`},
		{"image rendered self-closing", `<img src='x.jpg' alt="X">`, `<img src="x.jpg" alt="X"/>`},
		{"drops script with content", `<p>a</p><script>bad()</script>`, `<p>a</p>`},
		{"drops disallowed inline text", `<p>Hi <strong>there</strong>!</p>`, `<p>Hi !</p>`},
		{"hoists allowed children", `<div><img src='x.jpg'><script>bad()</script></div>`, `<img src="x.jpg"/>`},
		{"nested wrappers", `<div><section><p>one</p>text<ul><li><span>two</span></li></ul></section></div>`, `<p>one</p><span>two</span>`},
		{"drops line breaks and tables", `<p>a<br>b</p><table><tr><td>cell</td></tr></table>`, `<p>ab</p>`},
		{"drops style blocks", `<style>p{color:red}</style><p>x</p>`, `<p>x</p>`},
		{"quotes in text are escaped", `<p>Robe d'été "fleurie"</p>`, `<p>Robe d&#39;été &#34;fleurie&#34;</p>`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SanitizeHTML(tc.in); got != tc.want {
				t.Errorf("SanitizeHTML(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSanitizeHTMLIdempotent(t *testing.T) {
	inputs := []string{
		`<div><img src='x.jpg'><script>bad()</script></div>`,
		`<p class="lead">Hello &amp; <span>welcome</span></p><ul><li>one</li></ul>`,
		`<meta charset="utf-8"><div><p>Robe <b>fleurie</b> en <em>coton</em></p><p><img src="a.jpg"></p></div>`,
		`<span><div><p>nested</p></div></span>`,
		`Texte "libre" <a href="/x">lien</a> &lt;3`,
		`<p>Robe d'été "fleurie"</p>`,
	}

	for _, in := range inputs {
		once := SanitizeHTML(in)
		twice := SanitizeHTML(once)
		if once != twice {
			t.Errorf("not idempotent for %q:\n once:  %q\n twice: %q", in, once, twice)
		}
	}
}

func TestSanitizeHTMLOnlyAllowedTags(t *testing.T) {
	out := SanitizeHTML(`<h1>T</h1><div><p>a<a href="#">b</a></p><iframe src="x"></iframe><span>c</span></div>`)

	tag := regexp.MustCompile(`<\s*/?\s*([a-zA-Z0-9]+)`)
	for _, m := range tag.FindAllStringSubmatch(out, -1) {
		switch m[1] {
		case "p", "span", "img":
		default:
			t.Errorf("unexpected tag %q in %q", m[1], out)
		}
	}
}
