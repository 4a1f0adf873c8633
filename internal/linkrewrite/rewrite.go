// Package linkrewrite expands shorthand documentation links in Markdown.
//
// Authors write [Encryption](docs:databases#encryption) and the link is
// rewritten to the versioned URL for the configured release. Only real link
// destinations are touched: goldmark parses the document first, so text in
// code spans, code blocks and raw HTML keeps its shorthand.
package linkrewrite

import (
	"bytes"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"git.home.luguber.info/inful/docslink/internal/docsurl"
	derrors "git.home.luguber.info/inful/docslink/internal/errors"
	"git.home.luguber.info/inful/docslink/internal/logfields"
)

// Scheme prefixes shorthand destinations.
const Scheme = "docs:"

var (
	inlineDest    = regexp.MustCompile(`\]\([ \t]*<?(docs:[^\s)>]*)`)
	referenceDest = regexp.MustCompile(`(?m)^(?:[ \t]*(?:>|[-+*][ \t]|\d{1,9}[.)][ \t]))*[ \t]*\[[^\]\n]+\]:[ \t]*<?(docs:[^\s>]*)`)
)

// Change records one rewritten destination.
type Change struct {
	Line int    `json:"line"`
	From string `json:"from"`
	To   string `json:"to"`
}

// Result is the rewritten document and what changed in it.
type Result struct {
	Body    []byte
	Changes []Change
}

// Rewriter expands shorthand links for one release.
type Rewriter struct {
	resolver *docsurl.Resolver
	version  *docsurl.Version
	md       goldmark.Markdown
}

// New returns a Rewriter resolving links for v. A nil resolver uses the default hosts.
func New(r *docsurl.Resolver, v *docsurl.Version) *Rewriter {
	if r == nil {
		r = docsurl.NewResolver()
	}
	return &Rewriter{resolver: r, version: v, md: goldmark.New()}
}

// Rewrite returns body with every docs: destination replaced. The input is not modified.
func (rw *Rewriter) Rewrite(body []byte) (Result, error) {
	ctx := parser.NewContext()
	root := rw.md.Parser().Parse(text.NewReader(body), parser.WithContext(ctx))

	dests, protected := scan(root)
	for _, ref := range ctx.References() {
		if d := string(ref.Destination()); strings.HasPrefix(d, Scheme) {
			dests[d] = struct{}{}
		}
	}
	if len(dests) == 0 {
		return Result{Body: bytes.Clone(body)}, nil
	}

	type span struct{ start, end int }
	var spans []span
	for _, re := range []*regexp.Regexp{inlineDest, referenceDest} {
		for _, m := range re.FindAllSubmatchIndex(body, -1) {
			start, end := m[2], m[3]
			if protected.contains(start) {
				continue
			}
			if _, ok := dests[string(body[start:end])]; !ok {
				continue
			}
			spans = append(spans, span{start, end})
		}
	}
	slices.SortFunc(spans, func(a, b span) int { return a.start - b.start })

	var out bytes.Buffer
	out.Grow(len(body))
	res := Result{}
	last := 0
	for _, sp := range spans {
		if sp.start < last {
			continue
		}
		from := string(body[sp.start:sp.end])
		to, err := rw.expand(from)
		if err != nil {
			return Result{}, err.WithContext("line", lineOf(body, sp.start))
		}
		out.Write(body[last:sp.start])
		out.WriteString(to)
		last = sp.end

		line := lineOf(body, sp.start)
		res.Changes = append(res.Changes, Change{Line: line, From: from, To: to})
		slog.Debug("Rewrote docs link", logfields.Path(from), slog.String("url", to), slog.Int("line", line))
	}
	out.Write(body[last:])
	res.Body = out.Bytes()
	return res, nil
}

// expand turns "docs:page#anchor" into a documentation URL.
func (rw *Rewriter) expand(dest string) (string, *derrors.DocsLinkError) {
	target := strings.TrimPrefix(dest, Scheme)
	page, anchor, _ := strings.Cut(target, "#")
	page = strings.TrimSuffix(strings.Trim(page, "/"), ".html")
	if page == "" && anchor == "" {
		return "", derrors.ValidationFailed("link", "empty docs target").WithContext("destination", dest)
	}
	return rw.resolver.URL(rw.version, page, anchor), nil
}

// ranges is a set of half-open byte ranges of source that must not be rewritten.
type ranges [][2]int

func (r ranges) contains(pos int) bool {
	for _, rg := range r {
		if pos >= rg[0] && pos < rg[1] {
			return true
		}
	}
	return false
}

// scan collects shorthand link destinations and the source ranges holding
// literal text. Link destinations never fall inside a Text segment, so text
// that merely looks like a link (escaped brackets, failed link syntax) stays
// protected along with code and raw HTML.
func scan(root gmast.Node) (map[string]struct{}, ranges) {
	dests := map[string]struct{}{}
	var protected ranges

	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *gmast.Text:
			protected = append(protected, [2]int{node.Segment.Start, node.Segment.Stop})
		case *gmast.Link:
			addDest(dests, node.Destination)
		case *gmast.Image:
			addDest(dests, node.Destination)
		case *gmast.FencedCodeBlock, *gmast.CodeBlock, *gmast.HTMLBlock:
			lines := n.Lines()
			if lines.Len() > 0 {
				protected = append(protected, [2]int{lines.At(0).Start, lines.At(lines.Len() - 1).Stop})
			}
			return gmast.WalkSkipChildren, nil
		case *gmast.CodeSpan:
			if first, ok := node.FirstChild().(*gmast.Text); ok {
				lastText, _ := node.LastChild().(*gmast.Text)
				stop := first.Segment.Stop
				if lastText != nil {
					stop = lastText.Segment.Stop
				}
				protected = append(protected, [2]int{first.Segment.Start, stop})
			}
			return gmast.WalkSkipChildren, nil
		case *gmast.RawHTML:
			for i := 0; i < node.Segments.Len(); i++ {
				seg := node.Segments.At(i)
				protected = append(protected, [2]int{seg.Start, seg.Stop})
			}
		}
		return gmast.WalkContinue, nil
	})
	return dests, protected
}

func addDest(dests map[string]struct{}, dest []byte) {
	if bytes.HasPrefix(dest, []byte(Scheme)) {
		dests[string(dest)] = struct{}{}
	}
}

func lineOf(body []byte, pos int) int {
	return bytes.Count(body[:pos], []byte{'\n'}) + 1
}
