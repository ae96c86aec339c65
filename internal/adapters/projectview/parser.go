// Package projectview parses the .bazelproject view format: sections of
// two-space indented items, scalar labels, and nested imports.
package projectview

import (
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/elharo/eclipse/internal/core/domain"
	"github.com/elharo/eclipse/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ViewLoader = (*Parser)(nil)

// Parser loads project views from files or http(s) URLs. The parser itself
// is stateless; every parse threads its own accumulation through the import
// tree, so a single Parser is safe for concurrent use.
type Parser struct {
	client *http.Client
}

// New creates a new Parser.
func New() *Parser {
	return &Parser{client: http.DefaultClient}
}

// Source records one file that contributed to a parsed view, with the stamp
// observed at read time. Caching layers key invalidation on the stamps.
type Source struct {
	Path    string
	ModTime time.Time
	Size    int64
}

// Load parses the project view file at path, following its imports.
func (p *Parser) Load(path string) (*domain.ProjectView, error) {
	view, _, err := p.LoadWithSources(path)
	return view, err
}

// LoadWithSources parses like Load and also reports every file the parse
// read, in visit order.
func (p *Parser) LoadWithSources(path string) (*domain.ProjectView, []Source, error) {
	state := &viewState{}
	if err := p.parseOrigin(newFileOrigin(path), state); err != nil {
		return nil, nil, err
	}
	return state.build(), state.sources, nil
}

// LoadURL parses the project view at an http(s) URL. Relative imports
// resolve against the URL; imports with a leading path separator name local
// files. Remote parses are never cached, so no sources are reported.
func (p *Parser) LoadURL(rawURL string) (*domain.ProjectView, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse project view URL"), "url", rawURL)
	}
	state := &viewState{}
	if err := p.parseOrigin(&urlOrigin{u: u, client: p.client}, state); err != nil {
		return nil, err
	}
	return state.build(), nil
}

// parseOrigin reads one view resource and applies its lines to state,
// recursing into imports. The visiting chain guards against a view
// transitively importing itself.
func (p *Parser) parseOrigin(o origin, state *viewState) error {
	id := o.identity()
	for _, seen := range state.visiting {
		if seen == id {
			return cycleError(state.visiting, id)
		}
	}
	state.visiting = append(state.visiting, id)
	defer func() {
		state.visiting = state.visiting[:len(state.visiting)-1]
	}()

	data, src, err := o.read()
	if err != nil {
		return err
	}
	if src != nil {
		state.sources = append(state.sources, *src)
	}

	for i, line := range splitLines(data) {
		if err := p.applyLine(o, line, i+1, state); err != nil {
			return err
		}
	}
	return nil
}

// applyLine dispatches one physical line. Line numbers are 1-based and
// per file.
func (p *Parser) applyLine(o origin, line string, num int, state *viewState) error {
	switch classify(line) {
	case lineBlank:
		state.section = ""
		state.haveSection = false
	case lineItem:
		return applyItem(o, line[len(itemPrefix):], num, state)
	case lineImport:
		return p.applyImport(o, line[len(importPrefix):], state)
	case lineColon:
		return applyColon(o, line, num, state)
	case lineComment:
		// Skipped
	case lineInvalid:
		return lineError(domain.ErrViewSyntax, o, num)
	}
	return nil
}

// applyImport resolves the import path against the current resource and
// splices the imported view into the same state.
func (p *Parser) applyImport(o origin, path string, state *viewState) error {
	imported, err := o.resolveImport(path)
	if err != nil {
		return err
	}
	return p.parseOrigin(imported, state)
}

// splitLines splits raw view text into physical lines: a trailing newline
// produces no final empty line, and CRLF terminators lose their carriage
// return.
func splitLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	lines := strings.Split(string(data), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// origin is one view text being parsed: its diagnostic name, its cycle
// identity, its bytes, and how it resolves a nested import path.
type origin interface {
	name() string
	identity() string
	read() ([]byte, *Source, error)
	resolveImport(path string) (origin, error)
}

type fileOrigin struct {
	path string
	id   string
}

func newFileOrigin(path string) fileOrigin {
	id, err := filepath.Abs(path)
	if err != nil {
		id = filepath.Clean(path)
	}
	return fileOrigin{path: path, id: id}
}

func (f fileOrigin) name() string {
	return f.path
}

func (f fileOrigin) identity() string {
	return f.id
}

func (f fileOrigin) read() ([]byte, *Source, error) {
	// Read failures propagate unchanged so callers can match fs errors
	data, err := os.ReadFile(f.path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, nil, err
	}

	src := &Source{Path: f.path}
	if info, err := os.Stat(f.path); err == nil {
		src.ModTime = info.ModTime()
		src.Size = info.Size()
	}
	return data, src, nil
}

func (f fileOrigin) resolveImport(path string) (origin, error) {
	if strings.HasPrefix(path, string(os.PathSeparator)) {
		return newFileOrigin(path), nil
	}
	return newFileOrigin(filepath.Join(filepath.Dir(f.path), path)), nil
}

type urlOrigin struct {
	u      *url.URL
	client *http.Client
}

func (u *urlOrigin) name() string {
	return u.u.String()
}

func (u *urlOrigin) identity() string {
	return u.u.String()
}

func (u *urlOrigin) read() ([]byte, *Source, error) {
	resp, err := u.client.Get(u.u.String())
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort close in defer

	if resp.StatusCode/100 != 2 {
		return nil, nil, zerr.With(zerr.With(zerr.New("unexpected status fetching project view"),
			"url", u.u.String()), "status", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}
	return data, nil, nil
}

func (u *urlOrigin) resolveImport(path string) (origin, error) {
	if strings.HasPrefix(path, string(os.PathSeparator)) {
		// An absolute path inside a remote view names a local file
		return newFileOrigin(path), nil
	}
	resolved, err := u.u.Parse(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve import URL"), "import", path)
	}
	return &urlOrigin{u: resolved, client: u.client}, nil
}
