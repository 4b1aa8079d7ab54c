package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ryanhamamura/uidom/attr"
	"github.com/ryanhamamura/uidom/component"
	"github.com/ryanhamamura/uidom/dom"
	"github.com/ryanhamamura/uidom/markdown"
	"github.com/ryanhamamura/uidom/parse"
	"github.com/xlab/treeprint"
)

func newFlagSet(name, usage string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: uidom %s %s\n", name, usage)
		fs.PrintDefaults()
	}
	return fs
}

func renderFlags(fs *flag.FlagSet) func() []dom.RenderOption {
	compact := fs.Bool("compact", false, "write everything on one line")
	xhtml := fs.Bool("xhtml", false, "close void tags with />")
	indent := fs.String("indent", "  ", "indentation unit")
	return func() []dom.RenderOption {
		opts := []dom.RenderOption{dom.Indent(*indent)}
		if *compact {
			opts = append(opts, dom.Compact())
		}
		if *xhtml {
			opts = append(opts, dom.XHTML())
		}
		return opts
	}
}

// runFmt re-renders HTML files. With -w files are rewritten in place when
// their formatting changes.
func runFmt(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := newFlagSet("fmt", "[-compact] [-xhtml] [-indent s] [-w] [files]")
	opts := renderFlags(fs)
	write := fs.Bool("w", false, "write result to the file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() == 0 {
		if *write {
			return errors.New("fmt: -w needs files")
		}
		n, err := parse.Parse(stdin)
		if err != nil {
			return err
		}
		return writeMarkup(stdout, n, opts())
	}

	for _, path := range fs.Args() {
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		n, err := parse.HTML(string(src))
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if !*write {
			if err := writeMarkup(stdout, n, opts()); err != nil {
				return err
			}
			continue
		}
		s, err := n.Markup(opts()...)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		out := []byte(s + "\n")
		if bytes.Equal(out, src) {
			continue
		}
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return err
		}
		logger.Info().Str("file", path).Msg("formatted")
	}
	return nil
}

// runMD renders a markdown file, optionally as a whole document.
func runMD(args []string, stdout io.Writer) error {
	fs := newFlagSet("md", "[-doc] [-title s] [-o file] <file>")
	opts := renderFlags(fs)
	doc := fs.Bool("doc", false, "wrap the output in an HTML document")
	title := fs.String("title", "", "document title, with -doc")
	out := fs.String("o", "", "output file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errors.New("md: one markdown file expected")
	}

	n, err := markdownNode(fs.Arg(0), *doc, *title)
	if err != nil {
		return err
	}
	if *out == "" {
		return writeMarkup(stdout, n, opts())
	}
	var b bytes.Buffer
	if err := writeMarkup(&b, n, opts()); err != nil {
		return err
	}
	return os.WriteFile(*out, b.Bytes(), 0o644)
}

func markdownNode(path string, doc bool, title string) (dom.Noder, error) {
	n, err := markdown.File(path)
	if err != nil {
		return nil, err
	}
	if !doc {
		return n, nil
	}
	return component.Document(component.DocumentProps{
		Title:    title,
		Lang:     "en",
		SkipCSRF: true,
		Body:     []any{n},
	})
}

// runSave renders a HTML or markdown file into a directory. An unchanged
// file is not rewritten.
func runSave(args []string, stdout io.Writer) error {
	fs := newFlagSet("save", "[-dir d] [-name n] <file>")
	dir := fs.String("dir", dom.DefaultSaveDir, "output directory")
	name := fs.String("name", "", "output name, defaults to the input's base name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errors.New("save: one file expected")
	}

	path := fs.Arg(0)
	ext := filepath.Ext(path)
	if *name == "" {
		*name = strings.TrimSuffix(filepath.Base(path), ext)
	}

	var n *dom.Node
	var err error
	if ext == ".md" {
		n, err = markdown.File(path)
	} else {
		var src []byte
		if src, err = os.ReadFile(path); err == nil {
			n, err = parse.HTML(string(src))
		}
	}
	if err != nil {
		return err
	}

	saved, err := n.Save(*name, *dir)
	if err != nil {
		return err
	}
	logger.Debug().Str("file", saved).Msg("saved")
	_, err = fmt.Fprintln(stdout, saved)
	return err
}

// runTree prints the parsed node tree.
func runTree(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := newFlagSet("tree", "[file]")
	if err := fs.Parse(args); err != nil {
		return err
	}
	r := stdin
	if fs.NArg() > 0 {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	n, err := parse.Parse(r)
	if err != nil {
		return err
	}
	_, err = io.WriteString(stdout, nodeTree(n).String())
	return err
}

func nodeTree(n *dom.Node) treeprint.Tree {
	t := treeprint.NewWithRoot(label(n))
	addChildren(t, n)
	return t
}

func addChildren(t treeprint.Tree, n *dom.Node) {
	for _, c := range n.Children() {
		switch c := c.(type) {
		case *dom.Node:
			if c.Len() == 0 {
				t.AddNode(label(c))
				continue
			}
			addChildren(t.AddBranch(label(c)), c)
		case dom.Text:
			t.AddNode(fmt.Sprintf("%q", string(c)))
		case dom.Raw:
			t.AddNode(fmt.Sprintf("raw %q", string(c)))
		default:
			t.AddNode("(embedded)")
		}
	}
}

func label(n *dom.Node) string {
	k := n.Kind()
	switch {
	case dom.IsComment(n), k.Open != "":
		return n.String()
	case k.NoTag:
		return "(" + k.Name + ")"
	}
	var b strings.Builder
	b.WriteString("<" + n.Name())
	if err := attr.WriteMap(&b, n.Attrs()); err != nil {
		b.WriteString(" ?")
	}
	b.WriteString(">")
	return b.String()
}

func writeMarkup(w io.Writer, n dom.Noder, opts []dom.RenderOption) error {
	s, err := n.Node().Markup(opts...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s+"\n")
	return err
}
