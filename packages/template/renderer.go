package template

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/flosch/pongo2/v6"
)

//go:embed templates
var builtinTemplates embed.FS

func init() {
	// Templates generate YAML and shell text; HTML escaping would corrupt
	// values containing & < > quotes.
	pongo2.SetAutoescape(false)
}

// NotFoundError reports a template reference that resolved to no file in
// either the filesystem search path or the built-in template set.
type NotFoundError struct {
	Ref string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("template %q not found", e.Ref)
}

// Renderer resolves and renders template references.
type Renderer struct {
	builtin fs.FS
}

type Option func(*Renderer)

// WithBuiltinFS replaces the embedded template set, for tests and for hosts
// bundling their own defaults.
func WithBuiltinFS(fsys fs.FS) Option {
	return func(r *Renderer) {
		r.builtin = fsys
	}
}

func NewRenderer(opts ...Option) *Renderer {
	sub, err := fs.Sub(builtinTemplates, "templates")
	if err != nil {
		panic(err)
	}
	r := &Renderer{builtin: sub}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render resolves ref and renders it with vars layered over the default
// context. The directory of ref is searched first, then the built-in set;
// a reference found in neither yields a *NotFoundError. Template includes
// resolve against the same two locations in the same order.
func (r *Renderer) Render(ref string, vars map[string]any) (string, error) {
	src := expandUser(ref)
	dir := filepath.Dir(src)
	name := filepath.Base(src)

	loaders := make([]pongo2.TemplateLoader, 0, 2)
	onDisk := fileExists(src)
	if onDisk {
		local, err := pongo2.NewLocalFileSystemLoader(dir)
		if err != nil {
			return "", fmt.Errorf("opening template directory %s: %w", dir, err)
		}
		loaders = append(loaders, local)
	} else if _, err := fs.Stat(r.builtin, name); err != nil {
		return "", &NotFoundError{Ref: ref}
	}
	loaders = append(loaders, pongo2.NewFSLoader(r.builtin))

	set := pongo2.NewSet("rolespec", loaders...)
	tpl, err := set.FromFile(name)
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", name, err)
	}

	ctx := pongo2.Context{}
	for k, v := range DefaultContext() {
		ctx[k] = v
	}
	for k, v := range vars {
		ctx[k] = v
	}

	text, err := tpl.Execute(ctx)
	if err != nil {
		return "", fmt.Errorf("rendering template %s: %w", name, err)
	}
	return text, nil
}

// RenderTo renders ref with vars and writes the result to dest, replacing
// any existing content.
func (r *Renderer) RenderTo(dest, ref string, vars map[string]any) error {
	text, err := r.Render(ref, vars)
	if err != nil {
		return err
	}
	return WriteFile(expandUser(dest), text)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// expandUser resolves a leading ~ against the current user's home
// directory, leaving the path untouched when the home directory is unknown.
func expandUser(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
