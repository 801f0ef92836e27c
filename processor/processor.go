/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package processor

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/printer"
	"go/token"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/template"

	"github.com/suparena/componentstore/component"
	"github.com/suparena/componentstore/errors"
)

const registryImport = "github.com/suparena/componentstore/registry"

// DefaultOutput is the file name written when Config.Output is empty.
const DefaultOutput = "accessors_gen.go"

// Config controls one generator run.
type Config struct {
	// Dir is the package directory to scan.
	Dir string
	// Output is the generated file name, relative to Dir.
	Output string
	// Types restricts generation to these type names. Empty means every component.
	Types []string
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Run scans cfg.Dir and writes the accessor tables for its components.
func Run(cfg Config) error {
	if cfg.Dir == "" {
		return errors.NewValidationError("dir", "package directory is required")
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	src, err := GenerateDir(cfg.Dir, cfg.Output, cfg.Types)
	if err != nil {
		return err
	}

	out := filepath.Join(cfg.Dir, cfg.Output)
	if err := os.WriteFile(out, src, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	logger.Info("Generated component accessors.", "file", out)
	return nil
}

// GenerateDir parses every non-test Go file in dir except skip and returns the
// generated source.
func GenerateDir(dir, skip string, only []string) ([]byte, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read package directory: %w", err)
	}

	fset := token.NewFileSet()
	var files []*ast.File
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") || name == skip {
			continue
		}
		f, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.SkipObjectResolution)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		files = append(files, f)
	}
	return generate(fset, files, only)
}

// Generate is GenerateDir for a single in-memory file.
func Generate(filename string, src []byte) ([]byte, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return generate(fset, []*ast.File{f}, nil)
}

type method struct {
	params   []ast.Expr
	results  []ast.Expr
	variadic bool
	imports  map[string]string
}

type genProperty struct {
	Name      string
	Getter    string
	Setter    string
	ParamType string
}

type genType struct {
	Name       string
	Properties []genProperty
}

type genFile struct {
	Package string
	Imports []string
	Types   []genType
}

func generate(fset *token.FileSet, files []*ast.File, only []string) ([]byte, error) {
	if len(files) == 0 {
		return nil, errors.NewValidationError("dir", "no Go files to scan")
	}
	pkg := files[0].Name.Name

	methods := make(map[string]map[string]method)
	for _, f := range files {
		if f.Name.Name != pkg {
			return nil, errors.NewValidationError("package", fmt.Sprintf("found packages %s and %s", pkg, f.Name.Name))
		}
		imports := fileImports(f)
		for _, decl := range f.Decls {
			fd, ok := decl.(*ast.FuncDecl)
			if !ok || fd.Recv == nil || len(fd.Recv.List) != 1 {
				continue
			}
			recv, ok := receiverName(fd.Recv.List[0].Type)
			if !ok {
				continue
			}
			if methods[recv] == nil {
				methods[recv] = make(map[string]method)
			}
			params, variadic := expand(fd.Type.Params)
			results, _ := expand(fd.Type.Results)
			methods[recv][fd.Name.Name] = method{params: params, results: results, variadic: variadic, imports: imports}
		}
	}

	wanted := make(map[string]bool, len(only))
	for _, name := range only {
		wanted[name] = true
	}

	out := genFile{Package: pkg}
	used := make(map[string]string)
	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ms := methods[name]
		if len(wanted) > 0 && !wanted[name] {
			continue
		}
		if !isComponent(name, ms) {
			continue
		}
		gt := genType{Name: name}
		for setter, m := range ms {
			if !strings.HasPrefix(setter, "Set") || len(setter) <= 3 || len(m.params) != 1 || len(m.results) != 0 || m.variadic {
				continue
			}
			getter := setter[3:]
			g, ok := ms[getter]
			if !ok || len(g.params) != 0 || len(g.results) != 1 {
				continue
			}
			paramType, err := exprString(fset, m.params[0])
			if err != nil {
				return nil, err
			}
			collectImports(m.params[0], m.imports, used)
			gt.Properties = append(gt.Properties, genProperty{
				Name:      component.PropertyName(getter),
				Getter:    getter,
				Setter:    setter,
				ParamType: paramType,
			})
		}
		sort.Slice(gt.Properties, func(i, j int) bool { return gt.Properties[i].Name < gt.Properties[j].Name })
		out.Types = append(out.Types, gt)
	}

	for name, p := range used {
		if importName(p) == name {
			out.Imports = append(out.Imports, strconv.Quote(p))
		} else {
			out.Imports = append(out.Imports, name+" "+strconv.Quote(p))
		}
	}
	sort.Strings(out.Imports)

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to render accessors: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated source: %w", err)
	}
	return src, nil
}

// isComponent reports whether the declared methods include Copy(*name).
func isComponent(name string, ms map[string]method) bool {
	cp, ok := ms["Copy"]
	if !ok || len(cp.params) != 1 || len(cp.results) != 0 {
		return false
	}
	star, ok := cp.params[0].(*ast.StarExpr)
	if !ok {
		return false
	}
	id, ok := star.X.(*ast.Ident)
	return ok && id.Name == name
}

func receiverName(expr ast.Expr) (string, bool) {
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	id, ok := expr.(*ast.Ident)
	if !ok {
		// generic receivers are left to the runtime fallback
		return "", false
	}
	return id.Name, true
}

func expand(fl *ast.FieldList) ([]ast.Expr, bool) {
	if fl == nil {
		return nil, false
	}
	var out []ast.Expr
	variadic := false
	for _, field := range fl.List {
		n := len(field.Names)
		if n == 0 {
			n = 1
		}
		if _, ok := field.Type.(*ast.Ellipsis); ok {
			variadic = true
		}
		for range n {
			out = append(out, field.Type)
		}
	}
	return out, variadic
}

func exprString(fset *token.FileSet, expr ast.Expr) (string, error) {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, fset, expr); err != nil {
		return "", fmt.Errorf("failed to print type: %w", err)
	}
	return buf.String(), nil
}

func fileImports(f *ast.File) map[string]string {
	imports := make(map[string]string, len(f.Imports))
	for _, spec := range f.Imports {
		p, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}
		name := importName(p)
		if spec.Name != nil {
			name = spec.Name.Name
		}
		imports[name] = p
	}
	return imports
}

func collectImports(expr ast.Expr, imports, used map[string]string) {
	ast.Inspect(expr, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}
		if id, ok := sel.X.(*ast.Ident); ok {
			if p, ok := imports[id.Name]; ok {
				used[id.Name] = p
			}
		}
		return false
	})
}

// importName guesses the package name of an import path: gopkg.in/yaml.v3 is
// yaml and example.com/mod/v2 is mod.
func importName(p string) string {
	base := path.Base(p)
	if len(base) > 1 && base[0] == 'v' {
		if _, err := strconv.Atoi(base[1:]); err == nil {
			base = path.Base(path.Dir(p))
		}
	}
	if i := strings.Index(base, ".v"); i > 0 {
		base = base[:i]
	}
	return base
}

var fileTemplate = template.Must(template.New("accessors").Parse(`// Code generated by componentgen. DO NOT EDIT.

package {{.Package}}

import (
	"reflect"

	"` + registryImport + `"
{{- range .Imports}}
	{{.}}
{{- end}}
)

func init() {
{{- range $t := .Types}}
	registry.RegisterGenerated(reflect.TypeFor[{{$t.Name}}](), registry.Generated{
		New:  func() any { return new({{$t.Name}}) },
		Copy: func(dst, src any) { dst.(*{{$t.Name}}).Copy(src.(*{{$t.Name}})) },
		Accessors: map[string]registry.AccessorFuncs{
{{- range $t.Properties}}
			{{printf "%q" .Name}}: {
				Get: func(c any) any { return c.(*{{$t.Name}}).{{.Getter}}() },
				Set: func(c, v any) { x, _ := v.({{.ParamType}}); c.(*{{$t.Name}}).{{.Setter}}(x) },
			},
{{- end}}
		},
	})
{{- end}}
}
`))
