package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strings"
	"text/template"

	"uml-generator/internal/resolve"
	"uml-generator/internal/uml"
)

// DefaultHeader is the first line of every generated file.
const DefaultHeader = "// Code generated by uml-generator. DO NOT EDIT."

// Config holds configuration for code generation.
type Config struct {
	// PackageName is the name of the generated package.
	PackageName string
	// RuntimeImport is the import path of the properties runtime package.
	RuntimeImport string
	// Header is used when Write is called without one.
	Header string
	// GenerateComments enables the notice comments collected during resolution.
	GenerateComments bool
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		PackageName:      "model",
		RuntimeImport:    "uml-generator/properties",
		Header:           DefaultHeader,
		GenerateComments: true,
	}
}

// Writer collects resolved descriptors and renders them as one Go file.
// A Writer is used for a single generation run.
type Writer struct {
	config Config

	comments     []string
	classes      []*uml.Class
	enumerations []*uml.Enumeration
	attributes   []resolve.Attribute
	associations [][2]*resolve.End
	redefines    []*resolve.End
	unions       []*resolve.DerivedUnion
	operations   []resolve.Operation
}

var _ resolve.Emitter = (*Writer)(nil)

// NewWriter creates a new Writer with the given configuration.
func NewWriter(config Config) *Writer {
	return &Writer{config: config}
}

// Comment records a notice for the generated file.
func (w *Writer) Comment(text string) {
	w.comments = append(w.comments, text)
}

// ClassDef records a class declaration.
func (w *Writer) ClassDef(c *uml.Class) {
	w.classes = append(w.classes, c)
}

// Enumeration records an enumeration declaration.
func (w *Writer) Enumeration(e *uml.Enumeration) {
	w.enumerations = append(w.enumerations, e)
}

// Attribute records a scalar or enumeration attribute.
func (w *Writer) Attribute(a resolve.Attribute) {
	w.attributes = append(w.attributes, a)
}

// Association records a navigable association end and its opposite.
func (w *Writer) Association(head, tail *resolve.End) {
	w.associations = append(w.associations, [2]*resolve.End{head, tail})
}

// Redefine records a redefining association end.
func (w *Writer) Redefine(e *resolve.End) {
	w.redefines = append(w.redefines, e)
}

// DerivedUnion records a derived union and its members.
func (w *Writer) DerivedUnion(u *resolve.DerivedUnion) {
	w.unions = append(w.unions, u)
}

// Operation records a class operation.
func (w *Writer) Operation(o resolve.Operation) {
	w.operations = append(w.operations, o)
}

// FormatError reports generated source that go/format rejected. Source holds
// the unformatted text.
type FormatError struct {
	Source []byte
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("formatting code: %v", e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Write renders everything collected so far and writes the formatted source
// to out. An empty header falls back to the configured one.
func (w *Writer) Write(header string, out io.Writer) error {
	if header == "" {
		header = w.config.Header
	}

	data, err := w.buildTemplateData(header)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return &FormatError{Source: buf.Bytes(), Err: err}
	}

	if _, err := out.Write(formatted); err != nil {
		return fmt.Errorf("writing generated code: %w", err)
	}

	return nil
}

// Generate emits p through a new Writer and returns the formatted source.
func Generate(p *resolve.Plan, config Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := resolve.Emit(p, NewWriter(config), config.Header, &buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// commentLine flattens text into a single comment line.
func commentLine(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Template for the generated model file

var fileTemplate = template.Must(template.New("model").Parse(`{{.Header}}

package {{.PackageName}}
{{if .Imports}}
import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{end}}
{{range .Comments}}// {{.}}
{{end}}
{{if .Classes}}
var (
{{range .Classes}}	{{.Ident}} = {{$.Runtime}}.NewClass({{.Name}}{{range .Generals}}, {{.}}{{end}})
{{end}})
{{end}}
{{if .Enumerations}}
var (
{{range .Enumerations}}	{{.Ident}} = {{$.Runtime}}.NewEnumeration({{.Name}}{{range .Literals}}, {{.}}{{end}})
{{end}})
{{end}}
{{if .HasInit}}
func init() {
{{range .Properties}}{{if .Comment}}	// {{.Comment}}
{{end}}	{{.Class}}.Add({{.Expr}})
{{end}}{{if .Subsets}}
{{range .Subsets}}	{{$.Runtime}}.Subsets({{.Union}}{{range .Members}},
		{{.}}{{end}})
{{end}}{{end}}{{if .Operations}}
{{range .Operations}}	{{.Class}}.AddOperation({{.Name}})
{{end}}{{end}}}
{{end}}
{{if .Skipped}}
// Not generated:
{{range .Skipped}}//   - {{.}}
{{end}}{{end}}
`))
