// Package xmlconfig edits .NET application configuration files.
package xmlconfig

import (
	"bytes"

	"github.com/beevik/etree"
	"go.trai.ch/rebind/internal/core/domain"
	"go.trai.ch/rebind/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	asmNamespace = "urn:schemas-microsoft-com:asm.v1"
	indentSpaces = 2
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var _ ports.BindingDocument = (*Document)(nil)

// Document is a parsed configuration file.
type Document struct {
	doc      *etree.Document
	original []byte
	bom      bool
}

// Parse reads a configuration document. A leading UTF-8 byte order mark is
// remembered and written back by Bytes.
func Parse(data []byte) (*Document, error) {
	body, bom := bytes.CutPrefix(data, utf8BOM)

	doc := etree.NewDocument()
	doc.ReadSettings.PreserveCData = true
	if err := doc.ReadFromBytes(body); err != nil {
		return nil, zerr.Wrap(err, domain.ErrBindingConfigParseFailed.Error())
	}
	if doc.Root() == nil {
		return nil, zerr.With(domain.ErrBindingConfigParseFailed, "reason", "no root element")
	}

	return &Document{doc: doc, original: data, bom: bom}, nil
}

func newDocument() *Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)
	doc.CreateElement("configuration")
	return &Document{doc: doc}
}

// Redirects returns every dependentAssembly entry that names an assembly.
func (d *Document) Redirects() []domain.BindingRedirect {
	var out []domain.BindingRedirect
	for _, da := range findAll(d.doc.Root(), "dependentAssembly") {
		id := child(da, "assemblyIdentity")
		if id == nil {
			continue
		}
		r := domain.BindingRedirect{
			Name:           id.SelectAttrValue("name", ""),
			PublicKeyToken: id.SelectAttrValue("publicKeyToken", ""),
			Culture:        id.SelectAttrValue("culture", ""),
		}
		if br := child(da, "bindingRedirect"); br != nil {
			r.NewVersion = br.SelectAttrValue("newVersion", "")
		}
		out = append(out, r)
	}
	return out
}

// ReplaceRedirects drops every dependentAssembly entry in the document and
// writes redirects into the first assemblyBinding under configuration/runtime.
func (d *Document) ReplaceRedirects(redirects []domain.BindingRedirect) {
	root := d.doc.Root()
	for _, da := range findAll(root, "dependentAssembly") {
		da.Parent().RemoveChild(da)
	}

	container := d.container()
	for _, r := range redirects {
		da := container.CreateElement("dependentAssembly")
		da.Space = container.Space

		id := da.CreateElement("assemblyIdentity")
		id.Space = container.Space
		id.CreateAttr("name", r.Name)
		if r.PublicKeyToken != "" {
			id.CreateAttr("publicKeyToken", r.PublicKeyToken)
		}
		id.CreateAttr("culture", r.Culture)

		br := da.CreateElement("bindingRedirect")
		br.Space = container.Space
		br.CreateAttr("oldVersion", r.OldVersion())
		br.CreateAttr("newVersion", r.NewVersion)
	}
}

// container returns the single assemblyBinding element, creating the path
// to it when missing. Other assemblyBinding elements left empty are removed.
func (d *Document) container() *etree.Element {
	root := d.doc.Root()

	runtime := child(root, "runtime")
	if runtime == nil {
		runtime = root.CreateElement("runtime")
	}

	var first *etree.Element
	for _, ab := range children(runtime, "assemblyBinding") {
		if first == nil {
			first = ab
			continue
		}
		if len(ab.ChildElements()) == 0 {
			runtime.RemoveChild(ab)
		}
	}
	if first == nil {
		first = runtime.CreateElement("assemblyBinding")
		first.CreateAttr("xmlns", asmNamespace)
	}
	return first
}

// Original returns the loaded bytes, nil for a new document.
func (d *Document) Original() []byte {
	return d.original
}

// Bytes serializes the document with two-space indentation.
func (d *Document) Bytes() ([]byte, error) {
	d.doc.Indent(indentSpaces)

	data, err := d.doc.WriteToBytes()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrBindingConfigWriteFailed.Error())
	}
	if d.bom {
		data = append(append([]byte{}, utf8BOM...), data...)
	}
	return data, nil
}

// child returns the first direct child with the given local name.
func child(e *etree.Element, tag string) *etree.Element {
	for _, c := range e.ChildElements() {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

func children(e *etree.Element, tag string) []*etree.Element {
	var out []*etree.Element
	for _, c := range e.ChildElements() {
		if c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}

// findAll returns every descendant of e with the given local name,
// regardless of namespace prefix.
func findAll(e *etree.Element, tag string) []*etree.Element {
	var out []*etree.Element
	for _, c := range e.ChildElements() {
		if c.Tag == tag {
			out = append(out, c)
			continue
		}
		out = append(out, findAll(c, tag)...)
	}
	return out
}
