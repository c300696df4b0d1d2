// This file provides per-tag constructors built on Elem.
package el

import "golang.org/x/net/html/atom"

// Document

func Html(args ...any) *Node {
	return Elem(atom.Html.String(), args...)
}
func Head(args ...any) *Node {
	return Elem(atom.Head.String(), args...)
}
func Body(args ...any) *Node {
	return Elem(atom.Body.String(), args...)
}
func Title(args ...any) *Node {
	return Elem(atom.Title.String(), args...)
}
func Meta(args ...any) *Node {
	return Elem(atom.Meta.String(), args...)
}
func LinkEl(args ...any) *Node {
	return Elem(atom.Link.String(), args...)
}
func Base(args ...any) *Node {
	return Elem(atom.Base.String(), args...)
}
func Style(args ...any) *Node {
	return Elem(atom.Style.String(), args...)
}
func Script(args ...any) *Node {
	return Elem(atom.Script.String(), args...)
}
func Noscript(args ...any) *Node {
	return Elem(atom.Noscript.String(), args...)
}

// Sections

func Header(args ...any) *Node {
	return Elem(atom.Header.String(), args...)
}
func Footer(args ...any) *Node {
	return Elem(atom.Footer.String(), args...)
}
func Main(args ...any) *Node {
	return Elem(atom.Main.String(), args...)
}
func Nav(args ...any) *Node {
	return Elem(atom.Nav.String(), args...)
}
func Section(args ...any) *Node {
	return Elem(atom.Section.String(), args...)
}
func Article(args ...any) *Node {
	return Elem(atom.Article.String(), args...)
}
func Aside(args ...any) *Node {
	return Elem(atom.Aside.String(), args...)
}
func H1(args ...any) *Node {
	return Elem(atom.H1.String(), args...)
}
func H2(args ...any) *Node {
	return Elem(atom.H2.String(), args...)
}
func H3(args ...any) *Node {
	return Elem(atom.H3.String(), args...)
}
func H4(args ...any) *Node {
	return Elem(atom.H4.String(), args...)
}
func H5(args ...any) *Node {
	return Elem(atom.H5.String(), args...)
}
func H6(args ...any) *Node {
	return Elem(atom.H6.String(), args...)
}

// Grouping

func Div(args ...any) *Node {
	return Elem(atom.Div.String(), args...)
}
func P(args ...any) *Node {
	return Elem(atom.P.String(), args...)
}
func Span(args ...any) *Node {
	return Elem(atom.Span.String(), args...)
}
func Pre(args ...any) *Node {
	return Elem(atom.Pre.String(), args...)
}
func Blockquote(args ...any) *Node {
	return Elem(atom.Blockquote.String(), args...)
}
func Ul(args ...any) *Node {
	return Elem(atom.Ul.String(), args...)
}
func Ol(args ...any) *Node {
	return Elem(atom.Ol.String(), args...)
}
func Li(args ...any) *Node {
	return Elem(atom.Li.String(), args...)
}
func Dl(args ...any) *Node {
	return Elem(atom.Dl.String(), args...)
}
func Dt(args ...any) *Node {
	return Elem(atom.Dt.String(), args...)
}
func Dd(args ...any) *Node {
	return Elem(atom.Dd.String(), args...)
}
func Hr(args ...any) *Node {
	return Elem(atom.Hr.String(), args...)
}
func Figure(args ...any) *Node {
	return Elem(atom.Figure.String(), args...)
}
func Figcaption(args ...any) *Node {
	return Elem(atom.Figcaption.String(), args...)
}

// Text-level

func A(args ...any) *Node {
	return Elem(atom.A.String(), args...)
}
func Strong(args ...any) *Node {
	return Elem(atom.Strong.String(), args...)
}
func Em(args ...any) *Node {
	return Elem(atom.Em.String(), args...)
}
func B(args ...any) *Node {
	return Elem(atom.B.String(), args...)
}
func I(args ...any) *Node {
	return Elem(atom.I.String(), args...)
}
func U(args ...any) *Node {
	return Elem(atom.U.String(), args...)
}
func Small(args ...any) *Node {
	return Elem(atom.Small.String(), args...)
}
func Mark(args ...any) *Node {
	return Elem(atom.Mark.String(), args...)
}
func Code(args ...any) *Node {
	return Elem(atom.Code.String(), args...)
}
func Kbd(args ...any) *Node {
	return Elem(atom.Kbd.String(), args...)
}
func Abbr(args ...any) *Node {
	return Elem(atom.Abbr.String(), args...)
}
func Time_(args ...any) *Node {
	return Elem(atom.Time.String(), args...)
}
func Br(args ...any) *Node {
	return Elem(atom.Br.String(), args...)
}

// Forms

func Form(args ...any) *Node {
	return Elem(atom.Form.String(), args...)
}
func Input(args ...any) *Node {
	return Elem(atom.Input.String(), args...)
}
func Textarea(args ...any) *Node {
	return Elem(atom.Textarea.String(), args...)
}
func Select(args ...any) *Node {
	return Elem(atom.Select.String(), args...)
}
func Option(args ...any) *Node {
	return Elem(atom.Option.String(), args...)
}
func Optgroup(args ...any) *Node {
	return Elem(atom.Optgroup.String(), args...)
}
func Button(args ...any) *Node {
	return Elem(atom.Button.String(), args...)
}
func Label(args ...any) *Node {
	return Elem(atom.Label.String(), args...)
}
func Fieldset(args ...any) *Node {
	return Elem(atom.Fieldset.String(), args...)
}
func Legend(args ...any) *Node {
	return Elem(atom.Legend.String(), args...)
}

// Tables

func Table(args ...any) *Node {
	return Elem(atom.Table.String(), args...)
}
func Thead(args ...any) *Node {
	return Elem(atom.Thead.String(), args...)
}
func Tbody(args ...any) *Node {
	return Elem(atom.Tbody.String(), args...)
}
func Tfoot(args ...any) *Node {
	return Elem(atom.Tfoot.String(), args...)
}
func Tr(args ...any) *Node {
	return Elem(atom.Tr.String(), args...)
}
func Th(args ...any) *Node {
	return Elem(atom.Th.String(), args...)
}
func Td(args ...any) *Node {
	return Elem(atom.Td.String(), args...)
}
func Caption(args ...any) *Node {
	return Elem(atom.Caption.String(), args...)
}

// Embedded

func Img(args ...any) *Node {
	return Elem(atom.Img.String(), args...)
}
func Picture(args ...any) *Node {
	return Elem(atom.Picture.String(), args...)
}
func Video(args ...any) *Node {
	return Elem(atom.Video.String(), args...)
}
func Audio(args ...any) *Node {
	return Elem(atom.Audio.String(), args...)
}
func Iframe(args ...any) *Node {
	return Elem(atom.Iframe.String(), args...)
}
func Canvas(args ...any) *Node {
	return Elem(atom.Canvas.String(), args...)
}

// Interactive

func Details(args ...any) *Node {
	return Elem(atom.Details.String(), args...)
}
func Summary(args ...any) *Node {
	return Elem(atom.Summary.String(), args...)
}
func Dialog(args ...any) *Node {
	return Elem(atom.Dialog.String(), args...)
}
func Template(args ...any) *Node {
	return Elem(atom.Template.String(), args...)
}
