package render

import (
	"bytes"
	_ "embed"
	"html/template"
	"strconv"

	"shivamroadways/billing"
	"shivamroadways/models"
)

//go:embed templates/slip.html
var slipHTML string

// Every document carries the same two copies, each forced onto its own
// printed page.
var copyTitles = []string{"Original", "Duplicate"}

const slipCSS = `
@page { size: A4; margin: 20px; }
body { font-family: Arial, Helvetica, sans-serif; font-size: 12px; margin: 0; padding: 0; }
.slip-copy { page-break-after: always; page-break-inside: avoid; }
.slip-copy:last-child { page-break-after: auto; }
.copy-separator { border: none; border-top: 1px dashed #777; margin: 10px 0; }
.copy-label { text-align: right; font-weight: bold; text-transform: uppercase; }
.header { text-align: center; }
.header h1 { margin: 2px 0; }
.branches { display: flex; flex-wrap: wrap; gap: 6px; font-size: 9px; border: 1px solid #000; padding: 4px; }
.branch { width: 32%; }
.meta, .items, .summary { width: 100%; border-collapse: collapse; margin-top: 6px; }
.items th, .items td { border: 1px solid #000; padding: 3px 5px; text-align: center; }
.parties { display: flex; justify-content: space-between; margin-top: 6px; }
.party { width: 48%; border: 1px solid #000; padding: 5px; }
.summary-wrap { display: flex; justify-content: space-between; margin-top: 6px; }
.summary { width: 48%; }
.summary td { border: 1px solid #000; padding: 3px 5px; }
.summary td:last-child { text-align: right; }
.grand-total td { font-size: 15px; background: #eee; }
.badge { padding: 1px 5px; border-radius: 3px; font-size: 10px; }
.badge-paid { background: #c8e6c9; }
.badge-toPay { background: #ffe0b2; }
.badge-none { background: #e0e0e0; }
.in-words { margin-top: 4px; font-style: italic; }
.comments { margin-top: 4px; border: 1px dashed #000; padding: 4px; }
.signatures { display: flex; justify-content: space-between; margin-top: 24px; }
.sig { text-align: center; }
.sig-line { border-top: 1px solid #000; width: 160px; margin-bottom: 3px; }
.sig-img { height: 40px; display: block; margin: 0 auto 3px; }
.logo { height: 48px; }
`

// Renderer binds a SlipData to the shared slip template. The screen preview,
// the print document and the PDF all run through the same template so their
// content cannot drift.
type Renderer struct {
	tmpl *template.Template
}

func New() (*Renderer, error) {
	tmpl, err := template.New("slip").Funcs(template.FuncMap{
		"inr":  billing.FormatINR,
		"sinr": billing.FormatSignedINR,
		"num":  formatNum,
		"qty":  func(n models.FlexNumber) string { return formatNum(n.Or(1)) },
		"wt":   func(n models.FlexNumber) string { return formatNum(n.Or(0)) },
		"famt": func(n models.FlexNumber) string { return billing.FormatINR(n.Or(0)) },
		"inc":  func(i int) int { return i + 1 },
	}).Parse(slipHTML)
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Screen renders the two-copy document as a body-only HTML fragment for the
// on-screen preview. A missing booking renders nothing.
func (r *Renderer) Screen(data *models.SlipData) (string, error) {
	return r.copies(data)
}

// PrintDocument renders a standalone, self-styled HTML document that opens
// the browser print dialog on load and closes itself afterward.
func (r *Renderer) PrintDocument(data *models.SlipData) (string, error) {
	body, err := r.copies(data)
	if err != nil || body == "" {
		return "", err
	}
	return wrapDocument(body, true), nil
}

// copies executes the slip template once per copy title and joins the copies
// with a labeled separator.
func (r *Renderer) copies(data *models.SlipData) (string, error) {
	if data == nil || data.Booking == nil {
		return "", nil
	}

	var out bytes.Buffer
	for i, title := range copyTitles {
		if i > 0 {
			out.WriteString(`<hr class="copy-separator">`)
		}
		d := *data
		d.CopyTitle = title

		out.WriteString(`<div class="slip-copy">`)
		if err := r.tmpl.Execute(&out, &d); err != nil {
			return "", err
		}
		out.WriteString(`</div>`)
	}
	return out.String(), nil
}

func wrapDocument(body string, autoPrint bool) string {
	var out bytes.Buffer
	out.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"UTF-8\">\n<style>")
	out.WriteString(slipCSS)
	out.WriteString("</style>\n</head>\n<body>")
	out.WriteString(body)
	if autoPrint {
		out.WriteString(`<script>window.onload = function () { window.print(); window.close(); };</script>`)
	}
	out.WriteString("</body></html>")
	return out.String()
}
