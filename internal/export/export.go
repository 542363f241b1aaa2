// Package export renders a newsletter into its downloadable formats. Both
// renderers are pure: the same newsletter value always yields the same bytes.
package export

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"dealdigest/internal/domain/entity"
)

// Content types and filename for exported newsletters.
const (
	ContentTypePlainText = "text/plain; charset=utf-8"
	ContentTypeHTML      = "text/html; charset=utf-8"
)

// FileName is the suggested download filename for the plain-text export.
func FileName(n *entity.Newsletter) string {
	return fmt.Sprintf("newsletter-%s.txt", n.ID)
}

// storeGroup bundles a store's deals for section-by-section rendering,
// preserving the newsletter's ranked order within each group.
type storeGroup struct {
	StoreName string
	Deals     []*entity.Deal
}

// groupByStore partitions deals by store in StoresIncluded order. Deals whose
// store fell out of StoresIncluded (shouldn't happen for well-formed
// newsletters) are appended as trailing groups in first-appearance order.
func groupByStore(n *entity.Newsletter) []storeGroup {
	index := make(map[string]int, len(n.StoresIncluded))
	groups := make([]storeGroup, 0, len(n.StoresIncluded))
	for _, name := range n.StoresIncluded {
		index[name] = len(groups)
		groups = append(groups, storeGroup{StoreName: name})
	}

	for _, deal := range n.Deals {
		i, ok := index[deal.StoreName]
		if !ok {
			i = len(groups)
			index[deal.StoreName] = i
			groups = append(groups, storeGroup{StoreName: deal.StoreName})
		}
		groups[i].Deals = append(groups[i].Deals, deal)
	}

	return groups
}

// ToPlainText renders the newsletter as a section-by-section text listing:
// greeting, per-store deal groups, aggregate savings line, recipe suggestions
// if present, closing.
func ToPlainText(n *entity.Newsletter) string {
	var b strings.Builder

	b.WriteString(n.Greeting)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Your %s deal digest for %s\n",
		n.Frequency, n.GeneratedAt.UTC().Format("January 2, 2006"))
	b.WriteString(strings.Repeat("=", 40))
	b.WriteString("\n")

	for _, group := range groupByStore(n) {
		b.WriteString("\n")
		b.WriteString(group.StoreName)
		b.WriteString("\n")
		b.WriteString(strings.Repeat("-", len(group.StoreName)))
		b.WriteString("\n")
		for _, deal := range group.Deals {
			fmt.Fprintf(&b, "  %s — $%.2f", deal.ProductName, deal.SalePrice)
			if deal.Unit != "" {
				fmt.Fprintf(&b, " %s", deal.Unit)
			}
			fmt.Fprintf(&b, " (reg $%.2f, %d%% off)", deal.RegularPrice, deal.DiscountPercent())
			if deal.Featured {
				b.WriteString(" *featured*")
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Total deals: %d\n", n.TotalDealsCount)
	fmt.Fprintf(&b, "Potential savings: $%.2f\n", n.TotalPotentialSavings)

	if n.Commentary != "" {
		b.WriteString("\n")
		b.WriteString(n.Commentary)
		b.WriteString("\n")
	}

	if len(n.Recipes) > 0 {
		b.WriteString("\nRecipe ideas\n")
		for _, recipe := range n.Recipes {
			fmt.Fprintf(&b, "  %s: %s\n", recipe.Title, recipe.Description)
		}
	}

	b.WriteString("\n")
	b.WriteString(n.Closing)
	b.WriteString("\n")

	return b.String()
}

var htmlTemplate = template.Must(template.New("newsletter").Funcs(template.FuncMap{
	"price": func(v float64) string { return fmt.Sprintf("$%.2f", v) },
	"date":  func(t time.Time) string { return t.UTC().Format("January 2, 2006") },
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Deal Digest — {{date .Newsletter.GeneratedAt}}</title>
</head>
<body>
<p>{{.Newsletter.Greeting}}</p>
<h1>Your {{.Newsletter.Frequency}} deal digest</h1>
<p><em>{{date .Newsletter.GeneratedAt}}</em></p>
{{range .Groups}}<h2>{{.StoreName}}</h2>
<ul>
{{range .Deals}}<li>{{.ProductName}} — <strong>{{price .SalePrice}}</strong>{{if .Unit}} {{.Unit}}{{end}} <del>{{price .RegularPrice}}</del> ({{.DiscountPercent}}% off){{if .Featured}} ★{{end}}</li>
{{end}}</ul>
{{end}}<p>Total deals: {{.Newsletter.TotalDealsCount}}<br>
Potential savings: <strong>{{price .Newsletter.TotalPotentialSavings}}</strong></p>
{{if .Newsletter.Commentary}}<p>{{.Newsletter.Commentary}}</p>
{{end}}{{if .Newsletter.Recipes}}<h2>Recipe ideas</h2>
<ul>
{{range .Newsletter.Recipes}}<li><strong>{{.Title}}</strong>: {{.Description}}</li>
{{end}}</ul>
{{end}}<p>{{.Newsletter.Closing}}</p>
</body>
</html>
`))

// ToHTML renders the newsletter with the same structure as the plain-text
// export wrapped in minimal markup.
func ToHTML(n *entity.Newsletter) string {
	var b strings.Builder
	data := struct {
		Newsletter *entity.Newsletter
		Groups     []storeGroup
	}{Newsletter: n, Groups: groupByStore(n)}

	// The template operates on in-memory data only; execution cannot fail
	// for a well-formed newsletter.
	if err := htmlTemplate.Execute(&b, data); err != nil {
		return fmt.Sprintf("<!-- render failed: %v -->", err)
	}

	return b.String()
}
