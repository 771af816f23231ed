// Package render turns derived views into HTML fragments and CSV.
// It knows nothing about where the data came from.
package render

import (
	"html/template"
	"io"
	"strconv"

	"github.com/gocarina/gocsv"

	"store-insights/internal/models"
)

var funcs = template.FuncMap{
	"num":    formatNumber,
	"fixed2": func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) },
}

var fragments = template.Must(template.New("fragments").Funcs(funcs).Parse(`
{{define "aboveAverage"}}{{range .}}<div class="card mb-3">{{.Title}} - ${{num .Price}}</div>{{end}}{{end}}

{{define "topRated"}}{{range .}}<div class="card mb-3">{{.Title}} - Rating: {{num .Rating.Rate}}</div>{{end}}{{end}}

{{define "categories"}}{{range .}}<div class="card mb-3">{{.}}</div>{{end}}{{end}}

{{define "averages"}}<div class="card mb-3">Average Price: ${{fixed2 .AveragePrice}}</div>
<div class="card mb-3">Average Rating: {{fixed2 .AverageRating}}</div>{{end}}

{{define "topRatedCheapest"}}{{range .}}<div class="card mb-3">{{.Title}} - Rating: {{num .Rating.Rate}} - Price: ${{num .Price}}</div>{{end}}{{end}}

{{define "userSummaries"}}{{range .}}{{$u := .}}<div class="card mb-3">
  <div class="card-header">{{$u.Name}}</div>
  <div class="card-body">
    <p class="card-text">Email: {{$u.Email}}</p>
    <p class="card-text">City: {{$u.City}}</p>
    <ul class="list-group">{{range $i, $title := $u.Products}}<li class="list-group-item">{{$title}} - ${{num (index $u.Prices $i)}}</li>{{end}}</ul>
    <p class="card-text">Total Bill: ${{num $u.TotalBill}}</p>
  </div>
</div>
{{end}}{{end}}
`))

func AboveAverage(w io.Writer, products []models.Product) error {
	return fragments.ExecuteTemplate(w, "aboveAverage", products)
}

func TopRated(w io.Writer, products []models.Product) error {
	return fragments.ExecuteTemplate(w, "topRated", products)
}

func Categories(w io.Writer, categories []string) error {
	return fragments.ExecuteTemplate(w, "categories", categories)
}

func Averages(w io.Writer, avg models.PriceRatingAverages) error {
	return fragments.ExecuteTemplate(w, "averages", avg)
}

func TopRatedCheapest(w io.Writer, products []models.Product) error {
	return fragments.ExecuteTemplate(w, "topRatedCheapest", products)
}

func UserSummaries(w io.Writer, summaries []models.UserProductSummary) error {
	return fragments.ExecuteTemplate(w, "userSummaries", summaries)
}

type productRow struct {
	ID       int     `csv:"id"`
	Title    string  `csv:"title"`
	Price    float64 `csv:"price"`
	Category string  `csv:"category"`
	Rating   float64 `csv:"rating"`
	UserID   int     `csv:"user_id"`
}

// ProductsCSV writes products as CSV with a header row.
func ProductsCSV(w io.Writer, products []models.Product) error {
	rows := make([]productRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, productRow{
			ID:       p.ID,
			Title:    p.Title,
			Price:    p.Price,
			Category: p.Category,
			Rating:   p.Rating.Rate,
			UserID:   p.UserID,
		})
	}
	return gocsv.Marshal(rows, w)
}

// formatNumber prints the shortest representation, e.g. 109.95 or 15.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
