package render

import (
	"html/template"
	"io"
)

// View is one button on the index page.
type View struct {
	Label string
	Path  string
}

var Views = []View{
	{Label: "Products Above Average Price", Path: "/api/products/above-average"},
	{Label: "Top Rated Products", Path: "/api/products/top-rated"},
	{Label: "All Categories", Path: "/api/products/categories"},
	{Label: "Average Price and Rating", Path: "/api/products/averages"},
	{Label: "Top Rated and Lowest Priced", Path: "/api/products/top-rated-cheapest"},
	{Label: "User Product Info", Path: "/api/users/summary"},
}

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Store Insights</title>
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css">
</head>
<body class="container py-4">
  <h1 class="mb-4">Store Insights</h1>
  <div class="mb-4">
  {{range .}}<button class="btn btn-primary me-2 mb-2" data-view="{{.Path}}">{{.Label}}</button>
  {{end}}</div>
  <div id="productInfo"></div>
  <script>
    document.querySelectorAll("button[data-view]").forEach(function (btn) {
      btn.addEventListener("click", async function () {
        const target = document.getElementById("productInfo");
        const resp = await fetch(btn.dataset.view + "?format=html");
        target.innerHTML = resp.ok ? await resp.text() : '<div class="alert alert-danger">Request failed: ' + resp.status + '</div>';
      });
    });
  </script>
</body>
</html>
`))

func Page(w io.Writer) error {
	return page.Execute(w, Views)
}
