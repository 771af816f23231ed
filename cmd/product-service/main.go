package main

import (
	"encoding/json"
	"log"
	"net/http"
)

type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

type Product struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Rating   Rating  `json:"rating"`
	UserID   int     `json:"userId"`
}

var products = []Product{
	{ID: 1, Title: "Fjallraven - Foldsack No. 1 Backpack", Price: 109.95, Category: "men's clothing", Rating: Rating{3.9, 120}, UserID: 1},
	{ID: 2, Title: "Mens Casual Premium Slim Fit T-Shirts", Price: 22.3, Category: "men's clothing", Rating: Rating{4.1, 259}, UserID: 1},
	{ID: 3, Title: "Mens Cotton Jacket", Price: 55.99, Category: "men's clothing", Rating: Rating{4.7, 500}, UserID: 2},
	{ID: 5, Title: "John Hardy Women's Legends Naga Bracelet", Price: 695, Category: "jewelery", Rating: Rating{4.6, 400}, UserID: 2},
	{ID: 8, Title: "Pierced Owl Rose Gold Plated Stainless Steel Double", Price: 10.99, Category: "jewelery", Rating: Rating{1.9, 100}, UserID: 3},
	{ID: 10, Title: "SanDisk SSD PLUS 1TB Internal SSD", Price: 109, Category: "electronics", Rating: Rating{2.9, 470}, UserID: 3},
	{ID: 14, Title: "Samsung 49-Inch CHG90 Curved Gaming Monitor", Price: 999.99, Category: "electronics", Rating: Rating{2.2, 140}, UserID: 4},
	{ID: 17, Title: "Rain Jacket Women Windbreaker Striped Climbing Raincoats", Price: 39.99, Category: "women's clothing", Rating: Rating{3.8, 679}},
}

func main() {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /products", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(products); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})

	log.Println("Product Service listening on :8083")

	if err := http.ListenAndServe(":8083", mux); err != nil {
		log.Fatal(err)
	}
}
