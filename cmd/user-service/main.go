package main

import (
	"encoding/json"
	"log"
	"net/http"
)

type Name struct {
	First string `json:"firstname"`
	Last  string `json:"lastname"`
}

type Address struct {
	City    string `json:"city"`
	Street  string `json:"street"`
	Number  int    `json:"number"`
	Zipcode string `json:"zipcode"`
}

type User struct {
	ID      int     `json:"id"`
	Email   string  `json:"email"`
	Name    Name    `json:"name"`
	Address Address `json:"address"`
}

var users = []User{
	{ID: 1, Email: "john@gmail.com", Name: Name{"john", "doe"}, Address: Address{"kilcoole", "new road", 7682, "12926-3874"}},
	{ID: 2, Email: "morrison@gmail.com", Name: Name{"david", "morrison"}, Address: Address{"kilcoole", "Lovers Ln", 7267, "12926-3874"}},
	{ID: 3, Email: "kevin@gmail.com", Name: Name{"kevin", "ryan"}, Address: Address{"Cullman", "Frances Ct", 86, "29567-1452"}},
	{ID: 4, Email: "don@gmail.com", Name: Name{"don", "romer"}, Address: Address{"San Antonio", "Hunters Creek Dr", 6454, "98234-1734"}},
	{ID: 5, Email: "derek@gmail.com", Name: Name{"derek", "powell"}, Address: Address{"san Antonio", "adams St", 245, "80796-1234"}},
}

func main() {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /users", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(users); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})

	log.Println("User Service listening on :8081")
	if err := http.ListenAndServe(":8081", mux); err != nil {
		log.Fatal(err)
	}
}
