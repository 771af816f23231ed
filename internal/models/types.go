package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

type Product struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Rating   Rating  `json:"rating"`
	UserID   int     `json:"userId"`
}

// Rating accepts both a bare number and the {"rate","count"} object.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

func (r *Rating) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		type plain Rating
		var p plain
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		*r = Rating(p)
		return nil
	}
	if string(data) == "null" {
		return nil
	}
	return json.Unmarshal(data, &r.Rate)
}

type User struct {
	ID      int     `json:"id"`
	Name    Name    `json:"name"`
	Email   string  `json:"email"`
	Address Address `json:"address"`
}

// Name accepts both a bare string and the {"firstname","lastname"} object.
type Name struct {
	First string `json:"firstname"`
	Last  string `json:"lastname"`
}

func (n *Name) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		type plain Name
		var p plain
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		*n = Name(p)
		return nil
	}
	if string(data) == "null" {
		return nil
	}
	var full string
	if err := json.Unmarshal(data, &full); err != nil {
		return err
	}
	*n = Name{First: full}
	return nil
}

func (n Name) String() string {
	return strings.TrimSpace(n.First + " " + n.Last)
}

type Address struct {
	City    string `json:"city"`
	Street  string `json:"street"`
	Number  int    `json:"number"`
	Zipcode string `json:"zipcode"`
}

type UserProductSummary struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	City      string    `json:"city"`
	Products  []string  `json:"products"`
	Prices    []float64 `json:"prices"`
	TotalBill float64   `json:"totalBill"`
}

type PriceRatingAverages struct {
	AveragePrice  float64 `json:"averagePrice"`
	AverageRating float64 `json:"averageRating"`
}
