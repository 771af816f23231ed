package models

import (
	"encoding/json"
	"testing"
)

func TestProductDecodesRatingForms(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		rate  float64
		count int
	}{
		{"object", `{"id":1,"rating":{"rate":3.9,"count":120}}`, 3.9, 120},
		{"number", `{"id":1,"rating":4.5}`, 4.5, 0},
		{"null", `{"id":1,"rating":null}`, 0, 0},
		{"missing", `{"id":1}`, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Product
			if err := json.Unmarshal([]byte(tt.body), &p); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if p.Rating.Rate != tt.rate || p.Rating.Count != tt.count {
				t.Fatalf("expected rating %v/%d, got %v/%d", tt.rate, tt.count, p.Rating.Rate, p.Rating.Count)
			}
		})
	}
}

func TestProductRejectsBadRating(t *testing.T) {
	var p Product
	if err := json.Unmarshal([]byte(`{"rating":"high"}`), &p); err == nil {
		t.Fatal("expected error for string rating")
	}
}

func TestUserDecodesNameForms(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"object", `{"name":{"firstname":"john","lastname":"doe"}}`, "john doe"},
		{"string", `{"name":"Leanne Graham"}`, "Leanne Graham"},
		{"first only", `{"name":{"firstname":"kate"}}`, "kate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var u User
			if err := json.Unmarshal([]byte(tt.body), &u); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got := u.Name.String(); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestUserDecodesAddress(t *testing.T) {
	body := `{"id":3,"email":"kevin@gmail.com","address":{"city":"Cullman","street":"Frances Ct","number":86,"zipcode":"29567-1452"}}`
	var u User
	if err := json.Unmarshal([]byte(body), &u); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if u.ID != 3 || u.Address.City != "Cullman" || u.Address.Number != 86 {
		t.Fatalf("unexpected user: %+v", u)
	}
}
