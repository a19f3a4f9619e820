package model

// Categoryもカタログの参照データ。slugはURL用でユニーク。
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Slug        string `json:"slug"`
}
