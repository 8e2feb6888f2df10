// internal/models/game.go
package models

// Game is one emulated title as served by the catalog.
type Game struct {
	ID              string  `json:"id"`
	Slug            string  `json:"slug,omitempty"`
	Title           string  `json:"title"`
	Platform        string  `json:"platform"`
	Console         string  `json:"console"`
	Category        string  `json:"category"`
	CategoryID      string  `json:"categoryId"`
	Image           string  `json:"image"`
	Rating          float64 `json:"rating"`
	Downloads       int64   `json:"downloads"`
	Year            int     `json:"year"`
	Region          string  `json:"region"`
	FileName        string  `json:"fileName"`
	Size            string  `json:"size"`
	DownloadURL     string  `json:"downloadUrl"`
	Description     *string `json:"description"`
	LongDescription *string `json:"longDescription"`
	ReviewCount     int     `json:"reviewCount"`
}
