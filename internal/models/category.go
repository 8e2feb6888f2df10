// internal/models/category.go
package models

// Category groups the games of one platform. GameCount and DownloadCount
// come from authored tables when available and may differ from the live
// number of games carrying this category id.
type Category struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Image         string `json:"image"`
	GameCount     int    `json:"gameCount"`
	DownloadCount int64  `json:"downloadCount"`
}
