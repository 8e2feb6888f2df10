// internal/models/rom_data.go
package models

type Stats struct {
	TotalGames      int    `json:"totalGames"`
	TotalCategories int    `json:"totalCategories"`
	TotalDownloads  string `json:"totalDownloads"`
	ActiveUsers     string `json:"activeUsers"`
}

// RomData is the whole catalog. Games keep fixture-file order, then source
// order within a file.
type RomData struct {
	Categories []Category `json:"categories"`
	Games      []Game     `json:"games"`
	Stats      Stats      `json:"stats"`
}

// EmptyRomData is the well-formed catalog returned when no fixtures load.
func EmptyRomData() *RomData {
	return &RomData{
		Categories: []Category{},
		Games:      []Game{},
		Stats: Stats{
			TotalDownloads: "0",
			ActiveUsers:    "0",
		},
	}
}
