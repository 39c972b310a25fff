package entity

type Category struct {
	Name         string `json:"name" yaml:"name"`
	ProductCount int    `json:"product_count" yaml:"product_count"`
	ImageURL     string `json:"image_url" yaml:"image_url"`
}

type Product struct {
	Category string `json:"category" yaml:"category"`
	Title    string `json:"title" yaml:"title"`
	ImageURL string `json:"image_url" yaml:"image_url"`
}

type GalleryImage struct {
	ThumbnailURL string `json:"thumbnail_url" yaml:"thumbnail_url"`
	FullURL      string `json:"full_url" yaml:"full_url"`
}

type StatCard struct {
	Label  string `json:"label" yaml:"label"`
	Value  string `json:"value" yaml:"value"`
	Change string `json:"change" yaml:"change"`
}

type ChartPoint struct {
	Label string  `json:"label" yaml:"label"`
	Value float64 `json:"value" yaml:"value"`
}
