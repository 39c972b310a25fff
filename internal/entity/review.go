package entity

const (
	MinRating = 1
	MaxRating = 5
)

type Testimonial struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Comment string `json:"comment"`
	User    string `json:"user"`
	Rating  int    `json:"rating"`
}

// Stars returns the rating clamped to [MinRating, MaxRating].
func (t Testimonial) Stars() int {
	switch {
	case t.Rating < MinRating:
		return MinRating
	case t.Rating > MaxRating:
		return MaxRating
	}
	return t.Rating
}
