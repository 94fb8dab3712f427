package dto

// RatingRequest is a student's 1–5 evaluation of a report.
type RatingRequest struct {
	Value int `json:"rating_value" validate:"required,min=1,max=5"`
}

// UserRatingResponse reports the calling student's own rating. Rated is the
// "not rated yet" sentinel; Value is meaningless when it is false.
type UserRatingResponse struct {
	Rated bool `json:"rated"`
	Value int  `json:"rating_value,omitempty"`
}

// RatingAverageResponse carries the unweighted mean over all ratings for a
// report. Average is nil when Count is zero; zero is never a valid mean.
type RatingAverageResponse struct {
	Average *float64 `json:"average"`
	Count   int64    `json:"count"`
}
