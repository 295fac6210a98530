package domain

// SyllabusFilter contains filtering/pagination parameters for syllabus listing.
type SyllabusFilter struct {
	Search *string
	Year   *string
	Limit  int
	Offset int
}
