package dto

// CreateCourseRequest is the payload for course creation.
type CreateCourseRequest struct {
	Title         string  `json:"title" validate:"required"`
	Description   string  `json:"description" validate:"required"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	ImageURL      string  `json:"imageUrl" validate:"required,url"`
	CourseContent string  `json:"courseContent" validate:"required"`
}

// DeleteCourseRequest carries the id of the course to delete.
type DeleteCourseRequest struct {
	CourseID string `json:"courseId" validate:"required"`
}

// UpdateCourseContentRequest carries replacement content for a course.
type UpdateCourseContentRequest struct {
	CourseID      string `json:"courseId" validate:"required"`
	CourseContent string `json:"courseContent" validate:"required"`
}

// PurchaseCourseRequest carries the id of the course to purchase.
type PurchaseCourseRequest struct {
	CourseID string `json:"courseId" validate:"required"`
}

// ImageUploadURLRequest asks for a presigned PUT URL for a course image.
type ImageUploadURLRequest struct {
	Filename    string `json:"filename" validate:"required"`
	ContentType string `json:"contentType" validate:"required,startswith=image/"`
}
