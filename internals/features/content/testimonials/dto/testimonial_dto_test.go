package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

var validate = validator.New()

func TestUpdateTestimonialRequest_RatingBounds(t *testing.T) {
	base := UpdateTestimonialRequest{
		Name:    "Budi Santoso",
		Rating:  5,
		Message: "Pelayanan ramah, unit cepat sampai.",
	}
	assert.NoError(t, validate.Struct(base))

	for _, bad := range []int{0, 6, -1} {
		req := base
		req.Rating = bad
		assert.Error(t, validate.Struct(req), "rating %d harus ditolak", bad)
	}

	for _, ok := range []int{1, 3, 5} {
		req := base
		req.Rating = ok
		assert.NoError(t, validate.Struct(req), "rating %d harus lolos", ok)
	}
}

func TestCreateTestimonialRequest_RatingOptional(t *testing.T) {
	// Rating 0 = tidak dikirim; controller yang menurunkannya ke default 5.
	req := CreateTestimonialRequest{
		Name:    "Siti Aminah",
		Message: "Proses kredit mudah.",
	}
	assert.NoError(t, validate.Struct(req))

	req.Rating = 6
	assert.Error(t, validate.Struct(req))

	req.Rating = 4
	assert.NoError(t, validate.Struct(req))
}

func TestCreateTestimonialRequest_RequiredFields(t *testing.T) {
	assert.Error(t, validate.Struct(CreateTestimonialRequest{Message: "tanpa nama"}))
	assert.Error(t, validate.Struct(CreateTestimonialRequest{Name: "Budi"}))
}
