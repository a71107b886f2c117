package database

import (
	"context"

	"github.com/rpupo63/nexusconsult-backend/models"
)

type TestimonialRepo struct {
	testimonials *Resource[models.Testimonial]
}

func NewTestimonialRepo(store Collections) *TestimonialRepo {
	return &TestimonialRepo{
		testimonials: NewResource[models.Testimonial](store, models.TestimonialsCollection, "testimonial",
			[]Filter{{Field: "approved", Value: true}},
			Order{Field: "display_order"}),
	}
}

// FindAll returns approved testimonials by display order, optionally only featured ones.
func (r *TestimonialRepo) FindAll(ctx context.Context, featuredOnly bool) ([]models.Testimonial, error) {
	q := Query{}
	if featuredOnly {
		q = q.Eq("featured", true)
	}
	return r.testimonials.Find(ctx, q)
}
