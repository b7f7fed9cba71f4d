package models

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// canUpdateReview allows the author only. Admins get no override here;
// the asymmetry with delete is deliberate.
func canUpdateReview(r *Review, u *User) bool {
	return r.UserID == u.ID
}

// canDeleteReview allows the author or an admin.
func canDeleteReview(r *Review, u *User) bool {
	return r.UserID == u.ID || u.IsAdmin()
}

// duplicateReview reports whether user already has a review among the
// product's reviews. One review per (product, user) pair.
func duplicateReview(reviews []*Review, userID primitive.ObjectID) bool {
	for _, r := range reviews {
		if r.UserID == userID {
			return true
		}
	}
	return false
}

// aggregateRating computes the mean rating and count over a review set.
// An empty set yields {0, 0}. The mean is kept at full precision; any
// rounding happens at presentation time.
func aggregateRating(reviews []*Review) (float64, int) {
	if len(reviews) == 0 {
		return 0, 0
	}
	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	return float64(total) / float64(len(reviews)), len(reviews)
}

func (m *MongoDB) GetReview(ctx context.Context, id primitive.ObjectID) (*Review, error) {
	var r Review
	err := m.Reviews.FindOne(ctx, bson.M{"_id": id}).Decode(&r)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoRecord
		}
		return nil, err
	}
	return &r, nil
}

// GetReviewsForProduct requires the product to exist before listing.
func (m *MongoDB) GetReviewsForProduct(ctx context.Context, productID primitive.ObjectID) ([]*Review, error) {
	if _, err := m.GetProduct(ctx, productID); err != nil {
		return nil, err
	}
	return m.findReviews(ctx, bson.M{"product_id": productID})
}

func (m *MongoDB) GetAllReviews(ctx context.Context) ([]*Review, error) {
	return m.findReviews(ctx, bson.M{})
}

func (m *MongoDB) findReviews(ctx context.Context, filter bson.M) ([]*Review, error) {
	var reviews []*Review
	cur, err := m.Reviews.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	err = cur.All(ctx, &reviews)
	return reviews, err
}

// AddReview creates a review for a product on behalf of user. The product
// must exist and the user must not have reviewed it before. The product's
// aggregate rating is recomputed afterwards.
func (m *MongoDB) AddReview(ctx context.Context, user *User, productID primitive.ObjectID, rating int, comment string) (*Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	if _, err := m.GetProduct(ctx, productID); err != nil {
		return nil, err
	}

	existing, err := m.findReviews(ctx, bson.M{"product_id": productID})
	if err != nil {
		return nil, err
	}
	if duplicateReview(existing, user.ID) {
		return nil, ErrDuplicateReview
	}

	review := &Review{
		ID:        primitive.NewObjectID(),
		ProductID: productID,
		UserID:    user.ID,
		UserName:  user.Name,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now(),
	}
	if _, err := m.Reviews.InsertOne(ctx, review); err != nil {
		return nil, err
	}

	if err := m.recomputeRating(ctx, productID); err != nil {
		return nil, err
	}
	return review, nil
}

// UpdateReview replaces the rating and comment of an existing review.
// Author only.
func (m *MongoDB) UpdateReview(ctx context.Context, user *User, id primitive.ObjectID, rating int, comment string) (*Review, error) {
	review, err := m.GetReview(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canUpdateReview(review, user) {
		return nil, ErrForbidden
	}
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	update := bson.M{"$set": bson.M{"rating": rating, "comment": comment}}
	if _, err := m.Reviews.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		return nil, err
	}
	review.Rating = rating
	review.Comment = comment

	if err := m.recomputeRating(ctx, review.ProductID); err != nil {
		return nil, err
	}
	return review, nil
}

// DeleteReview removes a review. Author or admin.
func (m *MongoDB) DeleteReview(ctx context.Context, user *User, id primitive.ObjectID) error {
	review, err := m.GetReview(ctx, id)
	if err != nil {
		return err
	}
	if !canDeleteReview(review, user) {
		return ErrForbidden
	}

	if _, err := m.Reviews.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return err
	}
	return m.recomputeRating(ctx, review.ProductID)
}

// recomputeRating refreshes the product's derived ratings/num_reviews
// fields from its current review set. If the product is gone by the time
// this runs, it is a no-op so the triggering review operation still
// succeeds.
func (m *MongoDB) recomputeRating(ctx context.Context, productID primitive.ObjectID) error {
	reviews, err := m.findReviews(ctx, bson.M{"product_id": productID})
	if err != nil {
		return err
	}
	avg, n := aggregateRating(reviews)

	update := bson.M{"$set": bson.M{"ratings": avg, "num_reviews": n}}
	_, err = m.Products.UpdateOne(ctx, bson.M{"_id": productID}, update)
	return err
}
