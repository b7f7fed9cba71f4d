package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAggregateRating(t *testing.T) {
	avg, n := aggregateRating(nil)
	assert.Equal(t, 0.0, avg)
	assert.Equal(t, 0, n)

	avg, n = aggregateRating([]*Review{{Rating: 4}})
	assert.Equal(t, 4.0, avg)
	assert.Equal(t, 1, n)

	avg, n = aggregateRating([]*Review{{Rating: 5}, {Rating: 4}, {Rating: 2}})
	assert.InDelta(t, 11.0/3.0, avg, 1e-9)
	assert.Equal(t, 3, n)
}

// A second review by the same user for the same product is a conflict;
// other users' reviews on that product never trip the check.
func TestDuplicateReview(t *testing.T) {
	author := primitive.NewObjectID()
	other := primitive.NewObjectID()
	reviews := []*Review{
		{UserID: other, Rating: 3},
		{UserID: author, Rating: 5},
	}

	assert.True(t, duplicateReview(reviews, author))
	assert.False(t, duplicateReview([]*Review{{UserID: other}}, author))
	assert.False(t, duplicateReview(nil, author))
}

func TestReviewGuards(t *testing.T) {
	author := &User{ID: primitive.NewObjectID(), Role: "user"}
	stranger := &User{ID: primitive.NewObjectID(), Role: "user"}
	admin := &User{ID: primitive.NewObjectID(), Role: "admin"}
	review := &Review{UserID: author.ID}

	// Update is author-only; admins get no override.
	assert.True(t, canUpdateReview(review, author))
	assert.False(t, canUpdateReview(review, stranger))
	assert.False(t, canUpdateReview(review, admin))

	// Delete allows the author or an admin.
	assert.True(t, canDeleteReview(review, author))
	assert.False(t, canDeleteReview(review, stranger))
	assert.True(t, canDeleteReview(review, admin))
}
