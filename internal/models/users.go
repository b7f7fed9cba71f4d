package models

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// InsertUser registers a new account. Email addresses are unique.
func (m *MongoDB) InsertUser(ctx context.Context, name, email, password, role string) (*User, error) {
	count, err := m.Users.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateEmail
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, err
	}

	user := &User{
		ID:           primitive.NewObjectID(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if _, err := m.Users.InsertOne(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies the email/password pair and returns the account.
func (m *MongoDB) Authenticate(ctx context.Context, email, password string) (*User, error) {
	var user User
	err := m.Users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return &user, nil
}

func (m *MongoDB) GetUser(ctx context.Context, id primitive.ObjectID) (*User, error) {
	var user User
	err := m.Users.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoRecord
		}
		return nil, err
	}
	return &user, nil
}

func (m *MongoDB) GetAllUsers(ctx context.Context) ([]*User, error) {
	var users []*User
	cur, err := m.Users.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	err = cur.All(ctx, &users)
	return users, err
}

// UpdateUser lets an admin change name, email, and role. The password
// never changes through this path.
func (m *MongoDB) UpdateUser(ctx context.Context, id primitive.ObjectID, name, email, role string) (*User, error) {
	user, err := m.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if name != "" {
		set["name"] = name
		user.Name = name
	}
	if email != "" {
		set["email"] = email
		user.Email = email
	}
	if role != "" {
		set["role"] = role
		user.Role = role
	}
	if len(set) == 0 {
		return user, nil
	}

	_, err = m.Users.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes an account. Admins cannot delete themselves.
func (m *MongoDB) DeleteUser(ctx context.Context, actor *User, id primitive.ObjectID) error {
	user, err := m.GetUser(ctx, id)
	if err != nil {
		return err
	}
	if user.ID == actor.ID {
		return ErrSelfDelete
	}
	_, err = m.Users.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
