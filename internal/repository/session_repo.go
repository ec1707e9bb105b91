package repository

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"scopeforge/internal/model"
)

// SessionRepo persists questionnaire sessions. Each session is one document
// keyed by its uuid, rewritten wholesale on every mutation.
type SessionRepo interface {
	Save(ctx context.Context, session *model.Session) error
	GetByID(ctx context.Context, id string) (*model.Session, error)
	Delete(ctx context.Context, id string) error
}

type sessionRepo struct {
	collection *mongo.Collection
}

// NewSessionRepo creates a new session repository
func NewSessionRepo(db *mongo.Database) SessionRepo {
	return &sessionRepo{
		collection: db.Collection("sessions"),
	}
}

func (r *sessionRepo) Save(ctx context.Context, session *model.Session) error {
	_, err := r.collection.ReplaceOne(ctx,
		bson.M{"_id": session.ID},
		session,
		options.Replace().SetUpsert(true),
	)
	return err
}

// GetByID loads a session document. A document that no longer decodes into
// the session shape is treated as a fresh empty session under the same id
// rather than an error, so one corrupt blob cannot lock a participant out.
func (r *sessionRepo) GetByID(ctx context.Context, id string) (*model.Session, error) {
	raw, err := r.collection.FindOne(ctx, bson.M{"_id": id}).Raw()
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session model.Session
	if err := bson.Unmarshal(raw, &session); err != nil {
		log.Printf("session %s: discarding malformed state: %v", id, err)
		return &model.Session{ID: id, Answers: model.AnswerSet{}}, nil
	}
	if session.Answers == nil {
		session.Answers = model.AnswerSet{}
	}
	session.ID = id
	return &session, nil
}

func (r *sessionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
