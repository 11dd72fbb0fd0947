package api

import (
	"context"
	"io"

	"go.mongodb.org/mongo-driver/v2/bson"

	"portfolio-backend/errs"
	"portfolio-backend/media"
	"portfolio-backend/models"
)

// fakeStore is an in-memory resourceStore that mimics the repo contract:
// copies in, copies out, not-found and duplicate signals from the errs
// taxonomy.
type fakeStore[T any, PT resourcePtr[T]] struct {
	entity string
	docs   map[bson.ObjectID]*T
	order  []bson.ObjectID

	addErr     error
	replaceErr error
	failAll    error
}

func newFakeStore[T any, PT resourcePtr[T]](entity string) *fakeStore[T, PT] {
	return &fakeStore[T, PT]{
		entity: entity,
		docs:   make(map[bson.ObjectID]*T),
	}
}

func (s *fakeStore[T, PT]) FindAll(ctx context.Context) ([]*T, error) {
	if s.failAll != nil {
		return nil, s.failAll
	}
	results := []*T{}
	for _, id := range s.order {
		cp := *s.docs[id]
		results = append(results, &cp)
	}
	return results, nil
}

func (s *fakeStore[T, PT]) FindByID(ctx context.Context, id bson.ObjectID) (*T, error) {
	doc, ok := s.docs[id]
	if !ok {
		return nil, nil
	}
	cp := *doc
	return &cp, nil
}

func (s *fakeStore[T, PT]) Add(ctx context.Context, doc *T) error {
	if s.addErr != nil {
		return s.addErr
	}
	id := PT(doc).GetID()
	cp := *doc
	s.docs[id] = &cp
	s.order = append(s.order, id)
	return nil
}

func (s *fakeStore[T, PT]) Replace(ctx context.Context, id bson.ObjectID, doc *T) error {
	if s.replaceErr != nil {
		return s.replaceErr
	}
	if _, ok := s.docs[id]; !ok {
		return errs.NewNotFound(s.entity)
	}
	cp := *doc
	s.docs[id] = &cp
	return nil
}

func (s *fakeStore[T, PT]) Delete(ctx context.Context, id bson.ObjectID) error {
	if _, ok := s.docs[id]; !ok {
		return errs.NewNotFound(s.entity)
	}
	delete(s.docs, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// fakeUserStore backs auth handler tests.
type fakeUserStore struct {
	users  map[string]*models.User
	addErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*models.User)}
}

func (s *fakeUserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	user, ok := s.users[username]
	if !ok {
		return nil, nil
	}
	cp := *user
	return &cp, nil
}

func (s *fakeUserStore) Add(ctx context.Context, user *models.User) error {
	if s.addErr != nil {
		return s.addErr
	}
	if _, ok := s.users[user.Username]; ok {
		return errs.NewAlreadyExists("User")
	}
	cp := *user
	s.users[user.Username] = &cp
	return nil
}

// fakeUploader records the last upload and returns a canned result.
type fakeUploader struct {
	lastName        string
	lastSize        int64
	lastContentType string
	err             error
}

func (u *fakeUploader) Upload(ctx context.Context, name string, reader io.Reader, size int64, contentType string) (media.UploadResult, error) {
	if u.err != nil {
		return media.UploadResult{}, u.err
	}
	if _, err := io.Copy(io.Discard, reader); err != nil {
		return media.UploadResult{}, err
	}
	u.lastName = name
	u.lastSize = size
	u.lastContentType = contentType
	return media.UploadResult{
		URL:      "https://media.example.com/portfolio/" + name,
		PublicID: "portfolio/" + name,
	}, nil
}
