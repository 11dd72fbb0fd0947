package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"

	"portfolio-backend/errs"
	"portfolio-backend/models"
)

// resourcePtr constrains a pointer type to the Resource surface so one handler
// serves every entity.
type resourcePtr[T any] interface {
	*T
	models.Resource
}

// resourceStore is the storage surface a resource handler needs. The generic
// database repos satisfy it; tests substitute an in-memory fake.
type resourceStore[T any] interface {
	FindAll(ctx context.Context) ([]*T, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*T, error)
	Add(ctx context.Context, doc *T) error
	Replace(ctx context.Context, id bson.ObjectID, doc *T) error
	Delete(ctx context.Context, id bson.ObjectID) error
}

// resourceHandler implements the uniform list/get/create/update/delete pattern
// shared by projects, blogs, skills, achievements, and contacts. Per-entity
// differences (field lists, uniqueness messages, default order) live in the
// models and repos, not here.
type resourceHandler[T any, PT resourcePtr[T]] struct {
	entity    string
	dupMsg    string
	responder Responder
	logger    zerolog.Logger
	store     resourceStore[T]
	listCache *cache.Cache
}

func newResourceHandler[T any, PT resourcePtr[T]](entity, dupMsg string, store resourceStore[T], listCache *cache.Cache) *resourceHandler[T, PT] {
	logger := log.With().Str("handlerName", strings.ToLower(entity)+"Handler").Logger()

	return &resourceHandler[T, PT]{
		entity:    entity,
		dupMsg:    dupMsg,
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
		listCache: listCache,
	}
}

func (h *resourceHandler[T, PT]) cacheKey() string {
	return h.entity + ":list"
}

func (h *resourceHandler[T, PT]) flushListCache() {
	h.listCache.Delete(h.cacheKey())
}

// list returns all documents in the entity's default order. Results are
// cached until the next mutation or cache expiry.
func (h *resourceHandler[T, PT]) list() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cached, found := h.listCache.Get(h.cacheKey()); found {
			if docs, ok := cached.([]*T); ok {
				h.responder.WriteJSON(w, http.StatusOK, docs)
				return
			}
		}

		docs, err := h.store.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.listCache.Set(h.cacheKey(), docs, cache.DefaultExpiration)
		h.responder.WriteJSON(w, http.StatusOK, docs)
	}
}

// get fetches one document. A malformed id is indistinguishable from a
// missing one: both yield not found.
func (h *resourceHandler[T, PT]) get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
		if err != nil {
			h.responder.WriteError(w, errs.NewNotFound(h.entity))
			return
		}

		doc, err := h.store.FindByID(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if doc == nil {
			h.responder.WriteError(w, errs.NewNotFound(h.entity))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, doc)
	}
}

func (h *resourceHandler[T, PT]) create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var doc T
		if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		pt := PT(&doc)
		pt.ApplyDefaults()
		if err := pt.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.store.Add(r.Context(), &doc); err != nil {
			if errs.IsAlreadyExists(err) {
				h.responder.WriteError(w, errs.NewBadRequestError(h.dupMsg))
				return
			}
			h.responder.WriteError(w, err)
			return
		}

		h.flushListCache()
		h.responder.WriteJSON(w, http.StatusCreated, doc)
	}
}

// update merges the supplied fields over the existing document, leaving
// omitted fields unchanged, then re-validates the merged record.
func (h *resourceHandler[T, PT]) update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
		if err != nil {
			h.responder.WriteError(w, errs.NewNotFound(h.entity))
			return
		}

		existing, err := h.store.FindByID(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound(h.entity))
			return
		}

		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		if err := json.Unmarshal(bodyBytes, existing); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		pt := PT(existing)
		pt.SetID(id)
		pt.ApplyDefaults()
		if err := pt.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.store.Replace(r.Context(), id, existing); err != nil {
			if errs.IsAlreadyExists(err) {
				h.responder.WriteError(w, errs.NewBadRequestError(h.dupMsg))
				return
			}
			h.responder.WriteError(w, err)
			return
		}

		h.flushListCache()
		h.responder.WriteJSON(w, http.StatusOK, existing)
	}
}

func (h *resourceHandler[T, PT]) delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
		if err != nil {
			h.responder.WriteError(w, errs.NewNotFound(h.entity))
			return
		}

		if err := h.store.Delete(r.Context(), id); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.flushListCache()
		h.responder.WriteMsg(w, http.StatusOK, h.entity+" removed successfully")
	}
}
