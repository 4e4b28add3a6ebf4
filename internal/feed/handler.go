package feed

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/fitpulse/fitpulse/internal/telemetry/tracing"
	"github.com/fitpulse/fitpulse/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=feed_mocks_test.go -package=feed_test

type feedRepo interface {
	Add(ctx context.Context, post Post) (*Post, error)
	List(ctx context.Context, page, size int) (_ []Post, total int, err error)
	Delete(ctx context.Context, id int) error
}

type ListResponse struct {
	Posts []Post `json:"posts"`
	Total int    `json:"total"`
}

type Handler struct {
	repo feedRepo
}

func NewHandler(repo feedRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.feed.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var post Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		log.Tracef("new post, unmarshal json params: %s", err)
		http.Error(w, "add post failed", http.StatusBadRequest)
		return
	}

	if post.UserID <= 0 {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}
	if post.Content == "" {
		http.Error(w, "error, post content empty", http.StatusBadRequest)
		return
	}

	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}

	addedPost, err := handler.repo.Add(ctx, post)
	if err != nil {
		log.Errorf("failed to add new post for user %d: %s", post.UserID, err)
		http.Error(w, "error, failed to add new post", http.StatusInternalServerError)
		return
	}

	addedPostJson, err := json.Marshal(addedPost)
	if err != nil {
		log.Errorf("failed to marshal new post: %s", err)
		http.Error(w, "error, failed to add new post", http.StatusInternalServerError)
		return
	}

	log.Debugf("new feed post added: %d", addedPost.ID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedPostJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.feed.list")
	defer span.End()

	vars := mux.Vars(r)
	page, err := strconv.Atoi(vars["page"])
	if err != nil {
		log.Tracef("handle get posts page, from <page> param: %s", err)
		http.Error(w, "parse form error, parameter <page>", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil {
		log.Tracef("handle get posts page, from <size> param: %s", err)
		http.Error(w, "parse form error, parameter <size>", http.StatusBadRequest)
		return
	}

	if page < 1 {
		http.Error(w, "invalid page (has to be non-zero value)", http.StatusBadRequest)
		return
	}
	if size < 1 {
		http.Error(w, "invalid size (has to be non-zero value)", http.StatusBadRequest)
		return
	}

	posts, total, err := handler.repo.List(ctx, page, size)
	if err != nil {
		log.Errorf("list posts error: %s", err)
		http.Error(w, "failed to get posts", http.StatusInternalServerError)
		return
	}

	listResponseJson, err := json.Marshal(ListResponse{
		Posts: posts,
		Total: total,
	})
	if err != nil {
		log.Errorf("marshal posts error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listResponseJson, http.StatusOK)
}
