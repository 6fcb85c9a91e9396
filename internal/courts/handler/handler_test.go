package handler

import (
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtfinder/internal/courts/models"
	"courtfinder/internal/courts/store"
	"courtfinder/pkg/testutil"
)

func newRouter(t *testing.T) chi.Router {
	t.Helper()
	st := store.NewInMemoryStore()
	store.SeedCourts(st)

	r := chi.NewRouter()
	New(st, slog.New(slog.DiscardHandler)).Register(r)
	return r
}

func TestHandleCourt_Found(t *testing.T) {
	router := newRouter(t)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/courts/accrington-magistrates-court"))

	testutil.AssertStatusOK(t, rr)
	court := testutil.UnmarshalResponse[models.Court](t, rr)
	assert.Equal(t, "Accrington Magistrates' Court", court.Name)
	require.NotNil(t, court.Number)
	assert.Equal(t, 1725, *court.Number)
	assert.NotEmpty(t, court.Addresses)
}

func TestHandleCourt_NotFound(t *testing.T) {
	router := newRouter(t)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/courts/no-such-court"))

	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestHandleList_ByInitial(t *testing.T) {
	router := newRouter(t)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/courts?letter=t"))

	testutil.AssertStatusOK(t, rr)
	type listing struct {
		Courts []models.Court `json:"courts"`
	}
	body := testutil.UnmarshalResponse[listing](t, rr)
	require.Len(t, body.Courts, 1)
	assert.Equal(t, "tameside-magistrates-court", body.Courts[0].Slug)
}

func TestHandleList_ExcludesUndisplayed(t *testing.T) {
	router := newRouter(t)

	// The only E-venue in the fixture set is undisplayed.
	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/courts?letter=e"))

	testutil.AssertStatusOK(t, rr)
	type listing struct {
		Courts []models.Court `json:"courts"`
	}
	body := testutil.UnmarshalResponse[listing](t, rr)
	assert.Empty(t, body.Courts)
}

func TestHandleList_RejectsBadLetter(t *testing.T) {
	router := newRouter(t)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/courts?letter=12"))

	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}
