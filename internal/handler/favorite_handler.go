package handlers

import (
	"errors"
	"log"
	"net/http"

	"youthive/internal/repository"
)

type FavoriteResponse struct {
	ArticleID int64 `json:"articleId"`
	Favorited bool  `json:"favorited"`
}

// ToggleFavorite flips membership for the authenticated user. The
// response carries the resulting state so the client flips its label
// only after the call succeeds.
func (h *Handlers) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Makaleleri kaydetmek için lütfen önce giriş yapınız.", http.StatusUnauthorized)
		return
	}

	id, err := articleID(r)
	if err != nil {
		WriteError(w, "Geçersiz makale numarası.", http.StatusBadRequest)
		return
	}

	favorited, err := h.FavoriteService.Toggle(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			WriteError(w, "Makale bulunamadı.", http.StatusNotFound)
			return
		}
		log.Printf("favorite toggle failed: %v", err)
		WriteError(w, "Favori işlemi gerçekleştirilemedi.", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, FavoriteResponse{ArticleID: id, Favorited: favorited}, http.StatusOK)
}

func (h *Handlers) GetFavorites(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Oturum bulunamadı.", http.StatusUnauthorized)
		return
	}

	ids, err := h.FavoriteService.ArticleIDs(r.Context(), userID)
	if err != nil {
		log.Printf("favorite listing failed: %v", err)
		WriteError(w, "Favoriler yüklenemedi.", http.StatusInternalServerError)
		return
	}

	if ids == nil {
		ids = []int64{}
	}

	WriteSuccess(w, map[string][]int64{"articleIds": ids}, http.StatusOK)
}
