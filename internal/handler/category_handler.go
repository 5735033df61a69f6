package handlers

import (
	"log"
	"net/http"

	"youthive/internal/models"
)

// GetCategories lists all categories, or only the top-level ones when
// ?top=1 is set (the filter dropdown offers roots only).
func (h *Handlers) GetCategories(w http.ResponseWriter, r *http.Request) {
	var (
		categories []models.Category
		err        error
	)

	if r.URL.Query().Get("top") == "1" {
		categories, err = h.CategoryService.TopLevel(r.Context())
	} else {
		categories, err = h.CategoryService.All(r.Context())
	}
	if err != nil {
		log.Printf("category listing failed: %v", err)
		WriteError(w, "Kategoriler yüklenemedi.", http.StatusInternalServerError)
		return
	}

	if categories == nil {
		categories = []models.Category{}
	}

	WriteSuccess(w, categories, http.StatusOK)
}
