package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"youthive/internal/models"
	"youthive/internal/repository"
	"youthive/internal/service"
)

func articleID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

// GetArticles is the public listing: approved only, newest first,
// author and category display fields expanded.
func (h *Handlers) GetArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := h.ArticleService.List(r.Context())
	if err != nil {
		log.Printf("article listing failed: %v", err)
		WriteError(w, "Makaleler yüklenemedi.", http.StatusInternalServerError)
		return
	}

	if articles == nil {
		articles = []models.Article{}
	}

	WriteSuccess(w, articles, http.StatusOK)
}

func (h *Handlers) GetArticle(w http.ResponseWriter, r *http.Request) {
	id, err := articleID(r)
	if err != nil {
		WriteError(w, "Geçersiz makale numarası.", http.StatusBadRequest)
		return
	}

	article, err := h.ArticleService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			WriteError(w, "Makale bulunamadı.", http.StatusNotFound)
			return
		}
		log.Printf("article load failed: %v", err)
		WriteError(w, "Makale yüklenemedi.", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, article, http.StatusOK)
}

// EditorArticles serves the moderation panel: equality filters on
// status and category, ordering by creation time.
func (h *Handlers) EditorArticles(w http.ResponseWriter, r *http.Request) {
	q := repository.ArticleQuery{
		Status: r.URL.Query().Get("status"),
		Oldest: r.URL.Query().Get("sort") == "oldest",
	}

	if raw := r.URL.Query().Get("category"); raw != "" {
		categoryID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			WriteError(w, "Geçersiz kategori numarası.", http.StatusBadRequest)
			return
		}
		q.CategoryID = categoryID
	}

	articles, err := h.ArticleService.Search(r.Context(), q)
	if err != nil {
		log.Printf("editor listing failed: %v", err)
		WriteError(w, "Liste yüklenemedi.", http.StatusInternalServerError)
		return
	}

	if articles == nil {
		articles = []models.Article{}
	}

	WriteSuccess(w, articles, http.StatusOK)
}

func (h *Handlers) MyArticles(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Oturum bulunamadı.", http.StatusUnauthorized)
		return
	}

	articles, err := h.ArticleService.ByAuthor(r.Context(), userID)
	if err != nil {
		log.Printf("own-article listing failed: %v", err)
		WriteError(w, "Makaleleriniz yüklenemedi.", http.StatusInternalServerError)
		return
	}

	if articles == nil {
		articles = []models.Article{}
	}

	WriteSuccess(w, articles, http.StatusOK)
}

// UploadArticle accepts a multipart form: title, abstract, categoryId
// and a single PDF file. Validation failures never reach storage.
func (h *Handlers) UploadArticle(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Lütfen önce giriş yapınız.", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize + 1024*1024); err != nil {
		WriteError(w, "Geçersiz form verisi.", http.StatusBadRequest)
		return
	}

	categoryID, _ := strconv.ParseInt(r.FormValue("categoryId"), 10, 64)

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, "Lütfen bir PDF dosyası seçin.", http.StatusBadRequest)
		return
	}
	defer file.Close()

	req := service.UploadArticleRequest{
		Title:      r.FormValue("title"),
		Abstract:   r.FormValue("abstract"),
		CategoryID: categoryID,
		AuthorID:   userID,
		FileName:   header.Filename,
		FileSize:   header.Size,
		File:       file,
	}

	article, err := h.ArticleService.Upload(r.Context(), req)
	if err != nil {
		if service.IsValidation(err) {
			WriteError(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("article upload failed: %v", err)
		WriteError(w, "Yükleme sırasında bir hata oluştu.", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, article, http.StatusCreated)
}

func (h *Handlers) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	id, err := articleID(r)
	if err != nil {
		WriteError(w, "Geçersiz makale numarası.", http.StatusBadRequest)
		return
	}

	var req struct {
		Title      string `json:"title"`
		Abstract   string `json:"abstract"`
		CategoryID int64  `json:"categoryId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Geçersiz istek formatı.", http.StatusBadRequest)
		return
	}

	err = h.ArticleService.Update(r.Context(), repository.UpdateArticleRequest{
		ArticleID:  id,
		Title:      req.Title,
		Abstract:   req.Abstract,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		switch {
		case service.IsValidation(err):
			WriteError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, repository.ErrArticleNotFound):
			WriteError(w, "Makale bulunamadı.", http.StatusNotFound)
		default:
			log.Printf("article update failed: %v", err)
			WriteError(w, "Güncelleme başarısız.", http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, map[string]string{"message": "Makale güncellendi."}, http.StatusOK)
}

func (h *Handlers) UpdateArticleStatus(w http.ResponseWriter, r *http.Request) {
	id, err := articleID(r)
	if err != nil {
		WriteError(w, "Geçersiz makale numarası.", http.StatusBadRequest)
		return
	}

	var req struct {
		Status string `json:"status"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Geçersiz istek formatı.", http.StatusBadRequest)
		return
	}

	if err := h.ArticleService.SetStatus(r.Context(), id, req.Status); err != nil {
		switch {
		case service.IsValidation(err):
			WriteError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, repository.ErrArticleNotFound):
			WriteError(w, "Makale bulunamadı.", http.StatusNotFound)
		default:
			log.Printf("status update failed: %v", err)
			WriteError(w, "Durum güncellenemedi.", http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, map[string]string{"message": "Makale durumu güncellendi."}, http.StatusOK)
}

func (h *Handlers) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	id, err := articleID(r)
	if err != nil {
		WriteError(w, "Geçersiz makale numarası.", http.StatusBadRequest)
		return
	}

	if err := h.ArticleService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			WriteError(w, "Makale bulunamadı.", http.StatusNotFound)
			return
		}
		log.Printf("article delete failed: %v", err)
		WriteError(w, "Makale silinemedi.", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Makale başarıyla silindi."}, http.StatusOK)
}

// ReadArticle records one view. Failures are the caller's problem to
// log, the increment itself is fire-and-forget from the client's side.
func (h *Handlers) ReadArticle(w http.ResponseWriter, r *http.Request) {
	id, err := articleID(r)
	if err != nil {
		WriteError(w, "Geçersiz makale numarası.", http.StatusBadRequest)
		return
	}

	if err := h.ArticleService.IncrementView(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			WriteError(w, "Makale bulunamadı.", http.StatusNotFound)
			return
		}
		log.Printf("view count increment failed: %v", err)
		WriteError(w, "Görüntülenme sayısı güncellenemedi.", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
