package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"youthive/internal/config"
	"youthive/internal/models"
	"youthive/internal/repository"
)

const testMaxUpload = int64(10 * 1024 * 1024)

// pdfBytes is a minimal file that sniffs as application/pdf.
var pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n%%EOF\n")

func newArticleService(articleRepo *MockArticleRepository, categoryRepo *MockCategoryRepository, store *MockStorage) *articleService {
	return &articleService{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		storage:      store,
		cfg:          &config.Config{MaxUploadSize: testMaxUpload},
		now:          func() time.Time { return time.Date(2025, 5, 2, 9, 30, 0, 0, time.UTC) },
	}
}

func TestValidateUploadMeta(t *testing.T) {
	tests := []struct {
		name       string
		title      string
		categoryID int64
		fileSize   int64
		wantErr    string
	}{
		{"valid", "Enerji Tasarrufu", 2, 1024, ""},
		{"short title", "Kısa", 2, 1024, "Makale başlığı en az 5 karakter olmalıdır."},
		{"five runes is enough", "Beşli", 2, 1024, ""},
		{"missing category", "Enerji Tasarrufu", 0, 1024, "Lütfen bir kategori seçiniz."},
		{"missing file", "Enerji Tasarrufu", 2, 0, "Lütfen bir PDF dosyası seçin."},
		{"oversized file", "Enerji Tasarrufu", 2, testMaxUpload + 1, "büyük olamaz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUploadMeta(tt.title, tt.categoryID, tt.fileSize, testMaxUpload)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, IsValidation(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidatePDF(t *testing.T) {
	t.Run("accepts a pdf header", func(t *testing.T) {
		assert.NoError(t, ValidatePDF(pdfBytes))
	})

	t.Run("rejects anything else", func(t *testing.T) {
		err := ValidatePDF([]byte("PK\x03\x04 this is a zip"))
		require.Error(t, err)
		assert.True(t, IsValidation(err))
		assert.Equal(t, "Sadece PDF dosyaları yüklenebilir.", err.Error())
	})
}

func TestArticleService_Upload(t *testing.T) {
	ctx := context.Background()

	validReq := func() UploadArticleRequest {
		return UploadArticleRequest{
			Title:      "Enerji Tasarrufu",
			Abstract:   "Evde enerji tasarrufu",
			CategoryID: 2,
			AuthorID:   "user-1",
			FileName:   "tez.pdf",
			FileSize:   int64(len(pdfBytes)),
			File:       bytes.NewReader(pdfBytes),
		}
	}

	t.Run("validation failure makes no storage or repo call", func(t *testing.T) {
		articleRepo := new(MockArticleRepository)
		categoryRepo := new(MockCategoryRepository)
		store := new(MockStorage)
		svc := newArticleService(articleRepo, categoryRepo, store)

		req := validReq()
		req.Title = "Kıs"

		_, err := svc.Upload(ctx, req)

		require.Error(t, err)
		assert.True(t, IsValidation(err))
		store.AssertNotCalled(t, "UploadPDF", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		articleRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("non-pdf content is rejected before upload", func(t *testing.T) {
		articleRepo := new(MockArticleRepository)
		categoryRepo := new(MockCategoryRepository)
		store := new(MockStorage)
		svc := newArticleService(articleRepo, categoryRepo, store)

		categoryRepo.On("GetByID", ctx, int64(2)).Return(&models.Category{ID: 2, Name: "Teknoloji"}, nil)

		req := validReq()
		req.File = strings.NewReader("sadece düz metin, pdf değil")
		req.FileSize = 27

		_, err := svc.Upload(ctx, req)

		require.Error(t, err)
		assert.Equal(t, "Sadece PDF dosyaları yüklenebilir.", err.Error())
		store.AssertNotCalled(t, "UploadPDF", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown category is a validation error", func(t *testing.T) {
		articleRepo := new(MockArticleRepository)
		categoryRepo := new(MockCategoryRepository)
		store := new(MockStorage)
		svc := newArticleService(articleRepo, categoryRepo, store)

		categoryRepo.On("GetByID", ctx, int64(2)).Return(nil, repository.ErrCategoryNotFound)

		_, err := svc.Upload(ctx, validReq())

		require.Error(t, err)
		assert.True(t, IsValidation(err))
	})

	t.Run("successful upload creates a pending record", func(t *testing.T) {
		articleRepo := new(MockArticleRepository)
		categoryRepo := new(MockCategoryRepository)
		store := new(MockStorage)
		svc := newArticleService(articleRepo, categoryRepo, store)

		categoryRepo.On("GetByID", ctx, int64(2)).Return(&models.Category{ID: 2, Name: "Teknoloji"}, nil)
		store.On("UploadPDF", ctx, mock.AnythingOfType("string"), mock.Anything, int64(len(pdfBytes)), "application/pdf").
			Return("http://minio/article-pdfs/obj.pdf", nil)
		articleRepo.On("Create", ctx, mock.AnythingOfType("*models.Article")).Return(nil)

		article, err := svc.Upload(ctx, validReq())

		require.NoError(t, err)
		assert.Equal(t, models.StatusPending, article.Status)
		assert.Equal(t, "http://minio/article-pdfs/obj.pdf", article.PDFURL)
		assert.True(t, strings.HasPrefix(article.Slug, "enerji-tasarrufu-"), "got %q", article.Slug)
		store.AssertExpectations(t)
		articleRepo.AssertExpectations(t)
	})

	t.Run("db failure rolls the uploaded object back", func(t *testing.T) {
		articleRepo := new(MockArticleRepository)
		categoryRepo := new(MockCategoryRepository)
		store := new(MockStorage)
		svc := newArticleService(articleRepo, categoryRepo, store)

		categoryRepo.On("GetByID", ctx, int64(2)).Return(&models.Category{ID: 2}, nil)
		store.On("UploadPDF", ctx, mock.AnythingOfType("string"), mock.Anything, int64(len(pdfBytes)), "application/pdf").
			Return("http://minio/article-pdfs/obj.pdf", nil)
		articleRepo.On("Create", ctx, mock.AnythingOfType("*models.Article")).Return(errors.New("db down"))
		store.On("DeletePDF", ctx, mock.AnythingOfType("string")).Return(nil)

		_, err := svc.Upload(ctx, validReq())

		require.Error(t, err)
		store.AssertCalled(t, "DeletePDF", ctx, mock.AnythingOfType("string"))
	})
}

func TestArticleService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("title and category are mandatory", func(t *testing.T) {
		svc := newArticleService(new(MockArticleRepository), new(MockCategoryRepository), new(MockStorage))

		err := svc.Update(ctx, repository.UpdateArticleRequest{ArticleID: 1, Title: "", CategoryID: 2})
		require.Error(t, err)
		assert.Equal(t, "Başlık ve kategori zorunludur.", err.Error())
	})

	t.Run("unchanged title keeps the slug", func(t *testing.T) {
		articleRepo := new(MockArticleRepository)
		svc := newArticleService(articleRepo, new(MockCategoryRepository), new(MockStorage))

		articleRepo.On("GetByID", ctx, int64(1)).Return(&models.Article{
			ID: 1, Title: "Enerji Tasarrufu", Slug: "enerji-tasarrufu-eski",
		}, nil)
		articleRepo.On("Update", ctx, mock.MatchedBy(func(req repository.UpdateArticleRequest) bool {
			return req.Slug == "enerji-tasarrufu-eski"
		})).Return(nil)

		err := svc.Update(ctx, repository.UpdateArticleRequest{
			ArticleID: 1, Title: "Enerji Tasarrufu", Abstract: "yeni özet", CategoryID: 2,
		})
		assert.NoError(t, err)
		articleRepo.AssertExpectations(t)
	})

	t.Run("changed title regenerates the slug", func(t *testing.T) {
		articleRepo := new(MockArticleRepository)
		svc := newArticleService(articleRepo, new(MockCategoryRepository), new(MockStorage))

		articleRepo.On("GetByID", ctx, int64(1)).Return(&models.Article{
			ID: 1, Title: "Enerji Tasarrufu", Slug: "enerji-tasarrufu-eski",
		}, nil)
		articleRepo.On("Update", ctx, mock.MatchedBy(func(req repository.UpdateArticleRequest) bool {
			return strings.HasPrefix(req.Slug, "yeni-baslik-")
		})).Return(nil)

		err := svc.Update(ctx, repository.UpdateArticleRequest{
			ArticleID: 1, Title: "Yeni Başlık", CategoryID: 2,
		})
		assert.NoError(t, err)
		articleRepo.AssertExpectations(t)
	})
}

func TestArticleService_SetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("only approved and rejected are allowed", func(t *testing.T) {
		svc := newArticleService(new(MockArticleRepository), new(MockCategoryRepository), new(MockStorage))

		err := svc.SetStatus(ctx, 1, models.StatusPending)
		require.Error(t, err)
		assert.Equal(t, "Geçersiz durum.", err.Error())
	})

	t.Run("valid status goes through", func(t *testing.T) {
		articleRepo := new(MockArticleRepository)
		svc := newArticleService(articleRepo, new(MockCategoryRepository), new(MockStorage))

		articleRepo.On("UpdateStatus", ctx, int64(1), models.StatusApproved).Return(nil)

		assert.NoError(t, svc.SetStatus(ctx, 1, models.StatusApproved))
		articleRepo.AssertExpectations(t)
	})
}

func TestArticleService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("storage failure does not block the record delete", func(t *testing.T) {
		articleRepo := new(MockArticleRepository)
		store := new(MockStorage)
		svc := newArticleService(articleRepo, new(MockCategoryRepository), store)

		articleRepo.On("GetByID", ctx, int64(1)).Return(&models.Article{
			ID: 1, FileName: "123_abc_tez.pdf",
		}, nil)
		store.On("DeletePDF", ctx, "123_abc_tez.pdf").Return(errors.New("storage unreachable"))
		articleRepo.On("Delete", ctx, int64(1)).Return(nil)

		err := svc.Delete(ctx, 1)

		assert.NoError(t, err)
		articleRepo.AssertCalled(t, "Delete", ctx, int64(1))
	})

	t.Run("missing article stops early", func(t *testing.T) {
		articleRepo := new(MockArticleRepository)
		store := new(MockStorage)
		svc := newArticleService(articleRepo, new(MockCategoryRepository), store)

		articleRepo.On("GetByID", ctx, int64(9)).Return(nil, repository.ErrArticleNotFound)

		err := svc.Delete(ctx, 9)

		assert.True(t, errors.Is(err, repository.ErrArticleNotFound))
		store.AssertNotCalled(t, "DeletePDF", mock.Anything, mock.Anything)
		articleRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("no file name skips storage", func(t *testing.T) {
		articleRepo := new(MockArticleRepository)
		store := new(MockStorage)
		svc := newArticleService(articleRepo, new(MockCategoryRepository), store)

		articleRepo.On("GetByID", ctx, int64(2)).Return(&models.Article{ID: 2}, nil)
		articleRepo.On("Delete", ctx, int64(2)).Return(nil)

		assert.NoError(t, svc.Delete(ctx, 2))
		store.AssertNotCalled(t, "DeletePDF", mock.Anything, mock.Anything)
	})
}
