package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"

	"youthive/internal/config"
	"youthive/internal/models"
	"youthive/internal/repository"
	"youthive/internal/slug"
	"youthive/internal/storage"
)

const minTitleLength = 5

// sniffLength covers every magic number mimetype needs.
const sniffLength = 3072

// ValidationError is reported before any remote call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

type UploadArticleRequest struct {
	Title      string
	Abstract   string
	CategoryID int64
	AuthorID   string
	FileName   string
	FileSize   int64
	File       io.Reader
}

type ArticleService interface {
	List(ctx context.Context) ([]models.Article, error)
	Get(ctx context.Context, articleID int64) (*models.Article, error)
	Search(ctx context.Context, q repository.ArticleQuery) ([]models.Article, error)
	ByAuthor(ctx context.Context, authorID string) ([]models.Article, error)
	Upload(ctx context.Context, req UploadArticleRequest) (*models.Article, error)
	Update(ctx context.Context, req repository.UpdateArticleRequest) error
	SetStatus(ctx context.Context, articleID int64, status string) error
	Delete(ctx context.Context, articleID int64) error
	IncrementView(ctx context.Context, articleID int64) error
}

type articleService struct {
	articleRepo  repository.ArticleRepository
	categoryRepo repository.CategoryRepository
	storage      storage.Storage
	cfg          *config.Config
	now          func() time.Time
}

func NewArticleService(articleRepo repository.ArticleRepository, categoryRepo repository.CategoryRepository, storage storage.Storage, cfg *config.Config) ArticleService {
	return &articleService{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		storage:      storage,
		cfg:          cfg,
		now:          time.Now,
	}
}

func (s *articleService) List(ctx context.Context) ([]models.Article, error) {
	return s.articleRepo.GetApproved(ctx)
}

func (s *articleService) Get(ctx context.Context, articleID int64) (*models.Article, error) {
	return s.articleRepo.GetByID(ctx, articleID)
}

func (s *articleService) Search(ctx context.Context, q repository.ArticleQuery) ([]models.Article, error) {
	return s.articleRepo.Search(ctx, q)
}

func (s *articleService) ByAuthor(ctx context.Context, authorID string) ([]models.Article, error) {
	return s.articleRepo.GetByAuthorID(ctx, authorID)
}

// ValidateUploadMeta checks title, category and declared size limits.
// Shared with clients so a bad upload is rejected before any network
// or storage call.
func ValidateUploadMeta(title string, categoryID int64, fileSize, maxSize int64) error {
	if len([]rune(title)) < minTitleLength {
		return &ValidationError{Message: "Makale başlığı en az 5 karakter olmalıdır."}
	}
	if categoryID == 0 {
		return &ValidationError{Message: "Lütfen bir kategori seçiniz."}
	}
	if fileSize == 0 {
		return &ValidationError{Message: "Lütfen bir PDF dosyası seçin."}
	}
	if fileSize > maxSize {
		return &ValidationError{Message: fmt.Sprintf("Dosya boyutu %s'dan büyük olamaz.", humanize.Bytes(uint64(maxSize)))}
	}
	return nil
}

// ValidatePDF sniffs the leading bytes, the declared content type is
// not trusted.
func ValidatePDF(head []byte) error {
	if !mimetype.Detect(head).Is("application/pdf") {
		return &ValidationError{Message: "Sadece PDF dosyaları yüklenebilir."}
	}
	return nil
}

func (s *articleService) Upload(ctx context.Context, req UploadArticleRequest) (*models.Article, error) {
	if err := ValidateUploadMeta(req.Title, req.CategoryID, req.FileSize, s.cfg.MaxUploadSize); err != nil {
		return nil, err
	}

	if _, err := s.categoryRepo.GetByID(ctx, req.CategoryID); err != nil {
		return nil, &ValidationError{Message: "Lütfen bir kategori seçiniz."}
	}

	head := make([]byte, sniffLength)
	n, err := io.ReadFull(req.File, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	head = head[:n]

	if err := ValidatePDF(head); err != nil {
		return nil, err
	}

	now := s.now()
	objectName := slug.ObjectName(req.FileName, now)

	file := io.MultiReader(bytes.NewReader(head), req.File)
	pdfURL, err := s.storage.UploadPDF(ctx, objectName, file, req.FileSize, "application/pdf")
	if err != nil {
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}

	article := &models.Article{
		Title:      req.Title,
		Slug:       slug.Make(req.Title, now),
		Abstract:   req.Abstract,
		CategoryID: req.CategoryID,
		AuthorID:   req.AuthorID,
		PDFURL:     pdfURL,
		FileName:   objectName,
		FileSize:   req.FileSize,
		Status:     models.StatusPending,
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		// roll the uploaded object back so no orphan is left behind
		if delErr := s.storage.DeletePDF(ctx, objectName); delErr != nil {
			log.Printf("Warning: failed to remove uploaded file %s after DB error: %v", objectName, delErr)
		}
		return nil, err
	}

	return article, nil
}

// Update edits title/abstract/category. Title and category are
// mandatory, a changed title gets a fresh slug.
func (s *articleService) Update(ctx context.Context, req repository.UpdateArticleRequest) error {
	if req.Title == "" || req.CategoryID == 0 {
		return &ValidationError{Message: "Başlık ve kategori zorunludur."}
	}

	article, err := s.articleRepo.GetByID(ctx, req.ArticleID)
	if err != nil {
		return err
	}

	if req.Title != article.Title {
		req.Slug = slug.Make(req.Title, s.now())
	} else {
		req.Slug = article.Slug
	}

	return s.articleRepo.Update(ctx, req)
}

func (s *articleService) SetStatus(ctx context.Context, articleID int64, status string) error {
	if status != models.StatusApproved && status != models.StatusRejected {
		return &ValidationError{Message: "Geçersiz durum."}
	}
	return s.articleRepo.UpdateStatus(ctx, articleID, status)
}

// Delete removes the backing file best-effort, then the record. The
// two stores are not transactional: a failed file removal is logged
// and the record delete still proceeds.
func (s *articleService) Delete(ctx context.Context, articleID int64) error {
	article, err := s.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		return err
	}

	if article.FileName != "" {
		if err := s.storage.DeletePDF(ctx, article.FileName); err != nil {
			log.Printf("Warning: failed to delete file %s from storage: %v", article.FileName, err)
		}
	}

	return s.articleRepo.Delete(ctx, articleID)
}

func (s *articleService) IncrementView(ctx context.Context, articleID int64) error {
	return s.articleRepo.IncrementViewCount(ctx, articleID)
}
