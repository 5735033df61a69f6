package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"youthive/internal/client"
	"youthive/internal/models"
	"youthive/internal/service"
)

// maxUploadSize mirrors the server's default so oversized files are
// rejected before any bytes leave the machine.
const maxUploadSize = 10 << 20

// ErrLoginRequired is returned when an action needs a session and
// there is none. Callers show it and must not hit the network.
var ErrLoginRequired = errors.New("Makaleleri kaydetmek için lütfen önce giriş yapınız.")

type favoriteAPI interface {
	ToggleFavorite(ctx context.Context, id int64) (*client.FavoriteResult, error)
}

// toggleFavorite checks for a session before any request goes out.
// The returned state comes from the server; nothing is flipped
// optimistically.
func toggleFavorite(ctx context.Context, api favoriteAPI, token string, articleID int64) (bool, error) {
	if token == "" {
		return false, ErrLoginRequired
	}
	result, err := api.ToggleFavorite(ctx, articleID)
	if err != nil {
		return false, err
	}
	return result.Favorited, nil
}

type uploadAPI interface {
	Upload(ctx context.Context, title, abstract string, categoryID int64, fileName string, file io.Reader) (*models.Article, error)
}

// uploadArticle validates the metadata and the file locally, in the
// same order the server does, so a bad selection never starts an
// upload.
func uploadArticle(ctx context.Context, api uploadAPI, title, abstract string, categoryID int64, path string) (*models.Article, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.New("Lütfen bir PDF dosyası seçin.")
	}

	if err := service.ValidateUploadMeta(title, categoryID, info.Size(), maxUploadSize); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	head := make([]byte, 3072)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := service.ValidatePDF(head[:n]); err != nil {
		return nil, err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	return api.Upload(ctx, title, abstract, categoryID, filepath.Base(path), file)
}
