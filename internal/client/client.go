// Package client is the HTTP client for the Youthive API, used by hubctl.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"youthive/internal/models"
)

// APIError carries the server's error message and HTTP status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("sunucu hatası (%d)", e.StatusCode)
}

type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{},
	}
}

type User struct {
	UserID   string `json:"userId"`
	Email    string `json:"email"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	IsEditor bool   `json:"isEditor"`
}

type AuthResult struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         User   `json:"user"`
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var envelope struct {
			Error string `json:"error"`
		}
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
		_ = json.Unmarshal(data, &envelope)
		return &APIError{StatusCode: resp.StatusCode, Message: envelope.Error}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}
	return c.do(ctx, method, path, body, "application/json", out)
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	var result AuthResult
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &result)
	if err != nil {
		return nil, err
	}
	c.Token = result.AccessToken
	return &result, nil
}

func (c *Client) Register(ctx context.Context, email, password, username, fullName string) (*AuthResult, error) {
	var result AuthResult
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/register", map[string]string{
		"email":    email,
		"password": password,
		"username": username,
		"fullName": fullName,
	}, &result)
	if err != nil {
		return nil, err
	}
	c.Token = result.AccessToken
	return &result, nil
}

func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (*AuthResult, error) {
	var result AuthResult
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/refresh-token", map[string]string{
		"refreshToken": refreshToken,
	}, &result)
	if err != nil {
		return nil, err
	}
	c.Token = result.AccessToken
	return &result, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
}

func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	return c.doJSON(ctx, http.MethodPost, "/api/auth/reset-password", map[string]string{"email": email}, nil)
}

func (c *Client) UpdatePassword(ctx context.Context, current, newPassword string) error {
	return c.doJSON(ctx, http.MethodPut, "/api/auth/password", map[string]string{
		"currentPassword": current,
		"newPassword":     newPassword,
	}, nil)
}

func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/api/me", nil, "", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Articles fetches the public approved listing.
func (c *Client) Articles(ctx context.Context) ([]models.Article, error) {
	var articles []models.Article
	if err := c.do(ctx, http.MethodGet, "/api/articles", nil, "", &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

func (c *Client) Article(ctx context.Context, id int64) (*models.Article, error) {
	var article models.Article
	path := fmt.Sprintf("/api/articles/%d", id)
	if err := c.do(ctx, http.MethodGet, path, nil, "", &article); err != nil {
		return nil, err
	}
	return &article, nil
}

func (c *Client) MyArticles(ctx context.Context) ([]models.Article, error) {
	var articles []models.Article
	if err := c.do(ctx, http.MethodGet, "/api/me/articles", nil, "", &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// EditorArticles fetches the moderation queue. Empty status means all.
func (c *Client) EditorArticles(ctx context.Context, status string, categoryID int64, oldest bool) ([]models.Article, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", status)
	}
	if categoryID != 0 {
		query.Set("category", strconv.FormatInt(categoryID, 10))
	}
	if oldest {
		query.Set("sort", "oldest")
	}
	path := "/api/editor/articles"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	var articles []models.Article
	if err := c.do(ctx, http.MethodGet, path, nil, "", &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// Upload sends the article metadata and PDF as multipart form data.
func (c *Client) Upload(ctx context.Context, title, abstract string, categoryID int64, fileName string, file io.Reader) (*models.Article, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField("title", title); err != nil {
		return nil, err
	}
	if err := writer.WriteField("abstract", abstract); err != nil {
		return nil, err
	}
	if err := writer.WriteField("categoryId", strconv.FormatInt(categoryID, 10)); err != nil {
		return nil, err
	}
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	var article models.Article
	if err := c.do(ctx, http.MethodPost, "/api/articles", &buf, writer.FormDataContentType(), &article); err != nil {
		return nil, err
	}
	return &article, nil
}

func (c *Client) UpdateArticle(ctx context.Context, id int64, title, abstract string, categoryID int64) error {
	path := fmt.Sprintf("/api/articles/%d", id)
	return c.doJSON(ctx, http.MethodPut, path, map[string]interface{}{
		"title":      title,
		"abstract":   abstract,
		"categoryId": categoryID,
	}, nil)
}

func (c *Client) SetStatus(ctx context.Context, id int64, status string) error {
	path := fmt.Sprintf("/api/articles/%d/status", id)
	return c.doJSON(ctx, http.MethodPatch, path, map[string]string{"status": status}, nil)
}

func (c *Client) DeleteArticle(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/articles/%d", id)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

// IncrementView reports a read. Callers treat failures as non-fatal.
func (c *Client) IncrementView(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/articles/%d/view", id)
	return c.doJSON(ctx, http.MethodPost, path, nil, nil)
}

type FavoriteResult struct {
	ArticleID int64 `json:"articleId"`
	Favorited bool  `json:"favorited"`
}

func (c *Client) ToggleFavorite(ctx context.Context, id int64) (*FavoriteResult, error) {
	var result FavoriteResult
	path := fmt.Sprintf("/api/articles/%d/favorite", id)
	if err := c.doJSON(ctx, http.MethodPost, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Favorites(ctx context.Context) ([]int64, error) {
	var result struct {
		ArticleIDs []int64 `json:"articleIds"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/me/favorites", nil, "", &result); err != nil {
		return nil, err
	}
	return result.ArticleIDs, nil
}

func (c *Client) Categories(ctx context.Context, topOnly bool) ([]models.Category, error) {
	path := "/api/categories"
	if topOnly {
		path += "?top=1"
	}
	var categories []models.Category
	if err := c.do(ctx, http.MethodGet, path, nil, "", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
