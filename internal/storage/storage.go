package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jrammler/storefront/internal/entity"
	"gopkg.in/yaml.v3"
)

var UserNotFoundError = errors.New("User not found")
var NotLoadedError = errors.New("Content not loaded")

type content struct {
	Categories []entity.Category     `json:"categories" yaml:"categories"`
	Products   []entity.Product      `json:"products" yaml:"products"`
	Gallery    []entity.GalleryImage `json:"gallery" yaml:"gallery"`
	Stats      []entity.StatCard     `json:"stats" yaml:"stats"`
	Sales      []entity.ChartPoint   `json:"sales" yaml:"sales"`
	Accounts   []entity.Account      `json:"accounts" yaml:"accounts"`
}

type Storage interface {
	GetCategories(ctx context.Context) ([]entity.Category, error)
	GetProducts(ctx context.Context) ([]entity.Product, error)
	GetGallery(ctx context.Context) ([]entity.GalleryImage, error)
	GetStats(ctx context.Context) ([]entity.StatCard, error)
	GetSales(ctx context.Context) ([]entity.ChartPoint, error)
	GetAccount(ctx context.Context, username string) (entity.Account, error)
	LoadConfig() error
}

// FileStorage serves storefront content from a JSON or YAML file. The format
// is picked by the file extension.
type FileStorage struct {
	filepath string
	content  *content
	mu       sync.RWMutex
}

func NewFileStorage(filepath string) (*FileStorage, error) {
	s := &FileStorage{
		filepath: filepath,
	}
	err := s.LoadConfig()
	if err != nil {
		slog.Error("Failed to load content on startup", "error", err)
		return nil, err
	}
	return s, nil
}

func decode(path string, data []byte, c *content) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, c)
	default:
		return json.Unmarshal(data, c)
	}
}

func (s *FileStorage) LoadConfig() error {
	file, err := os.ReadFile(s.filepath)
	if err != nil {
		slog.Error("Error while reading file", "path", s.filepath, "err", err)
		return err
	}
	c := &content{}
	err = decode(s.filepath, file, c)
	if err != nil {
		slog.Error("Error while unmarshalling content", "path", s.filepath, "err", err)
		return err
	}
	for i, account := range c.Accounts {
		role, err := entity.ParseRole(string(account.Role))
		if err != nil {
			slog.Error("Invalid account role in content", "path", s.filepath, "username", account.Username, "role", account.Role)
			return fmt.Errorf("account %q: %w", account.Username, err)
		}
		c.Accounts[i].Role = role
	}

	s.mu.Lock()
	s.content = c
	s.mu.Unlock()
	return nil
}

func (s *FileStorage) read() (*content, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.content == nil {
		return nil, NotLoadedError
	}
	return s.content, nil
}

func (s *FileStorage) GetCategories(ctx context.Context) ([]entity.Category, error) {
	c, err := s.read()
	if err != nil {
		return nil, err
	}
	if c.Categories == nil {
		slog.WarnContext(ctx, "No categories found in content file", "path", s.filepath)
	}
	return c.Categories, nil
}

func (s *FileStorage) GetProducts(ctx context.Context) ([]entity.Product, error) {
	c, err := s.read()
	if err != nil {
		return nil, err
	}
	return c.Products, nil
}

func (s *FileStorage) GetGallery(ctx context.Context) ([]entity.GalleryImage, error) {
	c, err := s.read()
	if err != nil {
		return nil, err
	}
	return c.Gallery, nil
}

func (s *FileStorage) GetStats(ctx context.Context) ([]entity.StatCard, error) {
	c, err := s.read()
	if err != nil {
		return nil, err
	}
	return c.Stats, nil
}

func (s *FileStorage) GetSales(ctx context.Context) ([]entity.ChartPoint, error) {
	c, err := s.read()
	if err != nil {
		return nil, err
	}
	return c.Sales, nil
}

func (s *FileStorage) GetAccount(ctx context.Context, username string) (entity.Account, error) {
	c, err := s.read()
	if err != nil {
		return entity.Account{}, err
	}
	for _, account := range c.Accounts {
		if account.Username == username {
			return account, nil
		}
	}
	return entity.Account{}, UserNotFoundError
}
