package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jrammler/storefront/internal/entity"
)

const jsonContent = `{
  "categories": [{"name": "Shoes", "product_count": 12, "image_url": "/img/shoes.jpg"}],
  "gallery": [{"thumbnail_url": "/img/t1.jpg", "full_url": "/img/1.jpg"}],
  "accounts": [{"username": "root", "password_hash": "x", "role": "Super Admin"}]
}`

const yamlContent = `
categories:
  - name: Shoes
    product_count: 12
    image_url: /img/shoes.jpg
gallery:
  - thumbnail_url: /img/t1.jpg
    full_url: /img/1.jpg
accounts:
  - username: root
    password_hash: x
    role: super admin
`

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFormats(t *testing.T) {
	testCases := []struct {
		name string
		file string
		data string
	}{
		{name: "json", file: "content.json", data: jsonContent},
		{name: "yaml", file: "content.yaml", data: yamlContent},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sto, err := NewFileStorage(writeFile(t, tc.file, tc.data))
			if err != nil {
				t.Fatalf("Unexpected error %v", err)
			}
			ctx := context.Background()

			categories, err := sto.GetCategories(ctx)
			if err != nil {
				t.Fatalf("Unexpected error %v", err)
			}
			expected := []entity.Category{{Name: "Shoes", ProductCount: 12, ImageURL: "/img/shoes.jpg"}}
			if diff := cmp.Diff(expected, categories); diff != "" {
				t.Errorf("Categories mismatch (-want +got):\n%s", diff)
			}

			gallery, _ := sto.GetGallery(ctx)
			if len(gallery) != 1 || gallery[0].FullURL != "/img/1.jpg" {
				t.Errorf("Unexpected gallery %v", gallery)
			}

			account, err := sto.GetAccount(ctx, "root")
			if err != nil {
				t.Fatalf("Unexpected error %v", err)
			}
			if account.Role != entity.RoleSuperAdmin {
				t.Errorf("Expected role %q, got %q", entity.RoleSuperAdmin, account.Role)
			}
		})
	}
}

func TestGetAccountNotFound(t *testing.T) {
	sto, err := NewFileStorage(writeFile(t, "content.json", jsonContent))
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	_, err = sto.GetAccount(context.Background(), "nobody")
	if !errors.Is(err, UserNotFoundError) {
		t.Errorf("Expected UserNotFoundError, got %v", err)
	}
}

func TestInvalidAccountRole(t *testing.T) {
	path := writeFile(t, "content.json", `{"accounts": [{"username": "a", "role": "owner"}]}`)
	_, err := NewFileStorage(path)
	if !errors.Is(err, entity.InvalidRoleError) {
		t.Errorf("Expected InvalidRoleError, got %v", err)
	}
}

func TestReloadKeepsPreviousContentOnError(t *testing.T) {
	path := writeFile(t, "content.json", jsonContent)
	sto, err := NewFileStorage(path)
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}

	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := sto.LoadConfig(); err == nil {
		t.Fatal("Expected reload of broken file to fail")
	}

	categories, err := sto.GetCategories(context.Background())
	if err != nil || len(categories) != 1 {
		t.Errorf("Expected previous content to survive, got %v, %v", categories, err)
	}
}
