package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/ristorante-africa/ristorante/database/dbhelper"
	"github.com/ristorante-africa/ristorante/middlewares"
	"github.com/ristorante-africa/ristorante/models"
)

// MenuStore is the catalog persistence surface; dbhelper.MenuStore is the
// postgres implementation.
type MenuStore interface {
	ListMenuItems(all bool) ([]models.MenuItem, error)
	GetMenuItem(id uuid.UUID) (models.MenuItem, error)
	CreateMenuItem(item *models.MenuItem) error
	UpdateMenuItem(item models.MenuItem) (models.MenuItem, error)
	DeleteMenuItem(id uuid.UUID) error
	ReplaceMenu(items []models.MenuItem) error
	ClearMenu() (int64, error)
}

var Menu MenuStore

func ListMenu(w http.ResponseWriter, r *http.Request) {
	// the full catalog, unavailable items included, is an admin view
	all := r.URL.Query().Get("all") == "true" && middlewares.IsAdminRequest(r)

	items, err := Menu.ListMenuItems(all)
	if err != nil {
		logrus.Printf("failed to list menu items: %v", err)
		http.Error(w, "failed to fetch menu", http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []models.MenuItem{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

func CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Price       *float64 `json:"price"`
		Category    string   `json:"category"`
		Image       string   `json:"image"`
		Tags        []string `json:"tags"`
		Allergens   []string `json:"allergens"`
		Available   *bool    `json:"available"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if req.Name == "" || req.Description == "" {
		http.Error(w, "name and description are required", http.StatusBadRequest)
		return
	}
	if req.Price == nil || *req.Price < 0 {
		http.Error(w, "price must be a non-negative number", http.StatusBadRequest)
		return
	}
	if !models.MenuCategory(req.Category).IsValid() {
		http.Error(w, "invalid category", http.StatusBadRequest)
		return
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	item := models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Category:    models.MenuCategory(req.Category),
		Image:       req.Image,
		Tags:        models.FilterTags(req.Tags),
		Allergens:   req.Allergens,
		Available:   available,
	}

	if err := Menu.CreateMenuItem(&item); err != nil {
		logrus.Printf("failed to create menu item: %v", err)
		http.Error(w, "failed to create menu item", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(item)
}

func UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid menu item id", http.StatusBadRequest)
		return
	}

	item, err := Menu.GetMenuItem(id)
	if err != nil {
		if errors.Is(err, dbhelper.ErrMenuItemNotFound) {
			http.Error(w, "menu item not found", http.StatusNotFound)
			return
		}
		logrus.Printf("failed to load menu item %s: %v", id, err)
		http.Error(w, "failed to update menu item", http.StatusInternalServerError)
		return
	}

	type request struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
		Category    *string  `json:"category"`
		Image       *string  `json:"image"`
		Tags        []string `json:"tags"`
		Allergens   []string `json:"allergens"`
		Available   *bool    `json:"available"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if req.Name != nil && *req.Name != "" {
		item.Name = *req.Name
	}
	if req.Description != nil && *req.Description != "" {
		item.Description = *req.Description
	}
	if req.Price != nil && *req.Price >= 0 {
		item.Price = *req.Price
	}
	if req.Category != nil && models.MenuCategory(*req.Category).IsValid() {
		item.Category = models.MenuCategory(*req.Category)
	}
	if req.Image != nil {
		item.Image = *req.Image
	}
	if req.Tags != nil {
		item.Tags = models.FilterTags(req.Tags)
	}
	if req.Allergens != nil {
		item.Allergens = req.Allergens
	}
	if req.Available != nil {
		item.Available = *req.Available
	}

	updated, err := Menu.UpdateMenuItem(item)
	if err != nil {
		if errors.Is(err, dbhelper.ErrMenuItemNotFound) {
			http.Error(w, "menu item not found", http.StatusNotFound)
			return
		}
		logrus.Printf("failed to update menu item %s: %v", id, err)
		http.Error(w, "failed to update menu item", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

func DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid menu item id", http.StatusBadRequest)
		return
	}

	if err := Menu.DeleteMenuItem(id); err != nil {
		if errors.Is(err, dbhelper.ErrMenuItemNotFound) {
			http.Error(w, "menu item not found", http.StatusNotFound)
			return
		}
		logrus.Printf("failed to delete menu item %s: %v", id, err)
		http.Error(w, "failed to delete menu item", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Menu item deleted",
	})
}

// SyncMenu replaces the whole catalog with the house default list.
func SyncMenu(w http.ResponseWriter, r *http.Request) {
	items := dbhelper.DefaultMenuItems()
	if err := Menu.ReplaceMenu(items); err != nil {
		logrus.Printf("failed to sync menu: %v", err)
		http.Error(w, "failed to sync menu", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": fmt.Sprintf("Menu synced. Installed %d item(s).", len(items)),
		"count":   len(items),
	})
}

func ClearMenu(w http.ResponseWriter, r *http.Request) {
	deleted, err := Menu.ClearMenu()
	if err != nil {
		logrus.Printf("failed to clear menu: %v", err)
		http.Error(w, "failed to clear menu", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":      fmt.Sprintf("Menu cleared. Removed %d item(s).", deleted),
		"deletedCount": deleted,
	})
}
