package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/ristorante-africa/ristorante/config"
	"github.com/ristorante-africa/ristorante/utils"
)

func AdminLogin(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Password string `json:"password"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if req.Password == "" {
		http.Error(w, "password is required", http.StatusBadRequest)
		return
	}

	if !utils.CheckPassword(config.AdminPasswordHash, req.Password) {
		http.Error(w, "invalid password", http.StatusUnauthorized)
		return
	}

	token, err := utils.GenerateAdminToken()
	if err != nil {
		logrus.Printf("failed to generate admin token: %v", err)
		http.Error(w, "failed to generate token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"token":   token,
		"message": "Authentication successful",
	})
}

// VerifyAdmin sits behind the admin middleware; reaching it means the token
// checked out.
func VerifyAdmin(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"authenticated": true})
}
