package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"creator-kita.backend/internal/domain/entities"
	"creator-kita.backend/internal/usecases"
	"creator-kita.backend/pkg/jwt"
)

func newBrandHandlerForTest(brandRepo *brandRepoStub, userRepo *userRepoStub) *BrandHandler {
	jwtSvc := jwt.NewJWTService("test-secret", 15*time.Minute, 24*time.Hour)
	userTypeRepo := newUserTypeRepoStub("Brand")
	auth := usecases.NewAuthUsecase(userRepo, userTypeRepo, newRoleRepoStub(), jwtSvc, nil)
	uc := usecases.NewBrandUsecase(brandRepo, userRepo, userTypeRepo, auth)
	return NewBrandHandler(uc)
}

func TestBrandHandler_SignupRejectFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	brandRepo := newBrandRepoStub()
	userRepo := newUserRepoStub()
	h := newBrandHandlerForTest(brandRepo, userRepo)

	r := gin.New()
	r.POST("/brands/signup", h.Signup)
	r.POST("/brands/:id/reject", h.Reject)

	body := []byte(`{"companyName":"Acme Pte Ltd","contactEmail":"biz@acme.io","username":"acme","phoneNumber":"+658888","password":"password1","website":"https://acme.io"}`)
	req := httptest.NewRequest(http.MethodPost, "/brands/signup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
	}

	var created struct {
		Brand entities.Brand `json:"brand"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal signup response: %v", err)
	}
	if created.Brand.Status != entities.UserStatusPending {
		t.Fatalf("expected pending brand, got %s", created.Brand.Status)
	}

	req = httptest.NewRequest(http.MethodPost, "/brands/"+created.Brand.ID.String()+"/reject", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if brandRepo.brands[created.Brand.ID].Status != entities.UserStatusRejected {
		t.Fatalf("expected rejected brand, got %s", brandRepo.brands[created.Brand.ID].Status)
	}
}

func TestBrandHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)
	brandRepo := newBrandRepoStub()
	h := newBrandHandlerForTest(brandRepo, newUserRepoStub())

	brand := &entities.Brand{ID: uuid.New(), CompanyName: "Old Co", Status: entities.UserStatusActive}
	brandRepo.brands[brand.ID] = brand

	r := gin.New()
	r.PUT("/brands/:id", h.Update)

	body := []byte(`{"companyName":"New Co"}`)
	req := httptest.NewRequest(http.MethodPut, "/brands/"+brand.ID.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if brandRepo.brands[brand.ID].CompanyName != "New Co" {
		t.Fatalf("company name not updated: %s", brandRepo.brands[brand.ID].CompanyName)
	}
}
