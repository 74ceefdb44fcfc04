package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-expense-manager/internal/models"
	"github.com/shopspring/decimal"
)

// AdminManager defines the admin operations used by the handlers.
type AdminManager interface {
	RequestAccess(ctx context.Context, name, email, phone string) error
	Login(ctx context.Context, email, key string) (*models.AdminDB, string, error)
	Profile(ctx context.Context, adminID string) (*models.AdminDB, error)
	Dashboard(ctx context.Context, adminID string) (*models.Dashboard, error)
	UpdatePhone(ctx context.Context, adminID, phone string) error
	Deactivate(ctx context.Context, adminID string) error
}

// AdminAccessRequest represents the JSON body for requesting admin access
// swagger:model AdminAccessRequest
type AdminAccessRequest struct {
	// required: true
	Name string `json:"name"`
	// required: true
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// AdminLoginRequest represents the JSON body for admin login
// swagger:model AdminLoginRequest
type AdminLoginRequest struct {
	// required: true
	Email string `json:"email"`
	// required: true
	AdminKey string `json:"adminKey"`
}

// AdminPhoneRequest represents the JSON body for updating the admin phone
// swagger:model AdminPhoneRequest
type AdminPhoneRequest struct {
	// required: true
	PhoneNumber string `json:"phoneNumber"`
}

// Admin is the client view of an admin.
// swagger:model Admin
type Admin struct {
	AdminID     string    `json:"adminId"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AdminLoginResponse carries the admin token
// swagger:model AdminLoginResponse
type AdminLoginResponse struct {
	Response
	Token string `json:"token"`
	Admin Admin  `json:"admin"`
}

// AdminProfileResponse carries the admin profile
// swagger:model AdminProfileResponse
type AdminProfileResponse struct {
	Response
	Admin Admin `json:"admin"`
}

// DashboardUser is one account row of the dashboard.
// swagger:model DashboardUser
type DashboardUser struct {
	PublicID       string          `json:"publicId"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	PhoneNumber    string          `json:"phoneNumber"`
	RegisteredWith string          `json:"registeredWith"`
	Address        string          `json:"address"`
	FavouriteSport string          `json:"favouriteSport"`
	Gender         string          `json:"gender"`
	CreatedAt      time.Time       `json:"createdAt"`
	TotalIncome    decimal.Decimal `json:"totalIncome" swaggertype:"number"`
	TotalExpense   decimal.Decimal `json:"totalExpense" swaggertype:"number"`
	TotalTurnover  decimal.Decimal `json:"totalTurnover" swaggertype:"number"`
}

// DashboardSummary aggregates the dashboard.
// swagger:model DashboardSummary
type DashboardSummary struct {
	TotalUsers    int             `json:"totalUsers"`
	TotalTurnover decimal.Decimal `json:"totalTurnover" swaggertype:"number"`
}

// DashboardResponse carries the admin dashboard
// swagger:model DashboardResponse
type DashboardResponse struct {
	Response
	Summary DashboardSummary `json:"summary"`
	Users   []DashboardUser  `json:"users"`
}

func newAdmin(a *models.AdminDB) Admin {
	return Admin{
		AdminID:     a.AdminID,
		Name:        a.Name,
		Email:       a.Email,
		PhoneNumber: orDefault(a.PhoneNumber, notProvided),
		IsActive:    a.IsActive,
		CreatedAt:   a.CreatedAt,
	}
}

// NewAdminRequestAccessHandler returns an HTTP handler creating an admin and mailing its key.
// @Summary Request admin access
// @Tags admin
// @Accept json
// @Produce json
// @Param request body handlers.AdminAccessRequest true "Admin"
// @Success 201 {object} handlers.Response "Admin key mailed"
// @Failure 400 {object} handlers.Response "Missing fields or invalid email"
// @Failure 409 {object} handlers.Response "Active admin already exists"
// @Failure 502 {object} handlers.Response "Admin key mail failed to send"
// @Router /admin/request-access [post]
func NewAdminRequestAccessHandler(svc AdminManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdminAccessRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if err := svc.RequestAccess(r.Context(), req.Name, req.Email, req.PhoneNumber); err != nil {
			writeError(w, r, err)
			return
		}
		writeMessage(w, http.StatusCreated, "Admin access granted. Your admin key has been sent to your email")
	}
}

// NewAdminLoginHandler returns an HTTP handler for admin login.
// @Summary Admin login
// @Tags admin
// @Accept json
// @Produce json
// @Param request body handlers.AdminLoginRequest true "Email and admin key"
// @Success 200 {object} handlers.AdminLoginResponse "Admin token"
// @Failure 401 {object} handlers.Response "Invalid credentials"
// @Router /admin/login [post]
func NewAdminLoginHandler(svc AdminManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdminLoginRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		admin, token, err := svc.Login(r.Context(), req.Email, req.AdminKey)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, AdminLoginResponse{
			Response: Response{Status: StatusSuccess, Message: "Admin logged in successfully"},
			Token:    token,
			Admin:    newAdmin(admin),
		})
	}
}

// NewAdminDashboardHandler returns an HTTP handler with every account and its totals.
// @Summary Admin dashboard
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.DashboardResponse "Dashboard"
// @Failure 401 {object} handlers.Response "Unauthorized"
// @Failure 404 {object} handlers.Response "Admin does not exist"
// @Router /admin/dashboard [post]
// @Security BearerAuth
func NewAdminDashboardHandler(svc AdminManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		dashboard, err := svc.Dashboard(r.Context(), claims.PublicID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		resp := DashboardResponse{
			Response: Response{Status: StatusSuccess, Message: "Dashboard data fetched successfully"},
			Summary: DashboardSummary{
				TotalUsers:    dashboard.TotalUsers,
				TotalTurnover: dashboard.TotalTurnover,
			},
			Users: make([]DashboardUser, 0, len(dashboard.Users)),
		}
		for _, u := range dashboard.Users {
			resp.Users = append(resp.Users, DashboardUser{
				PublicID:       u.PublicID,
				Name:           u.Name,
				Email:          u.Email,
				PhoneNumber:    orDefault(u.PhoneNumber, notProvided),
				RegisteredWith: registeredWith(u.Provider),
				Address:        orDefault(u.Address, notProvided),
				FavouriteSport: orDefault(u.FavouriteSport, notProvided),
				Gender:         orDefault(u.Gender, preferNotToSay),
				CreatedAt:      u.CreatedAt,
				TotalIncome:    u.TotalIncome,
				TotalExpense:   u.TotalExpense,
				TotalTurnover:  u.TotalTurnover,
			})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewAdminProfileHandler returns an HTTP handler with the logged in admin.
// @Summary Admin profile
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.AdminProfileResponse "Admin"
// @Failure 404 {object} handlers.Response "Admin does not exist"
// @Router /admin/profile [post]
// @Security BearerAuth
func NewAdminProfileHandler(svc AdminManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		admin, err := svc.Profile(r.Context(), claims.PublicID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, AdminProfileResponse{
			Response: Response{Status: StatusSuccess, Message: "Admin profile fetched successfully"},
			Admin:    newAdmin(admin),
		})
	}
}

// NewAdminUpdatePhoneHandler returns an HTTP handler changing the admin phone.
// @Summary Update admin phone
// @Tags admin
// @Accept json
// @Produce json
// @Param request body handlers.AdminPhoneRequest true "Phone number"
// @Success 200 {object} handlers.Response "Phone updated"
// @Failure 400 {object} handlers.Response "Invalid phone number"
// @Failure 404 {object} handlers.Response "Admin does not exist"
// @Router /admin/update-phone [put]
// @Security BearerAuth
func NewAdminUpdatePhoneHandler(svc AdminManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}
		var req AdminPhoneRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if err := svc.UpdatePhone(r.Context(), claims.PublicID, req.PhoneNumber); err != nil {
			writeError(w, r, err)
			return
		}
		writeMessage(w, http.StatusOK, "Phone number updated successfully")
	}
}

// NewAdminDeactivateHandler returns an HTTP handler disabling the logged in admin.
// @Summary Deactivate admin
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.Response "Admin deactivated"
// @Failure 404 {object} handlers.Response "Admin does not exist"
// @Router /admin/deactivate [put]
// @Security BearerAuth
func NewAdminDeactivateHandler(svc AdminManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		if err := svc.Deactivate(r.Context(), claims.PublicID); err != nil {
			writeError(w, r, err)
			return
		}
		writeMessage(w, http.StatusOK, "Admin account deactivated successfully")
	}
}
